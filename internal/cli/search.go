package cli

import (
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// categorySynonyms are extra keywords every action in a category matches on.
var categorySynonyms = map[string][]string{
	"wifi":       {"wireless", "airport"},
	"network":    {"net", "ip", "dns"},
	"display":    {"screen", "brightness"},
	"system":     {"sys", "info"},
	"dev":        {"developer", "port"},
	"audio":      {"sound", "volume"},
	"screenshot": {"capture", "shot"},
}

type searchEntry struct {
	command     string
	description string
	keywords    []string
}

// searchIndex flattens the command tree into searchable entries. Per-action
// keywords come from the command's "keywords" annotation.
func searchIndex() []searchEntry {
	var entries []searchEntry
	for _, cat := range rootCmd.Commands() {
		if cat.GroupID != categoryGroup {
			continue
		}
		keywords := append([]string{cat.Name()}, categorySynonyms[cat.Name()]...)
		for _, action := range cat.Commands() {
			entry := searchEntry{
				command:     cat.Name() + " " + action.Name(),
				description: action.Short,
				keywords:    append([]string{action.Name()}, keywords...),
			}
			if extra := action.Annotations["keywords"]; extra != "" {
				entry.keywords = append(entry.keywords, strings.Split(extra, ",")...)
			}
			entries = append(entries, entry)
		}
	}
	return entries
}

func (e searchEntry) matches(term string) bool {
	for _, kw := range e.keywords {
		if strings.Contains(strings.ToLower(kw), term) {
			return true
		}
	}
	return false
}

var searchCmd = &cobra.Command{
	Use:   "search <term>",
	Short: "Finds commands whose name or synonyms match a term",
	Long:  `Case-insensitive substring search over every command's name, category, and known synonyms.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		term := strings.ToLower(args[0])

		var matched []searchEntry
		for _, entry := range searchIndex() {
			if entry.matches(term) {
				matched = append(matched, entry)
			}
		}

		if len(matched) == 0 {
			color.Yellow("No commands matching %q.", args[0])
			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Header([]string{"COMMAND", "DESCRIPTION"})
		for _, entry := range matched {
			table.Append([]string{"mactl " + entry.command, entry.description})
		}
		table.Render()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
