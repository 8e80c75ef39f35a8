package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"mactl/internal/runner"
)

const categoryGroup = "categories"

var rootCmd = &cobra.Command{
	Use:   "mactl",
	Short: "mactl is a CLI of shortcuts for macOS settings and utilities",
	Long: `mactl wraps the macOS command line surface (defaults, osascript,
networksetup, pmset, ...) behind memorable one-liners.

Run 'mactl <category> <action>' or one of the global shortcuts (ip, dark,
light, cleanup, kp). 'mactl search <term>' finds commands by keyword.`,
	// SilenceErrors is used to prevent cobra from printing the error,
	// as we handle it ourselves in the Execute function.
	SilenceErrors: true,
	SilenceUsage:  true,
	Args:          cobra.ArbitraryArgs,
}

func init() {
	// dispatch walks the command tree, so wiring it into the rootCmd
	// literal would be an initialization cycle.
	rootCmd.RunE = dispatch
	rootCmd.AddGroup(&cobra.Group{ID: categoryGroup, Title: "Categories:"})
	rootCmd.PersistentFlags().BoolVar(&runner.Debug, "debug", false, "echo underlying OS commands before running them")
}

// dispatch runs when the first token is not a known command, so the only
// remaining possibilities are a shortcut or a typo.
func dispatch(cmd *cobra.Command, args []string) error {
	// Print the help message if no category is provided
	if len(args) == 0 {
		return cmd.Help()
	}
	target, ok := resolveShortcut(args[0])
	if !ok {
		return fmt.Errorf("unknown category %q\n\nValid categories: %s",
			args[0], strings.Join(categoryNames(), ", "))
	}
	root := cmd.Root()
	root.SetArgs(append(target, args[1:]...))
	return root.Execute()
}

// categoryNames returns the names of all registered category commands.
func categoryNames() []string {
	var names []string
	for _, c := range rootCmd.Commands() {
		if c.GroupID == categoryGroup {
			names = append(names, c.Name())
		}
	}
	return names
}

// knownCommand reports whether name matches a registered top-level command.
func knownCommand(name string) bool {
	for _, c := range rootCmd.Commands() {
		if c.Name() == name {
			return true
		}
	}
	return false
}

// splitRawArgs picks the global flags out of an unparsed argument list.
// Commands that accept numbers disable cobra's flag parsing, since pflag
// would otherwise read a negative number as an unknown shorthand flag.
func splitRawArgs(args []string) (rest []string, help bool) {
	for _, arg := range args {
		switch arg {
		case "--debug":
			runner.Debug = true
		case "-h", "--help":
			help = true
		default:
			rest = append(rest, arg)
		}
	}
	return rest, help
}

// requireAction is the RunE body shared by every category parent command:
// either no action was given, or the action did not match a subcommand.
func requireAction(cmd *cobra.Command, args []string) error {
	actions := make([]string, 0, len(cmd.Commands()))
	for _, c := range cmd.Commands() {
		actions = append(actions, c.Name())
	}
	list := strings.Join(actions, ", ")
	if len(args) == 0 {
		return fmt.Errorf("action required\n\nValid actions for %s: %s", cmd.Name(), list)
	}
	return fmt.Errorf("unknown action %q for %s\n\nValid actions: %s", args[0], cmd.Name(), list)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}
}
