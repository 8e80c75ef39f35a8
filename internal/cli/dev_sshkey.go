package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"mactl/internal/sshkey"
)

var sshkeyPath string

var devSSHKeyCmd = &cobra.Command{
	Use:         "sshkey",
	Short:       "Generates an ed25519 SSH key pair if none exists",
	Annotations: map[string]string{"keywords": "ssh,key,ed25519"},
	RunE: func(cmd *cobra.Command, args []string) error {
		path := sshkeyPath
		if path == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return err
			}
			path = filepath.Join(home, ".ssh", "id_ed25519")
		}

		user := os.Getenv("USER")
		host, _ := os.Hostname()
		created, err := sshkey.Generate(path, fmt.Sprintf("%s@%s", user, host))
		if err != nil {
			return err
		}
		if !created {
			color.Yellow("! Key already exists at %s, leaving it alone", path)
			return nil
		}
		color.Green("✔ Generated %s and %s.pub", path, path)
		return nil
	},
}

func init() {
	devSSHKeyCmd.Flags().StringVar(&sshkeyPath, "path", "", "private key path (default ~/.ssh/id_ed25519)")
	devCmd.AddCommand(devSSHKeyCmd)
}
