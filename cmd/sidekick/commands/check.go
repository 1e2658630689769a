package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sidekick-cli/sidekick/internal/permission"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Dry-run the permission guards",
	Long: `Runs the same checks the agent performs before touching a path or
executing a shell command, against the resolved configuration, and reports
the outcome without doing anything.`,
}

var checkPathCmd = &cobra.Command{
	Use:   "path <path>...",
	Short: "Check whether paths are inside the accessible roots",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		var denied error
		for _, path := range args {
			err := permission.IsPathAccessible(path, cfg.AccessiblePaths)
			switch {
			case err == nil && permission.IsIgnored(path, cfg.IgnoredPaths):
				fmt.Printf("ignored   %s\n", path)
			case err == nil:
				fmt.Printf("allowed   %s\n", path)
			default:
				fmt.Printf("denied    %s (%v)\n", path, err)
				denied = errors.New("one or more paths are not accessible")
			}
		}
		return denied
	},
}

var checkCommandCmd = &cobra.Command{
	Use:   "command <command>",
	Short: "Check a shell command against the allow-list",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		command := args[0]
		if err := permission.IsCommandAllowed(command, cfg.AllowedCommandPrefixes); err != nil {
			return err
		}
		if err := permission.CheckCommandPaths(command, cfg.AccessiblePaths); err != nil {
			if permission.IsDenied(err) {
				return err
			}
			// Not parseable as bash; the allow-list verdict stands.
			fmt.Printf("allowed   %s (path inspection skipped: %v)\n", command, err)
			return nil
		}
		fmt.Printf("allowed   %s\n", command)
		return nil
	},
}

func init() {
	checkCmd.AddCommand(checkPathCmd)
	checkCmd.AddCommand(checkCommandCmd)
}
