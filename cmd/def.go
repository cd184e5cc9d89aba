package cmd

import (
	"fmt"
	"os"

	"github.com/inovacc/sshcm/internal/core"
	"github.com/spf13/cobra"
)

var defCmd = &cobra.Command{
	Use:   "def <-flag value ...>",
	Short: "Set default settings shared by all profiles",
	Long: `Def stores default values for user, args, identity, command and binary.
Defaults apply to every connection that does not override them itself.
Setting a default to an empty value clears it.`,
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if helpRequested(args) {
			return cmd.Help()
		}

		if err := core.SetDefaults(st, args); err != nil {
			return err
		}

		_, _ = fmt.Fprintln(os.Stdout, "Defaults updated")

		return nil
	},
}

var defaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Show the effective default settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := core.ShowDefaults(st)
		if err != nil {
			return err
		}

		for _, e := range entries {
			if e.Stored {
				_, _ = fmt.Fprintf(os.Stdout, "%s = %s\n", e.Key, e.Value)
			} else {
				_, _ = fmt.Fprintf(os.Stdout, "%s = %s (built-in)\n", e.Key, e.Value)
			}
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(defCmd)
	rootCmd.AddCommand(defaultsCmd)
}
