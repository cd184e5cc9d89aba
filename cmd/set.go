package cmd

import (
	"fmt"
	"os"

	"github.com/inovacc/sshcm/internal/core"
	"github.com/spf13/cobra"
)

var setCmd = &cobra.Command{
	Use:   "set <id|nickname> <-flag value ...>",
	Short: "Change settings of an existing profile",
	Long: `Set updates the named profile with the given flag/value pairs, applied
as a single atomic change. Changing -id to an id that is already in use
fails; unlike add, an explicit reassignment is never silently dropped.`,
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if helpRequested(args) {
			return cmd.Help()
		}

		if len(args) < 1 {
			return fmt.Errorf("set requires an id or nickname")
		}

		if err := core.Set(st, args[0], args[1:]); err != nil {
			return err
		}

		_, _ = fmt.Fprintf(os.Stdout, "Updated %s\n", args[0])

		return nil
	},
}

func init() {
	rootCmd.AddCommand(setCmd)
}
