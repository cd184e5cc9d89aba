package cmd

import (
	"fmt"
	"os"

	"github.com/inovacc/sshcm/internal/core"
	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:     "rm <id|nickname>",
	Aliases: []string{"remove"},
	Short:   "Delete a connection profile",
	Long: `Remove deletes the matching profile. Removing an identifier that matches
no row is not an error; only a malformed identifier is rejected.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := core.Remove(st, args[0]); err != nil {
			return err
		}

		_, _ = fmt.Fprintf(os.Stdout, "Removed %s\n", args[0])

		return nil
	},
}

func init() {
	rootCmd.AddCommand(removeCmd)
}
