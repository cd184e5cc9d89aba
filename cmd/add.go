package cmd

import (
	"fmt"
	"os"

	"github.com/inovacc/sshcm/internal/core"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <nickname> -host <host> [-user U] [-description D] [-args A] [-identity I] [-command C] [-binary B] [-id N]",
	Short: "Add a new connection profile",
	Long: `Add a connection profile under a unique nickname. The nickname must not
start with a digit or contain whitespace. Only -host is required; every
other setting is optional and inherits from the defaults at connect time.

A requested -id is honored only when free; otherwise the store assigns
its own and a warning is printed.`,
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if helpRequested(args) {
			return cmd.Help()
		}

		if len(args) < 1 {
			return fmt.Errorf("add requires a nickname")
		}

		result, err := core.Add(st, args[0], args[1:])
		if err != nil {
			return err
		}

		if result.IDAdjusted {
			logger.Warn("requested id already taken, store assigned another",
				"requested", result.RequestedID, "assigned", result.ID)
		}

		_, _ = fmt.Fprintf(os.Stdout, "Added %s with id %d\n", args[0], result.ID)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
}
