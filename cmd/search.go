package cmd

import (
	"fmt"
	"os"

	"github.com/inovacc/sshcm/internal/core"
	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:     "search <query> | search <-flag value ...>",
	Aliases: []string{"s"},
	Short:   "Search connection profiles",
	Long: `Search with a single query matches it against nickname, host, user and
description (any of them). With flag/value pairs every named column must
match its value (all of them). Output format matches list.`,
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if helpRequested(args) {
			return cmd.Help()
		}

		settings, err := core.Search(st, args)
		if err != nil {
			return err
		}

		for _, s := range settings {
			_, _ = fmt.Fprintln(os.Stdout, core.FormatLine(s))
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
