package cmd

import (
	"fmt"
	"os"

	"github.com/inovacc/sshcm/internal/core"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write all profiles to standard output as CSV",
	Long: `Export emits the raw stored rows, one per profile, without applying
any default resolution. Null columns come out as empty fields.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return core.Export(st, os.Stdout)
	},
}

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Read profiles from standard input as CSV",
	Long: `Import reads CSV rows and reconciles them in input order: a known
nickname updates the existing profile with the row's non-empty columns,
a new nickname inserts one. Rows without a nickname and malformed lines
are reported and skipped without stopping the rest of the input.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := core.Import(st, os.Stdin)
		if err != nil {
			return err
		}

		for _, note := range result.Notes {
			logger.Warn("import", "note", note)
		}

		_, _ = fmt.Fprintf(os.Stdout, "Imported %d, updated %d, skipped %d\n",
			result.Inserted, result.Updated, result.Skipped)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
