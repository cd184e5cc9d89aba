package cmd

import (
	"fmt"
	"os"

	"github.com/inovacc/sshcm/internal/application"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		_, _ = fmt.Fprintf(os.Stdout, "%s version %s (schema %s)\n",
			application.AppName, application.Version, application.SchemaVersion)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
