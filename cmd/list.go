package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/sshcm/internal/cli"
	"github.com/inovacc/sshcm/internal/core"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var listInteractive bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all connection profiles",
	Long: `List prints one line per stored profile with its settings resolved
through the default layers. With --interactive on a terminal the list
becomes a filterable picker.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := core.List(st)
		if err != nil {
			return err
		}

		if listInteractive && term.IsTerminal(int(os.Stdin.Fd())) {
			m := cli.NewConnList("Connections", settings)

			finalModel, err := tea.NewProgram(m).Run()
			if err != nil {
				return err
			}

			if selected := finalModel.(cli.ConnListModel).Selected(); selected != nil {
				_, _ = fmt.Fprintln(os.Stdout, core.FormatLine(*selected))
			}

			return nil
		}

		for _, s := range settings {
			_, _ = fmt.Fprintln(os.Stdout, core.FormatLine(s))
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVarP(&listInteractive, "interactive", "i", false, "Pick from a filterable list")
}
