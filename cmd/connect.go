package cmd

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/sshcm/internal/cli"
	"github.com/inovacc/sshcm/internal/core"
	"github.com/inovacc/sshcm/internal/model"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var connectCmd = &cobra.Command{
	Use:     "connect <id|nickname>",
	Aliases: []string{"c"},
	Short:   "Open a shell session to a stored target",
	Long: `Connect resolves the profile's effective settings and launches the
secure-shell client with stdin, stdout and stderr passed straight
through, blocking until the session ends. Run without an argument on a
terminal to pick the target from a list.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			settings model.Settings
			err      error
		)

		switch {
		case len(args) == 1:
			settings, err = core.Connect(st, args[0])
		case term.IsTerminal(int(os.Stdin.Fd())):
			settings, err = connectInteractive()
		default:
			return fmt.Errorf("connect requires an id or nickname")
		}

		// A failed launch is reported but does not fail the tool.
		var launchErr *core.LaunchError
		if errors.As(err, &launchErr) {
			logger.Warn("session ended with error", "target", settings.Nickname, "err", launchErr.Err)

			return nil
		}

		return err
	},
}

func connectInteractive() (model.Settings, error) {
	settings, err := core.List(st)
	if err != nil {
		return model.Settings{}, err
	}

	m := cli.NewConnList("Connect to", settings)

	finalModel, err := tea.NewProgram(m).Run()
	if err != nil {
		return model.Settings{}, err
	}

	selected := finalModel.(cli.ConnListModel).Selected()
	if selected == nil {
		return model.Settings{}, nil
	}

	return core.ConnectByID(st, selected.ID)
}

func init() {
	rootCmd.AddCommand(connectCmd)
}
