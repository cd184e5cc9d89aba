package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/inovacc/sshcm/internal/application"
	"github.com/inovacc/sshcm/internal/core"
	"github.com/inovacc/sshcm/internal/store"
	"github.com/spf13/cobra"
)

var (
	st     store.Store
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   application.AppName,
	Short: "A connection profile manager for the secure-shell client",
	Long: `Sshcm is a command-line registry of remote-host connection profiles.
It stores nicknamed targets with their settings, resolves the effective
configuration from layered defaults, and launches the secure-shell client
for you.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger = newLogger()

		// help and version must work even when the store cannot open.
		if cmd.Name() == "help" || cmd.Name() == "version" {
			return nil
		}

		cfg, err := core.LoadConfig()
		if err != nil {
			return fmt.Errorf("reading configuration: %w", err)
		}

		core.SetBuiltinBinary(cfg.Binary)

		st, err = store.Open(cfg.ResolveStorePath())
		if err != nil {
			return err
		}

		return nil
	},
}

// Execute runs the command tree, releasing the store handle on every
// exit path.
func Execute() {
	err := rootCmd.Execute()

	if st != nil {
		_ = st.Close()
	}

	if err != nil {
		os.Exit(1)
	}
}

func newLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
}

// helpRequested lets the commands with custom flag grammar keep -h
// working despite DisableFlagParsing.
func helpRequested(args []string) bool {
	for _, a := range args {
		if a == "-h" || a == "--help" {
			return true
		}
	}

	return false
}
