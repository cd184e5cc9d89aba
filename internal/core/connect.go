package core

import (
	"strings"

	"github.com/inovacc/sshcm/internal/model"
	"github.com/inovacc/sshcm/internal/process"
	"github.com/inovacc/sshcm/internal/store"
)

// BuildArgv turns resolved settings into the argument vector handed to
// the secure-shell client: binary, free-form args tokens, identity
// file, user@host, then the optional remote command.
func BuildArgv(s model.Settings) []string {
	argv := []string{s.Binary}

	if s.Args != "" {
		argv = append(argv, strings.Fields(s.Args)...)
	}

	if s.Identity != "" {
		argv = append(argv, "-i", s.Identity)
	}

	target := s.Host
	if s.User != "" {
		target = s.User + "@" + s.Host
	}

	argv = append(argv, target)

	if s.Command != "" {
		argv = append(argv, s.Command)
	}

	return argv
}

// LaunchError marks a failure to start or run the external client.
// Callers report it without failing the tool's own exit.
type LaunchError struct {
	Err error
}

func (e *LaunchError) Error() string {
	return "launching secure-shell client: " + e.Err.Error()
}

func (e *LaunchError) Unwrap() error {
	return e.Err
}

// Connect resolves the identifier and launches the secure-shell
// client with stdio passed through, blocking until it exits. The
// returned launch error is best-effort information for the caller;
// resolution errors come back as usual.
func Connect(st store.Store, identifier string) (model.Settings, error) {
	c, err := ResolveIdentifier(st, identifier)
	if err != nil {
		return model.Settings{}, err
	}

	return ConnectByID(st, c.ID)
}

// ConnectByID is Connect for an already-resolved id.
func ConnectByID(st store.Store, id int64) (model.Settings, error) {
	settings, err := Resolve(st, id)
	if err != nil {
		return model.Settings{}, err
	}

	if err := process.Run(BuildArgv(settings)); err != nil {
		return settings, &LaunchError{Err: err}
	}

	return settings, nil
}
