package core

import (
	"testing"

	"github.com/inovacc/sshcm/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildArgv(t *testing.T) {
	tests := []struct {
		name     string
		settings model.Settings
		expected []string
	}{
		{
			name:     "user and host only",
			settings: model.Settings{Binary: "ssh", User: "me", Host: "127.0.0.1"},
			expected: []string{"ssh", "me@127.0.0.1"},
		},
		{
			name:     "no user",
			settings: model.Settings{Binary: "ssh", Host: "h.example"},
			expected: []string{"ssh", "h.example"},
		},
		{
			name: "args are split into tokens",
			settings: model.Settings{
				Binary: "ssh", User: "me", Host: "h", Args: "-p 2222 -C",
			},
			expected: []string{"ssh", "-p", "2222", "-C", "me@h"},
		},
		{
			name: "identity file",
			settings: model.Settings{
				Binary: "ssh", User: "me", Host: "h", Identity: "/home/me/.ssh/key",
			},
			expected: []string{"ssh", "-i", "/home/me/.ssh/key", "me@h"},
		},
		{
			name: "remote command trails",
			settings: model.Settings{
				Binary: "ssh", User: "me", Host: "h", Command: "tmux attach",
			},
			expected: []string{"ssh", "me@h", "tmux attach"},
		},
		{
			name: "everything",
			settings: model.Settings{
				Binary: "mosh", User: "me", Host: "h",
				Args: "-4", Identity: "/k", Command: "uptime",
			},
			expected: []string{"mosh", "-4", "-i", "/k", "me@h", "uptime"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, BuildArgv(tt.settings))
		})
	}
}

// Fresh store, add, resolve, build argv end to end.
func TestConnectScenarioArgv(t *testing.T) {
	st := openTestStore(t)
	t.Setenv("USER", "")

	id := mustAdd(t, st, "home", "-host", "127.0.0.1", "-user", "me")

	settings, err := Resolve(st, id)
	require.NoError(t, err)

	assert.Equal(t, []string{"ssh", "me@127.0.0.1"}, BuildArgv(settings))
}

func TestConnectUnknownIdentifier(t *testing.T) {
	st := openTestStore(t)

	_, err := Connect(st, "ghost")

	var notFound *NotFoundError
	assert.ErrorAs(t, err, &notFound)
}
