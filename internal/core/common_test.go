package core

import (
	"path/filepath"
	"testing"

	"github.com/inovacc/sshcm/internal/store"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) store.Store {
	t.Helper()

	st, err := store.Open(filepath.Join(t.TempDir(), "ssh-cm.connections"))
	require.NoError(t, err)

	t.Cleanup(func() { _ = st.Close() })

	return st
}

func mustAdd(t *testing.T, st store.Store, nickname string, tokens ...string) int64 {
	t.Helper()

	result, err := Add(st, nickname, tokens)
	require.NoError(t, err)

	return result.ID
}
