package core

import (
	"testing"

	"github.com/inovacc/sshcm/internal/model"
	"github.com/inovacc/sshcm/internal/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddMinimal(t *testing.T) {
	st := openTestStore(t)

	result, err := Add(st, "home", []string{"-host", "127.0.0.1"})
	require.NoError(t, err)
	assert.Positive(t, result.ID)
	assert.False(t, result.IDAdjusted)

	c, err := st.GetConnectionByNickname("home")
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, "127.0.0.1", c.Host)

	// Unspecified optional columns stay null, not empty.
	assert.Nil(t, c.User)
	assert.Nil(t, c.Description)
	assert.Nil(t, c.Binary)
}

func TestAddAllFlags(t *testing.T) {
	st := openTestStore(t)

	_, err := Add(st, "full", []string{
		"-host", "h.example",
		"-user", "deploy",
		"-description", "the works",
		"-args", "-p 2222",
		"-identity", "/home/me/.ssh/id_ed25519",
		"-command", "tmux attach",
		"-binary", "mosh",
	})
	require.NoError(t, err)

	c, err := st.GetConnectionByNickname("full")
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, "deploy", model.Deref(c.User))
	assert.Equal(t, "the works", model.Deref(c.Description))
	assert.Equal(t, "-p 2222", model.Deref(c.Args))
	assert.Equal(t, "tmux attach", model.Deref(c.Command))
	assert.Equal(t, "mosh", model.Deref(c.Binary))
}

func TestAddRequiresHost(t *testing.T) {
	st := openTestStore(t)

	_, err := Add(st, "nohost", []string{"-user", "me"})

	var missing *MissingFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "host", missing.Field)
}

func TestAddRejectsBadNickname(t *testing.T) {
	st := openTestStore(t)

	for _, nickname := range []string{"9lives", "two words", ""} {
		_, err := Add(st, nickname, []string{"-host", "h"})

		var bad *BadNicknameError
		assert.ErrorAs(t, err, &bad, "nickname %q", nickname)
	}
}

func TestAddDuplicateNickname(t *testing.T) {
	st := openTestStore(t)

	mustAdd(t, st, "dup", "-host", "h")

	_, err := Add(st, "dup", []string{"-host", "h2"})

	var taken *NicknameTakenError
	assert.ErrorAs(t, err, &taken)
}

func TestAddRequestedIDBestEffort(t *testing.T) {
	st := openTestStore(t)

	result, err := Add(st, "first", []string{"-host", "h", "-id", "7"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), result.ID)
	assert.False(t, result.IDAdjusted)

	// Collision: the request is dropped, the insert still happens.
	result, err = Add(st, "second", []string{"-host", "h2", "-id", "7"})
	require.NoError(t, err)
	assert.True(t, result.IDAdjusted)
	assert.Equal(t, int64(7), result.RequestedID)
	assert.NotEqual(t, int64(7), result.ID)

	c, err := st.GetConnectionByNickname("second")
	require.NoError(t, err)
	require.NotNil(t, c)
}

func TestAddUnrecognizedFlag(t *testing.T) {
	st := openTestStore(t)

	_, err := Add(st, "n", []string{"-port", "22"})

	var unrecognized *validate.UnrecognizedArgumentError
	assert.ErrorAs(t, err, &unrecognized)
}
