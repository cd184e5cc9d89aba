package core

import (
	"os"
	"strconv"

	"github.com/inovacc/sshcm/internal/model"
	"github.com/inovacc/sshcm/internal/store"
)

// DefaultBinary is the secure-shell client used when neither a stored
// default nor the profile names one.
const DefaultBinary = "ssh"

var builtinBinary = DefaultBinary

// SetBuiltinBinary replaces the hard-coded client binary, used for the
// optional ini override. An empty value keeps the default.
func SetBuiltinBinary(binary string) {
	if binary != "" {
		builtinBinary = binary
	}
}

// BuiltinDefaults returns the lowest-precedence settings layer.
func BuiltinDefaults() model.Settings {
	return model.Settings{Binary: builtinBinary}
}

// Resolve computes the effective configuration for the connection with
// the given id by merging, in increasing precedence: built-in
// defaults, the environment's USER, the stored non-null defaults, and
// the profile's own non-empty columns. It performs reads only.
func Resolve(st store.Store, id int64) (model.Settings, error) {
	c, err := st.GetConnection(id)
	if err != nil {
		return model.Settings{}, err
	}

	if c == nil {
		return model.Settings{}, &NotFoundError{Identifier: strconv.FormatInt(id, 10)}
	}

	defaults, err := st.Defaults()
	if err != nil {
		return model.Settings{}, err
	}

	return merge(c, defaults, envUser()), nil
}

func envUser() string {
	return os.Getenv("USER")
}

// merge is the pure layering step; precedence grows with each block.
func merge(c *model.Connection, defaults model.Defaults, envUser string) model.Settings {
	settings := BuiltinDefaults()

	if envUser != "" {
		settings.User = envUser
	}

	defaults.Apply(&settings)
	settings.ApplyConnection(c)

	return settings
}
