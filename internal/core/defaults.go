package core

import (
	"github.com/inovacc/sshcm/internal/model"
	"github.com/inovacc/sshcm/internal/store"
	"github.com/inovacc/sshcm/internal/validate"
)

// DefaultEntry is one line of the defaults listing.
type DefaultEntry struct {
	Key    string
	Value  string
	Stored bool // false for hard-coded defaults not sourced from the store
}

// ShowDefaults returns every stored default row plus the hard-coded
// defaults that back them.
func ShowDefaults(st store.Store) ([]DefaultEntry, error) {
	defaults, err := st.Defaults()
	if err != nil {
		return nil, err
	}

	builtin := BuiltinDefaults()

	entries := make([]DefaultEntry, 0, len(model.DefaultKeys))

	for _, key := range model.DefaultKeys {
		if v := defaults.Value(key); v != nil {
			entries = append(entries, DefaultEntry{Key: key, Value: *v, Stored: true})
			continue
		}

		value := ""
		if key == "binary" {
			value = builtin.Binary
		}

		entries = append(entries, DefaultEntry{Key: key, Value: value})
	}

	return entries, nil
}

// SetDefaults validates the flag/value pairs against the def grammar
// and upserts them. An empty value nulls the default.
func SetDefaults(st store.Store, tokens []string) error {
	pairs, err := validate.ParseArgs(tokens, validate.DefFlags)
	if err != nil {
		return err
	}

	if len(pairs) == 0 {
		return &MissingFieldError{Field: "at least one flag"}
	}

	values := make(map[string]string, len(pairs))
	for _, p := range pairs {
		values[p.Flag] = p.Value
	}

	return st.SetDefaults(values)
}
