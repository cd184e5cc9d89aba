package core

import (
	"fmt"

	"github.com/inovacc/sshcm/internal/model"
	"github.com/inovacc/sshcm/internal/store"
)

// List returns every profile resolved through the settings layers, in
// store order.
func List(st store.Store) ([]model.Settings, error) {
	conns, err := st.ListConnections()
	if err != nil {
		return nil, err
	}

	return resolveAll(st, conns)
}

func resolveAll(st store.Store, conns []model.Connection) ([]model.Settings, error) {
	defaults, err := st.Defaults()
	if err != nil {
		return nil, err
	}

	envUser := envUser()

	settings := make([]model.Settings, len(conns))
	for i := range conns {
		settings[i] = merge(&conns[i], defaults, envUser)
	}

	return settings, nil
}

// FormatLine renders one resolved connection the way list and search
// print it.
func FormatLine(s model.Settings) string {
	return fmt.Sprintf("%d. %s:\t%s@%s\t(%s)", s.ID, s.Nickname, s.User, s.Host, s.Description)
}
