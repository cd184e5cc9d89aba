package core

import (
	"errors"

	"github.com/inovacc/sshcm/internal/store"
)

// Remove deletes the profile matching the identifier. A well-formed
// identifier that matches no row is not an error; a malformed one is.
func Remove(st store.Store, identifier string) error {
	c, err := ResolveIdentifier(st, identifier)
	if err != nil {
		var notFound *NotFoundError
		if errors.As(err, &notFound) {
			// Deleting zero rows is not a failure.
			return nil
		}

		return err
	}

	return st.DeleteConnection(c.ID)
}
