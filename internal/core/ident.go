package core

import (
	"strconv"

	"github.com/inovacc/sshcm/internal/model"
	"github.com/inovacc/sshcm/internal/store"
	"github.com/inovacc/sshcm/internal/validate"
)

// ResolveIdentifier maps a command-line token to a stored profile.
// Id-shaped tokens are tried as ids first, nickname-shaped tokens as
// nicknames; anything else is an InvalidIdentifierError, and a token
// that matches no row is a NotFoundError.
func ResolveIdentifier(st store.Store, token string) (*model.Connection, error) {
	switch {
	case validate.IsID(token):
		id, _ := strconv.ParseInt(token, 10, 64)

		c, err := st.GetConnection(id)
		if err != nil {
			return nil, err
		}

		if c == nil {
			return nil, &NotFoundError{Identifier: token}
		}

		return c, nil

	case validate.IsNickname(token):
		c, err := st.GetConnectionByNickname(token)
		if err != nil {
			return nil, err
		}

		if c == nil {
			return nil, &NotFoundError{Identifier: token}
		}

		return c, nil

	default:
		return nil, &InvalidIdentifierError{Token: token}
	}
}
