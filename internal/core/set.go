package core

import (
	"errors"
	"strconv"

	"github.com/inovacc/sshcm/internal/store"
	"github.com/inovacc/sshcm/internal/validate"
)

// Set applies flag/value changes to an existing profile as a single
// update. Unlike add, a requested id reassignment onto a taken id is a
// hard failure: the user asked for an identity change explicitly.
func Set(st store.Store, identifier string, tokens []string) error {
	c, err := ResolveIdentifier(st, identifier)
	if err != nil {
		return err
	}

	pairs, err := validate.ParseArgs(tokens, validate.ConnectionFlags)
	if err != nil {
		return err
	}

	if len(pairs) == 0 {
		return &MissingFieldError{Field: "at least one flag"}
	}

	changes := make(map[string]string, len(pairs))

	for _, p := range pairs {
		switch p.Flag {
		case "id":
			newID, err := strconv.ParseInt(p.Value, 10, 64)
			if err != nil || newID <= 0 {
				return &InvalidIdentifierError{Token: p.Value}
			}

			if newID != c.ID {
				if taken, err := st.GetConnection(newID); err != nil {
					return err
				} else if taken != nil {
					return &IDCollisionError{ID: newID}
				}
			}
		case "nickname":
			if !validate.IsNickname(p.Value) {
				return &BadNicknameError{Nickname: p.Value}
			}

			if p.Value != c.Nickname {
				if taken, err := st.GetConnectionByNickname(p.Value); err != nil {
					return err
				} else if taken != nil {
					return &NicknameTakenError{Nickname: p.Value}
				}
			}
		case "host":
			if p.Value == "" {
				return &MissingFieldError{Field: "host"}
			}
		}

		changes[p.Flag] = p.Value
	}

	if err := st.UpdateConnection(c.ID, changes); err != nil {
		if errors.Is(err, store.ErrIDTaken) {
			id, _ := strconv.ParseInt(changes["id"], 10, 64)

			return &IDCollisionError{ID: id}
		}

		return err
	}

	return nil
}
