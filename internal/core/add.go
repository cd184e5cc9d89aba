package core

import (
	"strconv"

	"github.com/inovacc/sshcm/internal/model"
	"github.com/inovacc/sshcm/internal/store"
	"github.com/inovacc/sshcm/internal/validate"
)

// AddResult reports the outcome of an insert, including whether a
// requested id had to be dropped.
type AddResult struct {
	ID          int64
	RequestedID int64
	IDAdjusted  bool
}

// Add validates and inserts a new profile. The nickname comes as a
// positional token; pairs carry the remaining flag/value arguments. A
// requested id that is already taken is dropped and the store assigns
// its own (reported through AddResult, not as an error).
func Add(st store.Store, nickname string, tokens []string) (AddResult, error) {
	if !validate.IsNickname(nickname) {
		return AddResult{}, &BadNicknameError{Nickname: nickname}
	}

	pairs, err := validate.ParseArgs(tokens, validate.ConnectionFlags)
	if err != nil {
		return AddResult{}, err
	}

	if existing, err := st.GetConnectionByNickname(nickname); err != nil {
		return AddResult{}, err
	} else if existing != nil {
		return AddResult{}, &NicknameTakenError{Nickname: nickname}
	}

	c := model.Connection{Nickname: nickname}

	var requestedID int64

	for _, p := range pairs {
		switch p.Flag {
		case "nickname":
			// The positional nickname wins; a -nickname pair on add
			// is redundant but harmless when it agrees.
			if p.Value != nickname {
				return AddResult{}, &BadNicknameError{Nickname: p.Value}
			}
		case "id":
			id, err := strconv.ParseInt(p.Value, 10, 64)
			if err != nil || id <= 0 {
				return AddResult{}, &InvalidIdentifierError{Token: p.Value}
			}

			requestedID = id
		case "host":
			c.Host = p.Value
		default:
			*c.Optional(p.Flag) = model.Ptr(p.Value)
		}
	}

	if c.Host == "" {
		return AddResult{}, &MissingFieldError{Field: "host"}
	}

	c.ID = requestedID

	id, tookRequested, err := st.InsertConnection(&c)
	if err != nil {
		return AddResult{}, err
	}

	return AddResult{
		ID:          id,
		RequestedID: requestedID,
		IDAdjusted:  requestedID > 0 && !tookRequested,
	}, nil
}
