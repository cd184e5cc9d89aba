package core

import "fmt"

// NotFoundError indicates no profile matches the given identifier.
type NotFoundError struct {
	Identifier string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no connection matches %q", e.Identifier)
}

// InvalidIdentifierError indicates a token that is neither id-shaped
// nor nickname-shaped.
type InvalidIdentifierError struct {
	Token string
}

func (e *InvalidIdentifierError) Error() string {
	return fmt.Sprintf("%q is neither an id nor a valid nickname", e.Token)
}

// IDCollisionError indicates a user-requested id reassignment onto an
// id that already exists.
type IDCollisionError struct {
	ID int64
}

func (e *IDCollisionError) Error() string {
	return fmt.Sprintf("id %d is already in use", e.ID)
}

// NicknameTakenError indicates an insert or rename would duplicate an
// existing nickname.
type NicknameTakenError struct {
	Nickname string
}

func (e *NicknameTakenError) Error() string {
	return fmt.Sprintf("nickname %q already exists", e.Nickname)
}

// MissingFieldError indicates a required flag was not supplied.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}

// BadNicknameError indicates a nickname that fails the syntactic
// check.
type BadNicknameError struct {
	Nickname string
}

func (e *BadNicknameError) Error() string {
	return fmt.Sprintf("invalid nickname %q: must not start with a digit or contain whitespace", e.Nickname)
}
