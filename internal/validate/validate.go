// Package validate classifies command-line tokens and checks the
// flag/value argument grammar shared by the mutating subcommands.
package validate

import (
	"fmt"
	"strconv"
	"strings"
)

// Pair is one parsed flag/value argument.
type Pair struct {
	Flag  string
	Value string
}

// Flag sets recognized per command. Flag names double as store column
// names, so these sets also gate which columns a query may touch.
var (
	DefFlags        = newFlagSet("user", "args", "identity", "command", "binary")
	ConnectionFlags = newFlagSet("id", "nickname", "host", "user", "description", "args", "identity", "command", "binary")
)

// FlagSet is the set of flag names a command accepts.
type FlagSet map[string]bool

func newFlagSet(names ...string) FlagSet {
	set := make(FlagSet, len(names))
	for _, n := range names {
		set[n] = true
	}

	return set
}

// Allows reports whether name is a member of the set.
func (f FlagSet) Allows(name string) bool {
	return f[name]
}

// OddArgumentCountError reports an argument list that does not
// alternate flag and value.
type OddArgumentCountError struct {
	Count int
}

func (e *OddArgumentCountError) Error() string {
	return fmt.Sprintf("arguments must come in flag/value pairs, got %d tokens", e.Count)
}

// UnrecognizedArgumentError reports a flag name outside the command's
// allowed set.
type UnrecognizedArgumentError struct {
	Name string
}

func (e *UnrecognizedArgumentError) Error() string {
	return fmt.Sprintf("unrecognized argument: -%s", e.Name)
}

// IsNickname reports whether s is syntactically a nickname: it must
// not start with a digit and must not contain a space or tab, so a
// nickname can always be told apart from a numeric id. This says
// nothing about existence.
func IsNickname(s string) bool {
	if s == "" {
		return false
	}

	if s[0] >= '0' && s[0] <= '9' {
		return false
	}

	return !strings.ContainsAny(s, " \t")
}

// IsID reports whether s parses as a strictly positive base-10
// integer.
func IsID(s string) bool {
	n, err := strconv.ParseInt(s, 10, 64)

	return err == nil && n > 0
}

// ParseArgs checks tokens against the flag/value grammar and the
// allowed flag set, returning the parsed pairs in input order.
func ParseArgs(tokens []string, allowed FlagSet) ([]Pair, error) {
	if len(tokens)%2 != 0 {
		return nil, &OddArgumentCountError{Count: len(tokens)}
	}

	pairs := make([]Pair, 0, len(tokens)/2)

	for i := 0; i < len(tokens); i += 2 {
		name := strings.TrimLeft(tokens[i], "-")
		if name == tokens[i] || !allowed.Allows(name) {
			return nil, &UnrecognizedArgumentError{Name: name}
		}

		pairs = append(pairs, Pair{Flag: name, Value: tokens[i+1]})
	}

	return pairs, nil
}
