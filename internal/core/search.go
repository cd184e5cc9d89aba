package core

import (
	"github.com/inovacc/sshcm/internal/model"
	"github.com/inovacc/sshcm/internal/store"
	"github.com/inovacc/sshcm/internal/validate"
)

// Search runs either form of the search command: a single positional
// token matches any of nickname/host/user/description (OR), while
// flag/value pairs restrict each named column at once (AND). Results
// come back fully resolved, ready for list-style printing.
func Search(st store.Store, tokens []string) ([]model.Settings, error) {
	if len(tokens) == 0 {
		return nil, &MissingFieldError{Field: "query"}
	}

	var (
		conns []model.Connection
		err   error
	)

	if len(tokens) == 1 {
		conns, err = st.SearchAny(tokens[0])
	} else {
		var pairs []validate.Pair

		pairs, err = validate.ParseArgs(tokens, validate.ConnectionFlags)
		if err != nil {
			return nil, err
		}

		filters := make(map[string]string, len(pairs))
		for _, p := range pairs {
			filters[p.Flag] = p.Value
		}

		conns, err = st.Search(filters)
	}

	if err != nil {
		return nil, err
	}

	return resolveAll(st, conns)
}
