package store

import (
	"errors"
	"strconv"

	"github.com/inovacc/sshcm/internal/application"
	"github.com/inovacc/sshcm/internal/model"
	"github.com/inovacc/sshcm/internal/params"
)

// Sentinel errors shared by all backends.
var (
	// ErrCannotOpen means the store file is unreachable or unwritable.
	ErrCannotOpen = errors.New("cannot open connection store")

	// ErrCorruptSchema means the stored schema version is missing or
	// not numeric.
	ErrCorruptSchema = errors.New("store schema version is missing or corrupt")

	// ErrSchemaTooNew means the store was written by a newer version
	// of the tool.
	ErrSchemaTooNew = errors.New("store schema is newer than this tool, please upgrade")

	// ErrIDTaken means an explicitly requested id reassignment
	// collides with an existing row.
	ErrIDTaken = errors.New("connection id already in use")

	// ErrNicknameTaken means an insert or update would duplicate a
	// nickname.
	ErrNicknameTaken = errors.New("nickname already in use")
)

// Store defines the persistence operations used by the command
// handlers. Two backends implement it: SQLite (default) and Bolt
// (build tag "bolt").
type Store interface {
	Close() error

	// SchemaVersion returns the stored schema version string.
	SchemaVersion() (string, error)

	// GetConnection returns the profile with the given id, or nil if
	// no such row exists.
	GetConnection(id int64) (*model.Connection, error)

	// GetConnectionByNickname returns the profile with the given
	// nickname, or nil if no such row exists.
	GetConnectionByNickname(nickname string) (*model.Connection, error)

	// ListConnections returns all profiles in store order.
	ListConnections() ([]model.Connection, error)

	// InsertConnection inserts c and returns the assigned id. A
	// positive c.ID is a best-effort request: when that id is already
	// taken the store assigns its own and returns false.
	InsertConnection(c *model.Connection) (int64, bool, error)

	// UpdateConnection applies changes to the row with the given id
	// as a single statement. Keys are column names gated by the
	// connection column allow-list; an "id" key requests a
	// reassignment and fails with ErrIDTaken when the new id exists.
	UpdateConnection(id int64, changes map[string]string) error

	// DeleteConnection removes the row with the given id. Deleting
	// zero rows is not an error.
	DeleteConnection(id int64) error

	// Search returns profiles matching every column/substring filter
	// (AND semantics). Filter keys are gated by the column allow-list.
	Search(filters map[string]string) ([]model.Connection, error)

	// SearchAny returns profiles whose nickname, host, user or
	// description contains term (OR semantics).
	SearchAny(term string) ([]model.Connection, error)

	// Defaults returns the stored default settings.
	Defaults() (model.Defaults, error)

	// SetDefaults upserts the given default values by key. An empty
	// value nulls the default; rows are never deleted.
	SetDefaults(values map[string]string) error
}

// connectionColumns is the allow-list of column names that may ever be
// interpolated into a statement. User input never reaches query text
// except through this set; values always travel as bind parameters.
var connectionColumns = map[string]bool{
	"id":          true,
	"nickname":    true,
	"host":        true,
	"user":        true,
	"description": true,
	"args":        true,
	"identity":    true,
	"command":     true,
	"binary":      true,
}

// AllowedColumn reports whether name is a known connection column.
func AllowedColumn(name string) bool {
	return connectionColumns[name]
}

// Open opens (or creates) the store at path and brings its schema to
// the current version.
func Open(path string) (Store, error) {
	return open(path)
}

// OpenDefault opens the store at the canonical resolved path.
func OpenDefault() (Store, error) {
	return Open(params.ResolveStorePath())
}

// compareVersions compares two numeric schema version strings,
// returning -1, 0 or 1. A non-numeric version yields ErrCorruptSchema.
func compareVersions(a, b string) (int, error) {
	av, err := strconv.ParseFloat(a, 64)
	if err != nil {
		return 0, ErrCorruptSchema
	}

	bv, err := strconv.ParseFloat(b, 64)
	if err != nil {
		return 0, ErrCorruptSchema
	}

	switch {
	case av < bv:
		return -1, nil
	case av > bv:
		return 1, nil
	default:
		return 0, nil
	}
}

// checkVersion validates a freshly read schema version against the
// built-in one. It returns true when migration steps are needed.
func checkVersion(stored string) (bool, error) {
	cmp, err := compareVersions(stored, application.SchemaVersion)
	if err != nil {
		return false, err
	}

	switch {
	case cmp > 0:
		return false, ErrSchemaTooNew
	case cmp < 0:
		return true, nil
	default:
		return false, nil
	}
}
