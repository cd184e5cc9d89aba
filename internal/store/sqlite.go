//go:build !bolt

package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/inovacc/sshcm/internal/application"
	"github.com/inovacc/sshcm/internal/model"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

type sqliteStore struct {
	db *sql.DB
}

const createSchemaSQL = `
CREATE TABLE IF NOT EXISTS global (
	setting TEXT UNIQUE NOT NULL,
	value   TEXT
);
CREATE TABLE IF NOT EXISTS defaults (
	setting TEXT UNIQUE NOT NULL,
	value   TEXT
);
CREATE TABLE IF NOT EXISTS connections (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	nickname    TEXT UNIQUE NOT NULL,
	host        TEXT NOT NULL,
	user        TEXT,
	description TEXT,
	args        TEXT,
	identity    TEXT,
	command     TEXT,
	binary      TEXT
);`

// migration transforms exactly one schema version to the next inside a
// single transaction.
type migration struct {
	from, to string
	apply    func(tx *sql.Tx) error
}

var migrations = []migration{
	{
		from: "1.0",
		to:   "1.1",
		apply: func(tx *sql.Tx) error {
			if _, err := tx.Exec(`ALTER TABLE connections ADD COLUMN binary TEXT`); err != nil {
				return err
			}

			_, err := tx.Exec(`INSERT OR IGNORE INTO defaults (setting, value) VALUES ('binary', NULL)`)

			return err
		},
	},
}

func open(path string) (Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCannotOpen, err)
	}

	db, err := sql.Open("sqlite", path+"?_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCannotOpen, err)
	}

	// SQLite doesn't handle multiple writers well
	db.SetMaxOpenConns(1)

	s := &sqliteStore{db: db}

	if err := s.ensureSchema(); err != nil {
		_ = db.Close()

		return nil, err
	}

	return s, nil
}

func (s *sqliteStore) Close() error {
	return s.db.Close()
}

// ensureSchema creates a fresh schema or migrates an existing one to
// the current version.
func (s *sqliteStore) ensureSchema() error {
	var name string

	err := s.db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name='global'`).Scan(&name)
	if err == sql.ErrNoRows {
		return s.createSchema()
	}

	if err != nil {
		return fmt.Errorf("%w: %v", ErrCannotOpen, err)
	}

	version, err := s.SchemaVersion()
	if err != nil {
		return err
	}

	needsMigration, err := checkVersion(version)
	if err != nil {
		return err
	}

	if !needsMigration {
		return nil
	}

	return s.migrate(version)
}

func (s *sqliteStore) createSchema() error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCannotOpen, err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(createSchemaSQL); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}

	if _, err := tx.Exec(`INSERT INTO global (setting, value) VALUES ('schema_version', ?)`,
		application.SchemaVersion); err != nil {
		return fmt.Errorf("writing schema version: %w", err)
	}

	for _, key := range model.DefaultKeys {
		if _, err := tx.Exec(`INSERT INTO defaults (setting, value) VALUES (?, NULL)`, key); err != nil {
			return fmt.Errorf("seeding default %s: %w", key, err)
		}
	}

	return tx.Commit()
}

// migrate applies the ordered migration chain from the stored version
// up to the built-in one, one transaction per step.
func (s *sqliteStore) migrate(version string) error {
	for version != application.SchemaVersion {
		step, ok := findMigration(version)
		if !ok {
			return fmt.Errorf("%w: no upgrade path from version %s", ErrCorruptSchema, version)
		}

		if err := s.runMigration(step); err != nil {
			return fmt.Errorf("migrating %s to %s: %w", step.from, step.to, err)
		}

		version = step.to
	}

	return nil
}

func findMigration(from string) (migration, bool) {
	for _, m := range migrations {
		if m.from == from {
			return m, true
		}
	}

	return migration{}, false
}

func (s *sqliteStore) runMigration(m migration) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if err := m.apply(tx); err != nil {
		return err
	}

	if _, err := tx.Exec(`UPDATE global SET value = ? WHERE setting = 'schema_version'`, m.to); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *sqliteStore) SchemaVersion() (string, error) {
	var value sql.NullString

	err := s.db.QueryRow(`SELECT value FROM global WHERE setting = 'schema_version'`).Scan(&value)
	if err == sql.ErrNoRows || (err == nil && !value.Valid) {
		return "", ErrCorruptSchema
	}

	if err != nil {
		return "", fmt.Errorf("reading schema version: %w", err)
	}

	return value.String, nil
}

const connectionSelect = `SELECT id, nickname, host, user, description, args, identity, command, binary FROM connections`

func scanConnection(row interface{ Scan(...any) error }) (*model.Connection, error) {
	var (
		c                                          model.Connection
		user, desc, args, identity, command, binic sql.NullString
	)

	if err := row.Scan(&c.ID, &c.Nickname, &c.Host, &user, &desc, &args, &identity, &command, &binic); err != nil {
		return nil, err
	}

	fromNull := func(v sql.NullString) *string {
		if !v.Valid {
			return nil
		}
		s := v.String

		return &s
	}

	c.User = fromNull(user)
	c.Description = fromNull(desc)
	c.Args = fromNull(args)
	c.Identity = fromNull(identity)
	c.Command = fromNull(command)
	c.Binary = fromNull(binic)

	return &c, nil
}

func (s *sqliteStore) GetConnection(id int64) (*model.Connection, error) {
	c, err := scanConnection(s.db.QueryRow(connectionSelect+` WHERE id = ?`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}

	return c, err
}

func (s *sqliteStore) GetConnectionByNickname(nickname string) (*model.Connection, error) {
	c, err := scanConnection(s.db.QueryRow(connectionSelect+` WHERE nickname = ?`, nickname))
	if err == sql.ErrNoRows {
		return nil, nil
	}

	return c, err
}

func (s *sqliteStore) ListConnections() ([]model.Connection, error) {
	return s.queryConnections(connectionSelect+` ORDER BY id`, nil)
}

func (s *sqliteStore) queryConnections(query string, params []any) ([]model.Connection, error) {
	rows, err := s.db.Query(query, params...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var conns []model.Connection

	for rows.Next() {
		c, err := scanConnection(rows)
		if err != nil {
			return nil, err
		}

		conns = append(conns, *c)
	}

	return conns, rows.Err()
}

func (s *sqliteStore) InsertConnection(c *model.Connection) (int64, bool, error) {
	if existing, err := s.GetConnectionByNickname(c.Nickname); err != nil {
		return 0, false, err
	} else if existing != nil {
		return 0, false, ErrNicknameTaken
	}

	tookRequested := false

	if c.ID > 0 {
		existing, err := s.GetConnection(c.ID)
		if err != nil {
			return 0, false, err
		}

		tookRequested = existing == nil
	}

	var (
		res sql.Result
		err error
	)

	if tookRequested {
		res, err = s.db.Exec(
			`INSERT INTO connections (id, nickname, host, user, description, args, identity, command, binary)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			c.ID, c.Nickname, c.Host, c.User, c.Description, c.Args, c.Identity, c.Command, c.Binary)
	} else {
		res, err = s.db.Exec(
			`INSERT INTO connections (nickname, host, user, description, args, identity, command, binary)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			c.Nickname, c.Host, c.User, c.Description, c.Args, c.Identity, c.Command, c.Binary)
	}

	if err != nil {
		return 0, false, fmt.Errorf("inserting connection: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, false, err
	}

	return id, tookRequested, nil
}

func (s *sqliteStore) UpdateConnection(id int64, changes map[string]string) error {
	if len(changes) == 0 {
		return nil
	}

	// Deterministic column order keeps the statement stable.
	columns := make([]string, 0, len(changes))
	for col := range changes {
		if !AllowedColumn(col) {
			return fmt.Errorf("unknown column: %s", col)
		}

		columns = append(columns, col)
	}
	sort.Strings(columns)

	var (
		assignments []string
		params      []any
	)

	for _, col := range columns {
		value := changes[col]

		switch col {
		case "id":
			// Reassignment was validated by the caller; bind as-is.
			assignments = append(assignments, "id = ?")
			params = append(params, value)
		case "nickname", "host":
			assignments = append(assignments, col+" = ?")
			params = append(params, value)
		default:
			// Optional columns store empty as NULL so they keep
			// inheriting at resolution time.
			assignments = append(assignments, col+" = NULLIF(?, '')")
			params = append(params, value)
		}
	}

	params = append(params, id)

	_, err := s.db.Exec(
		fmt.Sprintf(`UPDATE connections SET %s WHERE id = ?`, strings.Join(assignments, ", ")),
		params...)
	if err != nil {
		return fmt.Errorf("updating connection %d: %w", id, err)
	}

	return nil
}

func (s *sqliteStore) DeleteConnection(id int64) error {
	_, err := s.db.Exec(`DELETE FROM connections WHERE id = ?`, id)

	return err
}

func (s *sqliteStore) Search(filters map[string]string) ([]model.Connection, error) {
	columns := make([]string, 0, len(filters))
	for col := range filters {
		if !AllowedColumn(col) {
			return nil, fmt.Errorf("unknown column: %s", col)
		}

		columns = append(columns, col)
	}
	sort.Strings(columns)

	var (
		clauses []string
		params  []any
	)

	for _, col := range columns {
		clauses = append(clauses, fmt.Sprintf("COALESCE(CAST(%s AS TEXT), '') LIKE ?", col))
		params = append(params, "%"+filters[col]+"%")
	}

	query := connectionSelect
	if len(clauses) > 0 {
		query += ` WHERE ` + strings.Join(clauses, " AND ")
	}

	return s.queryConnections(query+` ORDER BY id`, params)
}

func (s *sqliteStore) SearchAny(term string) ([]model.Connection, error) {
	pattern := "%" + term + "%"

	return s.queryConnections(
		connectionSelect+` WHERE nickname LIKE ? OR host LIKE ?
			OR COALESCE(user, '') LIKE ? OR COALESCE(description, '') LIKE ? ORDER BY id`,
		[]any{pattern, pattern, pattern, pattern})
}

func (s *sqliteStore) Defaults() (model.Defaults, error) {
	rows, err := s.db.Query(`SELECT setting, value FROM defaults`)
	if err != nil {
		return model.Defaults{}, err
	}
	defer func() { _ = rows.Close() }()

	var defaults model.Defaults

	for rows.Next() {
		var (
			setting string
			value   sql.NullString
		)

		if err := rows.Scan(&setting, &value); err != nil {
			return model.Defaults{}, err
		}

		if !value.Valid {
			continue
		}

		v := value.String

		switch setting {
		case "user":
			defaults.User = &v
		case "args":
			defaults.Args = &v
		case "identity":
			defaults.Identity = &v
		case "command":
			defaults.Command = &v
		case "binary":
			defaults.Binary = &v
		}
	}

	return defaults, rows.Err()
}

func (s *sqliteStore) SetDefaults(values map[string]string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for key, value := range values {
		if _, err := tx.Exec(
			`INSERT INTO defaults (setting, value) VALUES (?, NULLIF(?, ''))
			 ON CONFLICT(setting) DO UPDATE SET value = NULLIF(excluded.value, '')`,
			key, value); err != nil {
			return fmt.Errorf("setting default %s: %w", key, err)
		}
	}

	return tx.Commit()
}
