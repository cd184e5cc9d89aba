//go:build bolt

package store

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/inovacc/sshcm/internal/application"
	"github.com/inovacc/sshcm/internal/model"
	"go.etcd.io/bbolt"
)

const (
	boltBucketGlobal      = "global"      // key: setting -> value
	boltBucketDefaults    = "defaults"    // key: setting -> value (empty = null)
	boltBucketConnections = "connections" // key: 8-byte big-endian id -> Connection JSON
	boltBucketNicknames   = "nicknames"   // key: nickname -> 8-byte big-endian id
)

type boltStore struct {
	db *bbolt.DB
}

func open(path string) (Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCannotOpen, err)
	}

	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCannotOpen, err)
	}

	s := &boltStore{db: db}

	if err := s.ensureSchema(); err != nil {
		_ = db.Close()

		return nil, err
	}

	return s, nil
}

func (s *boltStore) Close() error {
	return s.db.Close()
}

func (s *boltStore) ensureSchema() error {
	fresh := false

	err := s.db.View(func(tx *bbolt.Tx) error {
		fresh = tx.Bucket([]byte(boltBucketGlobal)) == nil

		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCannotOpen, err)
	}

	if fresh {
		return s.createSchema()
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

func (s *boltStore) createSchema() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		global, err := tx.CreateBucketIfNotExists([]byte(boltBucketGlobal))
		if err != nil {
			return err
		}

		defaults, err := tx.CreateBucketIfNotExists([]byte(boltBucketDefaults))
		if err != nil {
			return err
		}

		if _, err := tx.CreateBucketIfNotExists([]byte(boltBucketConnections)); err != nil {
			return err
		}

		if _, err := tx.CreateBucketIfNotExists([]byte(boltBucketNicknames)); err != nil {
			return err
		}

		if err := global.Put([]byte("schema_version"), []byte(application.SchemaVersion)); err != nil {
			return err
		}

		for _, key := range model.DefaultKeys {
			if err := defaults.Put([]byte(key), nil); err != nil {
				return err
			}
		}

		return nil
	})
}

// boltMigration transforms exactly one schema version to the next
// inside a single update transaction.
type boltMigration struct {
	from, to string
	apply    func(tx *bbolt.Tx) error
}

var boltMigrations = []boltMigration{
	{
		from: "1.0",
		to:   "1.1",
		apply: func(tx *bbolt.Tx) error {
			// Connections gain the binary field implicitly through
			// JSON decoding; only the default row is new.
			defaults := tx.Bucket([]byte(boltBucketDefaults))
			if defaults.Get([]byte("binary")) == nil {
				return defaults.Put([]byte("binary"), nil)
			}

			return nil
		},
	},
}

func (s *boltStore) migrate(version string) error {
	for version != application.SchemaVersion {
		var step *boltMigration

		for i := range boltMigrations {
			if boltMigrations[i].from == version {
				step = &boltMigrations[i]
				break
			}
		}

		if step == nil {
			return fmt.Errorf("%w: no upgrade path from version %s", ErrCorruptSchema, version)
		}

		err := s.db.Update(func(tx *bbolt.Tx) error {
			if err := step.apply(tx); err != nil {
				return err
			}

			return tx.Bucket([]byte(boltBucketGlobal)).Put([]byte("schema_version"), []byte(step.to))
		})
		if err != nil {
			return fmt.Errorf("migrating %s to %s: %w", step.from, step.to, err)
		}

		version = step.to
	}

	return nil
}

func (s *boltStore) SchemaVersion() (string, error) {
	var version string

	err := s.db.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket([]byte(boltBucketGlobal)).Get([]byte("schema_version"))
		if v == nil {
			return ErrCorruptSchema
		}

		version = string(v)

		return nil
	})

	return version, err
}

func idKey(id int64) []byte {
	var key [8]byte

	binary.BigEndian.PutUint64(key[:], uint64(id))

	return key[:]
}

func (s *boltStore) GetConnection(id int64) (*model.Connection, error) {
	var c *model.Connection

	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket([]byte(boltBucketConnections)).Get(idKey(id))
		if data == nil {
			return nil
		}

		c = &model.Connection{}

		return json.Unmarshal(data, c)
	})

	return c, err
}

func (s *boltStore) GetConnectionByNickname(nickname string) (*model.Connection, error) {
	var c *model.Connection

	err := s.db.View(func(tx *bbolt.Tx) error {
		key := tx.Bucket([]byte(boltBucketNicknames)).Get([]byte(nickname))
		if key == nil {
			return nil
		}

		data := tx.Bucket([]byte(boltBucketConnections)).Get(key)
		if data == nil {
			return nil
		}

		c = &model.Connection{}

		return json.Unmarshal(data, c)
	})

	return c, err
}

func (s *boltStore) ListConnections() ([]model.Connection, error) {
	var conns []model.Connection

	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(boltBucketConnections)).ForEach(func(_, data []byte) error {
			var c model.Connection

			if err := json.Unmarshal(data, &c); err != nil {
				return err
			}

			conns = append(conns, c)

			return nil
		})
	})

	return conns, err
}

func (s *boltStore) InsertConnection(c *model.Connection) (int64, bool, error) {
	var (
		id            int64
		tookRequested bool
	)

	err := s.db.Update(func(tx *bbolt.Tx) error {
		conns := tx.Bucket([]byte(boltBucketConnections))
		nicks := tx.Bucket([]byte(boltBucketNicknames))

		if nicks.Get([]byte(c.Nickname)) != nil {
			return ErrNicknameTaken
		}

		if c.ID > 0 && conns.Get(idKey(c.ID)) == nil {
			id = c.ID
			tookRequested = true

			// Keep the auto-assign sequence ahead of explicit ids.
			if seq := tx.Bucket([]byte(boltBucketConnections)).Sequence(); seq < uint64(id) {
				if err := conns.SetSequence(uint64(id)); err != nil {
					return err
				}
			}
		} else {
			seq, err := conns.NextSequence()
			if err != nil {
				return err
			}

			id = int64(seq)
		}

		row := *c
		row.ID = id

		data, err := json.Marshal(&row)
		if err != nil {
			return err
		}

		if err := conns.Put(idKey(id), data); err != nil {
			return err
		}

		return nicks.Put([]byte(c.Nickname), idKey(id))
	})
	if err != nil {
		return 0, false, err
	}

	return id, tookRequested, nil
}

func (s *boltStore) UpdateConnection(id int64, changes map[string]string) error {
	if len(changes) == 0 {
		return nil
	}

	for col := range changes {
		if !AllowedColumn(col) {
			return fmt.Errorf("unknown column: %s", col)
		}
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		conns := tx.Bucket([]byte(boltBucketConnections))
		nicks := tx.Bucket([]byte(boltBucketNicknames))

		data := conns.Get(idKey(id))
		if data == nil {
			return nil
		}

		var c model.Connection

		if err := json.Unmarshal(data, &c); err != nil {
			return err
		}

		oldNickname, oldID := c.Nickname, c.ID

		for col, value := range changes {
			switch col {
			case "id":
				newID, err := strconv.ParseInt(value, 10, 64)
				if err != nil {
					return fmt.Errorf("invalid id: %s", value)
				}

				c.ID = newID
			case "nickname":
				c.Nickname = value
			case "host":
				c.Host = value
			default:
				*c.Optional(col) = model.Ptr(value)
			}
		}

		if c.ID != oldID && conns.Get(idKey(c.ID)) != nil {
			return ErrIDTaken
		}

		if c.Nickname != oldNickname && nicks.Get([]byte(c.Nickname)) != nil {
			return ErrNicknameTaken
		}

		out, err := json.Marshal(&c)
		if err != nil {
			return err
		}

		if c.ID != oldID {
			if err := conns.Delete(idKey(oldID)); err != nil {
				return err
			}
		}

		if c.Nickname != oldNickname {
			if err := nicks.Delete([]byte(oldNickname)); err != nil {
				return err
			}
		}

		if err := conns.Put(idKey(c.ID), out); err != nil {
			return err
		}

		return nicks.Put([]byte(c.Nickname), idKey(c.ID))
	})
}

func (s *boltStore) DeleteConnection(id int64) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		conns := tx.Bucket([]byte(boltBucketConnections))

		data := conns.Get(idKey(id))
		if data == nil {
			return nil
		}

		var c model.Connection

		if err := json.Unmarshal(data, &c); err != nil {
			return err
		}

		if err := tx.Bucket([]byte(boltBucketNicknames)).Delete([]byte(c.Nickname)); err != nil {
			return err
		}

		return conns.Delete(idKey(id))
	})
}

func (s *boltStore) Search(filters map[string]string) ([]model.Connection, error) {
	for col := range filters {
		if !AllowedColumn(col) {
			return nil, fmt.Errorf("unknown column: %s", col)
		}
	}

	conns, err := s.ListConnections()
	if err != nil {
		return nil, err
	}

	var matched []model.Connection

	for _, c := range conns {
		if matchesAll(&c, filters) {
			matched = append(matched, c)
		}
	}

	return matched, nil
}

func matchesAll(c *model.Connection, filters map[string]string) bool {
	for col, term := range filters {
		var value string

		switch col {
		case "id":
			value = strconv.FormatInt(c.ID, 10)
		case "nickname":
			value = c.Nickname
		case "host":
			value = c.Host
		default:
			value = model.Deref(*c.Optional(col))
		}

		if !strings.Contains(value, term) {
			return false
		}
	}

	return true
}

func (s *boltStore) SearchAny(term string) ([]model.Connection, error) {
	conns, err := s.ListConnections()
	if err != nil {
		return nil, err
	}

	var matched []model.Connection

	for _, c := range conns {
		if strings.Contains(c.Nickname, term) || strings.Contains(c.Host, term) ||
			strings.Contains(model.Deref(c.User), term) ||
			strings.Contains(model.Deref(c.Description), term) {
			matched = append(matched, c)
		}
	}

	return matched, nil
}

func (s *boltStore) Defaults() (model.Defaults, error) {
	var defaults model.Defaults

	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(boltBucketDefaults)).ForEach(func(k, v []byte) error {
			if len(v) == 0 {
				return nil
			}

			value := string(v)

			switch string(k) {
			case "user":
				defaults.User = &value
			case "args":
				defaults.Args = &value
			case "identity":
				defaults.Identity = &value
			case "command":
				defaults.Command = &value
			case "binary":
				defaults.Binary = &value
			}

			return nil
		})
	})

	return defaults, err
}

func (s *boltStore) SetDefaults(values map[string]string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		defaults := tx.Bucket([]byte(boltBucketDefaults))

		for key, value := range values {
			// Empty nulls the default; the row itself stays.
			var data []byte
			if value != "" {
				data = []byte(value)
			}

			if err := defaults.Put([]byte(key), data); err != nil {
				return err
			}
		}

		return nil
	})
}
