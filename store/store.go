// Package store persists the hourclock state in a local BoltDB file
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	bolt "go.etcd.io/bbolt"
	berrors "go.etcd.io/bbolt/errors"

	"github.com/ayoisaiah/hourclock/internal/apperr"
	"github.com/ayoisaiah/hourclock/internal/models"
	"github.com/ayoisaiah/hourclock/internal/segment"
)

const (
	bucketName = "hourclock"
	// StateKey is the namespaced key holding the serialized State
	StateKey   = "radio-clock-storage"
	corruptKey = StateKey + ".corrupt"
)

var (
	errAlreadyRunning = errors.New(
		"is hourclock already running? Only one instance can use the clock database at a time",
	)

	errCorruptState = &apperr.Error{
		Message: "stored clock data is unreadable",
	}

	errUnsupportedVersion = &apperr.Error{
		Message: "stored clock data uses schema version %d, but this build only understands up to version %d",
	}
)

// ErrCorruptState is returned by Decode for payloads that are not valid
// clock state.
var ErrCorruptState = errCorruptState

// ErrUnsupportedVersion is returned by Decode for payloads written by a newer
// schema.
var ErrUnsupportedVersion = errUnsupportedVersion

// Client is a BoltDB database client.
type Client struct {
	*bolt.DB
	log *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used to report recovered storage problems.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		c.log = l
	}
}

// NewState returns the state used when nothing has been stored yet.
func NewState() *models.State {
	return &models.State{
		Version:     models.SchemaVersion,
		SavedClocks: []models.SavedClock{},
		Segments:    segment.Defaults(nil),
	}
}

// Load reads the persisted state. Missing data produces a fresh state.
// Unreadable data, or data written by a newer schema, is set aside under a
// separate key and also replaced with a fresh state. Older schemas are
// migrated and written back.
func (c *Client) Load() (*models.State, error) {
	var state *models.State

	err := c.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketName))

		raw := b.Get([]byte(StateKey))
		if len(raw) == 0 {
			state = NewState()
			return nil
		}

		version, err := peekVersion(raw)
		if err == nil && version > models.SchemaVersion {
			err = errUnsupportedVersion.Fmt(version, models.SchemaVersion)
		}

		if err == nil {
			state, err = Decode(raw)
		}

		if err != nil {
			c.log.Warn(
				"discarding unreadable clock state",
				slog.String("error", err.Error()),
				slog.String("backup_key", corruptKey),
			)

			state = NewState()

			return b.Put([]byte(corruptKey), copyBytes(raw))
		}

		if version < models.SchemaVersion {
			c.log.Info(
				"migrated clock state",
				slog.Int("from_version", version),
				slog.Int("to_version", models.SchemaVersion),
			)

			return putState(b, state)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return state, nil
}

// Save replaces the persisted state in a single transaction.
func (c *Client) Save(state *models.State) error {
	return c.Update(func(tx *bolt.Tx) error {
		return putState(tx.Bucket([]byte(bucketName)), state)
	})
}

func putState(b *bolt.Bucket, state *models.State) error {
	s := *state
	s.Version = models.SchemaVersion

	if s.SavedClocks == nil {
		s.SavedClocks = []models.SavedClock{}
	}

	if s.Segments == nil {
		s.Segments = []models.Segment{}
	}

	value, err := json.Marshal(&s)
	if err != nil {
		return err
	}

	return b.Put([]byte(StateKey), value)
}

func copyBytes(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)

	return out
}

// open creates or opens a database and locks it.
func openDB(pathToDB string) (*bolt.DB, error) {
	var fileMode fs.FileMode = 0o600

	db, err := bolt.Open(
		pathToDB,
		fileMode,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		if errors.Is(err, berrors.ErrTimeout) {
			return nil, errAlreadyRunning
		}

		return nil, err
	}

	return db, nil
}

// NewClient returns a wrapper to a BoltDB connection.
func NewClient(dbPath string, opts ...Option) (*Client, error) {
	db, err := openDB(dbPath)
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err = tx.CreateBucketIfNotExists([]byte(bucketName))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("preparing clock database: %w", err)
	}

	c := &Client{
		DB:  db,
		log: slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

var errMissingVersion = errors.New("missing version field")
