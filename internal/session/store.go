// Package session holds authentication state: the signed-in user, their
// access token, and the server-side session records behind the browser
// cookie. Session identity is orthogonal to tenant context and survives a
// process restart; tenant context never does.
package session

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/brandgate/brandgate/internal/tenant"
	"github.com/google/uuid"
	"go.etcd.io/bbolt"
)

// bucketName is the fixed namespace for durable session records.
const bucketName = "auth-storage"

// DefaultTTL bounds how long a session stays valid.
const DefaultTTL = 24 * time.Hour

// Session is an authenticated identity snapshot.
type Session struct {
	ID        string      `json:"id"`
	User      tenant.User `json:"user"`
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expiresAt"`
}

// Authenticated reports whether the session carries a signed-in identity.
func (s Session) Authenticated() bool {
	return s.ID != "" && s.Token != ""
}

// Store is a thread-safe session store with optional write-through
// persistence to a bbolt key-value file. Every mutation replaces whole
// records; readers never observe a partially-updated session.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]Session
	db       *bbolt.DB
	ttl      time.Duration
	now      func() time.Time
}

// NewMemory creates an in-memory session store with no persistence.
func NewMemory() *Store {
	return &Store{
		sessions: make(map[string]Session),
		ttl:      DefaultTTL,
		now:      time.Now,
	}
}

// Open creates a session store persisted at the given bbolt path. Durable
// records from a previous process are restored, dropping any that expired.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("session db path is required")
	}

	cleanPath := filepath.Clean(path)
	db, err := bbolt.Open(cleanPath, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open session db: %w", err)
	}

	store := NewMemory()
	store.db = db
	if err := store.restore(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close releases the underlying database, if any.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Create stores a new authenticated session and returns it.
func (s *Store) Create(user tenant.User, token string) (Session, error) {
	sess := Session{
		ID:        uuid.NewString(),
		User:      user,
		Token:     token,
		ExpiresAt: s.now().Add(s.ttl),
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	if err := s.persist(sess); err != nil {
		return Session{}, err
	}
	return sess, nil
}

// Get returns a session by ID, or false if missing or expired. Expired
// sessions are removed on read.
func (s *Store) Get(id string) (Session, bool) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return Session{}, false
	}
	if s.now().After(sess.ExpiresAt) {
		_ = s.Delete(id)
		return Session{}, false
	}
	return sess, true
}

// Delete removes a session and its durable record.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketName))
		if bucket == nil {
			return nil
		}
		return bucket.Delete([]byte(id))
	})
	if err != nil {
		return fmt.Errorf("delete session record: %w", err)
	}
	return nil
}

func (s *Store) persist(sess Session) error {
	if s.db == nil {
		return nil
	}
	encoded, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	err = s.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		if err != nil {
			return err
		}
		return bucket.Put([]byte(sess.ID), encoded)
	})
	if err != nil {
		return fmt.Errorf("persist session record: %w", err)
	}
	return nil
}

func (s *Store) restore() error {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		if err != nil {
			return err
		}
		var stale [][]byte
		cursor := bucket.Cursor()
		for key, value := cursor.First(); key != nil; key, value = cursor.Next() {
			var sess Session
			if err := json.Unmarshal(value, &sess); err != nil {
				stale = append(stale, append([]byte(nil), key...))
				continue
			}
			if s.now().After(sess.ExpiresAt) {
				stale = append(stale, append([]byte(nil), key...))
				continue
			}
			s.sessions[sess.ID] = sess
		}
		for _, key := range stale {
			if err := bucket.Delete(key); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("restore session records: %w", err)
	}
	return nil
}
