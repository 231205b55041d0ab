package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/FlashpointProject/CommunityWebsite/internal/domain"
	bolt "go.etcd.io/bbolt"
)

var bucketPreferences = []byte("preferences")

// PreferenceStore implements domain.PreferenceStore using BoltDB.
type PreferenceStore struct {
	db *bolt.DB
	mu sync.RWMutex // Protects memory cache

	// In-memory cache for hot-path reads (promoted on access)
	cache map[string][]byte
}

// NewPreferenceStore opens the preference database under dataDir.
// An empty dataDir keeps preferences in memory for the process lifetime.
func NewPreferenceStore(dataDir string) (*PreferenceStore, error) {
	if dataDir == "" {
		return &PreferenceStore{cache: make(map[string][]byte)}, nil
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, err
	}

	dbPath := filepath.Join(dataDir, "fpcommunity.db")
	db, err := bolt.Open(dbPath, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketPreferences)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &PreferenceStore{db: db, cache: make(map[string][]byte)}, nil
}

func (s *PreferenceStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// === Generic helpers ===

func (s *PreferenceStore) get(key string, dest interface{}) bool {
	s.mu.RLock()
	if data, ok := s.cache[key]; ok {
		s.mu.RUnlock()
		return json.Unmarshal(data, dest) == nil
	}
	s.mu.RUnlock()

	if s.db == nil {
		return false
	}

	var data []byte
	s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketPreferences)
		if b == nil {
			return nil
		}
		if v := b.Get([]byte(key)); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})

	if data == nil {
		return false
	}

	// Promote to memory cache
	s.mu.Lock()
	s.cache[key] = data
	s.mu.Unlock()

	return json.Unmarshal(data, dest) == nil
}

func (s *PreferenceStore) set(key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.cache[key] = data
	s.mu.Unlock()

	if s.db == nil {
		return nil // Memory-only mode
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketPreferences).Put([]byte(key), data)
	})
}

// === Preferences ===

// Bool returns a stored boolean; ok is false if the key was never written
func (s *PreferenceStore) Bool(key string) (bool, bool) {
	var v bool
	ok := s.get(key, &v)
	return v, ok
}

// SetBool stores a boolean preference
func (s *PreferenceStore) SetBool(key string, value bool) error {
	return s.set(key, value)
}

// Delete forgets a preference
func (s *PreferenceStore) Delete(key string) error {
	s.mu.Lock()
	delete(s.cache, key)
	s.mu.Unlock()

	if s.db == nil {
		return nil
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketPreferences)
		if b == nil {
			return nil
		}
		return b.Delete([]byte(key))
	})
}

// Keys lists every stored preference key
func (s *PreferenceStore) Keys() []string {
	seen := make(map[string]bool)
	s.mu.RLock()
	for k := range s.cache {
		seen[k] = true
	}
	s.mu.RUnlock()

	if s.db != nil {
		s.db.View(func(tx *bolt.Tx) error {
			b := tx.Bucket(bucketPreferences)
			if b == nil {
				return nil
			}
			return b.ForEach(func(k, _ []byte) error {
				seen[string(k)] = true
				return nil
			})
		})
	}

	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	return keys
}

var _ domain.PreferenceStore = (*PreferenceStore)(nil)
