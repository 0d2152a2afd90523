package macverify

import (
	"crypto/rand"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// KeyRecord is a named MAC key bound to a registered algorithm. The key
// bytes are consumed into Mac instances at use; records exist so the
// service side can look keys up by name.
type KeyRecord struct {
	ID        string // UUID assigned at generation
	Name      string // caller-chosen lookup name, unique per store
	Algorithm string // registry name
	Key       []byte
	Created   time.Time
}

// Keystore abstracts key persistence. Put overwrites an existing record
// with the same name.
type Keystore interface {
	Put(rec KeyRecord) error
	Get(name string) (KeyRecord, bool, error)
	List() ([]KeyRecord, error)
	Delete(name string) error
}

// GenerateKey creates a fresh random key of the algorithm's fixed key
// size under the given name.
func GenerateKey(name, algorithm string) (KeyRecord, error) {
	alg, ok := Lookup(algorithm)
	if !ok {
		return KeyRecord{}, fmt.Errorf("generate key %q: unknown algorithm %q", name, algorithm)
	}
	key := make([]byte, alg.KeySize())
	if _, err := rand.Read(key); err != nil {
		return KeyRecord{}, fmt.Errorf("generate key %q: %w", name, err)
	}
	return KeyRecord{
		ID:        uuid.NewString(),
		Name:      name,
		Algorithm: algorithm,
		Key:       key,
		Created:   time.Now(),
	}, nil
}

// memoryKeystore keeps records in a map. Useful for tests and for
// servers whose keys are provisioned at startup.
type memoryKeystore struct {
	mu   sync.RWMutex
	recs map[string]KeyRecord
}

// NewMemoryKeystore creates an in-memory Keystore.
func NewMemoryKeystore() Keystore {
	return &memoryKeystore{recs: make(map[string]KeyRecord)}
}

func (s *memoryKeystore) Put(rec KeyRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := rec
	cp.Key = append([]byte(nil), rec.Key...)
	s.recs[rec.Name] = cp
	return nil
}

func (s *memoryKeystore) Get(name string) (KeyRecord, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.recs[name]
	if !ok {
		return KeyRecord{}, false, nil
	}
	cp := rec
	cp.Key = append([]byte(nil), rec.Key...)
	return cp, true, nil
}

func (s *memoryKeystore) List() ([]KeyRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]KeyRecord, 0, len(s.recs))
	for _, rec := range s.recs {
		cp := rec
		cp.Key = append([]byte(nil), rec.Key...)
		out = append(out, cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *memoryKeystore) Delete(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.recs, name)
	return nil
}
