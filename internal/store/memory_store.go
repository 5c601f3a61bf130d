package store

import (
	"fmt"
	"sync"

	"mqstore/internal/domain"
)

// MemoryStore is the volatile reference backend. Records live in process
// memory, namespaced per identity pair like FileStore namespaces per
// directory, so data survives Close/Open cycles on the same instance but
// not a restart.
type MemoryStore struct {
	mu      sync.Mutex
	session string // active namespace; empty until Open succeeds
	records map[string]map[domain.Key][]byte
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]map[domain.Key][]byte)}
}

// Open binds the store to the identity pair's namespace.
func (s *MemoryStore) Open(clientID domain.ClientID, serverURI domain.ServerURI) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if clientID == "" || serverURI == "" {
		s.session = ""
		return fmt.Errorf("%w: open: empty session identity", domain.ErrPersistence)
	}
	session := clientID.String() + "\x00" + serverURI.String()
	if s.records[session] == nil {
		s.records[session] = make(map[domain.Key][]byte)
	}
	s.session = session
	return nil
}

// Close drops the namespace binding without discarding records.
func (s *MemoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = ""
	return nil
}

// Clear deletes every record in the active namespace.
func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == "" {
		return domain.ErrNotOpen
	}
	s.records[s.session] = make(map[domain.Key][]byte)
	return nil
}

// ContainsKey reports whether a record is stored under key.
func (s *MemoryStore) ContainsKey(key domain.Key) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == "" {
		return false, domain.ErrNotOpen
	}
	_, ok := s.records[s.session][key]
	return ok, nil
}

// Keys returns a snapshot of all stored keys.
func (s *MemoryStore) Keys() ([]domain.Key, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == "" {
		return nil, domain.ErrNotOpen
	}
	keys := make([]domain.Key, 0, len(s.records[s.session]))
	for k := range s.records[s.session] {
		keys = append(keys, k)
	}
	return keys, nil
}

// Put stores a copy of the concatenated buffers under key.
func (s *MemoryStore) Put(key domain.Key, bufs [][]byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == "" {
		return domain.ErrNotOpen
	}
	if len(bufs) == 0 {
		return fmt.Errorf("%w: put %s", domain.ErrEmptyRecord, key)
	}
	var n int
	for _, b := range bufs {
		n += len(b)
	}
	rec := make([]byte, 0, n)
	for _, b := range bufs {
		rec = append(rec, b...)
	}
	s.records[s.session][key] = rec
	return nil
}

// Get returns a copy of the record under key.
func (s *MemoryStore) Get(key domain.Key) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == "" {
		return nil, domain.ErrNotOpen
	}
	rec, ok := s.records[s.session][key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, key)
	}
	return append([]byte(nil), rec...), nil
}

// Remove deletes the record under key. An absent key is a no-op.
func (s *MemoryStore) Remove(key domain.Key) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == "" {
		return domain.ErrNotOpen
	}
	delete(s.records[s.session], key)
	return nil
}

// Compile-time assertion that MemoryStore implements domain.Store.
var _ domain.Store = (*MemoryStore)(nil)
