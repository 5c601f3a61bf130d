package store

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"mqstore/internal/domain"
)

// Record files are named after the URL-safe base64 of the key, so opaque
// keys with separators or dots stay filesystem-safe.
const recordExt = ".msg"

// FileStore keeps one file per record under a per-session directory. Data
// outlives Close; a later Open with the same identity pair lands in the same
// directory and sees every record not yet removed or cleared.
type FileStore struct {
	root string
	log  zerolog.Logger

	mu  sync.Mutex
	dir string // session directory; empty until Open succeeds
}

// NewFileStore returns a FileStore rooted at dir. Faults are not logged
// until a logger is attached with WithLogger.
func NewFileStore(dir string) *FileStore {
	return &FileStore{root: dir, log: zerolog.Nop()}
}

// WithLogger attaches a logger for operation faults. The persistence layer
// reports its own faults because the caller may only see a collapsed status
// code across the adapter boundary.
func (s *FileStore) WithLogger(log zerolog.Logger) *FileStore {
	s.log = log.With().Str("component", "filestore").Logger()
	return s
}

// Open creates or reuses the session directory for the identity pair.
func (s *FileStore) Open(clientID domain.ClientID, serverURI domain.ServerURI) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if clientID == "" || serverURI == "" {
		s.dir = ""
		return fmt.Errorf("%w: open: empty session identity", domain.ErrPersistence)
	}
	dir := filepath.Join(s.root, sessionDirName(clientID, serverURI))
	if err := os.MkdirAll(dir, 0o700); err != nil {
		s.log.Error().Err(err).Str("dir", dir).Msg("open failed")
		s.dir = ""
		return fmt.Errorf("%w: open %s: %v", domain.ErrPersistence, dir, err)
	}
	s.dir = dir
	return nil
}

// Close releases the session binding. Stored records stay on disk.
func (s *FileStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.dir = ""
	return nil
}

// Clear deletes every record in the session namespace.
func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.dir == "" {
		return domain.ErrNotOpen
	}
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		s.log.Error().Err(err).Msg("clear failed")
		return fmt.Errorf("%w: clear: %v", domain.ErrPersistence, err)
	}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), recordExt) {
			continue
		}
		if err := os.Remove(filepath.Join(s.dir, e.Name())); err != nil {
			s.log.Error().Err(err).Str("file", e.Name()).Msg("clear failed")
			return fmt.Errorf("%w: clear: %v", domain.ErrPersistence, err)
		}
	}
	return nil
}

// ContainsKey reports whether a record file exists for key.
func (s *FileStore) ContainsKey(key domain.Key) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.dir == "" {
		return false, domain.ErrNotOpen
	}
	_, err := os.Stat(s.recordPath(key))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, fmt.Errorf("%w: contains %s: %v", domain.ErrPersistence, key, err)
}

// Keys returns every stored key. Leftover temp files from interrupted
// writes are not records and are skipped.
func (s *FileStore) Keys() ([]domain.Key, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.dir == "" {
		return nil, domain.ErrNotOpen
	}
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("%w: keys: %v", domain.ErrPersistence, err)
	}
	keys := make([]domain.Key, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), recordExt) {
			continue
		}
		name, err := base64.RawURLEncoding.DecodeString(strings.TrimSuffix(e.Name(), recordExt))
		if err != nil {
			continue
		}
		keys = append(keys, domain.Key(name))
	}
	return keys, nil
}

// Put stores bufs under key, replacing any prior record atomically.
func (s *FileStore) Put(key domain.Key, bufs [][]byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.dir == "" {
		return domain.ErrNotOpen
	}
	if len(bufs) == 0 {
		return fmt.Errorf("%w: put %s", domain.ErrEmptyRecord, key)
	}
	if err := writeRecord(s.recordPath(key), bufs, 0o600); err != nil {
		s.log.Error().Err(err).Str("key", key.String()).Msg("put failed")
		return fmt.Errorf("%w: put %s: %v", domain.ErrPersistence, key, err)
	}
	return nil
}

// Get returns the record under key as one contiguous slice.
func (s *FileStore) Get(key domain.Key) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.dir == "" {
		return nil, domain.ErrNotOpen
	}
	b, err := os.ReadFile(s.recordPath(key))
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, key)
	}
	if err != nil {
		s.log.Error().Err(err).Str("key", key.String()).Msg("get failed")
		return nil, fmt.Errorf("%w: get %s: %v", domain.ErrPersistence, key, err)
	}
	return b, nil
}

// Remove deletes the record under key. An absent key is a no-op.
func (s *FileStore) Remove(key domain.Key) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.dir == "" {
		return domain.ErrNotOpen
	}
	err := os.Remove(s.recordPath(key))
	if err == nil || os.IsNotExist(err) {
		return nil
	}
	s.log.Error().Err(err).Str("key", key.String()).Msg("remove failed")
	return fmt.Errorf("%w: remove %s: %v", domain.ErrPersistence, key, err)
}

func (s *FileStore) recordPath(key domain.Key) string {
	return filepath.Join(s.dir, base64.RawURLEncoding.EncodeToString([]byte(key))+recordExt)
}

// sessionDirName derives a stable, filesystem-safe directory name from the
// identity pair. Both halves are encoded separately so distinct pairs can
// never collide.
func sessionDirName(clientID domain.ClientID, serverURI domain.ServerURI) string {
	c := base64.RawURLEncoding.EncodeToString([]byte(clientID))
	u := base64.RawURLEncoding.EncodeToString([]byte(serverURI))
	return c + "-" + u
}

// Compile-time assertion that FileStore implements domain.Store.
var _ domain.Store = (*FileStore)(nil)
