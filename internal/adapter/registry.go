package adapter

import (
	"sync"

	"mqstore/internal/domain"
)

// Status is the foreign engine's integer result code.
type Status int

const (
	// StatusOK signals success.
	StatusOK Status = 0
	// StatusFailure is the engine's persistence-error code. Every Go-side
	// error collapses to it; the engine has no finer vocabulary.
	StatusFailure Status = -2
)

// Handle is the opaque reference the engine passes back on every call.
// Handle 0 is never issued, so a zero value is always invalid.
type Handle uint64

// Factory builds a fresh store for each opened session.
type Factory func() domain.Store

// Registry issues handles and dispatches engine callbacks to the bound
// store and transform instances. It is safe for concurrent use; engines
// call back from their own threads.
type Registry struct {
	factory   Factory
	transform domain.Transform // may be nil: records stored raw

	mu    sync.Mutex
	next  Handle
	bound map[Handle]*binding
}

type binding struct {
	store     domain.Store
	transform domain.Transform
}

// NewRegistry returns a Registry creating stores via factory. A nil
// transform disables the encode/decode hooks.
func NewRegistry(factory Factory, transform domain.Transform) *Registry {
	return &Registry{
		factory:   factory,
		transform: transform,
		bound:     make(map[Handle]*binding),
	}
}

func (r *Registry) lookup(h Handle) *binding {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.bound[h]
}

// Open builds and opens a store for the identity pair, returning the handle
// the engine will use for every subsequent call.
func (r *Registry) Open(clientID, serverURI string) (Handle, Status) {
	st := r.factory()
	if err := st.Open(domain.ClientID(clientID), domain.ServerURI(serverURI)); err != nil {
		return 0, StatusFailure
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.next++
	h := r.next
	r.bound[h] = &binding{store: st, transform: r.transform}
	return h, StatusOK
}

// Close closes the bound store and releases the handle. On failure the
// handle stays valid so the engine can retry.
func (r *Registry) Close(h Handle) Status {
	b := r.lookup(h)
	if b == nil {
		return StatusFailure
	}
	if err := b.store.Close(); err != nil {
		return StatusFailure
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.bound, h)
	return StatusOK
}

// Put stores bufs under key.
func (r *Registry) Put(h Handle, key string, bufs [][]byte) Status {
	b := r.lookup(h)
	if b == nil {
		return StatusFailure
	}
	if err := b.store.Put(domain.Key(key), bufs); err != nil {
		return StatusFailure
	}
	return StatusOK
}

// Get returns the record under key. Absent keys and medium faults are the
// same failure to the engine.
func (r *Registry) Get(h Handle, key string) ([]byte, Status) {
	b := r.lookup(h)
	if b == nil {
		return nil, StatusFailure
	}
	rec, err := b.store.Get(domain.Key(key))
	if err != nil {
		return nil, StatusFailure
	}
	return rec, StatusOK
}

// Remove deletes the record under key.
func (r *Registry) Remove(h Handle, key string) Status {
	b := r.lookup(h)
	if b == nil {
		return StatusFailure
	}
	if err := b.store.Remove(domain.Key(key)); err != nil {
		return StatusFailure
	}
	return StatusOK
}

// Keys returns the stored keys as plain strings for the engine.
func (r *Registry) Keys(h Handle) ([]string, Status) {
	b := r.lookup(h)
	if b == nil {
		return nil, StatusFailure
	}
	keys, err := b.store.Keys()
	if err != nil {
		return nil, StatusFailure
	}
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = k.String()
	}
	return out, StatusOK
}

// Clear deletes every record in the session.
func (r *Registry) Clear(h Handle) Status {
	b := r.lookup(h)
	if b == nil {
		return StatusFailure
	}
	if err := b.store.Clear(); err != nil {
		return StatusFailure
	}
	return StatusOK
}

// ContainsKey reports record presence. Absence is (false, StatusOK);
// StatusFailure is reserved for medium faults and bad handles.
func (r *Registry) ContainsKey(h Handle, key string) (bool, Status) {
	b := r.lookup(h)
	if b == nil {
		return false, StatusFailure
	}
	ok, err := b.store.ContainsKey(domain.Key(key))
	if err != nil {
		return false, StatusFailure
	}
	return ok, StatusOK
}

// BeforeWrite runs the bound transform's encode step. With no transform the
// buffers pass through unchanged.
func (r *Registry) BeforeWrite(h Handle, bufs [][]byte) ([][]byte, Status) {
	b := r.lookup(h)
	if b == nil {
		return nil, StatusFailure
	}
	if b.transform == nil {
		return bufs, StatusOK
	}
	out, err := b.transform.Encode(bufs)
	if err != nil {
		return nil, StatusFailure
	}
	return out, StatusOK
}

// AfterRead runs the bound transform's decode step on a record returned by
// Get.
func (r *Registry) AfterRead(h Handle, buf []byte) ([]byte, Status) {
	b := r.lookup(h)
	if b == nil {
		return nil, StatusFailure
	}
	if b.transform == nil {
		return buf, StatusOK
	}
	out, err := b.transform.Decode(buf)
	if err != nil {
		return nil, StatusFailure
	}
	return out, StatusOK
}
