package store_test

import (
	"bytes"
	"errors"
	"sort"
	"testing"

	"mqstore/internal/domain"
)

// Shared conformance suite run against every backend. newStore must return
// a fresh, unopened store.
func runConformance(t *testing.T, newStore func(t *testing.T) domain.Store) {
	t.Helper()

	const (
		clientID  = domain.ClientID("c1")
		serverURI = domain.ServerURI("tcp://host:1883")
	)

	open := func(t *testing.T) domain.Store {
		t.Helper()
		s := newStore(t)
		if err := s.Open(clientID, serverURI); err != nil {
			t.Fatalf("open: %v", err)
		}
		return s
	}

	t.Run("RoundTripConcatenation", func(t *testing.T) {
		s := open(t)
		bufs := [][]byte{[]byte("HEADER"), []byte(""), []byte("PAYLOAD")}
		if err := s.Put("o.1", bufs); err != nil {
			t.Fatalf("put: %v", err)
		}
		got, err := s.Get("o.1")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if !bytes.Equal(got, []byte("HEADERPAYLOAD")) {
			t.Fatalf("get: got %q, want %q", got, "HEADERPAYLOAD")
		}
	})

	t.Run("AtomicReplace", func(t *testing.T) {
		s := open(t)
		if err := s.Put("o.1", [][]byte{[]byte("AAAA"), []byte("AAAA")}); err != nil {
			t.Fatalf("put A: %v", err)
		}
		if err := s.Put("o.1", [][]byte{[]byte("BB")}); err != nil {
			t.Fatalf("put B: %v", err)
		}
		got, err := s.Get("o.1")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if !bytes.Equal(got, []byte("BB")) {
			t.Fatalf("replace: got %q, want %q", got, "BB")
		}
	})

	t.Run("KeySetConsistency", func(t *testing.T) {
		s := open(t)
		for _, k := range []domain.Key{"o.1", "o.2", "i.1"} {
			if err := s.Put(k, [][]byte{[]byte(k)}); err != nil {
				t.Fatalf("put %s: %v", k, err)
			}
		}
		if err := s.Remove("o.2"); err != nil {
			t.Fatalf("remove: %v", err)
		}
		wantKeys(t, s, "i.1", "o.1")

		if err := s.Clear(); err != nil {
			t.Fatalf("clear: %v", err)
		}
		wantKeys(t, s)
		for _, k := range []domain.Key{"o.1", "o.2", "i.1"} {
			ok, err := s.ContainsKey(k)
			if err != nil {
				t.Fatalf("contains %s: %v", k, err)
			}
			if ok {
				t.Fatalf("contains %s after clear", k)
			}
		}
	})

	t.Run("IdempotentRemove", func(t *testing.T) {
		s := open(t)
		if err := s.Remove("o.9"); err != nil {
			t.Fatalf("remove absent: %v", err)
		}
		ok, err := s.ContainsKey("o.9")
		if err != nil {
			t.Fatalf("contains: %v", err)
		}
		if ok {
			t.Fatal("contains true after removing absent key")
		}
	})

	t.Run("GetAbsent", func(t *testing.T) {
		s := open(t)
		if _, err := s.Get("o.404"); !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("get absent: got %v, want ErrNotFound", err)
		}
	})

	t.Run("EmptyPutLeavesNoTrace", func(t *testing.T) {
		s := open(t)
		if err := s.Put("o.1", nil); !errors.Is(err, domain.ErrEmptyRecord) {
			t.Fatalf("empty put: got %v, want ErrEmptyRecord", err)
		}
		ok, err := s.ContainsKey("o.1")
		if err != nil {
			t.Fatalf("contains: %v", err)
		}
		if ok {
			t.Fatal("failed put left a record behind")
		}
	})

	t.Run("FailedPutKeepsPriorRecord", func(t *testing.T) {
		s := open(t)
		if err := s.Put("o.1", [][]byte{[]byte("KEEP")}); err != nil {
			t.Fatalf("put: %v", err)
		}
		if err := s.Put("o.1", nil); err == nil {
			t.Fatal("empty put succeeded")
		}
		got, err := s.Get("o.1")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if !bytes.Equal(got, []byte("KEEP")) {
			t.Fatalf("prior record damaged: got %q", got)
		}
	})

	t.Run("NotOpen", func(t *testing.T) {
		s := newStore(t)
		if err := s.Put("o.1", [][]byte{[]byte("x")}); !errors.Is(err, domain.ErrNotOpen) {
			t.Fatalf("put before open: got %v, want ErrNotOpen", err)
		}
		if _, err := s.Keys(); !errors.Is(err, domain.ErrNotOpen) {
			t.Fatalf("keys before open: got %v, want ErrNotOpen", err)
		}
		if err := s.Close(); err != nil {
			t.Fatalf("close before open: %v", err)
		}
	})

	t.Run("FailedReopenDisablesStore", func(t *testing.T) {
		s := open(t)
		if err := s.Put("o.1", [][]byte{[]byte("x")}); err != nil {
			t.Fatalf("put: %v", err)
		}

		// A failed re-open must not leave the old namespace live.
		if err := s.Open("", ""); err == nil {
			t.Fatal("open with empty identity succeeded")
		}
		if err := s.Put("o.2", [][]byte{[]byte("y")}); !errors.Is(err, domain.ErrNotOpen) {
			t.Fatalf("put after failed open: got %v, want ErrNotOpen", err)
		}
		if _, err := s.Get("o.1"); !errors.Is(err, domain.ErrNotOpen) {
			t.Fatalf("get after failed open: got %v, want ErrNotOpen", err)
		}

		// A later successful open restores service and the data.
		if err := s.Open(clientID, serverURI); err != nil {
			t.Fatalf("reopen: %v", err)
		}
		got, err := s.Get("o.1")
		if err != nil {
			t.Fatalf("get after reopen: %v", err)
		}
		if !bytes.Equal(got, []byte("x")) {
			t.Fatalf("record lost across failed open: got %q", got)
		}
	})

	t.Run("CloseKeepsData", func(t *testing.T) {
		s := open(t)
		if err := s.Put("i.7", [][]byte{[]byte("inflight")}); err != nil {
			t.Fatalf("put: %v", err)
		}
		if err := s.Close(); err != nil {
			t.Fatalf("close: %v", err)
		}
		if err := s.Open(clientID, serverURI); err != nil {
			t.Fatalf("reopen: %v", err)
		}
		got, err := s.Get("i.7")
		if err != nil {
			t.Fatalf("get after reopen: %v", err)
		}
		if !bytes.Equal(got, []byte("inflight")) {
			t.Fatalf("record lost across close/open: got %q", got)
		}
	})

	t.Run("Scenario", func(t *testing.T) {
		s := newStore(t)
		if err := s.Open("c1", "tcp://host:1883"); err != nil {
			t.Fatalf("open: %v", err)
		}
		if err := s.Put("s:1", [][]byte{[]byte("HEADER"), []byte("PAYLOAD")}); err != nil {
			t.Fatalf("put: %v", err)
		}
		wantKeys(t, s, "s:1")
		got, err := s.Get("s:1")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if !bytes.Equal(got, []byte("HEADERPAYLOAD")) {
			t.Fatalf("get: got %q", got)
		}
		if err := s.Remove("s:1"); err != nil {
			t.Fatalf("remove: %v", err)
		}
		wantKeys(t, s)
		if err := s.Close(); err != nil {
			t.Fatalf("close: %v", err)
		}
	})

	t.Run("TransformScenario", func(t *testing.T) {
		s := open(t)
		tr := reverseTransform{}

		orig := [][]byte{[]byte("HEADER"), []byte("PAYLOAD")}
		enc, err := tr.Encode([][]byte{[]byte("HEADER"), []byte("PAYLOAD")})
		if err != nil {
			t.Fatalf("encode: %v", err)
		}
		if err := s.Put("o.1", enc); err != nil {
			t.Fatalf("put: %v", err)
		}

		stored, err := s.Get("o.1")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if !bytes.Equal(stored, []byte("DAOLYAPREDAEH")) {
			t.Fatalf("stored bytes not encoded: got %q", stored)
		}

		dec, err := tr.Decode(stored)
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		want := append(append([]byte(nil), orig[0]...), orig[1]...)
		if !bytes.Equal(dec, want) {
			t.Fatalf("decode: got %q, want %q", dec, want)
		}
	})
}

// reverseTransform reverses each buffer in place and emits the buffers in
// reverse order, so the stored concatenation is the reversal of the whole
// record and a single whole-buffer reversal inverts it after Get.
type reverseTransform struct{}

func (reverseTransform) Encode(bufs [][]byte) ([][]byte, error) {
	for _, b := range bufs {
		reverse(b)
	}
	for i, j := 0, len(bufs)-1; i < j; i, j = i+1, j-1 {
		bufs[i], bufs[j] = bufs[j], bufs[i]
	}
	return bufs, nil
}

func (reverseTransform) Decode(buf []byte) ([]byte, error) {
	reverse(buf)
	return buf, nil
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}

func wantKeys(t *testing.T, s domain.Store, want ...domain.Key) {
	t.Helper()
	got, err := s.Keys()
	if err != nil {
		t.Fatalf("keys: %v", err)
	}
	sort.Slice(got, func(i, j int) bool { return got[i] < got[j] })
	sort.Slice(want, func(i, j int) bool { return want[i] < want[j] })
	if len(got) != len(want) {
		t.Fatalf("keys: got %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("keys: got %v, want %v", got, want)
		}
	}
}
