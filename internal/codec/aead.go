package codec

import (
	"crypto/cipher"
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"sync"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"

	"mqstore/internal/domain"
)

// Each encoded buffer is a self-describing binary envelope:
//
//	version(1) | salt(16) | nonce(12) | ctlen(4, big-endian) | ciphertext
//
// The store may concatenate the buffers of one record, so every envelope
// carries its own length and Decode walks the sequence. The salt travels in
// every envelope because Decode may run in a fresh process.
const (
	envelopeVersion = 1
	saltSize        = 16
	headerSize      = 1 + saltSize + chacha20poly1305.NonceSize + 4
)

// Tunables for scrypt key derivation.
func scryptParamsDefault() (N, r, p int) { return 1 << 15, 8, 1 }

// AEADTransform encrypts each record buffer with ChaCha20-Poly1305 under a
// key derived from a passphrase. Encode output is randomized (fresh salt and
// nonces); Decode inverts any output of Encode, which is the contract that
// matters.
type AEADTransform struct {
	passphrase string

	mu       sync.Mutex
	lastSalt [saltSize]byte
	lastKey  []byte // derived key for lastSalt; scrypt is too slow to rerun per buffer
}

// NewAEADTransform returns a transform keyed by passphrase.
func NewAEADTransform(passphrase string) *AEADTransform {
	return &AEADTransform{passphrase: passphrase}
}

// Encode seals every buffer into its own envelope. One salt and key
// derivation covers the whole call; each buffer gets a fresh nonce.
func (t *AEADTransform) Encode(bufs [][]byte) ([][]byte, error) {
	var salt [saltSize]byte
	if _, err := rand.Read(salt[:]); err != nil {
		return nil, fmt.Errorf("%w: encode: %v", domain.ErrTransform, err)
	}
	aead, err := t.aeadFor(salt)
	if err != nil {
		return nil, err
	}

	out := make([][]byte, len(bufs))
	for i, b := range bufs {
		var nonce [chacha20poly1305.NonceSize]byte
		if _, err := rand.Read(nonce[:]); err != nil {
			return nil, fmt.Errorf("%w: encode: %v", domain.ErrTransform, err)
		}
		ct := aead.Seal(nil, nonce[:], b, salt[:])

		env := make([]byte, 0, headerSize+len(ct))
		env = append(env, envelopeVersion)
		env = append(env, salt[:]...)
		env = append(env, nonce[:]...)
		env = binary.BigEndian.AppendUint32(env, uint32(len(ct)))
		env = append(env, ct...)
		out[i] = env
	}
	return out, nil
}

// Decode walks the concatenated envelopes in buf and reassembles the
// original plaintext concatenation.
func (t *AEADTransform) Decode(buf []byte) ([]byte, error) {
	var out []byte
	for len(buf) > 0 {
		if len(buf) < headerSize {
			return nil, fmt.Errorf("%w: decode: truncated envelope header", domain.ErrTransform)
		}
		if buf[0] != envelopeVersion {
			return nil, fmt.Errorf("%w: decode: unsupported envelope version %d", domain.ErrTransform, buf[0])
		}
		var salt [saltSize]byte
		copy(salt[:], buf[1:1+saltSize])
		nonce := buf[1+saltSize : 1+saltSize+chacha20poly1305.NonceSize]
		ctlen := binary.BigEndian.Uint32(buf[headerSize-4 : headerSize])
		if int(ctlen) > len(buf)-headerSize {
			return nil, fmt.Errorf("%w: decode: truncated ciphertext", domain.ErrTransform)
		}
		ct := buf[headerSize : headerSize+int(ctlen)]

		aead, err := t.aeadFor(salt)
		if err != nil {
			return nil, err
		}
		pt, err := aead.Open(nil, nonce, ct, salt[:])
		if err != nil {
			return nil, fmt.Errorf("%w: decode: wrong passphrase or corrupted record", domain.ErrTransform)
		}
		out = append(out, pt...)
		buf = buf[headerSize+int(ctlen):]
	}
	return out, nil
}

// aeadFor derives the AEAD for salt, reusing the previous derivation when
// the salt repeats (the common case: one salt per Encode call, and records
// read back in a batch during recovery).
func (t *AEADTransform) aeadFor(salt [saltSize]byte) (cipher.AEAD, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.lastKey == nil || t.lastSalt != salt {
		N, r, p := scryptParamsDefault()
		key, err := scrypt.Key([]byte(t.passphrase), salt[:], N, r, p, chacha20poly1305.KeySize)
		if err != nil {
			return nil, fmt.Errorf("%w: key derivation: %v", domain.ErrTransform, err)
		}
		t.lastSalt = salt
		t.lastKey = key
	}
	a, err := chacha20poly1305.New(t.lastKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrTransform, err)
	}
	return a, nil
}

// Compile-time assertion that AEADTransform implements domain.Transform.
var _ domain.Transform = (*AEADTransform)(nil)
