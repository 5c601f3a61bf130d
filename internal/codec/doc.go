// Package codec implements record transforms run by the session owner
// around store access.
//
// AEADTransform encrypts records at rest with a passphrase-derived key
// (scrypt + ChaCha20-Poly1305). NopTransform passes records through
// unchanged so callers need no nil checks when encryption is off.
package codec
