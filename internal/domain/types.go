package domain

// Key identifies one persisted record within a store's session namespace.
// Keys are opaque to the store; the packet key scheme in keys.go is a
// convention owned by the session owner, not enforced here.
type Key string

// String returns the string form of the key.
func (k Key) String() string { return string(k) }

// ClientID is the client half of the session identity pair.
type ClientID string

// String returns the string form of the client identifier.
func (c ClientID) String() string { return string(c) }

// ServerURI is the server half of the session identity pair.
type ServerURI string

// String returns the string form of the server URI.
func (s ServerURI) String() string { return string(s) }
