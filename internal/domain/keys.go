package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Direction marks which half of an acknowledgment handshake a persisted
// record belongs to.
type Direction int

const (
	// Outbound records are messages this client sent and is awaiting acks for.
	Outbound Direction = iota
	// Inbound records are received messages whose handshake is incomplete.
	Inbound
)

// String returns the key prefix for the direction.
func (d Direction) String() string {
	if d == Inbound {
		return "i"
	}
	return "o"
}

// PacketKey builds the conventional store key for a protocol message:
// "o.<id>" for outbound, "i.<id>" for inbound. Ids are 16-bit on the wire,
// so outbound and inbound in-flight messages never collide.
func PacketKey(dir Direction, id uint16) Key {
	return Key(fmt.Sprintf("%s.%d", dir, id))
}

// ParseKey recovers the direction and message id from a key following the
// PacketKey scheme. Keys outside the scheme are legal store keys but not
// classifiable; for those ok is false.
func ParseKey(k Key) (dir Direction, id uint16, ok bool) {
	prefix, num, found := strings.Cut(string(k), ".")
	if !found {
		return 0, 0, false
	}
	switch prefix {
	case "o":
		dir = Outbound
	case "i":
		dir = Inbound
	default:
		return 0, 0, false
	}
	n, err := strconv.ParseUint(num, 10, 16)
	if err != nil || n == 0 {
		return 0, 0, false
	}
	return dir, uint16(n), true
}
