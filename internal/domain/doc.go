// Package domain defines the persistence contracts shared across mqstore.
// It contains plain types, the Store and Transform interfaces, error
// sentinels, and the packet key scheme only.
package domain
