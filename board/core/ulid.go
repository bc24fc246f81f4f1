// ABOUTME: ULID generation helper using crypto/rand entropy for card identifiers.
// ABOUTME: Centralizes ID creation so every card gets an id from the same source.
package core

import (
	"crypto/rand"

	"github.com/oklog/ulid/v2"
)

// NewULID generates a new ULID using crypto/rand entropy.
func NewULID() ulid.ULID {
	return ulid.MustNew(ulid.Now(), rand.Reader)
}

// NewID returns a fresh card id. Ids are opaque strings; imported cards may
// carry ids of any shape, new ones are ULIDs.
func NewID() string {
	return NewULID().String()
}
