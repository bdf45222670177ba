package id

import (
	"crypto/rand"

	"github.com/oklog/ulid/v2"
)

// New returns a fresh ULID string. Creation-time ordering makes the ids
// sortable as-is, which the feature listing leans on when timestamps tie.
func New() string {
	return ulid.MustNew(ulid.Now(), rand.Reader).String()
}
