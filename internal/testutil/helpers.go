package testutil

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

var nameCounter atomic.Int64

// MakeID returns a fresh UUID string for test entities.
func MakeID() string {
	return uuid.NewString()
}

// MakeName returns a unique name with the given prefix, so tests can create
// multiple entities without tripping unique constraints.
func MakeName(prefix string) string {
	return fmt.Sprintf("%s %d", prefix, nameCounter.Add(1))
}
