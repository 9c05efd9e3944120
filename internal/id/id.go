package id

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// New creates an opaque unique identifier: millisecond timestamp plus
// a random suffix. Callers must not parse it.
func New() string {
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}
