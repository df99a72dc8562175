package utils

import (
	"time"

	"github.com/google/uuid"
)

// GenerateID returns a new unique identifier string
func GenerateID() string {
	return uuid.New().String()
}

// Now is the default clock: wall time in UTC
func Now() time.Time {
	return time.Now().UTC()
}
