package utils

import (
	"fmt"

	"github.com/google/uuid"
)

// GenerateID returns a new unique identifier string
func GenerateID() string {
	return uuid.New().String()
}

// GenerateGuestID returns a new guest identity of the form "guest-<uuid>"
func GenerateGuestID() string {
	return fmt.Sprintf("guest-%s", uuid.New().String())
}
