package pkg

import "github.com/google/uuid"

// GenerateSessionID - returns a fresh identifier for one running session.
func GenerateSessionID() string {
	return uuid.NewString()
}
