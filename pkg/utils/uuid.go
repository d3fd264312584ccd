package utils

import (
	"github.com/google/uuid"
)

// NewRequestID generates a new request identifier
func NewRequestID() string {
	return uuid.New().String()
}
