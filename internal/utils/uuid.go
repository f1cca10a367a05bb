package utils

import "github.com/google/uuid"

// RequestIDGenerator produces unique identifiers that the transport layer
// attaches to outbound backend requests for log correlation.
type RequestIDGenerator struct {
}

func NewRequestIDGenerator() *RequestIDGenerator {
	return &RequestIDGenerator{}
}

// Next returns a fresh UUIDv4 string.
func (g *RequestIDGenerator) Next() string {
	return uuid.NewString()
}
