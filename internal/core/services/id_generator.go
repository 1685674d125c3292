package services

import "github.com/google/uuid"

// IDGenerator produces opaque identifiers for derived records such as alerts.
// It is injected so tests can substitute a deterministic implementation.
type IDGenerator interface {
	NewID() string
}

type uuidGenerator struct{}

// NewUUIDGenerator returns an IDGenerator backed by random UUIDs.
func NewUUIDGenerator() IDGenerator {
	return uuidGenerator{}
}

func (uuidGenerator) NewID() string {
	return uuid.NewString()
}
