package utils

import "github.com/google/uuid"

// UUIDGenerator produces opaque, non-sequential user identifiers.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a new UUID string. Version 7 is preferred for its
// time-ordered index locality; on failure it falls back to v4.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
