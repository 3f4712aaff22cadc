package utils

import "github.com/google/uuid"

// UUIDGenerator produces unique string identifiers. Preferred output is
// UUIDv7 (time-ordered); falls back to UUIDv4 if the v7 source fails.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
