package id

import (
	"fmt"

	"github.com/google/uuid"
)

// Generator creates opaque IDs suitable for external references.
type Generator interface {
	NewID() (string, error)
}

// UUIDGenerator returns time-ordered UUIDv7 values, optionally prefixed, so
// request ids sort by arrival in log search.
type UUIDGenerator struct {
	prefix string
}

func NewUUIDGenerator(prefix string) *UUIDGenerator {
	return &UUIDGenerator{prefix: prefix}
}

func (g *UUIDGenerator) NewID() (string, error) {
	v, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("generate uuid v7: %w", err)
	}
	return g.prefix + v.String(), nil
}
