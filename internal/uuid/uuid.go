// Package uuid wraps id generation so it can be mocked
package uuid

//go:generate mockgen -destination=mocks/mock_generator.go -package=mockuuid -source=uuid.go

import (
	"github.com/google/uuid"
)

// Generator hands out ids for duels, heroes and timed effects
type Generator interface {
	New() string
}

// GoogleUUIDGenerator implements Generator with random v4 ids
type GoogleUUIDGenerator struct{}

// New returns a fresh id
func (g *GoogleUUIDGenerator) New() string {
	return uuid.NewString()
}

// NewGoogleUUIDGenerator creates a new GoogleUUIDGenerator
func NewGoogleUUIDGenerator() *GoogleUUIDGenerator {
	return &GoogleUUIDGenerator{}
}
