// Package idgen provides the production identifier generator.
package idgen

import (
	"github.com/google/uuid"

	"github.com/sanirudh17/mission-control/internal/domain"
)

// Ensure UUID implements domain.IDGenerator.
var _ domain.IDGenerator = UUID{}

// UUID generates random (version 4) UUID strings.
type UUID struct{}

// NewID returns a new random UUID.
func (UUID) NewID() string {
	return uuid.NewString()
}
