package id

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// Public ids are 16 random bytes rendered as 32 hex chars.
const idLength = 16

// Generator mints the public ids stamped on matchdays, matches, and
// generation runs. An interface so tests can substitute fixed ids.
type Generator interface {
	NewID() (string, error)
}

type RandomGenerator struct{}

func NewRandomGenerator() *RandomGenerator {
	return &RandomGenerator{}
}

func (g *RandomGenerator) NewID() (string, error) {
	buf := make([]byte, idLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}

	return hex.EncodeToString(buf), nil
}
