package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshteinSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, LevenshteinSimilarity("password", "password"))
	assert.Equal(t, 0.0, LevenshteinSimilarity("", "password"))

	// One substitution in an eight letter word.
	assert.InDelta(t, 0.875, LevenshteinSimilarity("password", "passwort"), 0.001)

	// Containment scores by length ratio.
	assert.InDelta(t, 0.5, LevenshteinSimilarity("vpn", "vpn it"), 0.001)
}

func TestJaroWinkler(t *testing.T) {
	assert.Equal(t, 1.0, JaroWinkler("printer", "printer"))
	assert.Equal(t, 0.0, JaroWinkler("", "printer"))
	assert.InDelta(t, 0.961, JaroWinkler("martha", "marhta"), 0.01)

	// Shared prefixes score above plain jaro.
	assert.Greater(t, JaroWinkler("password", "passwort"), jaroSimilarity("password", "passwort"))
}

func TestDiceCoefficient(t *testing.T) {
	assert.Equal(t, 1.0, DiceCoefficient("network", "network"))
	assert.Equal(t, 0.0, DiceCoefficient("", "network"))
	assert.InDelta(t, 0.25, DiceCoefficient("night", "nacht"), 0.001)

	// Word order barely matters for bigram overlap.
	assert.Greater(t, DiceCoefficient("vpn timeout", "timeout vpn"), 0.5)
}
