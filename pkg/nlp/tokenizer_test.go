package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "hello world", Normalize("  Héllo,   World!  "))
	assert.Equal(t, "", Normalize("   "))
	assert.Equal(t, "cant login to vpn", Normalize("Can't login to VPN?!"))
}

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"my", "laptop", "wont", "start"}, Tokenize("My laptop won't start"))
	assert.Empty(t, Tokenize(""))
}

func TestStem(t *testing.T) {
	assert.Equal(t, "connect", Stem("connection"))
	assert.Equal(t, "run", Stem("running"))
	assert.Equal(t, "password", Stem("passwords"))
}

func TestFilterStopWords(t *testing.T) {
	tokens := Tokenize("the printer is not working and i need help")
	filtered := FilterStopWords(tokens)

	assert.NotContains(t, filtered, "the")
	assert.NotContains(t, filtered, "and")
	assert.Contains(t, filtered, "printer")
	assert.Contains(t, filtered, "help")
}

func TestExtractKeywords(t *testing.T) {
	keywords := ExtractKeywords("the vpn connection to the vpn server keeps dropping", 3)

	assert.LessOrEqual(t, len(keywords), 3)
	assert.Contains(t, keywords, "vpn")
	// Duplicates collapse to one entry.
	count := 0
	for _, keyword := range keywords {
		if keyword == "vpn" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestNGrams(t *testing.T) {
	tokens := []string{"laptop", "wont", "start"}

	assert.Equal(t, []string{"laptop wont", "wont start"}, NGrams(tokens, 2))
	assert.Equal(t, []string{"laptop wont start"}, NGrams(tokens, 3))
	assert.Empty(t, NGrams(tokens, 4))
}
