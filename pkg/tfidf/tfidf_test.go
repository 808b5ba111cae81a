package tfidf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore(t *testing.T) {
	corpus := NewCorpus([]string{
		"printer is jammed and not printing",
		"vpn connection keeps dropping",
	})

	assert.Equal(t, 2, corpus.Len())

	// The query term only occurs in the first document.
	assert.Greater(t, corpus.Score("printer", 0), 0.0)
	assert.Equal(t, 0.0, corpus.Score("printer", 1))

	// A term shared by every document is worth less than a rare one.
	shared := NewCorpus([]string{
		"vpn connection dropped",
		"vpn tunnel rejected",
	})
	assert.Less(t, shared.Score("vpn", 0), corpus.Score("printer", 0))
}

func TestScoreOutOfRange(t *testing.T) {
	corpus := NewCorpus([]string{"only document"})

	assert.Equal(t, 0.0, corpus.Score("only", -1))
	assert.Equal(t, 0.0, corpus.Score("only", 5))
}

func TestScoreEmptyQuery(t *testing.T) {
	corpus := NewCorpus([]string{"some document"})
	assert.Equal(t, 0.0, corpus.Score("", 0))
}
