package triageService

import (
	"testing"

	"HelpdeskGolang/internal/api/triage"
	"HelpdeskGolang/internal/entity"
	"HelpdeskGolang/pkg/nlp"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScoringService() *classifierService {
	return &classifierService{cfg: triage.DefaultConfig()}
}

func scoreText(s *classifierService, text string) map[entity.Category]keywordScore {
	normalized := nlp.Normalize(text)
	return s.scoreKeywords(normalized, nlp.Tokenize(normalized))
}

func TestScoreKeywordsPhraseBeatsSingleTerm(t *testing.T) {
	s := newScoringService()

	phrase := scoreText(s, "I forgot my password")[entity.CategoryPasswordReset]
	single := scoreText(s, "password")[entity.CategoryPasswordReset]

	assert.Greater(t, phrase.Score, single.Score)
}

func TestScoreKeywordsMonotonic(t *testing.T) {
	s := newScoringService()

	base := scoreText(s, "my laptop is acting up")[entity.CategoryHardwareIssue]
	extended := scoreText(s, "my laptop is acting up and the screen is broken")[entity.CategoryHardwareIssue]

	assert.Greater(t, extended.Score, base.Score)
}

func TestScoreKeywordsStemmedTermMatch(t *testing.T) {
	s := newScoringService()

	// "connecting" only matches the vpn term "connect" through its stem.
	scores := scoreText(s, "trouble connecting from home")
	vpn, ok := scores[entity.CategoryVPNIssues]

	require.True(t, ok)
	assert.Greater(t, vpn.Score, 0.0)
}

func TestScoreKeywordsFuzzyPhrase(t *testing.T) {
	s := newScoringService()

	// Typo'd phrase still earns a scaled contribution.
	scores := scoreText(s, "need a pasword reset now")
	password, ok := scores[entity.CategoryPasswordReset]

	require.True(t, ok)
	assert.Greater(t, password.Score, 1.0)
}

func TestScoreKeywordsNoSignal(t *testing.T) {
	s := newScoringService()
	assert.Empty(t, scoreText(s, "completely unrelated gibberish"))
}

func TestBestKeywordCategoryTieBreaksByOrder(t *testing.T) {
	s := newScoringService()

	scores := map[entity.Category]keywordScore{
		entity.CategoryNetworkIssues: {Score: 3},
		entity.CategoryVPNIssues:     {Score: 3},
	}

	category, best := s.bestKeywordCategory(scores)

	assert.Equal(t, entity.CategoryVPNIssues, category)
	assert.Equal(t, 3.0, best.Score)
}

func TestPriorityUrgent(t *testing.T) {
	s := newScoringService()

	priority := s.priorityFor(nlp.Normalize("urgent the production system is down"), nlp.Tokenize("urgent the production system is down"))

	assert.Equal(t, entity.PriorityUrgent, priority)
}

func TestPriorityHigh(t *testing.T) {
	s := newScoringService()

	text := nlp.Normalize("this is broken and blocking my deadline")
	priority := s.priorityFor(text, nlp.Tokenize(text))

	assert.Equal(t, entity.PriorityHigh, priority)
}

func TestPriorityLow(t *testing.T) {
	s := newScoringService()

	text := nlp.Normalize("just a question about how to request information")
	priority := s.priorityFor(text, nlp.Tokenize(text))

	assert.Equal(t, entity.PriorityLow, priority)
}

func TestPriorityDefaultsToMedium(t *testing.T) {
	s := newScoringService()

	text := nlp.Normalize("hello there")
	priority := s.priorityFor(text, nlp.Tokenize(text))

	assert.Equal(t, entity.PriorityMedium, priority)
}

func TestTeamForUnknownCategory(t *testing.T) {
	s := newScoringService()

	assert.Equal(t, "Hardware Team", s.teamFor(entity.CategoryHardwareIssue))
	assert.Equal(t, triage.DefaultTeam, s.teamFor(entity.Category("Never Configured")))
}
