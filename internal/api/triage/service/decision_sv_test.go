package triageService

import (
	"testing"

	"HelpdeskGolang/internal/entity"

	"github.com/stretchr/testify/assert"
)

func TestDecideKeywordStrong(t *testing.T) {
	s := &classifierService{}

	d := s.decide(decisionInput{
		mlCategory:   entity.CategoryNetworkIssues,
		mlConfidence: 0.9,
		bestCategory: entity.CategoryPasswordReset,
		best:         keywordScore{Score: 6},
	})

	assert.Equal(t, entity.CategoryPasswordReset, d.Category)
	assert.Equal(t, "keyword-strong", d.Method)
	assert.InDelta(t, 0.87, d.Confidence, 0.001)
}

func TestDecideKeywordStrongCapsConfidence(t *testing.T) {
	s := &classifierService{}

	d := s.decide(decisionInput{
		bestCategory: entity.CategoryVPNIssues,
		best:         keywordScore{Score: 20},
	})

	assert.Equal(t, 0.95, d.Confidence)
}

func TestDecideHybridBoosted(t *testing.T) {
	s := &classifierService{}

	d := s.decide(decisionInput{
		mlCategory:   entity.CategoryVPNIssues,
		mlConfidence: 0.2,
		own:          keywordScore{Score: 3},
		bestCategory: entity.CategoryVPNIssues,
		best:         keywordScore{Score: 3},
	})

	assert.Equal(t, entity.CategoryVPNIssues, d.Category)
	assert.Equal(t, "hybrid-boosted", d.Method)
	assert.InDelta(t, 0.70, d.Confidence, 0.001)
}

func TestDecideHybridKeyword(t *testing.T) {
	s := &classifierService{}

	d := s.decide(decisionInput{
		mlCategory:   entity.CategoryEmailIssues,
		mlConfidence: 0.2,
		own:          keywordScore{Score: 0},
		bestCategory: entity.CategoryNetworkIssues,
		best:         keywordScore{Score: 3},
	})

	assert.Equal(t, entity.CategoryNetworkIssues, d.Category)
	assert.Equal(t, "hybrid-keyword", d.Method)
	assert.InDelta(t, 0.65, d.Confidence, 0.001)
}

func TestDecideMLBoosted(t *testing.T) {
	s := &classifierService{}

	d := s.decide(decisionInput{
		mlCategory:   entity.CategorySoftwareInst,
		mlConfidence: 0.5,
		own:          keywordScore{Score: 2},
		bestCategory: entity.CategorySoftwareInst,
		best:         keywordScore{Score: 2},
	})

	assert.Equal(t, entity.CategorySoftwareInst, d.Category)
	assert.Equal(t, "ml-boosted", d.Method)
	assert.InDelta(t, 0.56, d.Confidence, 0.001)
}

func TestDecideMLAlone(t *testing.T) {
	s := &classifierService{}

	d := s.decide(decisionInput{
		mlCategory:   entity.CategoryEmailIssues,
		mlConfidence: 0.5,
		mlGap:        0.3,
	})

	assert.Equal(t, entity.CategoryEmailIssues, d.Category)
	assert.Equal(t, "ml", d.Method)
	assert.Equal(t, 0.5, d.Confidence)
}

func TestDecideFallback(t *testing.T) {
	s := &classifierService{}

	d := s.decide(decisionInput{
		mlCategory:   entity.CategoryVPNIssues,
		mlConfidence: 0.1,
		best:         keywordScore{Score: 1},
	})

	assert.Equal(t, entity.CategoryOther, d.Category)
	assert.Equal(t, "fallback", d.Method)
	assert.Equal(t, 0.48, d.Confidence)
}

func TestDecideDefaultSupported(t *testing.T) {
	s := &classifierService{}

	// Mid confidence, thin keyword evidence: no rule fires.
	d := s.decide(decisionInput{
		mlCategory:   entity.CategoryNetworkIssues,
		mlConfidence: 0.3,
		best:         keywordScore{Score: 1},
	})

	assert.Equal(t, entity.CategoryNetworkIssues, d.Category)
	assert.Equal(t, "ml-supported", d.Method)
	assert.InDelta(t, 0.32, d.Confidence, 0.001)
}

func TestDecideOrderKeywordDominatesML(t *testing.T) {
	s := &classifierService{}

	// Both the keyword and ml rules could fire; the keyword rule is
	// earlier in the cascade and wins.
	d := s.decide(decisionInput{
		mlCategory:   entity.CategoryEmailIssues,
		mlConfidence: 0.95,
		mlGap:        0.9,
		bestCategory: entity.CategoryHardwareIssue,
		best:         keywordScore{Score: 10},
	})

	assert.Equal(t, entity.CategoryHardwareIssue, d.Category)
	assert.Equal(t, "keyword-strong", d.Method)
}
