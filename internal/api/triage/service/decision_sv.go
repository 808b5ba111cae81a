package triageService

import (
	"HelpdeskGolang/internal/entity"
	"HelpdeskGolang/pkg/bayes"
)

const (
	mlConfidenceFloor = 0.35
	mlRejectFloor     = 0.25
	mlGapFloor        = 0.1

	keywordDominantScore = 5.0
	keywordSupportScore  = 2.0

	fallbackConfidence = 0.48
)

// decisionInput bundles the classifier and keyword signals one
// classification pass produced.
type decisionInput struct {
	predictions  []bayes.Prediction
	mlCategory   entity.Category
	mlConfidence float64
	mlGap        float64

	// own is the keyword score of the classifier's top category, best
	// is the highest keyword score across all categories.
	own          keywordScore
	bestCategory entity.Category
	best         keywordScore
}

type decision struct {
	Category   entity.Category
	Confidence float64
	Method     string
	Matches    []entity.KeywordMatch
}

type decisionRule struct {
	guard func(in decisionInput) bool
	apply func(in decisionInput) decision
}

// decisionRules is the ordered arbitration cascade between the
// statistical classifier and the keyword tables. The first rule whose
// guard passes decides; order is load-bearing.
func decisionRules() []decisionRule {
	return []decisionRule{
		{
			// Overwhelming keyword evidence overrides the classifier
			// outright.
			guard: func(in decisionInput) bool {
				return in.best.Score >= keywordDominantScore
			},
			apply: func(in decisionInput) decision {
				return decision{
					Category:   in.bestCategory,
					Confidence: min(0.75+0.02*in.best.Score, 0.95),
					Method:     "keyword-strong",
					Matches:    in.best.Matches,
				}
			},
		},
		{
			// Weak classifier, but the keywords agree with it: keep
			// the category and let the keywords carry the confidence.
			guard: func(in decisionInput) bool {
				return in.mlConfidence < mlConfidenceFloor && in.own.Score >= keywordSupportScore
			},
			apply: func(in decisionInput) decision {
				return decision{
					Category:   in.mlCategory,
					Confidence: min(0.55+0.05*in.own.Score, 0.85),
					Method:     "hybrid-boosted",
					Matches:    in.own.Matches,
				}
			},
		},
		{
			// Weak classifier and the keywords point elsewhere: trust
			// the keywords.
			guard: func(in decisionInput) bool {
				return in.mlConfidence < mlConfidenceFloor && in.best.Score >= keywordSupportScore
			},
			apply: func(in decisionInput) decision {
				return decision{
					Category:   in.bestCategory,
					Confidence: min(0.50+0.05*in.best.Score, 0.80),
					Method:     "hybrid-keyword",
					Matches:    in.best.Matches,
				}
			},
		},
		{
			// Confident classifier with any keyword corroboration.
			guard: func(in decisionInput) bool {
				return in.mlConfidence >= mlConfidenceFloor && in.own.Score >= 1
			},
			apply: func(in decisionInput) decision {
				return decision{
					Category:   in.mlCategory,
					Confidence: min(in.mlConfidence+0.03*in.own.Score, 0.98),
					Method:     "ml-boosted",
					Matches:    in.own.Matches,
				}
			},
		},
		{
			// Confident classifier with a clear margin over the
			// runner-up stands on its own.
			guard: func(in decisionInput) bool {
				return in.mlConfidence >= mlConfidenceFloor && in.mlGap > mlGapFloor
			},
			apply: func(in decisionInput) decision {
				return decision{
					Category:   in.mlCategory,
					Confidence: in.mlConfidence,
					Method:     "ml",
				}
			},
		},
		{
			// Nothing trustworthy on either side: route to the
			// fallback sink for human triage.
			guard: func(in decisionInput) bool {
				return in.mlConfidence < mlRejectFloor && in.best.Score < keywordSupportScore
			},
			apply: func(in decisionInput) decision {
				return decision{
					Category:   entity.CategoryOther,
					Confidence: fallbackConfidence,
					Method:     "fallback",
				}
			},
		},
	}
}

// decide runs the cascade and falls back to the classifier's pick with
// a small keyword bonus when no rule fires.
func (s *classifierService) decide(in decisionInput) decision {
	for _, rule := range decisionRules() {
		if rule.guard(in) {
			return rule.apply(in)
		}
	}

	method := "ml"
	if in.best.Score > 0 {
		method = "ml-supported"
	}
	return decision{
		Category:   in.mlCategory,
		Confidence: min(in.mlConfidence+0.02*in.best.Score, 0.90),
		Method:     method,
		Matches:    in.own.Matches,
	}
}
