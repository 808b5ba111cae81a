package triageService

import (
	"strings"

	"HelpdeskGolang/internal/api/triage"
	"HelpdeskGolang/internal/entity"
	"HelpdeskGolang/pkg/nlp"
)

const (
	phraseWeight = 5.0
	strongWeight = 3.0
	weakWeight   = 1.0

	// fuzzyPhraseThreshold gates bigram similarity between query
	// windows and category phrases. Near-matches contribute a scaled
	// score instead of the full phrase weight.
	fuzzyPhraseThreshold = 0.7
	fuzzyPhraseScale     = 3.0
)

type keywordScore struct {
	Score   float64
	Matches []entity.KeywordMatch
}

// scoreKeywords scores the normalized query against every category's
// keyword table. Phrases match as substrings, single terms match
// against the raw and stemmed token sets, and 2-3 token windows of the
// query are fuzzy-matched against phrases.
func (s *classifierService) scoreKeywords(normalized string, tokens []string) map[entity.Category]keywordScore {
	scores := make(map[entity.Category]keywordScore, len(s.cfg.Keywords))

	tokenSet := make(map[string]struct{}, len(tokens)*2)
	for _, token := range tokens {
		tokenSet[token] = struct{}{}
		tokenSet[nlp.Stem(token)] = struct{}{}
	}

	windows := append(nlp.NGrams(tokens, 2), nlp.NGrams(tokens, 3)...)

	for category, table := range s.cfg.Keywords {
		var score keywordScore

		matchedPhrases := make(map[string]struct{}, len(table.Phrases))
		for _, phrase := range table.Phrases {
			if strings.Contains(normalized, phrase) {
				matchedPhrases[phrase] = struct{}{}
				score.Score += phraseWeight
				score.Matches = append(score.Matches, entity.KeywordMatch{Term: phrase, Weight: phraseWeight})
			}
		}

		// Fuzzy pass catches typo'd phrases ("pasword reset") that the
		// substring check missed.
		for _, phrase := range table.Phrases {
			if _, ok := matchedPhrases[phrase]; ok {
				continue
			}

			best := 0.0
			for _, window := range windows {
				if sim := nlp.DiceCoefficient(window, phrase); sim > best {
					best = sim
				}
			}
			if best >= fuzzyPhraseThreshold {
				weight := best * fuzzyPhraseScale
				score.Score += weight
				score.Matches = append(score.Matches, entity.KeywordMatch{Term: phrase, Weight: weight})
			}
		}

		for _, term := range table.Strong {
			if s.termMatches(term, normalized, tokenSet) {
				score.Score += strongWeight
				score.Matches = append(score.Matches, entity.KeywordMatch{Term: term, Weight: strongWeight})
			}
		}

		for _, term := range table.Weak {
			if s.termMatches(term, normalized, tokenSet) {
				score.Score += weakWeight
				score.Matches = append(score.Matches, entity.KeywordMatch{Term: term, Weight: weakWeight})
			}
		}

		if score.Score > 0 {
			scores[category] = score
		}
	}

	return scores
}

// termMatches checks a single keyword term: multi-word terms match as
// substrings of the normalized query, single terms match the token set
// directly or through their stem.
func (s *classifierService) termMatches(term, normalized string, tokenSet map[string]struct{}) bool {
	if strings.ContainsRune(term, ' ') {
		return strings.Contains(normalized, term)
	}
	if _, ok := tokenSet[term]; ok {
		return true
	}
	_, ok := tokenSet[nlp.Stem(term)]
	return ok
}

// bestKeywordCategory picks the highest-scoring category, breaking
// ties by the fixed category order.
func (s *classifierService) bestKeywordCategory(scores map[entity.Category]keywordScore) (entity.Category, keywordScore) {
	var (
		bestCategory entity.Category
		best         keywordScore
	)
	for _, category := range entity.Categories() {
		if score, ok := scores[category]; ok && score.Score > best.Score {
			bestCategory = category
			best = score
		}
	}
	return bestCategory, best
}

// priorityFor walks the priority tiers in severity order and keeps the
// highest-scoring tier. No signal at all means medium.
func (s *classifierService) priorityFor(normalized string, tokens []string) entity.Priority {
	tokenSet := make(map[string]struct{}, len(tokens))
	for _, token := range tokens {
		tokenSet[token] = struct{}{}
	}

	bestPriority := entity.PriorityMedium
	bestScore := 0.0

	for _, priority := range []entity.Priority{entity.PriorityUrgent, entity.PriorityHigh, entity.PriorityMedium, entity.PriorityLow} {
		table, ok := s.cfg.Priorities[priority]
		if !ok {
			continue
		}

		score := 0.0
		for _, term := range table.Strong {
			if priorityTermMatches(term, normalized, tokenSet) {
				score += 2
			}
		}
		for _, term := range table.Normal {
			if priorityTermMatches(term, normalized, tokenSet) {
				score++
			}
		}

		if score > bestScore {
			bestScore = score
			bestPriority = priority
		}
	}

	return bestPriority
}

func priorityTermMatches(term, normalized string, tokenSet map[string]struct{}) bool {
	if strings.ContainsRune(term, ' ') {
		return strings.Contains(normalized, term)
	}
	_, ok := tokenSet[term]
	return ok
}

func (s *classifierService) teamFor(category entity.Category) string {
	if team, ok := s.cfg.Teams[category]; ok {
		return team
	}
	return triage.DefaultTeam
}
