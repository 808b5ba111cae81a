package knowledgeService

import (
	"math"
	"sort"
	"strings"

	"HelpdeskGolang/internal/api/knowledge"
	"HelpdeskGolang/internal/entity"
	contextPkg "HelpdeskGolang/pkg/context"
	"HelpdeskGolang/pkg/log"
	"HelpdeskGolang/pkg/nlp"
	"HelpdeskGolang/pkg/tfidf"

	"golang.org/x/net/context"
)

const (
	categoryFilterMinConfidence = 40

	lexicalWeight    = 10.0
	titleWeight      = 20.0
	problemWeight    = 15.0
	keywordExact     = 10.0
	keywordFuzzyMin  = 0.6
	keywordFuzzyMult = 6.0
	rawOverlapBonus  = 3.0
	stemOverlapBonus = 2.0
	bigramBonus      = 4.0
	minTokenLength   = 4

	minScore       = 0.5
	relevanceScale = 60.0
	maxResults     = 5
)

// SearchArticles runs the full search path: classify the query, load
// published candidates from the repository and rank them.
func (s *searchService) SearchArticles(ctx context.Context, query string) (knowledge.SearchResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if s.repo == nil {
		return knowledge.SearchResponse{Results: []entity.ScoredArticle{}}, nil
	}

	client, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to open repository client for search")
		return knowledge.SearchResponse{}, err
	}

	candidates, err := client.Articles.GetPublishedArticles(ctx, "", 0)
	if err != nil {
		return knowledge.SearchResponse{}, err
	}

	classification := s.classifier.Classify(ctx, query)

	return knowledge.SearchResponse{
		Results:           s.rank(ctx, query, classification, candidates),
		SuggestedCategory: string(classification.Category),
		Confidence:        classification.Confidence,
	}, nil
}

// Search ranks caller-supplied candidates without touching storage.
func (s *searchService) Search(ctx context.Context, query string, candidates []entity.KnowledgeArticle) []entity.ScoredArticle {
	classification := s.classifier.Classify(ctx, query)
	return s.rank(ctx, query, classification, candidates)
}

func (s *searchService) rank(ctx context.Context, query string, classification entity.ClassificationResult, candidates []entity.KnowledgeArticle) []entity.ScoredArticle {
	normalizedQuery := nlp.Normalize(query)
	if normalizedQuery == "" || len(candidates) == 0 {
		return []entity.ScoredArticle{}
	}

	filtered := s.filterByCategory(classification, candidates)

	documents := make([]string, 0, len(filtered))
	for _, article := range filtered {
		documents = append(documents, articleText(article))
	}
	corpus := tfidf.NewCorpus(documents)

	queryTokens := nlp.Tokenize(normalizedQuery)
	queryBigrams := nlp.NGrams(queryTokens, 2)

	type rankedArticle struct {
		entity.ScoredArticle
		score float64
	}

	ranked := make([]rankedArticle, 0, len(filtered))
	for i, article := range filtered {
		score, details := s.scoreArticle(article, documents[i], corpus, i, normalizedQuery, queryTokens, queryBigrams)
		if score <= minScore {
			continue
		}

		ranked = append(ranked, rankedArticle{
			ScoredArticle: entity.ScoredArticle{
				KnowledgeArticle: article,
				Relevance:        min(score/relevanceScale, 1),
				MatchDetails:     details,
			},
			score: score,
		})
	}

	// The raw score orders results; relevance is capped at 1 and can
	// tie when several articles clear the scale.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	if len(ranked) > maxResults {
		ranked = ranked[:maxResults]
	}

	scored := make([]entity.ScoredArticle, 0, len(ranked))
	for _, r := range ranked {
		scored = append(scored, r.ScoredArticle)
	}

	s.log.WithFields(log.Fields{
		"request_id": contextPkg.GetRequestID(ctx),
		"candidates": len(candidates),
		"filtered":   len(filtered),
		"results":    len(scored),
	}).Debug("Ranked knowledge articles")

	return scored
}

// filterByCategory narrows candidates to the classified category when
// the classifier is confident enough. An empty narrowed set falls back
// to the full candidate list rather than hiding every article.
func (s *searchService) filterByCategory(classification entity.ClassificationResult, candidates []entity.KnowledgeArticle) []entity.KnowledgeArticle {
	if classification.Confidence <= categoryFilterMinConfidence || classification.Category == entity.CategoryOther {
		return candidates
	}

	filtered := make([]entity.KnowledgeArticle, 0, len(candidates))
	for _, article := range candidates {
		if article.Category == string(classification.Category) {
			filtered = append(filtered, article)
		}
	}
	if len(filtered) == 0 {
		return candidates
	}
	return filtered
}

func (s *searchService) scoreArticle(
	article entity.KnowledgeArticle,
	document string,
	corpus *tfidf.Corpus,
	index int,
	normalizedQuery string,
	queryTokens []string,
	queryBigrams []string,
) (float64, entity.MatchDetails) {
	var details entity.MatchDetails

	lexical := corpus.Score(normalizedQuery, index) * lexicalWeight
	details.LexicalScore = lexical
	score := lexical

	titleSim := nlp.JaroWinkler(normalizedQuery, nlp.Normalize(article.Title))
	details.TitleSimilarityPct = int(math.Round(titleSim * 100))
	score += titleSim * titleWeight

	problemSim := nlp.DiceCoefficient(normalizedQuery, nlp.Normalize(article.Problem))
	details.ProblemSimilarityPct = int(math.Round(problemSim * 100))
	score += problemSim * problemWeight

	for _, keyword := range article.Keywords {
		normalizedKeyword := nlp.Normalize(keyword)
		if normalizedKeyword == "" {
			continue
		}

		if strings.Contains(normalizedQuery, normalizedKeyword) {
			score += keywordExact
			details.KeywordMatchCount++
			continue
		}

		best := 0.0
		for _, token := range queryTokens {
			if sim := nlp.LevenshteinSimilarity(token, normalizedKeyword); sim > best {
				best = sim
			}
		}
		if best > keywordFuzzyMin {
			score += best * keywordFuzzyMult
			details.KeywordMatchCount++
		}
	}

	documentTokens := nlp.Tokenize(document)
	documentSet := make(map[string]struct{}, len(documentTokens)*2)
	for _, token := range documentTokens {
		documentSet[token] = struct{}{}
		documentSet[nlp.Stem(token)] = struct{}{}
	}

	for _, token := range queryTokens {
		if len(token) < minTokenLength {
			continue
		}
		if _, ok := documentSet[token]; ok {
			score += rawOverlapBonus
			continue
		}
		if _, ok := documentSet[nlp.Stem(token)]; ok {
			score += stemOverlapBonus
		}
	}

	documentBigrams := make(map[string]struct{})
	for _, bigram := range nlp.NGrams(documentTokens, 2) {
		documentBigrams[bigram] = struct{}{}
	}
	for _, bigram := range queryBigrams {
		if _, ok := documentBigrams[bigram]; ok {
			score += bigramBonus
		}
	}

	// Popularity nudges ties toward articles readers actually used.
	score += math.Log10(float64(article.Views)+1) * 0.5
	score += float64(article.Helpful) / float64(article.Helpful+article.NotHelpful+1) * 3

	return score, details
}

func articleText(article entity.KnowledgeArticle) string {
	parts := make([]string, 0, 4+len(article.Keywords))
	parts = append(parts, article.Title, article.Problem, article.Solution)
	parts = append(parts, article.Keywords...)
	return nlp.Normalize(strings.Join(parts, " "))
}
