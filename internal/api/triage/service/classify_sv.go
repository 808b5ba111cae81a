package triageService

import (
	"crypto/sha256"
	"encoding/hex"
	"math"
	"strings"
	"time"

	"HelpdeskGolang/internal/api/triage"
	"HelpdeskGolang/internal/entity"
	contextPkg "HelpdeskGolang/pkg/context"
	"HelpdeskGolang/pkg/log"
	"HelpdeskGolang/pkg/nlp"

	jsoniter "github.com/json-iterator/go"
	"golang.org/x/net/context"
)

const (
	cacheKeyPrefix  = "triage:classify:"
	cacheExpiration = 15 * time.Minute

	maxKeywordMatches = 5
	maxTopPredictions = 3
)

// Classify runs the full triage pipeline on one free-text request.
// It is total over the label set: every input, including empty or
// garbage text, yields a category, priority and team.
func (s *classifierService) Classify(ctx context.Context, text string) entity.ClassificationResult {
	requestID := contextPkg.GetRequestID(ctx)

	normalized := nlp.Normalize(text)
	if normalized == "" {
		return s.fallbackResult()
	}

	if cached, ok := s.cachedResult(ctx, normalized); ok {
		return cached
	}

	result, ok := s.zeroShotResult(ctx, text, normalized)
	if !ok {
		result = s.localResult(text, normalized)
	}

	s.log.WithFields(log.Fields{
		"request_id": requestID,
		"category":   result.Category,
		"priority":   result.Priority,
		"confidence": result.Confidence,
		"method":     result.Method,
	}).Debug("Classified request")

	s.storeResult(ctx, normalized, result)

	return result
}

// localResult is the on-box pipeline: naive Bayes prediction, keyword
// scoring, then the arbitration cascade.
func (s *classifierService) localResult(text, normalized string) entity.ClassificationResult {
	tokens := nlp.Tokenize(normalized)

	model := s.model.Load()
	predictions := model.Predict(text)

	mlCategory := entity.Category(predictions[0].Label)
	mlConfidence := predictions[0].Probability
	mlGap := mlConfidence
	if len(predictions) > 1 {
		mlGap = mlConfidence - predictions[1].Probability
	}

	scores := s.scoreKeywords(normalized, tokens)
	bestCategory, best := s.bestKeywordCategory(scores)

	d := s.decide(decisionInput{
		predictions:  predictions,
		mlCategory:   mlCategory,
		mlConfidence: mlConfidence,
		mlGap:        mlGap,
		own:          scores[mlCategory],
		bestCategory: bestCategory,
		best:         best,
	})

	matches := d.Matches
	if len(matches) > maxKeywordMatches {
		matches = matches[:maxKeywordMatches]
	}

	top := make([]entity.LabelConfidence, 0, maxTopPredictions)
	for _, prediction := range predictions {
		if len(top) == maxTopPredictions {
			break
		}
		top = append(top, entity.LabelConfidence{
			Label:      entity.Category(prediction.Label),
			Confidence: toPercent(prediction.Probability),
		})
	}

	return entity.ClassificationResult{
		Category:       d.Category,
		Priority:       s.priorityFor(normalized, tokens),
		Confidence:     toPercent(d.Confidence),
		AssignedTeam:   s.teamFor(d.Category),
		Method:         d.Method,
		MLConfidence:   toPercent(mlConfidence),
		KeywordScore:   best.Score,
		KeywordMatches: matches,
		TopPredictions: top,
	}
}

// zeroShotResult consults the hosted model when one is configured.
// Any failure falls through to the local pipeline.
func (s *classifierService) zeroShotResult(ctx context.Context, text, normalized string) (entity.ClassificationResult, bool) {
	if s.zeroShot == nil {
		return entity.ClassificationResult{}, false
	}

	labels := make([]string, 0, len(entity.Categories())+1)
	for _, category := range entity.Categories() {
		labels = append(labels, string(category))
	}
	labels = append(labels, string(entity.CategoryOther))

	remote, err := s.zeroShot.ClassifyText(ctx, text, labels)
	if err != nil {
		s.log.WithFields(log.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"error":      err.Error(),
		}).Warn("Zero-shot classification failed, using local model")
		return entity.ClassificationResult{}, false
	}

	category := entity.Category(remote.Category)
	tokens := nlp.Tokenize(normalized)

	return entity.ClassificationResult{
		Category:     category,
		Priority:     s.priorityFor(normalized, tokens),
		Confidence:   remote.Confidence,
		AssignedTeam: s.teamFor(category),
		Method:       "zero-shot",
		MLConfidence: remote.Confidence,
		TopPredictions: []entity.LabelConfidence{
			{Label: category, Confidence: remote.Confidence},
		},
	}, true
}

func (s *classifierService) fallbackResult() entity.ClassificationResult {
	return entity.ClassificationResult{
		Category:       entity.CategoryOther,
		Priority:       entity.PriorityMedium,
		Confidence:     0,
		AssignedTeam:   s.teamFor(entity.CategoryOther),
		Method:         "fallback",
		KeywordMatches: nil,
		TopPredictions: nil,
	}
}

func (s *classifierService) cachedResult(ctx context.Context, normalized string) (entity.ClassificationResult, bool) {
	if s.cache == nil {
		return entity.ClassificationResult{}, false
	}

	payload, ok := s.cache.GetResult(ctx, cacheKey(normalized))
	if !ok {
		return entity.ClassificationResult{}, false
	}

	var result entity.ClassificationResult
	if err := jsoniter.UnmarshalFromString(payload, &result); err != nil {
		return entity.ClassificationResult{}, false
	}

	return result, true
}

func (s *classifierService) storeResult(ctx context.Context, normalized string, result entity.ClassificationResult) {
	if s.cache == nil {
		return
	}

	payload, err := jsoniter.MarshalToString(result)
	if err != nil {
		return
	}

	if err := s.cache.SetResult(ctx, cacheKey(normalized), payload, cacheExpiration); err != nil {
		s.log.WithFields(log.Fields{
			"error": err.Error(),
		}).Warn("Failed to cache classification result")
	}
}

func cacheKey(normalized string) string {
	sum := sha256.Sum256([]byte(normalized))
	return cacheKeyPrefix + hex.EncodeToString(sum[:])
}

// Retrain folds validated examples into the corpus and swaps in a
// freshly trained model. Readers keep using the old model until the
// swap; a failed retrain leaves the current model untouched.
func (s *classifierService) Retrain(ctx context.Context, req triage.RetrainRequest) (triage.RetrainResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if err := s.validator.Struct(&req); err != nil {
		s.log.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Retrain request failed validation")
		return triage.RetrainResponse{}, triage.ErrInvalidExample
	}

	examples := make([]entity.TrainingExample, 0, len(req.Examples))
	for _, example := range req.Examples {
		if strings.TrimSpace(example.Text) == "" {
			return triage.RetrainResponse{}, triage.ErrInvalidExample
		}
		if !entity.IsValidCategory(example.Category) {
			return triage.RetrainResponse{}, triage.ErrUnknownCategory
		}
		if example.Category == string(entity.CategoryOther) {
			return triage.RetrainResponse{}, triage.ErrFallbackNotAllowed
		}
		examples = append(examples, entity.TrainingExample{
			Text:     example.Text,
			Category: entity.Category(example.Category),
		})
	}

	s.retrainMu.Lock()
	defer s.retrainMu.Unlock()

	corpus := append(append([]entity.TrainingExample(nil), s.corpus...), examples...)
	model := s.trainModel(corpus)
	if model == nil || model.SampleCount() == 0 {
		return triage.RetrainResponse{}, triage.ErrModelUnavailable
	}

	s.corpus = corpus
	s.model.Store(model)
	s.saveModel(model)

	s.log.WithFields(log.Fields{
		"request_id": requestID,
		"added":      len(examples),
		"samples":    model.SampleCount(),
	}).Info("Classifier model retrained")

	return triage.RetrainResponse{Success: true, SampleCount: model.SampleCount()}, nil
}

func toPercent(value float64) int {
	return int(math.Round(math.Min(math.Max(value, 0), 1) * 100))
}
