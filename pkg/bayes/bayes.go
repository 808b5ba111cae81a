package bayes

import (
	"math"
	"sort"

	"HelpdeskGolang/pkg/nlp"
)

// Prediction is one label with its normalized probability.
type Prediction struct {
	Label       string  `json:"label"`
	Probability float64 `json:"probability"`
}

// Model is a multinomial naive Bayes text classifier with Laplace
// smoothing. Training registers both the raw and the stemmed form of
// each document, so inference matches either surface or root tokens.
// A trained Model is immutable and safe for concurrent readers.
type Model struct {
	alpha       float64
	labels      []string
	labelCounts map[string]int
	tokenCounts map[string]map[string]int
	totalTokens map[string]int
	vocab       map[string]struct{}
	totalDocs   int
}

func New(labels []string, alpha float64) *Model {
	if alpha <= 0 {
		alpha = 1.0
	}

	m := &Model{
		alpha:       alpha,
		labels:      append([]string(nil), labels...),
		labelCounts: make(map[string]int),
		tokenCounts: make(map[string]map[string]int),
		totalTokens: make(map[string]int),
		vocab:       make(map[string]struct{}),
	}
	for _, label := range labels {
		m.tokenCounts[label] = make(map[string]int)
	}

	return m
}

func (m *Model) Labels() []string {
	return append([]string(nil), m.labels...)
}

func (m *Model) SampleCount() int {
	return m.totalDocs
}

// Learn registers one labeled document. Unknown labels are ignored so
// the fallback sink never accumulates supervised weight.
func (m *Model) Learn(text, label string) {
	counts, ok := m.tokenCounts[label]
	if !ok {
		return
	}

	tokens := nlp.Tokenize(text)
	if len(tokens) == 0 {
		return
	}

	m.labelCounts[label]++
	m.totalDocs++

	for _, token := range tokens {
		m.addToken(counts, label, token)
	}
	for _, token := range nlp.StemTokens(tokens) {
		m.addToken(counts, label, token)
	}
}

func (m *Model) addToken(counts map[string]int, label, token string) {
	if token == "" {
		return
	}
	counts[token]++
	m.totalTokens[label]++
	m.vocab[token] = struct{}{}
}

// Predict returns every label with its probability, ordered highest
// first. Probabilities sum to 1 across the label set. Empty or
// unrecognized text yields a uniform distribution.
func (m *Model) Predict(text string) []Prediction {
	tokens := nlp.Tokenize(text)

	if len(tokens) == 0 || m.totalDocs == 0 {
		return m.uniform()
	}

	freq := make(map[string]int, len(tokens)*2)
	for _, token := range tokens {
		freq[token]++
	}
	for _, token := range nlp.StemTokens(tokens) {
		freq[token]++
	}

	logScores := make([]float64, len(m.labels))
	vocabSize := float64(len(m.vocab))

	for i, label := range m.labels {
		prior := (float64(m.labelCounts[label]) + m.alpha) /
			(float64(m.totalDocs) + m.alpha*float64(len(m.labels)))
		score := math.Log(prior)

		denominator := float64(m.totalTokens[label]) + m.alpha*vocabSize
		for token, count := range freq {
			numerator := float64(m.tokenCounts[label][token]) + m.alpha
			score += float64(count) * math.Log(numerator/denominator)
		}
		logScores[i] = score
	}

	return m.normalize(logScores)
}

// normalize applies a numerically stable softmax over log scores.
func (m *Model) normalize(logScores []float64) []Prediction {
	maxScore := logScores[0]
	for _, score := range logScores[1:] {
		if score > maxScore {
			maxScore = score
		}
	}

	sum := 0.0
	expScores := make([]float64, len(logScores))
	for i, score := range logScores {
		expScores[i] = math.Exp(score - maxScore)
		sum += expScores[i]
	}

	predictions := make([]Prediction, len(m.labels))
	for i, label := range m.labels {
		predictions[i] = Prediction{
			Label:       label,
			Probability: expScores[i] / sum,
		}
	}

	sort.SliceStable(predictions, func(i, j int) bool {
		return predictions[i].Probability > predictions[j].Probability
	})

	return predictions
}

func (m *Model) uniform() []Prediction {
	predictions := make([]Prediction, len(m.labels))
	p := 1.0 / float64(len(m.labels))
	for i, label := range m.labels {
		predictions[i] = Prediction{Label: label, Probability: p}
	}
	return predictions
}
