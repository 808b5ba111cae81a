package tfidf

import (
	"math"

	"HelpdeskGolang/pkg/nlp"
)

// Corpus holds pre-computed term and document frequencies for a fixed
// candidate set, so scoring a query against each document is cheap.
type Corpus struct {
	termFrequencies []map[string]float64
	docFrequencies  map[string]int
	totalDocuments  int
}

func NewCorpus(documents []string) *Corpus {
	corpus := &Corpus{
		termFrequencies: make([]map[string]float64, len(documents)),
		docFrequencies:  make(map[string]int),
		totalDocuments:  len(documents),
	}

	for i, document := range documents {
		tokens := nlp.Tokenize(document)

		counts := make(map[string]float64, len(tokens))
		for _, token := range tokens {
			counts[token]++
		}

		if len(tokens) > 0 {
			for token := range counts {
				counts[token] /= float64(len(tokens))
				corpus.docFrequencies[token]++
			}
		}

		corpus.termFrequencies[i] = counts
	}

	return corpus
}

func (c *Corpus) Len() int {
	return c.totalDocuments
}

// Score sums tf×idf over the query terms for document index. Unknown
// documents or empty queries score zero.
func (c *Corpus) Score(query string, index int) float64 {
	if index < 0 || index >= c.totalDocuments {
		return 0.0
	}

	score := 0.0
	for _, token := range nlp.Tokenize(query) {
		tf, ok := c.termFrequencies[index][token]
		if !ok {
			continue
		}

		df := c.docFrequencies[token]
		idf := math.Log(float64(c.totalDocuments+1) / float64(df+1))
		score += tf * idf
	}

	return score
}
