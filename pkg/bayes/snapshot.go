package bayes

import "errors"

const SnapshotSchemaVersion = 2

var ErrSnapshotSchema = errors.New("unsupported snapshot schema version")

// Snapshot is the serializable form of a trained model. The schema
// version gates loading so an old process never restores a snapshot
// it cannot interpret.
type Snapshot struct {
	SchemaVersion int                       `json:"schema_version"`
	Alpha         float64                   `json:"alpha"`
	Labels        []string                  `json:"labels"`
	LabelCounts   map[string]int            `json:"label_counts"`
	TokenCounts   map[string]map[string]int `json:"token_counts"`
	TotalTokens   map[string]int            `json:"total_tokens"`
	Vocab         []string                  `json:"vocab"`
	TotalDocs     int                       `json:"total_docs"`
}

func (m *Model) Snapshot() Snapshot {
	vocab := make([]string, 0, len(m.vocab))
	for token := range m.vocab {
		vocab = append(vocab, token)
	}

	return Snapshot{
		SchemaVersion: SnapshotSchemaVersion,
		Alpha:         m.alpha,
		Labels:        append([]string(nil), m.labels...),
		LabelCounts:   m.labelCounts,
		TokenCounts:   m.tokenCounts,
		TotalTokens:   m.totalTokens,
		Vocab:         vocab,
		TotalDocs:     m.totalDocs,
	}
}

// Restore rebuilds a model from a snapshot. The restored model
// classifies identically to the one that produced the snapshot.
func Restore(snapshot Snapshot) (*Model, error) {
	if snapshot.SchemaVersion != SnapshotSchemaVersion {
		return nil, ErrSnapshotSchema
	}
	if len(snapshot.Labels) == 0 {
		return nil, errors.New("snapshot has no labels")
	}

	m := New(snapshot.Labels, snapshot.Alpha)
	m.totalDocs = snapshot.TotalDocs

	for label, count := range snapshot.LabelCounts {
		m.labelCounts[label] = count
	}
	for label, counts := range snapshot.TokenCounts {
		if _, ok := m.tokenCounts[label]; !ok {
			continue
		}
		for token, count := range counts {
			m.tokenCounts[label][token] = count
		}
	}
	for label, total := range snapshot.TotalTokens {
		m.totalTokens[label] = total
	}
	for _, token := range snapshot.Vocab {
		m.vocab[token] = struct{}{}
	}

	return m, nil
}
