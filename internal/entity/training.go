package entity

// TrainingExample is one labeled document of the bundled corpus.
// Examples are immutable; retraining appends new ones and rebuilds
// the model wholesale.
type TrainingExample struct {
	Text     string   `json:"text"`
	Category Category `json:"category"`
}
