package bayes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLabels = []string{"VPN Issues", "Password Reset"}

func trainedModel() *Model {
	model := New(testLabels, 1.0)
	model.Learn("cannot connect to vpn from home", "VPN Issues")
	model.Learn("vpn tunnel keeps timing out", "VPN Issues")
	model.Learn("forgot my password and cannot log in", "Password Reset")
	model.Learn("need a password reset for my account", "Password Reset")
	return model
}

func TestPredictUntrained(t *testing.T) {
	model := New(testLabels, 1.0)

	predictions := model.Predict("anything at all")

	require.Len(t, predictions, len(testLabels))
	for _, prediction := range predictions {
		assert.InDelta(t, 1.0/float64(len(testLabels)), prediction.Probability, 0.001)
	}
}

func TestPredictTrained(t *testing.T) {
	model := trainedModel()

	predictions := model.Predict("vpn connection dropped")
	require.NotEmpty(t, predictions)
	assert.Equal(t, "VPN Issues", predictions[0].Label)

	predictions = model.Predict("password reset please")
	require.NotEmpty(t, predictions)
	assert.Equal(t, "Password Reset", predictions[0].Label)

	total := 0.0
	for _, prediction := range predictions {
		total += prediction.Probability
	}
	assert.InDelta(t, 1.0, total, 0.001)
}

func TestPredictSortedDescending(t *testing.T) {
	model := trainedModel()

	predictions := model.Predict("vpn password")
	for i := 1; i < len(predictions); i++ {
		assert.GreaterOrEqual(t, predictions[i-1].Probability, predictions[i].Probability)
	}
}

func TestLearnIgnoresUnknownLabel(t *testing.T) {
	model := New(testLabels, 1.0)

	model.Learn("some text", "No Such Label")

	assert.Equal(t, 0, model.SampleCount())
}

func TestSampleCount(t *testing.T) {
	model := trainedModel()
	assert.Equal(t, 4, model.SampleCount())
}

func TestSnapshotRoundTrip(t *testing.T) {
	model := trainedModel()

	restored, err := Restore(model.Snapshot())
	require.NoError(t, err)

	assert.Equal(t, model.SampleCount(), restored.SampleCount())

	original := model.Predict("vpn connection dropped")
	replayed := restored.Predict("vpn connection dropped")
	require.Len(t, replayed, len(original))
	for i := range original {
		assert.Equal(t, original[i].Label, replayed[i].Label)
		assert.InDelta(t, original[i].Probability, replayed[i].Probability, 0.0001)
	}
}

func TestRestoreRejectsUnknownSchema(t *testing.T) {
	snapshot := trainedModel().Snapshot()
	snapshot.SchemaVersion = 99

	_, err := Restore(snapshot)
	assert.ErrorIs(t, err, ErrSnapshotSchema)
}
