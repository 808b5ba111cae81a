package triageService

import (
	"io"
	"testing"

	"HelpdeskGolang/internal/api/triage"
	"HelpdeskGolang/internal/entity"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/context"
)

func newTestService(t *testing.T) *classifierService {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	svc, err := NewClassifierService(logger, validator.New(), triage.DefaultConfig(), nil, nil, nil)
	require.NoError(t, err)

	return svc.(*classifierService)
}

func TestClassifyEmptyText(t *testing.T) {
	svc := newTestService(t)

	for _, text := range []string{"", "   ", "\t\n", "?!.,"} {
		result := svc.Classify(context.Background(), text)

		assert.Equal(t, entity.CategoryOther, result.Category)
		assert.Equal(t, entity.PriorityMedium, result.Priority)
		assert.Equal(t, 0, result.Confidence)
		assert.Equal(t, "fallback", result.Method)
		assert.Equal(t, triage.DefaultTeam, result.AssignedTeam)
	}
}

func TestClassifyPasswordRequest(t *testing.T) {
	svc := newTestService(t)

	result := svc.Classify(context.Background(), "I forgot my password and cannot login")

	assert.Equal(t, entity.CategoryPasswordReset, result.Category)
	assert.GreaterOrEqual(t, result.Confidence, 70)
	assert.Equal(t, "IT Support", result.AssignedTeam)
	assert.NotEmpty(t, result.KeywordMatches)
	assert.LessOrEqual(t, len(result.KeywordMatches), 5)
}

func TestClassifyHardwareRequest(t *testing.T) {
	svc := newTestService(t)

	result := svc.Classify(context.Background(), "My laptop wont start or boot")

	assert.Equal(t, entity.CategoryHardwareIssue, result.Category)
	assert.Equal(t, entity.PriorityMedium, result.Priority)
	assert.Equal(t, "Hardware Team", result.AssignedTeam)
}

func TestClassifyVPNRequest(t *testing.T) {
	svc := newTestService(t)

	result := svc.Classify(context.Background(), "VPN connection timeout error")

	assert.Equal(t, entity.CategoryVPNIssues, result.Category)
	assert.Equal(t, "Network Team", result.AssignedTeam)
}

func TestClassifyGibberishFallsBack(t *testing.T) {
	svc := newTestService(t)

	result := svc.Classify(context.Background(), "xyzzy plugh gargle blorb")

	assert.Equal(t, entity.CategoryOther, result.Category)
	assert.Equal(t, "fallback", result.Method)
	assert.Equal(t, 48, result.Confidence)
	assert.Equal(t, triage.DefaultTeam, result.AssignedTeam)
}

func TestClassifyIsDeterministic(t *testing.T) {
	svc := newTestService(t)

	first := svc.Classify(context.Background(), "printer paper jam on second floor")
	second := svc.Classify(context.Background(), "printer paper jam on second floor")

	assert.Equal(t, first.Category, second.Category)
	assert.Equal(t, first.Priority, second.Priority)
	assert.Equal(t, first.Confidence, second.Confidence)
	assert.Equal(t, first.Method, second.Method)
	assert.Equal(t, first.AssignedTeam, second.AssignedTeam)
	assert.Equal(t, first.KeywordMatches, second.KeywordMatches)
}

func TestClassifyAlwaysTotal(t *testing.T) {
	svc := newTestService(t)

	for _, text := range []string{
		"hello",
		"urgent everything on fire",
		"1234567890",
		"l o n g   s p a c e d   t e x t",
	} {
		result := svc.Classify(context.Background(), text)

		assert.True(t, entity.IsValidCategory(string(result.Category)), "category %q", result.Category)
		assert.NotEmpty(t, result.Priority)
		assert.NotEmpty(t, result.AssignedTeam)
		assert.GreaterOrEqual(t, result.Confidence, 0)
		assert.LessOrEqual(t, result.Confidence, 100)
	}
}

func TestRetrainRejectsUnknownCategory(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Retrain(context.Background(), triage.RetrainRequest{
		Examples: []triage.RetrainExample{{Text: "some text", Category: "Nonsense"}},
	})

	assert.ErrorIs(t, err, triage.ErrUnknownCategory)
}

func TestRetrainRejectsFallbackCategory(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Retrain(context.Background(), triage.RetrainRequest{
		Examples: []triage.RetrainExample{{Text: "misc text", Category: "Other"}},
	})

	assert.ErrorIs(t, err, triage.ErrFallbackNotAllowed)
}

func TestRetrainRejectsShortText(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Retrain(context.Background(), triage.RetrainRequest{
		Examples: []triage.RetrainExample{{Text: "no", Category: "VPN Issues"}},
	})

	assert.ErrorIs(t, err, triage.ErrInvalidExample)
}

func TestRetrainExtendsVocabulary(t *testing.T) {
	svc := newTestService(t)

	// Unknown vocabulary with no keyword signal routes to the sink.
	before := svc.Classify(context.Background(), "toner cartridge empty")
	assert.Equal(t, entity.CategoryOther, before.Category)

	resp, err := svc.Retrain(context.Background(), triage.RetrainRequest{
		Examples: []triage.RetrainExample{
			{Text: "the toner cartridge is empty", Category: "Hardware Issues"},
			{Text: "replace the empty toner cartridge", Category: "Hardware Issues"},
			{Text: "toner ran out and prints are blank", Category: "Hardware Issues"},
		},
	})
	require.NoError(t, err)
	assert.True(t, resp.Success)

	baseline := len(triage.DefaultConfig().Corpus)
	assert.Equal(t, baseline+3, resp.SampleCount)

	after := svc.Classify(context.Background(), "toner cartridge empty")
	assert.Equal(t, entity.CategoryHardwareIssue, after.Category)
}
