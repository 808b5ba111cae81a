package knowledgeService

import (
	"io"
	"testing"

	"HelpdeskGolang/internal/api/knowledge"
	"HelpdeskGolang/internal/api/triage"
	triageService "HelpdeskGolang/internal/api/triage/service"
	"HelpdeskGolang/internal/entity"
	"HelpdeskGolang/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/context"
)

func newTestSearchService(t *testing.T) ISearchService {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	classifier, err := triageService.NewClassifierService(logger, validator.New(), triage.DefaultConfig(), nil, nil, nil)
	require.NoError(t, err)

	return New(logger, validator.New(), utils.New(), nil, classifier)
}

func TestSearchEmptyQuery(t *testing.T) {
	svc := newTestSearchService(t)

	results := svc.Search(context.Background(), "   ", knowledge.SeedArticles())

	assert.Empty(t, results)
}

func TestSearchNoCandidates(t *testing.T) {
	svc := newTestSearchService(t)

	results := svc.Search(context.Background(), "password reset", nil)

	assert.Empty(t, results)
}

func TestSearchPasswordQuery(t *testing.T) {
	svc := newTestSearchService(t)

	results := svc.Search(context.Background(), "I forgot my password and cannot login", knowledge.SeedArticles())

	require.NotEmpty(t, results)
	assert.Equal(t, "How to Reset Your Password", results[0].Title)
	assert.Greater(t, results[0].Relevance, 0.0)
	assert.LessOrEqual(t, results[0].Relevance, 1.0)
	assert.Greater(t, results[0].MatchDetails.KeywordMatchCount, 0)
}

func TestSearchConfidentCategoryNarrowsCandidates(t *testing.T) {
	svc := newTestSearchService(t)

	// The query classifies as a confident hardware request, so only
	// the two hardware articles stay in the running.
	results := svc.Search(context.Background(), "laptop printer hardware not working", knowledge.SeedArticles())

	require.NotEmpty(t, results)
	assert.LessOrEqual(t, len(results), 2)
	for _, result := range results {
		assert.Equal(t, string(entity.CategoryHardwareIssue), result.Category)
	}
}

func TestSearchResultsSortedAndBounded(t *testing.T) {
	svc := newTestSearchService(t)

	results := svc.Search(context.Background(), "laptop printer hardware not working", knowledge.SeedArticles())

	assert.LessOrEqual(t, len(results), 5)
	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i-1].Relevance, results[i].Relevance)
	}
	for _, result := range results {
		assert.Greater(t, result.Relevance, 0.0)
		assert.LessOrEqual(t, result.Relevance, 1.0)
	}
}

func TestSearchVPNQueryFindsVPNArticle(t *testing.T) {
	svc := newTestSearchService(t)

	results := svc.Search(context.Background(), "cannot connect to vpn from home", knowledge.SeedArticles())

	require.NotEmpty(t, results)
	assert.Equal(t, "VPN Connection Issues", results[0].Title)
}

func TestSearchArticlesWithoutRepository(t *testing.T) {
	svc := newTestSearchService(t)

	response, err := svc.SearchArticles(context.Background(), "password reset")

	require.NoError(t, err)
	assert.Empty(t, response.Results)
}

func TestListArticlesWithoutRepository(t *testing.T) {
	svc := newTestSearchService(t)

	articles, err := svc.ListArticles(context.Background(), "")

	require.NoError(t, err)
	assert.Empty(t, articles)
}

func TestGetArticleWithoutRepository(t *testing.T) {
	svc := newTestSearchService(t)

	_, err := svc.GetArticle(context.Background(), "some-id")

	assert.ErrorIs(t, err, knowledge.ErrArticleNotFound)
}
