package knowledgeService

import (
	"HelpdeskGolang/internal/api/knowledge"
	knowledgeRepository "HelpdeskGolang/internal/api/knowledge/repository"
	triageService "HelpdeskGolang/internal/api/triage/service"
	"HelpdeskGolang/internal/entity"
	"HelpdeskGolang/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type ISearchService interface {
	Search(ctx context.Context, query string, candidates []entity.KnowledgeArticle) []entity.ScoredArticle
	SearchArticles(ctx context.Context, query string) (knowledge.SearchResponse, error)
	ListArticles(ctx context.Context, category string) ([]entity.KnowledgeArticle, error)
	GetArticle(ctx context.Context, id string) (entity.KnowledgeArticle, error)
	CreateArticle(ctx context.Context, req knowledge.CreateArticleRequest) (entity.KnowledgeArticle, error)
	UpdateArticle(ctx context.Context, id string, req knowledge.UpdateArticleRequest) (entity.KnowledgeArticle, error)
	ArticleFeedback(ctx context.Context, id string, helpful bool) error
	EnsureSeedArticles(ctx context.Context) error
}

type searchService struct {
	log        *logrus.Logger
	validator  *validator.Validate
	utils      utils.IUtils
	repo       knowledgeRepository.Repository
	classifier triageService.IClassifierService
}

// New builds the knowledge-base service. repo may be nil when the
// engine runs without a database; Search still works on caller-supplied
// candidates, the repository-backed operations return
// knowledge.ErrArticleNotFound.
func New(
	logger *logrus.Logger,
	validate *validator.Validate,
	util utils.IUtils,
	repo knowledgeRepository.Repository,
	classifier triageService.IClassifierService,
) ISearchService {
	return &searchService{
		log:        logger,
		validator:  validate,
		utils:      util,
		repo:       repo,
		classifier: classifier,
	}
}
