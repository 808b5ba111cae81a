package knowledgeService

import (
	"time"

	"HelpdeskGolang/internal/api/knowledge"
	"HelpdeskGolang/internal/entity"
	contextPkg "HelpdeskGolang/pkg/context"
	"HelpdeskGolang/pkg/log"

	"golang.org/x/net/context"
)

func (s *searchService) ListArticles(ctx context.Context, category string) ([]entity.KnowledgeArticle, error) {
	if s.repo == nil {
		return []entity.KnowledgeArticle{}, nil
	}

	client, err := s.repo.NewClient(false)
	if err != nil {
		return nil, err
	}

	return client.Articles.GetPublishedArticles(ctx, category, 0)
}

// GetArticle fetches one article and bumps its view counter. A failed
// counter bump does not fail the read.
func (s *searchService) GetArticle(ctx context.Context, id string) (entity.KnowledgeArticle, error) {
	if s.repo == nil {
		return entity.KnowledgeArticle{}, knowledge.ErrArticleNotFound
	}

	client, err := s.repo.NewClient(false)
	if err != nil {
		return entity.KnowledgeArticle{}, err
	}

	article, err := client.Articles.GetArticleByID(ctx, id)
	if err != nil {
		return entity.KnowledgeArticle{}, err
	}

	if err := client.Articles.IncrementViews(ctx, id); err != nil {
		s.log.WithFields(log.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"article_id": id,
			"error":      err.Error(),
		}).Warn("Failed to bump article view counter")
	} else {
		article.Views++
	}

	return article, nil
}

func (s *searchService) CreateArticle(ctx context.Context, req knowledge.CreateArticleRequest) (entity.KnowledgeArticle, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if err := s.validator.Struct(&req); err != nil {
		s.log.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Article payload failed validation")
		return entity.KnowledgeArticle{}, knowledge.ErrInvalidArticleData
	}

	if !entity.IsValidCategory(req.Category) {
		return entity.KnowledgeArticle{}, knowledge.ErrInvalidArticleData
	}

	if s.repo == nil {
		return entity.KnowledgeArticle{}, knowledge.ErrCreateArticle
	}

	id, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate article id")
		return entity.KnowledgeArticle{}, knowledge.ErrCreateArticle
	}

	now := time.Now().UTC()
	article := entity.KnowledgeArticle{
		ID:          id,
		Title:       req.Title,
		Category:    req.Category,
		Keywords:    req.Keywords,
		Problem:     req.Problem,
		Solution:    req.Solution,
		Steps:       req.Steps,
		IsPublished: true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	client, err := s.repo.NewClient(false)
	if err != nil {
		return entity.KnowledgeArticle{}, err
	}

	if err := client.Articles.CreateArticle(ctx, article); err != nil {
		return entity.KnowledgeArticle{}, knowledge.ErrCreateArticle
	}

	return article, nil
}

func (s *searchService) UpdateArticle(ctx context.Context, id string, req knowledge.UpdateArticleRequest) (entity.KnowledgeArticle, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if err := s.validator.Struct(&req); err != nil {
		s.log.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Article update failed validation")
		return entity.KnowledgeArticle{}, knowledge.ErrInvalidArticleData
	}

	if req.Category != "" && !entity.IsValidCategory(req.Category) {
		return entity.KnowledgeArticle{}, knowledge.ErrInvalidArticleData
	}

	if s.repo == nil {
		return entity.KnowledgeArticle{}, knowledge.ErrArticleNotFound
	}

	client, err := s.repo.NewClient(true)
	if err != nil {
		return entity.KnowledgeArticle{}, err
	}
	defer client.Rollback()

	article, err := client.Articles.GetArticleByID(ctx, id)
	if err != nil {
		return entity.KnowledgeArticle{}, err
	}

	if req.Title != "" {
		article.Title = req.Title
	}
	if req.Category != "" {
		article.Category = req.Category
	}
	if req.Problem != "" {
		article.Problem = req.Problem
	}
	if req.Solution != "" {
		article.Solution = req.Solution
	}
	if req.Keywords != nil {
		article.Keywords = req.Keywords
	}
	if req.Steps != nil {
		article.Steps = req.Steps
	}
	article.UpdatedAt = time.Now().UTC()

	if err := client.Articles.UpdateArticle(ctx, article); err != nil {
		return entity.KnowledgeArticle{}, knowledge.ErrUpdateArticle
	}

	if err := client.Commit(); err != nil {
		return entity.KnowledgeArticle{}, knowledge.ErrUpdateArticle
	}

	// The transaction is done after Commit; the merged article is the
	// committed state, so no follow-up read is needed.
	return article, nil
}

func (s *searchService) ArticleFeedback(ctx context.Context, id string, helpful bool) error {
	if s.repo == nil {
		return knowledge.ErrArticleNotFound
	}

	client, err := s.repo.NewClient(false)
	if err != nil {
		return err
	}

	return client.Articles.AddFeedback(ctx, id, helpful)
}

// EnsureSeedArticles loads the starter articles into an empty table so
// a fresh install has something to search.
func (s *searchService) EnsureSeedArticles(ctx context.Context) error {
	if s.repo == nil {
		return nil
	}

	client, err := s.repo.NewClient(false)
	if err != nil {
		return err
	}

	count, err := client.Articles.CountArticles(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, article := range knowledge.SeedArticles() {
		id, err := s.utils.NewULIDFromTimestamp(time.Now())
		if err != nil {
			return err
		}
		article.ID = id
		article.CreatedAt = time.Now().UTC()
		article.UpdatedAt = article.CreatedAt

		if err := client.Articles.CreateArticle(ctx, article); err != nil {
			return err
		}
	}

	s.log.WithFields(log.Fields{
		"articles": len(knowledge.SeedArticles()),
	}).Info("Seeded knowledge base")

	return nil
}
