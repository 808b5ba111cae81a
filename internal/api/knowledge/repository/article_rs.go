package knowledgeRepository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"HelpdeskGolang/internal/api/knowledge"
	"HelpdeskGolang/internal/entity"
	contextPkg "HelpdeskGolang/pkg/context"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

func (r *articlesRepository) CreateArticle(ctx context.Context, article entity.KnowledgeArticle) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":           article.ID,
		"title":        article.Title,
		"category":     article.Category,
		"keywords":     pq.Array(article.Keywords),
		"problem":      article.Problem,
		"solution":     article.Solution,
		"steps":        pq.Array(article.Steps),
		"views":        article.Views,
		"helpful":      article.Helpful,
		"not_helpful":  article.NotHelpful,
		"is_published": article.IsPublished,
		"created_at":   article.CreatedAt,
		"updated_at":   article.UpdatedAt,
	}

	query, args, err := sqlx.Named(queryCreateArticle, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateArticle")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating knowledge article")
		return err
	}

	return nil
}

func (r *articlesRepository) GetArticleByID(ctx context.Context, id string) (entity.KnowledgeArticle, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var article entity.KnowledgeArticle

	query, args, err := sqlx.Named(queryGetArticleByID, map[string]interface{}{
		"id": id,
	})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetArticleByID named query preparation err")
		return entity.KnowledgeArticle{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&article); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"article_id": id,
			}).Warn("GetArticleByID no rows found")
			return entity.KnowledgeArticle{}, knowledge.ErrArticleNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetArticleByID execution err")
		return entity.KnowledgeArticle{}, err
	}

	return article, nil
}

func (r *articlesRepository) GetPublishedArticles(ctx context.Context, category string, limit int) ([]entity.KnowledgeArticle, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var articles []entity.KnowledgeArticle

	if limit <= 0 {
		limit = 50
	}

	namedQuery := queryGetPublishedArticles
	argsKV := map[string]interface{}{
		"limit": limit,
	}
	if category != "" {
		namedQuery = queryGetPublishedArticlesByCategory
		argsKV["category"] = category
	}

	query, args, err := sqlx.Named(namedQuery, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetPublishedArticles named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &articles, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetPublishedArticles execution err")
		return nil, err
	}

	return articles, nil
}

func (r *articlesRepository) UpdateArticle(ctx context.Context, article entity.KnowledgeArticle) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":         article.ID,
		"title":      article.Title,
		"category":   article.Category,
		"keywords":   pq.Array(article.Keywords),
		"problem":    article.Problem,
		"solution":   article.Solution,
		"steps":      pq.Array(article.Steps),
		"updated_at": time.Now(),
	}

	query, args, err := sqlx.Named(queryUpdateArticle, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateArticle named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateArticle execution err")
		return err
	}

	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return knowledge.ErrArticleNotFound
	}

	return nil
}

func (r *articlesRepository) IncrementViews(ctx context.Context, id string) error {
	return r.execCounter(ctx, queryIncrementViews, id)
}

func (r *articlesRepository) AddFeedback(ctx context.Context, id string, helpful bool) error {
	if helpful {
		return r.execCounter(ctx, queryAddHelpful, id)
	}
	return r.execCounter(ctx, queryAddNotHelpful, id)
}

func (r *articlesRepository) execCounter(ctx context.Context, namedQuery, id string) error {
	requestID := contextPkg.GetRequestID(ctx)

	query, args, err := sqlx.Named(namedQuery, map[string]interface{}{
		"id": id,
	})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Counter named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Counter update execution err")
		return err
	}

	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return knowledge.ErrArticleNotFound
	}

	return nil
}

func (r *articlesRepository) CountArticles(ctx context.Context) (int, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var total int

	query, args, err := sqlx.Named(queryCountArticles, map[string]interface{}{})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CountArticles named query preparation err")
		return 0, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).Scan(&total); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CountArticles execution err")
		return 0, err
	}

	return total, nil
}
