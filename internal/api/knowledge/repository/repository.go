package knowledgeRepository

import (
	"HelpdeskGolang/internal/entity"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type SQLExecutor interface {
	sqlx.ExtContext
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
	Rebind(query string) string
}

func New(db *sqlx.DB, log *logrus.Logger) Repository {
	return &repository{
		DB:  db,
		log: log,
	}
}

type repository struct {
	DB  *sqlx.DB
	log *logrus.Logger
}

type Repository interface {
	NewClient(tx bool) (Client, error)
}

func (r *repository) NewClient(tx bool) (Client, error) {
	var sqlExecutor SQLExecutor
	var commitFunc, rollbackFunc func() error

	sqlExecutor = r.DB

	if tx {
		txx, err := r.DB.Beginx()
		if err != nil {
			return Client{}, err
		}

		sqlExecutor = txx
		commitFunc = txx.Commit
		rollbackFunc = txx.Rollback
	} else {
		commitFunc = func() error { return nil }
		rollbackFunc = func() error { return nil }
	}

	return Client{
		Articles: &articlesRepository{q: sqlExecutor, log: r.log},
		Commit:   commitFunc,
		Rollback: rollbackFunc,
	}, nil
}

type Client struct {
	Articles interface {
		CreateArticle(ctx context.Context, article entity.KnowledgeArticle) error
		GetArticleByID(ctx context.Context, id string) (entity.KnowledgeArticle, error)
		GetPublishedArticles(ctx context.Context, category string, limit int) ([]entity.KnowledgeArticle, error)
		UpdateArticle(ctx context.Context, article entity.KnowledgeArticle) error
		IncrementViews(ctx context.Context, id string) error
		AddFeedback(ctx context.Context, id string, helpful bool) error
		CountArticles(ctx context.Context) (int, error)
	}

	Commit   func() error
	Rollback func() error
}

type articlesRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}
