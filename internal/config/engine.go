package config

import (
	"fmt"

	"HelpdeskGolang/database/postgres"
	knowledgeRepository "HelpdeskGolang/internal/api/knowledge/repository"
	knowledgeService "HelpdeskGolang/internal/api/knowledge/service"
	"HelpdeskGolang/internal/api/triage"
	triageService "HelpdeskGolang/internal/api/triage/service"
	"HelpdeskGolang/pkg/gemini"
	"HelpdeskGolang/pkg/redis"
	"HelpdeskGolang/pkg/s3"
	"HelpdeskGolang/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type EngineOption func(*Engine) error

// Engine owns the wired triage and knowledge services plus their
// shared infrastructure. Construction is two-phase: options collect
// infrastructure, RegisterServices builds the domain services on top.
type Engine struct {
	db           *sqlx.DB
	log          *logrus.Logger
	validator    *validator.Validate
	utils        utils.IUtils
	redisServer  redis.IRedis
	geminiClient gemini.IGemini
	s3Client     s3.ItfS3
	triageConfig triage.Config

	classifier triageService.IClassifierService
	knowledge  knowledgeService.ISearchService
}

func NewEngine(options ...EngineOption) (*Engine, error) {
	engine := &Engine{
		triageConfig: triage.DefaultConfig(),
	}

	for _, option := range options {
		if err := option(engine); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if engine.log == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if engine.validator == nil {
		return nil, fmt.Errorf("validator is required")
	}

	return engine, nil
}

func WithLogger(logger *logrus.Logger) EngineOption {
	return func(e *Engine) error {
		e.log = logger
		return nil
	}
}

func WithValidator(validate *validator.Validate) EngineOption {
	return func(e *Engine) error {
		e.validator = validate
		return nil
	}
}

func WithUtils() EngineOption {
	return func(e *Engine) error {
		e.utils = utils.New()
		return nil
	}
}

func WithTriageConfig(cfg triage.Config) EngineOption {
	return func(e *Engine) error {
		e.triageConfig = cfg
		return nil
	}
}

func WithDatabase() EngineOption {
	return func(e *Engine) error {
		db, err := postgres.New()
		if err != nil {
			if e.log != nil {
				e.log.Errorf("Failed to connect to database: %v", err)
			}
			return fmt.Errorf("failed to create database connection: %w", err)
		}
		e.db = db
		return nil
	}
}

func WithRedisServer(redisServer redis.IRedis) EngineOption {
	return func(e *Engine) error {
		e.redisServer = redisServer
		return nil
	}
}

func WithS3Client() EngineOption {
	return func(e *Engine) error {
		client, err := s3.New()
		if err != nil {
			if e.log != nil {
				e.log.Errorf("Failed to initialize S3 client: %v", err)
			}
			return fmt.Errorf("failed to create S3 client: %w", err)
		}
		e.s3Client = client
		return nil
	}
}

func WithGeminiClient() EngineOption {
	return func(e *Engine) error {
		client, err := gemini.NewGeminiClient()
		if err != nil {
			if e.log != nil {
				e.log.Errorf("Failed to create Gemini client: %v", err)
			}
			return fmt.Errorf("failed to create Gemini client: %w", err)
		}
		e.geminiClient = client
		return nil
	}
}

// RegisterServices builds the domain services. The classifier trains
// (or loads) its model here, so a broken corpus fails startup instead
// of the first request.
func (e *Engine) RegisterServices() error {
	if e.utils == nil {
		e.utils = utils.New()
	}

	snapshots := triageService.NewFileSnapshotStore(e.log, e.s3Client)

	classifier, err := triageService.NewClassifierService(e.log, e.validator, e.triageConfig, snapshots, e.redisServer, e.geminiClient)
	if err != nil {
		return err
	}
	e.classifier = classifier

	var repo knowledgeRepository.Repository
	if e.db != nil {
		repo = knowledgeRepository.New(e.db, e.log)
	}
	e.knowledge = knowledgeService.New(e.log, e.validator, e.utils, repo, classifier)

	return nil
}

func (e *Engine) Classifier() triageService.IClassifierService {
	return e.classifier
}

func (e *Engine) Knowledge() knowledgeService.ISearchService {
	return e.knowledge
}
