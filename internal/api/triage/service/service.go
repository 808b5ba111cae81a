package triageService

import (
	"sync"
	"sync/atomic"

	"HelpdeskGolang/internal/api/triage"
	"HelpdeskGolang/internal/entity"
	"HelpdeskGolang/pkg/bayes"
	"HelpdeskGolang/pkg/gemini"
	"HelpdeskGolang/pkg/log"
	"HelpdeskGolang/pkg/redis"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const smoothingAlpha = 1.0

type IClassifierService interface {
	Classify(ctx context.Context, text string) entity.ClassificationResult
	Retrain(ctx context.Context, req triage.RetrainRequest) (triage.RetrainResponse, error)
}

type classifierService struct {
	log       *logrus.Logger
	validator *validator.Validate
	cfg       triage.Config
	snapshots ISnapshotStore
	cache     redis.IRedis
	zeroShot  gemini.IGemini

	// model holds the trained classifier. Readers load it without
	// locking; retrain builds a replacement and swaps it whole.
	model     atomic.Pointer[bayes.Model]
	retrainMu sync.Mutex
	corpus    []entity.TrainingExample
}

// NewClassifierService trains or loads the classifier model before
// returning. A service that cannot produce a model is not constructed:
// the returned error is fatal to the owning process.
func NewClassifierService(
	logger *logrus.Logger,
	validate *validator.Validate,
	cfg triage.Config,
	snapshots ISnapshotStore,
	cache redis.IRedis,
	zeroShot gemini.IGemini,
) (IClassifierService, error) {
	if len(cfg.Corpus) == 0 {
		return nil, triage.ErrModelUnavailable
	}

	s := &classifierService{
		log:       logger,
		validator: validate,
		cfg:       cfg,
		snapshots: snapshots,
		cache:     cache,
		zeroShot:  zeroShot,
		corpus:    append([]entity.TrainingExample(nil), cfg.Corpus...),
	}

	model, loaded := s.loadModel()
	if model == nil {
		model = s.trainModel(s.corpus)
		if model == nil || model.SampleCount() == 0 {
			return nil, triage.ErrModelUnavailable
		}
		s.saveModel(model)
	}
	s.model.Store(model)

	s.log.WithFields(log.Fields{
		"samples":       model.SampleCount(),
		"from_snapshot": loaded,
	}).Info("Classifier model ready")

	return s, nil
}

func (s *classifierService) trainModel(corpus []entity.TrainingExample) *bayes.Model {
	labels := make([]string, 0, len(entity.Categories()))
	for _, category := range entity.Categories() {
		labels = append(labels, string(category))
	}

	model := bayes.New(labels, smoothingAlpha)
	for _, example := range corpus {
		model.Learn(example.Text, string(example.Category))
	}

	return model
}

func (s *classifierService) loadModel() (*bayes.Model, bool) {
	if s.snapshots == nil {
		return nil, false
	}

	snapshot, err := s.snapshots.Load()
	if err != nil {
		s.log.WithFields(log.Fields{
			"error": err.Error(),
		}).Warn("No usable model snapshot, training from corpus")
		return nil, false
	}

	model, err := bayes.Restore(snapshot)
	if err != nil {
		s.log.WithFields(log.Fields{
			"error": err.Error(),
		}).Warn("Snapshot restore failed, training from corpus")
		return nil, false
	}

	return model, true
}

// saveModel persists the trained model out-of-band. Persistence
// failures never propagate to callers.
func (s *classifierService) saveModel(model *bayes.Model) {
	if s.snapshots == nil {
		return
	}

	if err := s.snapshots.Save(model.Snapshot()); err != nil {
		s.log.WithFields(log.Fields{
			"error": err.Error(),
		}).Error("Failed to persist classifier model snapshot")
	}
}
