package triageService

import (
	"os"
	"path/filepath"

	"HelpdeskGolang/pkg/bayes"
	"HelpdeskGolang/pkg/log"
	"HelpdeskGolang/pkg/s3"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

const (
	defaultSnapshotPath = "./storage/model/classifier.json"
	snapshotObjectKey   = "model/classifier.json"
)

type ISnapshotStore interface {
	Save(snapshot bayes.Snapshot) error
	Load() (bayes.Snapshot, error)
}

type fileSnapshotStore struct {
	log    *logrus.Logger
	path   string
	bucket s3.ItfS3
}

// NewFileSnapshotStore persists model snapshots as JSON on local disk,
// with an optional mirrored copy in S3. Pass nil for bucket to keep
// snapshots local only.
func NewFileSnapshotStore(logger *logrus.Logger, bucket s3.ItfS3) ISnapshotStore {
	path := os.Getenv("MODEL_SNAPSHOT_PATH")
	if path == "" {
		path = defaultSnapshotPath
	}

	return &fileSnapshotStore{
		log:    logger,
		path:   path,
		bucket: bucket,
	}
}

func (f *fileSnapshotStore) Save(snapshot bayes.Snapshot) error {
	payload, err := jsoniter.Marshal(snapshot)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return err
	}

	// Write-then-rename keeps a readable snapshot on disk even when a
	// save is interrupted halfway.
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, payload, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return err
	}

	if f.bucket != nil {
		if _, err := f.bucket.UploadSnapshot(snapshotObjectKey, payload); err != nil {
			f.log.WithFields(log.Fields{
				"error": err.Error(),
				"key":   snapshotObjectKey,
			}).Error("Failed to mirror model snapshot to S3")
		}
	}

	return nil
}

func (f *fileSnapshotStore) Load() (bayes.Snapshot, error) {
	var snapshot bayes.Snapshot

	payload, err := os.ReadFile(f.path)
	if err != nil && f.bucket != nil {
		payload, err = f.bucket.DownloadSnapshot(snapshotObjectKey)
	}
	if err != nil {
		return snapshot, err
	}

	if err := jsoniter.Unmarshal(payload, &snapshot); err != nil {
		return snapshot, err
	}

	return snapshot, nil
}
