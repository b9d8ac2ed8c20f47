package leads

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/stevetowers08/leadflow-sub006/core/identity"
	"github.com/stevetowers08/leadflow-sub006/core/storage"
	"github.com/stevetowers08/leadflow-sub006/feature/leads/importer"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// MaxUploadSize is the upload ceiling. Large exports should be split rather
// than streamed; a single oversized request is rejected before any parsing.
const MaxUploadSize = 10 << 20

// Service handles lead import operations.
type Service struct {
	importer *importer.Importer
	client   storage.Client
	bucket   string
	logger   *zap.Logger
}

// NewService creates a new leads service. The storage client is optional;
// without it uploads are imported but not archived.
func NewService(store importer.Store, actors identity.Provider, client storage.Client, bucket string, logger *zap.Logger) *Service {
	return &Service{
		importer: importer.New(store, actors, logger),
		client:   client,
		bucket:   bucket,
		logger:   logger,
	}
}

// Import validates an uploaded file and runs it through the import pipeline.
// Admission failures (wrong extension, oversized payload) return an error
// before any row is touched; past admission the run always yields a Result.
func (s *Service) Import(ctx context.Context, filename string, content []byte, opts importer.Options) (*importer.Result, error) {
	if !strings.EqualFold(filepath.Ext(filename), ".csv") {
		return nil, fmt.Errorf("unsupported file type %q, expected .csv", filepath.Ext(filename))
	}
	if len(content) > MaxUploadSize {
		return nil, fmt.Errorf("file exceeds the %d MB upload limit", MaxUploadSize>>20)
	}

	result := s.importer.Run(ctx, content, opts)

	s.archive(ctx, filename, content)

	return result, nil
}

// archive keeps a copy of the raw upload in object storage for audits and
// re-runs. Best effort: a storage outage must never fail an import that
// already committed.
func (s *Service) archive(ctx context.Context, filename string, content []byte) {
	if s.client == nil {
		return
	}

	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		s.logger.Warn("Upload archive skipped, bucket check failed", zap.Error(err))
		return
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			s.logger.Warn("Upload archive skipped, bucket creation failed", zap.Error(err))
			return
		}
	}

	objectName := fmt.Sprintf("imports/%s/%s_%s",
		time.Now().UTC().Format("2006-01-02"), uuid.NewString(), filepath.Base(filename))

	_, err = s.client.PutObject(ctx, s.bucket, objectName,
		bytes.NewReader(content), int64(len(content)),
		minio.PutObjectOptions{ContentType: "text/csv"})
	if err != nil {
		s.logger.Warn("Upload archive failed", zap.String("object", objectName), zap.Error(err))
		return
	}

	s.logger.Info("Upload archived", zap.String("object", objectName))
}
