package leads

import (
	"context"
	"errors"
	"testing"

	"github.com/stevetowers08/leadflow-sub006/core/identity"
	"github.com/stevetowers08/leadflow-sub006/core/storage/mocks"
	"github.com/stevetowers08/leadflow-sub006/feature/leads/importer"
	"github.com/stevetowers08/leadflow-sub006/feature/leads/models"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var sampleCSV = []byte("Name,Email\nJane Doe,jane@example.com\n")

func newTestService(t *testing.T, client *mocks.Client) *Service {
	store := NewStore(setupTestDB(t))
	if client == nil {
		return NewService(store, identity.Static("tester"), nil, "lead-imports", zap.NewNop())
	}
	return NewService(store, identity.Static("tester"), client, "lead-imports", zap.NewNop())
}

func TestImportRejectsWrongExtension(t *testing.T) {
	svc := newTestService(t, nil)

	result, err := svc.Import(context.Background(), "leads.xlsx", sampleCSV, importer.Options{})

	assert.Nil(t, result)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ".csv")
}

func TestImportRejectsOversizedFile(t *testing.T) {
	svc := newTestService(t, nil)

	result, err := svc.Import(context.Background(), "leads.csv", make([]byte, MaxUploadSize+1), importer.Options{})

	assert.Nil(t, result)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "10 MB")
}

func TestImportWithoutArchiveClient(t *testing.T) {
	svc := newTestService(t, nil)

	result, err := svc.Import(context.Background(), "leads.csv", sampleCSV, importer.Options{})

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 1, result.Created)
}

func TestImportArchivesUpload(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "lead-imports").Return(true, nil)
	client.On("PutObject", mock.Anything, "lead-imports", mock.Anything, mock.Anything, int64(len(sampleCSV)), mock.Anything).
		Return(minio.UploadInfo{}, nil)

	svc := newTestService(t, client)

	result, err := svc.Import(context.Background(), "Leads.CSV", sampleCSV, importer.Options{})

	require.NoError(t, err)
	assert.Equal(t, 1, result.Created)
	client.AssertExpectations(t)
}

func TestImportCreatesMissingBucket(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "lead-imports").Return(false, nil)
	client.On("MakeBucket", mock.Anything, "lead-imports", mock.Anything).Return(nil)
	client.On("PutObject", mock.Anything, "lead-imports", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, nil)

	svc := newTestService(t, client)

	_, err := svc.Import(context.Background(), "leads.csv", sampleCSV, importer.Options{})

	require.NoError(t, err)
	client.AssertExpectations(t)
}

func TestImportSurvivesArchiveFailure(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "lead-imports").Return(false, errors.New("storage down"))

	svc := newTestService(t, client)

	result, err := svc.Import(context.Background(), "leads.csv", sampleCSV, importer.Options{})

	require.NoError(t, err)
	assert.Equal(t, 1, result.Created)
	client.AssertNotCalled(t, "PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestImportRecordsOwner(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(NewStore(db), identity.Static("user-42"), nil, "lead-imports", zap.NewNop())

	result, err := svc.Import(context.Background(), "leads.csv", sampleCSV, importer.Options{})

	require.NoError(t, err)
	require.Equal(t, 1, result.Created)

	var lead models.Lead
	require.NoError(t, db.First(&lead).Error)
	assert.Equal(t, "user-42", lead.OwnerID)
}
