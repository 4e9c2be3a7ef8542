package core

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"genesis-backend-go/internal/db"
	"genesis-backend-go/internal/models"
)

type fakeFileStore struct {
	saveFn func(ctx context.Context, obj *db.StoredObject) (string, error)
	saved  *db.StoredObject
}

func (f *fakeFileStore) Save(ctx context.Context, obj *db.StoredObject) (string, error) {
	f.saved = obj
	if f.saveFn == nil {
		return "https://storage.googleapis.com/test-bucket/" + obj.Path, nil
	}
	return f.saveFn(ctx, obj)
}

type fakeAuditService struct {
	entries []models.AuditLog
	err     error
}

func (f *fakeAuditService) CreateAuditLog(ctx context.Context, logEntry models.AuditLog) error {
	f.entries = append(f.entries, logEntry)
	return f.err
}

func newTestFileService(store *fakeFileStore, audit AuditService, maxBytes int64) *fileService {
	svc := NewFileService(store, audit, maxBytes, nil).(*fileService)
	svc.now = func() time.Time { return time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC) }
	svc.newID = func() string { return "aaaa-bbbb-cccc" }
	return svc
}

func TestImportFile(t *testing.T) {
	store := &fakeFileStore{}
	audit := &fakeAuditService{}
	svc := newTestFileService(store, audit, 1024)

	resp, err := svc.ImportFile(context.Background(), "user-1", FileUpload{
		Filename:    "Report.PDF",
		ContentType: "application/pdf",
		Data:        []byte("pdf-bytes"),
	})
	require.NoError(t, err)

	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, "File uploaded successfully", resp.Message)
	assert.Equal(t, "users/user-1/uploads/20240615-103000_aaaabbbbcccc.pdf", resp.Path)
	assert.Equal(t, "https://storage.googleapis.com/test-bucket/"+resp.Path, resp.URL)

	require.NotNil(t, store.saved)
	assert.Equal(t, "application/pdf", store.saved.ContentType)
	assert.Equal(t, []byte("pdf-bytes"), store.saved.Data)
	assert.Equal(t, "Report.PDF", store.saved.Metadata["originalName"])
	assert.Equal(t, "user-1", store.saved.Metadata["uploadedBy"])
	assert.Equal(t, "9", store.saved.Metadata["size"])

	require.Len(t, audit.entries, 1)
	assert.Equal(t, "FILE_IMPORT", audit.entries[0].Action)
	assert.Equal(t, resp.Path, audit.entries[0].TargetID)
}

func TestImportFileDefaults(t *testing.T) {
	store := &fakeFileStore{}
	svc := newTestFileService(store, nil, 1024)

	resp, err := svc.ImportFile(context.Background(), "user-1", FileUpload{
		Filename: "noextension",
		Data:     []byte("x"),
	})
	require.NoError(t, err)

	assert.Equal(t, "users/user-1/uploads/20240615-103000_aaaabbbbcccc.bin", resp.Path)
	assert.Equal(t, "application/octet-stream", store.saved.ContentType)
}

func TestImportFileMissingFilename(t *testing.T) {
	svc := newTestFileService(&fakeFileStore{}, nil, 1024)

	resp, err := svc.ImportFile(context.Background(), "user-1", FileUpload{Data: []byte("x")})
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrInvalidFile)
}

func TestImportFileTooLarge(t *testing.T) {
	store := &fakeFileStore{}
	svc := newTestFileService(store, nil, 4)

	resp, err := svc.ImportFile(context.Background(), "user-1", FileUpload{
		Filename: "big.bin",
		Data:     []byte("12345"),
	})
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrFileTooLarge)
	assert.Nil(t, store.saved)
}

func TestImportFileStoreError(t *testing.T) {
	store := &fakeFileStore{saveFn: func(ctx context.Context, obj *db.StoredObject) (string, error) {
		return "", errors.New("bucket unavailable")
	}}
	svc := newTestFileService(store, nil, 1024)

	resp, err := svc.ImportFile(context.Background(), "user-1", FileUpload{
		Filename: "a.txt",
		Data:     []byte("x"),
	})
	assert.Nil(t, resp)
	require.Error(t, err)
}

func TestImportFileAuditFailureIsNonFatal(t *testing.T) {
	audit := &fakeAuditService{err: errors.New("audit collection unavailable")}
	svc := newTestFileService(&fakeFileStore{}, audit, 1024)

	resp, err := svc.ImportFile(context.Background(), "user-1", FileUpload{
		Filename: "a.txt",
		Data:     []byte("x"),
	})
	require.NoError(t, err, "a failed audit write must not fail the upload")
	assert.Equal(t, "success", resp.Status)
}
