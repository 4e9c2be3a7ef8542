package db

import (
	"context"
	"errors"
	"fmt"
	"log"

	"cloud.google.com/go/storage"
)

// cloudStorageFileStore implements the FileStore interface on top of a
// Cloud Storage bucket.
type cloudStorageFileStore struct {
	bucket *storage.BucketHandle
}

// NewCloudStorageFileStore creates a new instance of cloudStorageFileStore.
func NewCloudStorageFileStore(bucket *storage.BucketHandle) FileStore {
	if bucket == nil {
		log.Fatal("Storage bucket handle is not initialized for FileStore.")
	}
	return &cloudStorageFileStore{bucket: bucket}
}

// Save writes the object, attaches its metadata, grants public read
// access, and returns the resulting public URL. On a failed write the
// partially written object is deleted best-effort.
func (s *cloudStorageFileStore) Save(ctx context.Context, obj *StoredObject) (string, error) {
	if obj == nil || obj.Path == "" {
		return "", errors.New("object path cannot be empty for Save operation")
	}

	handle := s.bucket.Object(obj.Path)

	w := handle.NewWriter(ctx)
	w.ContentType = obj.ContentType
	w.Metadata = obj.Metadata
	if _, err := w.Write(obj.Data); err != nil {
		w.Close()
		s.cleanup(ctx, handle)
		return "", fmt.Errorf("failed to write object '%s': %w", obj.Path, err)
	}
	if err := w.Close(); err != nil {
		s.cleanup(ctx, handle)
		return "", fmt.Errorf("failed to finalize object '%s': %w", obj.Path, err)
	}

	if err := handle.ACL().Set(ctx, storage.AllUsers, storage.RoleReader); err != nil {
		return "", fmt.Errorf("failed to set public ACL on object '%s': %w", obj.Path, err)
	}

	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", handle.BucketName(), obj.Path), nil
}

func (s *cloudStorageFileStore) cleanup(ctx context.Context, handle *storage.ObjectHandle) {
	if err := handle.Delete(ctx); err != nil && !errors.Is(err, storage.ErrObjectNotExist) {
		log.Printf("Error cleaning up failed upload '%s': %v", handle.ObjectName(), err)
	}
}
