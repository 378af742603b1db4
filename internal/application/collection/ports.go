package collection

import "context"

// ObjectStorage is the outbound port for review image blobs.
// Upload returns the public URL of the stored object.
type ObjectStorage interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
}
