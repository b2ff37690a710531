package interfaces

import (
	"context"
	"io"
)

// StorageClient writes and reads backup objects. Backed by Cloud Storage
// in production and by an in-memory client in tests.
type StorageClient interface {
	PutObject(ctx context.Context, object string) io.WriteCloser
	GetObject(ctx context.Context, object string) (io.ReadCloser, error)
	Close(ctx context.Context)
}
