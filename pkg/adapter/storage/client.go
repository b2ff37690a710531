package storage

import (
	"context"
	"errors"
	"io"

	"cloud.google.com/go/storage"
	"github.com/m-mizutani/goerr/v2"
	"github.com/reflect-lab/stella/pkg/domain/interfaces"
	"github.com/reflect-lab/stella/pkg/domain/model/errs"
	"github.com/reflect-lab/stella/pkg/utils/safe"
	"google.golang.org/api/option"
)

// Client writes journal exports to a Google Cloud Storage bucket.
type Client struct {
	client *storage.Client
	bucket string
}

var _ interfaces.StorageClient = &Client{}

func New(ctx context.Context, bucket string, opts ...option.ClientOption) (*Client, error) {
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create storage client",
			goerr.T(errs.TagUnavailable),
			goerr.V("bucket", bucket))
	}

	return &Client{
		client: client,
		bucket: bucket,
	}, nil
}

func (x *Client) PutObject(ctx context.Context, object string) io.WriteCloser {
	return x.client.Bucket(x.bucket).Object(object).NewWriter(ctx)
}

func (x *Client) GetObject(ctx context.Context, object string) (io.ReadCloser, error) {
	rc, err := x.client.Bucket(x.bucket).Object(object).NewReader(ctx)
	if err != nil {
		tag := errs.TagUnavailable
		if errors.Is(err, storage.ErrObjectNotExist) {
			tag = errs.TagNotFound
		}
		return nil, goerr.Wrap(err, "failed to create reader",
			goerr.T(tag),
			goerr.V("bucket", x.bucket),
			goerr.V("object", object),
		)
	}

	return rc, nil
}

func (x *Client) Close(ctx context.Context) {
	safe.Close(ctx, x.client)
}
