package gcs

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"path/filepath"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/m-mizutani/combine/pkg/domain/interfaces"
	"github.com/m-mizutani/combine/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/option"
)

type client struct {
	storageClient *storage.Client
	bucket        string
}

// NewClient creates an AssetSource reading objects of a Cloud Storage bucket.
// Resolved paths are mapped to object names by dropping the leading slash,
// so "/static/a.css" is read from gs://<bucket>/static/a.css.
func NewClient(ctx context.Context, bucket string, opts ...option.ClientOption) (interfaces.ClosableAssetSource, error) {
	if bucket == "" {
		return nil, goerr.New("bucket name is required")
	}

	storageClient, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create storage client", goerr.V("bucket", bucket))
	}

	return &client{
		storageClient: storageClient,
		bucket:        bucket,
	}, nil
}

// Name returns "gcs"
func (c *client) Name() string {
	return "gcs"
}

// Stat returns the size of the object. A name ending with "/" is a folder
// placeholder and is not a regular file.
func (c *client) Stat(ctx context.Context, path string) (*model.AssetStat, error) {
	name := ObjectName(path)
	if name == "" || strings.HasSuffix(name, "/") {
		return &model.AssetStat{Regular: false}, nil
	}

	attrs, err := c.storageClient.Bucket(c.bucket).Object(name).Attrs(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			return nil, goerr.Wrap(fs.ErrNotExist, "object not found",
				goerr.V("bucket", c.bucket),
				goerr.V("object", name),
			)
		}
		return nil, goerr.Wrap(err, "failed to get object attributes",
			goerr.V("bucket", c.bucket),
			goerr.V("object", name),
		)
	}

	return &model.AssetStat{
		Size:    attrs.Size,
		Regular: true,
	}, nil
}

// Open returns a reader of the object content
func (c *client) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	name := ObjectName(path)
	r, err := c.storageClient.Bucket(c.bucket).Object(name).NewReader(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			return nil, goerr.Wrap(fs.ErrNotExist, "object not found",
				goerr.V("bucket", c.bucket),
				goerr.V("object", name),
			)
		}
		return nil, goerr.Wrap(err, "failed to open object",
			goerr.V("bucket", c.bucket),
			goerr.V("object", name),
		)
	}
	return r, nil
}

// Close releases the underlying storage client
func (c *client) Close() error {
	if err := c.storageClient.Close(); err != nil {
		return goerr.Wrap(err, "failed to close storage client")
	}
	return nil
}

// ObjectName converts a resolved path into an object name
func ObjectName(path string) string {
	return strings.TrimLeft(filepath.ToSlash(path), "/")
}
