package interfaces

import (
	"context"
	"io"

	"github.com/m-mizutani/combine/pkg/domain/model"
)

// AssetSource provides read access to the files a combo request names
type AssetSource interface {
	// Stat returns metadata of path. An error for a missing path must satisfy
	// errors.Is(err, fs.ErrNotExist).
	Stat(ctx context.Context, path string) (*model.AssetStat, error)

	// Open returns a reader of the whole content of path
	Open(ctx context.Context, path string) (io.ReadCloser, error)

	// Name identifies the source kind, e.g. "local" or "gcs"
	Name() string
}

// ClosableAssetSource is an AssetSource holding a connection released by Close
type ClosableAssetSource interface {
	AssetSource
	io.Closer
}
