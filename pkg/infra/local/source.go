package local

import (
	"context"
	"io"
	"os"

	"github.com/m-mizutani/combine/pkg/domain/interfaces"
	"github.com/m-mizutani/combine/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
)

type source struct{}

// NewSource creates an AssetSource reading from the local filesystem
func NewSource() interfaces.AssetSource {
	return &source{}
}

// Name returns "local"
func (s *source) Name() string {
	return "local"
}

// Stat returns metadata of path. Symbolic links are followed, so a link to a
// regular file is a regular file.
func (s *source) Stat(ctx context.Context, path string) (*model.AssetStat, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to stat local file", goerr.V("path", path))
	}

	return &model.AssetStat{
		Size:    info.Size(),
		Regular: info.Mode().IsRegular(),
	}, nil
}

// Open opens path for reading
func (s *source) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open local file", goerr.V("path", path))
	}
	return f, nil
}
