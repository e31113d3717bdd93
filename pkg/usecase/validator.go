package usecase

import (
	"context"
	"errors"
	"io/fs"

	"github.com/m-mizutani/combine/pkg/domain/interfaces"
	"github.com/m-mizutani/combine/pkg/domain/model"
	"github.com/m-mizutani/combine/pkg/domain/types"
	"github.com/m-mizutani/combine/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// Validator checks that every path of a combo request is a regular file
type Validator struct {
	source interfaces.AssetSource
}

// NewValidator creates a Validator backed by source
func NewValidator(source interfaces.AssetSource) *Validator {
	return &Validator{source: source}
}

// Validate looks up paths one by one and stops at the first failure. Paths
// after a failing one are never looked up. On success it returns one
// AssetFile per path in the same order.
func (x *Validator) Validate(ctx context.Context, paths []string) ([]*model.AssetFile, error) {
	if len(paths) == 0 {
		return nil, goerr.New("no file in combo request", goerr.T(types.ErrTagResolution))
	}

	logger := logging.From(ctx)
	files := make([]*model.AssetFile, 0, len(paths))

	for i, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, goerr.Wrap(err, "validation interrupted", goerr.V("path", path))
		}

		stat, err := x.source.Stat(ctx, path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, goerr.Wrap(err, "file not found",
					goerr.V("path", path),
					goerr.V("index", i),
					goerr.T(types.ErrTagNotFound),
				)
			}
			return nil, goerr.Wrap(err, "failed to stat file",
				goerr.V("path", path),
				goerr.V("index", i),
				goerr.T(types.ErrTagIO),
			)
		}

		if !stat.Regular {
			return nil, goerr.New("not a regular file",
				goerr.V("path", path),
				goerr.V("index", i),
				goerr.T(types.ErrTagNotRegularFile),
			)
		}

		logger.Debug("Validated file", "path", path, "size", stat.Size)
		files = append(files, &model.AssetFile{Path: path, Size: stat.Size})
	}

	return files, nil
}

// FailedPath returns the path recorded in an error returned by the
// validator or the concatenator, or "" if err carries none.
func FailedPath(err error) string {
	e := goerr.Unwrap(err)
	if e == nil {
		return ""
	}
	if path, ok := e.Values()["path"].(string); ok {
		return path
	}
	return ""
}
