package interfaces

import (
	"context"
	"io"

	"github.com/m-mizutani/combine/pkg/domain/model"
)

// ComboUseCase defines the combo request pipeline
type ComboUseCase interface {
	// Prepare resolves rawURL and validates every resolved path. The returned
	// request is never nil, even when validation fails.
	Prepare(ctx context.Context, rawURL string) (*model.ComboRequest, []*model.AssetFile, error)

	// Stream writes the content of files to w in order and returns the number
	// of bytes written
	Stream(ctx context.Context, files []*model.AssetFile, w io.Writer) (int64, error)
}
