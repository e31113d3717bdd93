package usecase

import (
	"context"
	"io"

	"github.com/m-mizutani/combine/pkg/domain/interfaces"
	"github.com/m-mizutani/combine/pkg/domain/model"
	"github.com/m-mizutani/combine/pkg/utils/logging"
)

type comboUseCase struct {
	resolver     *Resolver
	validator    *Validator
	concatenator *Concatenator
}

// ComboOption configures the combo use case
type ComboOption func(*comboConfig)

type comboConfig struct {
	mime    *model.MIMETable
	bufSize int
}

// WithMIMETable sets the extension to content type table
func WithMIMETable(table *model.MIMETable) ComboOption {
	return func(c *comboConfig) {
		c.mime = table
	}
}

// WithBufferSize sets the copy buffer size used while streaming
func WithBufferSize(size int) ComboOption {
	return func(c *comboConfig) {
		c.bufSize = size
	}
}

// NewCombo creates a new instance of ComboUseCase serving files under root
func NewCombo(root string, source interfaces.AssetSource, opts ...ComboOption) interfaces.ComboUseCase {
	cfg := &comboConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	return &comboUseCase{
		resolver:     NewResolver(root, cfg.mime),
		validator:    NewValidator(source),
		concatenator: NewConcatenator(source, cfg.bufSize),
	}
}

// Prepare resolves rawURL and validates all resolved paths
func (uc *comboUseCase) Prepare(ctx context.Context, rawURL string) (*model.ComboRequest, []*model.AssetFile, error) {
	req := uc.resolver.Resolve(rawURL)

	logging.From(ctx).Debug("Resolved combo request",
		"combo_id", req.ID,
		"base", req.BasePath,
		"files", req.FileNames,
		"mime", req.MIMEType,
	)

	files, err := uc.validator.Validate(ctx, req.Paths)
	if err != nil {
		return req, nil, err
	}

	return req, files, nil
}

// Stream writes the content of files to w in order
func (uc *comboUseCase) Stream(ctx context.Context, files []*model.AssetFile, w io.Writer) (int64, error) {
	return uc.concatenator.Concatenate(ctx, files, w)
}
