package usecase

import (
	"context"
	"io"
	"net/http"

	"github.com/m-mizutani/combine/pkg/domain/interfaces"
	"github.com/m-mizutani/combine/pkg/domain/model"
	"github.com/m-mizutani/combine/pkg/domain/types"
	"github.com/m-mizutani/combine/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// DefaultBufferSize is the copy buffer size of a Concatenator
const DefaultBufferSize = 32 * 1024

// Concatenator streams files into a writer one after another
type Concatenator struct {
	source  interfaces.AssetSource
	bufSize int
}

// NewConcatenator creates a Concatenator. bufSize <= 0 means DefaultBufferSize.
func NewConcatenator(source interfaces.AssetSource, bufSize int) *Concatenator {
	if bufSize <= 0 {
		bufSize = DefaultBufferSize
	}
	return &Concatenator{
		source:  source,
		bufSize: bufSize,
	}
}

// Concatenate copies every file into w in order. A file is opened only after
// the previous one is fully written and closed, so at most one file is open
// at a time and memory use is bounded by a single copy buffer. w is flushed
// after each file if it implements http.Flusher, and is never closed.
//
// Reads are bound to ctx: once ctx is done, the file being read is closed and
// the remaining files are not opened.
func (x *Concatenator) Concatenate(ctx context.Context, files []*model.AssetFile, w io.Writer) (int64, error) {
	logger := logging.From(ctx)
	buf := make([]byte, x.bufSize)
	flusher, _ := w.(http.Flusher)

	var total int64
	for i, file := range files {
		if err := ctx.Err(); err != nil {
			return total, goerr.Wrap(err, "streaming interrupted", goerr.V("path", file.Path))
		}

		n, err := x.copyFile(ctx, file, w, buf)
		total += n
		if err != nil {
			opts := []goerr.Option{
				goerr.V("path", file.Path),
				goerr.V("index", i),
				goerr.V("written", n),
			}
			if ctx.Err() == nil {
				opts = append(opts, goerr.T(types.ErrTagIO))
			}
			return total, goerr.Wrap(err, "failed to stream file", opts...)
		}

		if flusher != nil {
			flusher.Flush()
		}
		logger.Debug("Streamed file", "path", file.Path, "bytes", n)
	}

	return total, nil
}

func (x *Concatenator) copyFile(ctx context.Context, file *model.AssetFile, w io.Writer, buf []byte) (int64, error) {
	r, err := x.source.Open(ctx, file.Path)
	if err != nil {
		return 0, goerr.Wrap(err, "failed to open file")
	}
	defer func() {
		if err := r.Close(); err != nil {
			logging.From(ctx).Warn("Failed to close file", "path", file.Path, "error", err)
		}
	}()

	// writerOnly hides io.ReaderFrom of w so that the copy goes through buf
	n, err := io.CopyBuffer(writerOnly{w}, &contextReader{ctx: ctx, r: r}, buf)
	if err != nil {
		return n, goerr.Wrap(err, "failed to copy file")
	}

	return n, nil
}

type writerOnly struct {
	io.Writer
}

type contextReader struct {
	ctx context.Context
	r   io.Reader
}

func (x *contextReader) Read(p []byte) (int, error) {
	if err := x.ctx.Err(); err != nil {
		return 0, err
	}
	return x.r.Read(p)
}
