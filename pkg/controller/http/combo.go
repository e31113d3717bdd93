package http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/combine/pkg/domain/interfaces"
	"github.com/m-mizutani/combine/pkg/domain/model"
	"github.com/m-mizutani/combine/pkg/domain/types"
	"github.com/m-mizutani/combine/pkg/usecase"
	"github.com/m-mizutani/combine/pkg/utils/async"
	"github.com/m-mizutani/combine/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// ComboHandler serves combo requests
type ComboHandler struct {
	comboUC interfaces.ComboUseCase
}

// NewComboHandler creates a new ComboHandler
func NewComboHandler(comboUC interfaces.ComboUseCase) *ComboHandler {
	return &ComboHandler{
		comboUC: comboUC,
	}
}

// Handle serves the concatenation of the files named by the request URI.
// Any failure before the first byte is a 404. A failure while streaming
// aborts the connection, so that the client sees an incomplete transfer
// instead of a short body under a 200 status.
func (h *ComboHandler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logging.From(ctx)

	// r.URL.RequestURI() restores "/static/??a.css" which net/http has
	// split into Path "/static/" and RawQuery "?a.css"
	uri := r.URL.RequestURI()

	req, files, err := h.comboUC.Prepare(ctx, uri)
	if err != nil {
		logger.Info("Combo request rejected",
			"uri", uri,
			"combo_id", req.ID,
			"kind", types.ErrorKind(err),
			"path", usecase.FailedPath(err),
			"error", err,
		)
		writeNotFound(w, uri)
		return
	}

	declared := model.TotalSize(files)
	w.Header().Set("Content-Type", req.MIMEType)
	w.Header().Set("Content-Length", strconv.FormatInt(declared, 10))
	w.WriteHeader(http.StatusOK)

	if r.Method == http.MethodHead {
		return
	}

	n, err := h.comboUC.Stream(ctx, files, w)
	if err != nil {
		// net/http cancels the request context when the client goes away, but
		// the failed write itself surfaces as EPIPE or ECONNRESET
		if ctx.Err() != nil {
			logger.Debug("Combo request cancelled while streaming",
				"combo_id", req.ID,
				"written", n,
				"error", err,
				"cause", ctx.Err(),
			)
			return
		}

		logger.Error("Failed to stream combo response",
			"combo_id", req.ID,
			"kind", types.ErrorKind(err),
			"path", usecase.FailedPath(err),
			"written", n,
			"error", err,
		)
		reportStreamError(ctx, req, err)
		panic(http.ErrAbortHandler)
	}

	// A file shrunk between validation and streaming
	if n != declared {
		err := goerr.New("combo response is shorter than its Content-Length",
			goerr.V("declared", declared),
			goerr.V("written", n),
			goerr.T(types.ErrTagIO),
		)
		logger.Warn("Combo response length mismatch",
			"combo_id", req.ID,
			"declared", declared,
			"written", n,
		)
		reportStreamError(ctx, req, err)
		panic(http.ErrAbortHandler)
	}

	logger.Debug("Combo response completed",
		"combo_id", req.ID,
		"files", len(files),
		"bytes", n,
	)
}

// reportStreamError sends err to Sentry without waiting on the request,
// whose context is about to be cancelled by the aborted connection
func reportStreamError(ctx context.Context, req *model.ComboRequest, err error) {
	async.Dispatch(ctx, func(ctx context.Context) error {
		hub := sentry.GetHubFromContext(ctx)
		if hub == nil {
			return nil
		}

		hub.WithScope(func(scope *sentry.Scope) {
			scope.SetTag("combo_id", req.ID)
			scope.SetTag("error_kind", types.ErrorKind(err))
			scope.SetContext("combo", sentry.Context{
				"base":  req.BasePath,
				"files": req.FileNames,
			})
			hub.CaptureException(err)
		})
		return nil
	})
}
