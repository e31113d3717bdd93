package http

import (
	"encoding/json"
	"net/http"

	"github.com/m-mizutani/combine/pkg/domain/model"
	"github.com/m-mizutani/combine/pkg/domain/types"
	"github.com/m-mizutani/combine/pkg/utils/logging"
)

// newHealthHandler returns a handler of health check requests. It answers
// every method so that the health path never reaches the combo handler.
func newHealthHandler(sourceName string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := &model.HealthStatus{
			Status:  "healthy",
			Service: "combine",
			Version: types.Version,
			Source:  sourceName,
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if r.Method == http.MethodHead {
			return
		}
		if err := json.NewEncoder(w).Encode(status); err != nil {
			logging.From(r.Context()).Error("Failed to encode health response", "error", err)
		}
	}
}
