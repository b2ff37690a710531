package http

import (
	"encoding/json"
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/reflect-lab/stella/pkg/domain/model/errs"
	"github.com/reflect-lab/stella/pkg/utils/logging"
)

func handleError(w http.ResponseWriter, r *http.Request, err error) {
	logger := logging.From(r.Context())

	switch {
	case goerr.HasTag(err, errs.TagNotFound):
		logger.Warn("Not Found", "error", err)
		http.Error(w, err.Error(), http.StatusNotFound)

	case goerr.HasTag(err, errs.TagValidation), goerr.HasTag(err, errs.TagInvalidRequest):
		logger.Warn("Bad Request", "error", err)
		http.Error(w, err.Error(), http.StatusBadRequest)

	case goerr.HasTag(err, errs.TagInsufficientData):
		// informational for the caller: the journal is too small, not broken
		logger.Warn("Insufficient Data", "error", err)
		values := goerr.Values(err)
		respondJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"error":    err.Error(),
			"required": values["required"],
			"actual":   values["actual"],
		})

	case goerr.HasTag(err, errs.TagUnavailable):
		errs.Handle(r.Context(), err)
		http.Error(w, err.Error(), http.StatusServiceUnavailable)

	case goerr.HasTag(err, errs.TagInternal):
		errs.Handle(r.Context(), err)
		http.Error(w, err.Error(), http.StatusInternalServerError)

	default:
		errs.Handle(r.Context(), err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// headers are already sent, nothing left to report to the client
		return
	}
}
