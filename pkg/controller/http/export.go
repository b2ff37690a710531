package http

import (
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/reflect-lab/stella/pkg/domain/interfaces"
	"github.com/reflect-lab/stella/pkg/domain/model/errs"
	"github.com/reflect-lab/stella/pkg/domain/types"
	"github.com/reflect-lab/stella/pkg/utils/safe"
)

func exportCSVHandler(uc interfaces.TransferUsecases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dataset := types.Dataset(chi.URLParam(r, "dataset"))

		data, filename, err := uc.ExportCSV(r.Context(), dataset)
		if err != nil {
			handleError(w, r, err)
			return
		}

		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		safe.Write(r.Context(), w, data)
	}
}

func backupHandler(uc interfaces.TransferUsecases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		objects, err := uc.Backup(r.Context())
		if err != nil {
			handleError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, map[string]any{"objects": objects})
	}
}

func importHandler(uc interfaces.TransferUsecases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			handleError(w, r, goerr.Wrap(err, "failed to read body", goerr.T(errs.TagInvalidRequest)))
			return
		}
		defer r.Body.Close()

		summary, err := uc.ImportRecords(r.Context(), body)
		if err != nil {
			handleError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, summary)
	}
}
