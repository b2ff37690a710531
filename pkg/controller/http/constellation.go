package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/reflect-lab/stella/pkg/domain/interfaces"
	"github.com/reflect-lab/stella/pkg/domain/types"
)

func constellationHandler(uc interfaces.ConstellationUsecases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		anchorID := types.RecordID(chi.URLParam(r, "activityID"))

		constellation, err := uc.Constellation(r.Context(), anchorID)
		if err != nil {
			handleError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, constellation)
	}
}
