package http

import (
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/reflect-lab/stella/pkg/domain/interfaces"
	"github.com/reflect-lab/stella/pkg/domain/model/errs"
	"github.com/reflect-lab/stella/pkg/domain/model/journal"
)

func draftMaterialsHandler(uc interfaces.DraftUsecases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		materials, err := uc.DraftMaterials(r.Context())
		if err != nil {
			handleError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, materials)
	}
}

type composeEvidenceRequest struct {
	Materials []string `json:"materials"`
}

func composeEvidenceHandler(uc interfaces.DraftUsecases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req composeEvidenceRequest
		if err := decodeBody(r, &req); err != nil {
			handleError(w, r, err)
			return
		}

		refs, err := journal.ParseMaterialRefs(req.Materials)
		if err != nil {
			handleError(w, r, goerr.Wrap(err, "invalid materials", goerr.T(errs.TagInvalidRequest)))
			return
		}

		evidence, err := uc.ComposeEvidence(r.Context(), refs)
		if err != nil {
			handleError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, map[string]string{"evidence": evidence})
	}
}

type saveAnswerRequest struct {
	Question  string   `json:"question"`
	Materials []string `json:"materials"`
	Body      string   `json:"body"`
}

func saveAnswerHandler(uc interfaces.DraftUsecases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req saveAnswerRequest
		if err := decodeBody(r, &req); err != nil {
			handleError(w, r, err)
			return
		}

		refs, err := journal.ParseMaterialRefs(req.Materials)
		if err != nil {
			handleError(w, r, goerr.Wrap(err, "invalid materials", goerr.T(errs.TagInvalidRequest)))
			return
		}

		draft, err := uc.SaveAnswer(r.Context(), req.Question, refs, req.Body)
		if err != nil {
			handleError(w, r, err)
			return
		}
		respondJSON(w, http.StatusCreated, draft)
	}
}
