package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/reflect-lab/stella/pkg/domain/interfaces"
	"github.com/reflect-lab/stella/pkg/domain/model/errs"
	"github.com/reflect-lab/stella/pkg/domain/model/journal"
	"github.com/reflect-lab/stella/pkg/domain/types"
)

type recordListResponse struct {
	Dataset types.Dataset `json:"dataset"`
	Count   int           `json:"count"`
	Records any           `json:"records"`
}

func listRecordsHandler(uc interfaces.RecordUsecases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		dataset, err := types.ParseDataset(chi.URLParam(r, "dataset"))
		if err != nil {
			handleError(w, r, goerr.Wrap(err, "unknown dataset", goerr.T(errs.TagInvalidRequest)))
			return
		}

		var records any
		var count int
		switch dataset {
		case types.DatasetSubjects:
			subjects, err := uc.ListSubjects(ctx, types.SubjectCategory(r.URL.Query().Get("category")))
			if err != nil {
				handleError(w, r, err)
				return
			}
			records, count = subjects, len(subjects)

		case types.DatasetActivities:
			activities, err := uc.ListActivities(ctx, types.ActivityKind(r.URL.Query().Get("kind")))
			if err != nil {
				handleError(w, r, err)
				return
			}
			records, count = activities, len(activities)

		case types.DatasetBooks:
			books, err := uc.ListBooks(ctx)
			if err != nil {
				handleError(w, r, err)
				return
			}
			records, count = books, len(books)

		case types.DatasetQuestions:
			questions, err := uc.ListQuestions(ctx)
			if err != nil {
				handleError(w, r, err)
				return
			}
			records, count = questions, len(questions)
		}

		respondJSON(w, http.StatusOK, recordListResponse{
			Dataset: dataset,
			Count:   count,
			Records: records,
		})
	}
}

func createRecordHandler(uc interfaces.RecordUsecases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		dataset, err := types.ParseDataset(chi.URLParam(r, "dataset"))
		if err != nil {
			handleError(w, r, goerr.Wrap(err, "unknown dataset", goerr.T(errs.TagInvalidRequest)))
			return
		}

		var created any
		switch dataset {
		case types.DatasetSubjects:
			var subject journal.Subject
			if err := decodeBody(r, &subject); err != nil {
				handleError(w, r, err)
				return
			}
			created, err = uc.CreateSubject(ctx, &subject)

		case types.DatasetActivities:
			var activity journal.Activity
			if err := decodeBody(r, &activity); err != nil {
				handleError(w, r, err)
				return
			}
			created, err = uc.CreateActivity(ctx, &activity)

		case types.DatasetBooks:
			var book journal.Book
			if err := decodeBody(r, &book); err != nil {
				handleError(w, r, err)
				return
			}
			created, err = uc.CreateBook(ctx, &book)

		case types.DatasetQuestions:
			var question journal.Question
			if err := decodeBody(r, &question); err != nil {
				handleError(w, r, err)
				return
			}
			created, err = uc.CreateQuestion(ctx, &question)
		}

		if err != nil {
			handleError(w, r, err)
			return
		}
		respondJSON(w, http.StatusCreated, created)
	}
}

func decodeBody(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return goerr.Wrap(err, "failed to decode request body", goerr.T(errs.TagInvalidRequest))
	}
	return nil
}
