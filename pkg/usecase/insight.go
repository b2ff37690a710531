package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/reflect-lab/stella/pkg/domain/model/errs"
	"github.com/reflect-lab/stella/pkg/domain/model/insight"
	"github.com/reflect-lab/stella/pkg/domain/model/journal"
	"github.com/reflect-lab/stella/pkg/domain/types"
	"github.com/reflect-lab/stella/pkg/service/digest"
	"github.com/reflect-lab/stella/pkg/service/keyword"
	"github.com/reflect-lab/stella/pkg/service/scoring"
	"github.com/reflect-lab/stella/pkg/utils/clock"
)

func (uc *UseCases) Overview(ctx context.Context) (*insight.Overview, error) {
	subjects, err := uc.repository.Subjects(ctx)
	if err != nil {
		return nil, err
	}
	activities, err := uc.repository.Activities(ctx)
	if err != nil {
		return nil, err
	}
	books, err := uc.repository.Books(ctx)
	if err != nil {
		return nil, err
	}
	questions, err := uc.repository.Questions(ctx)
	if err != nil {
		return nil, err
	}

	return &insight.Overview{
		Subjects:   len(subjects),
		Activities: len(activities),
		Books:      len(books),
		Questions:  len(questions),
	}, nil
}

func (uc *UseCases) Breakdown(ctx context.Context) (*insight.Breakdown, error) {
	subjects, err := uc.repository.Subjects(ctx)
	if err != nil {
		return nil, err
	}
	activities, err := uc.repository.Activities(ctx)
	if err != nil {
		return nil, err
	}

	return &insight.Breakdown{
		Categories: digest.ByCategory(subjects),
		Kinds:      digest.ByKind(activities),
	}, nil
}

func (uc *UseCases) Ranking(ctx context.Context, weights *scoring.Weights, limit int) (*scoring.Ranking, error) {
	w, err := uc.resolveWeights(weights)
	if err != nil {
		return nil, err
	}

	activities, err := uc.repository.Activities(ctx)
	if err != nil {
		return nil, err
	}

	return scoring.Rank(activities, w, limit), nil
}

func (uc *UseCases) Keywords(ctx context.Context, limit int) ([]keyword.Entry, error) {
	activities, err := uc.repository.Activities(ctx)
	if err != nil {
		return nil, err
	}
	subjects, err := uc.repository.Subjects(ctx)
	if err != nil {
		return nil, err
	}
	books, err := uc.repository.Books(ctx)
	if err != nil {
		return nil, err
	}

	return keyword.Extract(textPool(activities, subjects, books), limit), nil
}

// Report composes overview, breakdown, ranking and keywords in one pass.
// A dataset whose fetch fails is reported, listed in Unavailable and
// computed as empty, so one backend outage does not take the whole report
// down with it.
func (uc *UseCases) Report(ctx context.Context, weights *scoring.Weights) (*insight.Report, error) {
	w, err := uc.resolveWeights(weights)
	if err != nil {
		return nil, err
	}

	var unavailable []types.Dataset

	subjects, err := uc.repository.Subjects(ctx)
	if err != nil {
		errs.Handle(ctx, goerr.Wrap(err, "report: subjects dataset unavailable"))
		unavailable = append(unavailable, types.DatasetSubjects)
		subjects = nil
	}
	activities, err := uc.repository.Activities(ctx)
	if err != nil {
		errs.Handle(ctx, goerr.Wrap(err, "report: activities dataset unavailable"))
		unavailable = append(unavailable, types.DatasetActivities)
		activities = nil
	}
	books, err := uc.repository.Books(ctx)
	if err != nil {
		errs.Handle(ctx, goerr.Wrap(err, "report: books dataset unavailable"))
		unavailable = append(unavailable, types.DatasetBooks)
		books = nil
	}
	questions, err := uc.repository.Questions(ctx)
	if err != nil {
		errs.Handle(ctx, goerr.Wrap(err, "report: questions dataset unavailable"))
		unavailable = append(unavailable, types.DatasetQuestions)
		questions = nil
	}

	ranking := scoring.Rank(activities, w, 0)

	return &insight.Report{
		Overview: insight.Overview{
			Subjects:   len(subjects),
			Activities: len(activities),
			Books:      len(books),
			Questions:  len(questions),
		},
		Breakdown: insight.Breakdown{
			Categories: digest.ByCategory(subjects),
			Kinds:      digest.ByKind(activities),
		},
		Ranking:     *ranking,
		Keywords:    keyword.Extract(textPool(activities, subjects, books), 0),
		Unavailable: unavailable,
		GeneratedAt: clock.Now(ctx),
	}, nil
}

func (uc *UseCases) resolveWeights(weights *scoring.Weights) (scoring.Weights, error) {
	w := uc.defaultWeights
	if weights != nil {
		w = *weights
	}
	if err := w.Validate(); err != nil {
		return scoring.Weights{}, goerr.Wrap(err, "invalid weights", goerr.T(errs.TagValidation))
	}
	return w, nil
}

// textPool gathers the free-text fields feeding the keyword digest, in
// the fixed order activities, subjects, books. The order decides
// first-encounter tie-breaks downstream.
func textPool(activities journal.Activities, subjects journal.Subjects, books journal.Books) []string {
	texts := make([]string, 0, len(activities)+len(subjects)+len(books))
	for _, a := range activities {
		texts = append(texts, a.Memo)
	}
	for _, s := range subjects {
		texts = append(texts, s.Memo)
	}
	for _, b := range books {
		texts = append(texts, b.Meaning)
	}
	return texts
}
