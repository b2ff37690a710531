package usecase

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/reflect-lab/stella/pkg/domain/model/errs"
	"github.com/reflect-lab/stella/pkg/domain/model/journal"
	"github.com/reflect-lab/stella/pkg/domain/types"
	"github.com/reflect-lab/stella/pkg/utils/clock"
	"github.com/reflect-lab/stella/pkg/utils/logging"
)

// CreateSubject validates the record, stamps missing ID/CreatedAt and
// stores it. The stored record is returned.
func (uc *UseCases) CreateSubject(ctx context.Context, subject *journal.Subject) (*journal.Subject, error) {
	if subject == nil {
		return nil, goerr.New("subject is required", goerr.T(errs.TagInvalidRequest))
	}

	s := *subject
	uc.stampRecord(ctx, &s.ID, &s.CreatedAt)
	if err := s.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid subject", goerr.T(errs.TagValidation))
	}

	if err := uc.repository.PutSubject(ctx, &s); err != nil {
		return nil, err
	}

	logging.From(ctx).Info("subject created", "id", s.ID, "name", s.Name)
	return &s, nil
}

func (uc *UseCases) CreateActivity(ctx context.Context, activity *journal.Activity) (*journal.Activity, error) {
	if activity == nil {
		return nil, goerr.New("activity is required", goerr.T(errs.TagInvalidRequest))
	}

	a := *activity
	uc.stampRecord(ctx, &a.ID, &a.CreatedAt)
	if err := a.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid activity", goerr.T(errs.TagValidation))
	}

	if err := uc.repository.PutActivity(ctx, &a); err != nil {
		return nil, err
	}

	logging.From(ctx).Info("activity created", "id", a.ID, "name", a.Name)
	return &a, nil
}

func (uc *UseCases) CreateBook(ctx context.Context, book *journal.Book) (*journal.Book, error) {
	if book == nil {
		return nil, goerr.New("book is required", goerr.T(errs.TagInvalidRequest))
	}

	b := *book
	uc.stampRecord(ctx, &b.ID, &b.CreatedAt)
	if err := b.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid book", goerr.T(errs.TagValidation))
	}

	if err := uc.repository.PutBook(ctx, &b); err != nil {
		return nil, err
	}

	logging.From(ctx).Info("book created", "id", b.ID, "title", b.Title)
	return &b, nil
}

func (uc *UseCases) CreateQuestion(ctx context.Context, question *journal.Question) (*journal.Question, error) {
	if question == nil {
		return nil, goerr.New("question is required", goerr.T(errs.TagInvalidRequest))
	}

	q := *question
	q.Materials = append([]string(nil), question.Materials...)
	uc.stampRecord(ctx, &q.ID, &q.CreatedAt)
	if err := q.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid question", goerr.T(errs.TagValidation))
	}

	if err := uc.repository.PutQuestion(ctx, &q); err != nil {
		return nil, err
	}

	logging.From(ctx).Info("question created", "id", q.ID, "label", q.Label)
	return &q, nil
}

func (uc *UseCases) stampRecord(ctx context.Context, id *types.RecordID, createdAt *time.Time) {
	if *id == types.EmptyRecordID {
		*id = types.NewRecordID()
	}
	if createdAt.IsZero() {
		*createdAt = clock.Now(ctx)
	}
}

// ListSubjects returns all subjects, or only those of a category when the
// filter is non-empty.
func (uc *UseCases) ListSubjects(ctx context.Context, category types.SubjectCategory) (journal.Subjects, error) {
	if category == "" {
		return uc.repository.Subjects(ctx)
	}
	if err := category.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid category filter", goerr.T(errs.TagInvalidRequest))
	}
	return uc.repository.SubjectsByCategory(ctx, category)
}

// ListActivities returns all activities, or only those of a kind when the
// filter is non-empty.
func (uc *UseCases) ListActivities(ctx context.Context, kind types.ActivityKind) (journal.Activities, error) {
	if kind == "" {
		return uc.repository.Activities(ctx)
	}
	if err := kind.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid kind filter", goerr.T(errs.TagInvalidRequest))
	}
	return uc.repository.ActivitiesByKind(ctx, kind)
}

func (uc *UseCases) ListBooks(ctx context.Context) (journal.Books, error) {
	return uc.repository.Books(ctx)
}

func (uc *UseCases) ListQuestions(ctx context.Context) (journal.Questions, error) {
	return uc.repository.Questions(ctx)
}
