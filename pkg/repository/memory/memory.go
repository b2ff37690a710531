package memory

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/reflect-lab/stella/pkg/domain/interfaces"
	"github.com/reflect-lab/stella/pkg/domain/model/errs"
	"github.com/reflect-lab/stella/pkg/domain/model/journal"
	"github.com/reflect-lab/stella/pkg/domain/types"
)

// Memory is an in-process record store. Records are held in insertion
// order and every read hands out copies, so callers can mutate results
// without corrupting the store.
type Memory struct {
	mu sync.RWMutex

	subjects   journal.Subjects
	activities journal.Activities
	books      journal.Books
	questions  journal.Questions

	eb *goerr.Builder
}

var _ interfaces.Repository = &Memory{}

func New() *Memory {
	return &Memory{
		eb: goerr.NewBuilder(goerr.TV(errs.BackendKey, "memory")),
	}
}

func (r *Memory) PutSubject(ctx context.Context, subject *journal.Subject) error {
	if err := subject.Validate(); err != nil {
		return r.eb.Wrap(err, "invalid subject")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *subject
	for i, s := range r.subjects {
		if s.ID == cp.ID {
			r.subjects[i] = &cp
			return nil
		}
	}
	r.subjects = append(r.subjects, &cp)
	return nil
}

func (r *Memory) Subjects(ctx context.Context) (journal.Subjects, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(journal.Subjects, 0, len(r.subjects))
	for _, s := range r.subjects {
		cp := *s
		out = append(out, &cp)
	}
	return out, nil
}

func (r *Memory) SubjectsByCategory(ctx context.Context, category types.SubjectCategory) (journal.Subjects, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out journal.Subjects
	for _, s := range r.subjects {
		if s.Category != category {
			continue
		}
		cp := *s
		out = append(out, &cp)
	}
	return out, nil
}

func (r *Memory) PutActivity(ctx context.Context, activity *journal.Activity) error {
	if err := activity.Validate(); err != nil {
		return r.eb.Wrap(err, "invalid activity")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *activity
	for i, a := range r.activities {
		if a.ID == cp.ID {
			r.activities[i] = &cp
			return nil
		}
	}
	r.activities = append(r.activities, &cp)
	return nil
}

func (r *Memory) Activities(ctx context.Context) (journal.Activities, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(journal.Activities, 0, len(r.activities))
	for _, a := range r.activities {
		cp := *a
		out = append(out, &cp)
	}
	return out, nil
}

func (r *Memory) ActivitiesByKind(ctx context.Context, kind types.ActivityKind) (journal.Activities, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out journal.Activities
	for _, a := range r.activities {
		if a.Kind != kind {
			continue
		}
		cp := *a
		out = append(out, &cp)
	}
	return out, nil
}

func (r *Memory) PutBook(ctx context.Context, book *journal.Book) error {
	if err := book.Validate(); err != nil {
		return r.eb.Wrap(err, "invalid book")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *book
	for i, b := range r.books {
		if b.ID == cp.ID {
			r.books[i] = &cp
			return nil
		}
	}
	r.books = append(r.books, &cp)
	return nil
}

func (r *Memory) Books(ctx context.Context) (journal.Books, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(journal.Books, 0, len(r.books))
	for _, b := range r.books {
		cp := *b
		out = append(out, &cp)
	}
	return out, nil
}

func (r *Memory) PutQuestion(ctx context.Context, question *journal.Question) error {
	if err := question.Validate(); err != nil {
		return r.eb.Wrap(err, "invalid question")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *question
	cp.Materials = append([]string(nil), question.Materials...)
	for i, q := range r.questions {
		if q.ID == cp.ID {
			r.questions[i] = &cp
			return nil
		}
	}
	r.questions = append(r.questions, &cp)
	return nil
}

func (r *Memory) Questions(ctx context.Context) (journal.Questions, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(journal.Questions, 0, len(r.questions))
	for _, q := range r.questions {
		cp := *q
		cp.Materials = append([]string(nil), q.Materials...)
		out = append(out, &cp)
	}
	return out, nil
}

func (r *Memory) Close() error {
	return nil
}
