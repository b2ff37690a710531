package interfaces

import (
	"context"

	"github.com/reflect-lab/stella/pkg/domain/model/journal"
	"github.com/reflect-lab/stella/pkg/domain/types"
)

// Repository stores journal records. Put methods reject records that
// fail validation. List methods return records in insertion order
// (creation time ascending) and always return fresh copies that the
// caller may mutate.
type Repository interface {
	PutSubject(ctx context.Context, subject *journal.Subject) error
	Subjects(ctx context.Context) (journal.Subjects, error)
	SubjectsByCategory(ctx context.Context, category types.SubjectCategory) (journal.Subjects, error)

	PutActivity(ctx context.Context, activity *journal.Activity) error
	Activities(ctx context.Context) (journal.Activities, error)
	ActivitiesByKind(ctx context.Context, kind types.ActivityKind) (journal.Activities, error)

	PutBook(ctx context.Context, book *journal.Book) error
	Books(ctx context.Context) (journal.Books, error)

	PutQuestion(ctx context.Context, question *journal.Question) error
	Questions(ctx context.Context) (journal.Questions, error)

	Close() error
}
