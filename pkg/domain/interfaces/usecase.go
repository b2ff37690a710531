package interfaces

import (
	"context"

	"github.com/reflect-lab/stella/pkg/domain/model/insight"
	"github.com/reflect-lab/stella/pkg/domain/model/journal"
	"github.com/reflect-lab/stella/pkg/domain/types"
	"github.com/reflect-lab/stella/pkg/service/keyword"
	"github.com/reflect-lab/stella/pkg/service/scoring"
	"github.com/reflect-lab/stella/pkg/service/similarity"
)

type RecordUsecases interface {
	// Create handlers validate, stamp ID and CreatedAt, then store.
	CreateSubject(ctx context.Context, subject *journal.Subject) (*journal.Subject, error)
	CreateActivity(ctx context.Context, activity *journal.Activity) (*journal.Activity, error)
	CreateBook(ctx context.Context, book *journal.Book) (*journal.Book, error)
	CreateQuestion(ctx context.Context, question *journal.Question) (*journal.Question, error)

	// List handlers; empty filter values mean no filtering.
	ListSubjects(ctx context.Context, category types.SubjectCategory) (journal.Subjects, error)
	ListActivities(ctx context.Context, kind types.ActivityKind) (journal.Activities, error)
	ListBooks(ctx context.Context) (journal.Books, error)
	ListQuestions(ctx context.Context) (journal.Questions, error)
}

type InsightUsecases interface {
	Overview(ctx context.Context) (*insight.Overview, error)
	Breakdown(ctx context.Context) (*insight.Breakdown, error)
	// Ranking and Report fall back to the configured default weights when
	// weights is nil, and to the scorer's default limit when limit <= 0.
	Ranking(ctx context.Context, weights *scoring.Weights, limit int) (*scoring.Ranking, error)
	Keywords(ctx context.Context, limit int) ([]keyword.Entry, error)
	Report(ctx context.Context, weights *scoring.Weights) (*insight.Report, error)
}

type ConstellationUsecases interface {
	Constellation(ctx context.Context, anchorID types.RecordID) (*similarity.Constellation, error)
}

type DraftUsecases interface {
	DraftMaterials(ctx context.Context) (*insight.Materials, error)
	ComposeEvidence(ctx context.Context, refs []journal.MaterialRef) (string, error)
	SaveAnswer(ctx context.Context, label string, refs []journal.MaterialRef, body string) (*journal.Question, error)
}

type TransferUsecases interface {
	// ExportCSV renders one dataset as CSV and returns the bytes with the
	// dated file name to serve them under.
	ExportCSV(ctx context.Context, dataset types.Dataset) ([]byte, string, error)
	Backup(ctx context.Context) ([]string, error)
	ImportRecords(ctx context.Context, data []byte) (*journal.ImportSummary, error)
}
