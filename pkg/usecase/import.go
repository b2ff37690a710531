package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/reflect-lab/stella/pkg/domain/model/errs"
	"github.com/reflect-lab/stella/pkg/domain/model/journal"
	"github.com/reflect-lab/stella/pkg/utils/logging"
	"gopkg.in/yaml.v3"
)

type importDocument struct {
	Subjects   []*journal.Subject  `yaml:"subjects"`
	Activities []*journal.Activity `yaml:"activities"`
	Books      []*journal.Book     `yaml:"books"`
	Questions  []*journal.Question `yaml:"questions"`
}

// ImportRecords loads a YAML document of journal records. Each record goes
// through the same validation and stamping as one created directly, so
// records with IDs keep them (a restore overwrites in place) and records
// without get fresh ones.
func (uc *UseCases) ImportRecords(ctx context.Context, data []byte) (*journal.ImportSummary, error) {
	var doc importDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, goerr.Wrap(err, "failed to parse import document",
			goerr.T(errs.TagInvalidRequest))
	}

	var summary journal.ImportSummary
	for i, subject := range doc.Subjects {
		if _, err := uc.CreateSubject(ctx, subject); err != nil {
			return nil, goerr.Wrap(err, "failed to import subject", goerr.V("index", i))
		}
		summary.Subjects++
	}
	for i, activity := range doc.Activities {
		if _, err := uc.CreateActivity(ctx, activity); err != nil {
			return nil, goerr.Wrap(err, "failed to import activity", goerr.V("index", i))
		}
		summary.Activities++
	}
	for i, book := range doc.Books {
		if _, err := uc.CreateBook(ctx, book); err != nil {
			return nil, goerr.Wrap(err, "failed to import book", goerr.V("index", i))
		}
		summary.Books++
	}
	for i, question := range doc.Questions {
		if _, err := uc.CreateQuestion(ctx, question); err != nil {
			return nil, goerr.Wrap(err, "failed to import question", goerr.V("index", i))
		}
		summary.Questions++
	}

	logging.From(ctx).Info("journal import finished",
		"subjects", summary.Subjects,
		"activities", summary.Activities,
		"books", summary.Books,
		"questions", summary.Questions,
	)
	return &summary, nil
}
