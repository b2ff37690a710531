package usecase

import (
	"context"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/reflect-lab/stella/pkg/domain/model/errs"
	"github.com/reflect-lab/stella/pkg/domain/model/insight"
	"github.com/reflect-lab/stella/pkg/domain/model/journal"
	"github.com/reflect-lab/stella/pkg/domain/types"
	"github.com/reflect-lab/stella/pkg/utils/clock"
	"github.com/reflect-lab/stella/pkg/utils/logging"
)

// DraftMaterials lists the record names a draft can cite, per dataset.
func (uc *UseCases) DraftMaterials(ctx context.Context) (*insight.Materials, error) {
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

	return &insight.Materials{
		Subjects:   subjects.Names(),
		Activities: activities.Names(),
		Books:      books.Titles(),
	}, nil
}

// ComposeEvidence resolves each material ref and stitches the stored
// texts into a plain-text scaffold, one section per material.
func (uc *UseCases) ComposeEvidence(ctx context.Context, refs []journal.MaterialRef) (string, error) {
	if len(refs) == 0 {
		return "", goerr.New("no materials selected", goerr.T(errs.TagInvalidRequest))
	}
	for _, ref := range refs {
		if err := ref.Validate(); err != nil {
			return "", goerr.Wrap(err, "invalid material ref", goerr.T(errs.TagInvalidRequest))
		}
	}

	subjects, err := uc.repository.Subjects(ctx)
	if err != nil {
		return "", err
	}
	activities, err := uc.repository.Activities(ctx)
	if err != nil {
		return "", err
	}
	books, err := uc.repository.Books(ctx)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, ref := range refs {
		text, err := materialEvidence(ref, subjects, activities, books)
		if err != nil {
			return "", err
		}

		sb.WriteString("## ")
		sb.WriteString(ref.String())
		sb.WriteString("\n")
		if text != "" {
			sb.WriteString(text)
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	return strings.TrimRight(sb.String(), "\n") + "\n", nil
}

func materialEvidence(ref journal.MaterialRef, subjects journal.Subjects, activities journal.Activities, books journal.Books) (string, error) {
	switch ref.Dataset {
	case types.DatasetSubjects:
		for _, s := range subjects {
			if s.Name == ref.Name {
				return joinNonEmpty(s.Summary, s.Memo), nil
			}
		}
	case types.DatasetActivities:
		for _, a := range activities {
			if a.Name == ref.Name {
				return joinNonEmpty(a.Summary, a.Memo), nil
			}
		}
	case types.DatasetBooks:
		for _, b := range books {
			if b.Title == ref.Name {
				return b.Meaning, nil
			}
		}
	}

	return "", goerr.Wrap(errs.ErrMaterialNotFound, "unknown material",
		goerr.T(errs.TagNotFound),
		goerr.V("ref", ref.String()))
}

func joinNonEmpty(parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, "\n")
}

// SaveAnswer appends a drafted answer to the questions dataset under the
// source prompt's label with the draft suffix. The prompt must exist.
func (uc *UseCases) SaveAnswer(ctx context.Context, label string, refs []journal.MaterialRef, body string) (*journal.Question, error) {
	if label == "" {
		return nil, goerr.New("question label is required", goerr.T(errs.TagInvalidRequest))
	}
	if body == "" {
		return nil, goerr.New("answer body is required", goerr.T(errs.TagInvalidRequest))
	}
	for _, ref := range refs {
		if err := ref.Validate(); err != nil {
			return nil, goerr.Wrap(err, "invalid material ref", goerr.T(errs.TagInvalidRequest))
		}
	}

	questions, err := uc.repository.Questions(ctx)
	if err != nil {
		return nil, err
	}
	prompt := questions.FindByLabel(label)
	if prompt == nil {
		return nil, goerr.Wrap(errs.ErrQuestionNotFound, "unknown question",
			goerr.T(errs.TagNotFound),
			goerr.V("label", label))
	}

	q := &journal.Question{
		ID:        types.NewRecordID(),
		Label:     journal.DraftLabel(prompt.Label),
		Materials: journal.RefStrings(refs),
		Body:      body,
		CreatedAt: clock.Now(ctx),
	}
	if err := uc.repository.PutQuestion(ctx, q); err != nil {
		return nil, err
	}

	logging.From(ctx).Info("draft answer saved", "label", q.Label, "materials", len(q.Materials))
	return q, nil
}
