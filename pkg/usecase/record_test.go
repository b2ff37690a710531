package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/reflect-lab/stella/pkg/domain/model/errs"
	"github.com/reflect-lab/stella/pkg/domain/model/journal"
	"github.com/reflect-lab/stella/pkg/domain/types"
	"github.com/reflect-lab/stella/pkg/usecase"
	"github.com/reflect-lab/stella/pkg/utils/clock"
)

func TestCreateSubject(t *testing.T) {
	now := time.Date(2025, 4, 1, 9, 30, 0, 0, time.UTC)
	ctx := clock.With(context.Background(), func() time.Time { return now })
	uc := usecase.New()

	input := &journal.Subject{
		Name:      "Consumer Behavior",
		Category:  types.SubjectCategoryConsumerStudies,
		Summary:   "survey design and decision models",
		Curiosity: 8,
		Closure:   6,
	}
	created := gt.R1(uc.CreateSubject(ctx, input)).NoError(t)

	gt.True(t, created.ID != types.EmptyRecordID)
	gt.Equal(t, created.CreatedAt, now)
	// the caller's struct stays untouched
	gt.Equal(t, input.ID, types.EmptyRecordID)
	gt.True(t, input.CreatedAt.IsZero())

	listed := gt.R1(uc.ListSubjects(ctx, "")).NoError(t)
	gt.Equal(t, len(listed), 1)
	gt.Equal(t, listed[0].ID, created.ID)
}

func TestCreateSubjectKeepsProvidedIdentity(t *testing.T) {
	ctx := context.Background()
	uc := usecase.New()

	stamped := time.Date(2024, 11, 20, 8, 0, 0, 0, time.UTC)
	created := gt.R1(uc.CreateSubject(ctx, &journal.Subject{
		ID:        "subjects-42",
		Name:      "Household Finance",
		Category:  types.SubjectCategoryHouseholdFinance,
		CreatedAt: stamped,
	})).NoError(t)

	gt.Equal(t, created.ID, types.RecordID("subjects-42"))
	gt.Equal(t, created.CreatedAt, stamped)
}

func TestCreateSubjectRejectsInvalid(t *testing.T) {
	ctx := context.Background()
	uc := usecase.New()

	_, err := uc.CreateSubject(ctx, &journal.Subject{
		Name:     "Mystery",
		Category: "astrology",
	})
	gt.Error(t, err)
	gt.True(t, goerr.HasTag(err, errs.TagValidation))

	_, err = uc.CreateSubject(ctx, nil)
	gt.Error(t, err)
	gt.True(t, goerr.HasTag(err, errs.TagInvalidRequest))
}

func TestCreateQuestionCopiesMaterials(t *testing.T) {
	ctx := context.Background()
	uc := usecase.New()

	materials := []string{"subjects:Consumer Behavior"}
	created := gt.R1(uc.CreateQuestion(ctx, &journal.Question{
		Label:     "growth",
		Materials: materials,
		Body:      "Describe a moment of growth.",
	})).NoError(t)

	materials[0] = "books:overwritten"
	gt.Equal(t, created.Materials, []string{"subjects:Consumer Behavior"})

	stored := gt.R1(uc.ListQuestions(ctx)).NoError(t)
	gt.Equal(t, stored[0].Materials, []string{"subjects:Consumer Behavior"})
}

func TestListSubjectsFilter(t *testing.T) {
	ctx := context.Background()
	uc := usecase.New()

	for _, s := range []*journal.Subject{
		{Name: "Consumer Behavior", Category: types.SubjectCategoryConsumerStudies},
		{Name: "Data Structures", Category: types.SubjectCategoryProgramming},
		{Name: "Consumer Insight Seminar", Category: types.SubjectCategoryConsumerStudies},
	} {
		gt.R1(uc.CreateSubject(ctx, s)).NoError(t)
	}

	all := gt.R1(uc.ListSubjects(ctx, "")).NoError(t)
	gt.Equal(t, len(all), 3)

	filtered := gt.R1(uc.ListSubjects(ctx, types.SubjectCategoryConsumerStudies)).NoError(t)
	gt.Equal(t, filtered.Names(), []string{"Consumer Behavior", "Consumer Insight Seminar"})

	_, err := uc.ListSubjects(ctx, "astrology")
	gt.Error(t, err)
	gt.True(t, goerr.HasTag(err, errs.TagInvalidRequest))
}

func TestListActivitiesFilter(t *testing.T) {
	ctx := context.Background()
	uc := usecase.New()

	for _, a := range []*journal.Activity{
		{Name: "Hackathon", Kind: types.ActivityKindTeamProject},
		{Name: "Barista", Kind: types.ActivityKindPartTimeJob},
	} {
		gt.R1(uc.CreateActivity(ctx, a)).NoError(t)
	}

	filtered := gt.R1(uc.ListActivities(ctx, types.ActivityKindPartTimeJob)).NoError(t)
	gt.Equal(t, filtered.Names(), []string{"Barista"})

	_, err := uc.ListActivities(ctx, "daydreaming")
	gt.Error(t, err)
	gt.True(t, goerr.HasTag(err, errs.TagInvalidRequest))
}
