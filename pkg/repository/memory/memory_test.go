package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/reflect-lab/stella/pkg/domain/model/journal"
	"github.com/reflect-lab/stella/pkg/domain/types"
	"github.com/reflect-lab/stella/pkg/repository/memory"
)

func TestSubjects(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()
	base := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)

	subjects := journal.Subjects{
		{ID: "s1", Name: "Consumer Behavior", Category: types.SubjectCategoryConsumerStudies, Curiosity: 7, Closure: 6, CreatedAt: base},
		{ID: "s2", Name: "Data Structures", Category: types.SubjectCategoryProgramming, Curiosity: 9, Closure: 8, CreatedAt: base.Add(time.Hour)},
		{ID: "s3", Name: "Household Finance", Category: types.SubjectCategoryHouseholdFinance, Curiosity: 5, Closure: 7, CreatedAt: base.Add(2 * time.Hour)},
	}
	for _, s := range subjects {
		gt.NoError(t, repo.PutSubject(ctx, s))
	}

	t.Run("list keeps insertion order", func(t *testing.T) {
		got := gt.R1(repo.Subjects(ctx)).NoError(t)
		gt.Equal(t, got.Names(), []string{"Consumer Behavior", "Data Structures", "Household Finance"})
	})

	t.Run("filter by category", func(t *testing.T) {
		got := gt.R1(repo.SubjectsByCategory(ctx, types.SubjectCategoryProgramming)).NoError(t)
		gt.Equal(t, len(got), 1)
		gt.Equal(t, got[0].Name, "Data Structures")
	})

	t.Run("filter with no match returns empty", func(t *testing.T) {
		got := gt.R1(repo.SubjectsByCategory(ctx, types.SubjectCategoryBusiness)).NoError(t)
		gt.Equal(t, len(got), 0)
	})

	t.Run("put with existing ID replaces in place", func(t *testing.T) {
		gt.NoError(t, repo.PutSubject(ctx, &journal.Subject{
			ID: "s2", Name: "Algorithms", Category: types.SubjectCategoryProgramming, Curiosity: 10, Closure: 8, CreatedAt: base.Add(time.Hour),
		}))

		got := gt.R1(repo.Subjects(ctx)).NoError(t)
		gt.Equal(t, got.Names(), []string{"Consumer Behavior", "Algorithms", "Household Finance"})
	})

	t.Run("results are copies", func(t *testing.T) {
		got := gt.R1(repo.Subjects(ctx)).NoError(t)
		got[0].Name = "mutated"

		again := gt.R1(repo.Subjects(ctx)).NoError(t)
		gt.Equal(t, again[0].Name, "Consumer Behavior")
	})

	t.Run("stored record is a copy of the argument", func(t *testing.T) {
		s := &journal.Subject{ID: "s4", Name: "Marketing", Category: types.SubjectCategoryBusiness, Curiosity: 4, Closure: 4, CreatedAt: base}
		gt.NoError(t, repo.PutSubject(ctx, s))
		s.Name = "mutated"

		got := gt.R1(repo.SubjectsByCategory(ctx, types.SubjectCategoryBusiness)).NoError(t)
		gt.Equal(t, got[0].Name, "Marketing")
	})

	t.Run("invalid subject is rejected", func(t *testing.T) {
		err := repo.PutSubject(ctx, &journal.Subject{ID: "s5", Name: "", Category: types.SubjectCategoryOther})
		gt.Error(t, err)
	})
}

func TestActivities(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()
	base := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)

	activities := journal.Activities{
		{ID: "a1", Name: "Hackathon", Kind: types.ActivityKindTeamProject, Achievement: 8, Power: 5, Affiliation: 7, Flow: 80, CreatedAt: base},
		{ID: "a2", Name: "Barista", Kind: types.ActivityKindPartTimeJob, Achievement: 3, Power: 2, Affiliation: 6, Flow: 40, CreatedAt: base.Add(time.Hour)},
		{ID: "a3", Name: "Research Assistant", Kind: types.ActivityKindPersonalResearch, Achievement: 7, Power: 4, Affiliation: 3, Flow: 70, CreatedAt: base.Add(2 * time.Hour)},
	}
	for _, a := range activities {
		gt.NoError(t, repo.PutActivity(ctx, a))
	}

	t.Run("list keeps insertion order", func(t *testing.T) {
		got := gt.R1(repo.Activities(ctx)).NoError(t)
		gt.Equal(t, got.Names(), []string{"Hackathon", "Barista", "Research Assistant"})
	})

	t.Run("filter by kind", func(t *testing.T) {
		got := gt.R1(repo.ActivitiesByKind(ctx, types.ActivityKindPartTimeJob)).NoError(t)
		gt.Equal(t, len(got), 1)
		gt.Equal(t, got[0].Name, "Barista")
	})

	t.Run("trait scores survive the round trip", func(t *testing.T) {
		got := gt.R1(repo.Activities(ctx)).NoError(t)
		gt.Equal(t, got[0].TraitVector(), [3]float64{8, 5, 7})
		gt.Equal(t, got[0].Flow, 80.0)
	})

	t.Run("out-of-range score is rejected", func(t *testing.T) {
		err := repo.PutActivity(ctx, &journal.Activity{
			ID: "a4", Name: "Bad", Kind: types.ActivityKindClub, Achievement: 11,
		})
		gt.Error(t, err)
	})
}

func TestBooks(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()

	gt.NoError(t, repo.PutBook(ctx, &journal.Book{ID: "b1", Title: "Thinking, Fast and Slow", Complexity: 8, Meaning: "changed how I frame decisions"}))
	gt.NoError(t, repo.PutBook(ctx, &journal.Book{ID: "b2", Title: "The Design of Everyday Things", Complexity: 6, Meaning: "affordances everywhere"}))

	got := gt.R1(repo.Books(ctx)).NoError(t)
	gt.Equal(t, got.Titles(), []string{"Thinking, Fast and Slow", "The Design of Everyday Things"})

	gt.Error(t, repo.PutBook(ctx, &journal.Book{ID: "b3", Title: ""}))
}

func TestQuestions(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()

	gt.NoError(t, repo.PutQuestion(ctx, &journal.Question{ID: "q1", Label: "strength", Body: "Describe a strength."}))
	gt.NoError(t, repo.PutQuestion(ctx, &journal.Question{
		ID: "q2", Label: journal.DraftLabel("strength"),
		Materials: []string{"activities:Hackathon"},
		Body:      "Draft answer.",
	}))

	t.Run("round trip with materials", func(t *testing.T) {
		got := gt.R1(repo.Questions(ctx)).NoError(t)
		gt.Equal(t, len(got), 2)
		gt.Equal(t, got[1].Materials, []string{"activities:Hackathon"})
		gt.True(t, got[1].IsDraft())
	})

	t.Run("materials slice is isolated", func(t *testing.T) {
		got := gt.R1(repo.Questions(ctx)).NoError(t)
		got[1].Materials[0] = "mutated"

		again := gt.R1(repo.Questions(ctx)).NoError(t)
		gt.Equal(t, again[1].Materials, []string{"activities:Hackathon"})
	})

	t.Run("prompts filter drafts out", func(t *testing.T) {
		got := gt.R1(repo.Questions(ctx)).NoError(t)
		prompts := got.Prompts()
		gt.Equal(t, len(prompts), 1)
		gt.Equal(t, prompts[0].Label, "strength")
	})
}

func TestClose(t *testing.T) {
	repo := memory.New()
	gt.NoError(t, repo.Close())
}
