package firestore_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/reflect-lab/stella/pkg/domain/model/journal"
	"github.com/reflect-lab/stella/pkg/domain/types"
	"github.com/reflect-lab/stella/pkg/repository/firestore"
	"github.com/reflect-lab/stella/pkg/utils/test"
)

func TestFirestoreRepository(t *testing.T) {
	vars := test.NewEnvVars(t, "TEST_FIRESTORE_PROJECT_ID", "TEST_FIRESTORE_DATABASE_ID")

	ctx := context.Background()
	repo, err := firestore.New(ctx, vars.Get("TEST_FIRESTORE_PROJECT_ID"), vars.Get("TEST_FIRESTORE_DATABASE_ID"))
	gt.NoError(t, err).Required()
	defer func() {
		_ = repo.Close()
	}()

	// Unique IDs per run to avoid conflicts with leftover documents
	runID := time.Now().Format("20060102-150405.000000")
	now := time.Now().UTC().Truncate(time.Millisecond)

	t.Run("subject round trip", func(t *testing.T) {
		s := &journal.Subject{
			ID:        types.RecordID(fmt.Sprintf("test-subject-%s", runID)),
			Name:      fmt.Sprintf("Test Subject %s", runID),
			Category:  types.SubjectCategoryDataScience,
			Summary:   "integration fixture",
			Curiosity: 7,
			Closure:   5,
			CreatedAt: now,
		}
		gt.NoError(t, repo.PutSubject(ctx, s))

		subjects := gt.R1(repo.Subjects(ctx)).NoError(t)
		var found *journal.Subject
		for _, got := range subjects {
			if got.ID == s.ID {
				found = got
			}
		}
		gt.NotNil(t, found)
		gt.Equal(t, found.Name, s.Name)
		gt.Equal(t, found.Category, s.Category)
		gt.Equal(t, found.Curiosity, s.Curiosity)
	})

	t.Run("activities filtered by kind keep creation order", func(t *testing.T) {
		kind := types.ActivityKindCertification
		first := &journal.Activity{
			ID:        types.RecordID(fmt.Sprintf("test-activity-%s-1", runID)),
			Name:      fmt.Sprintf("Cert A %s", runID),
			Kind:      kind,
			CreatedAt: now,
		}
		second := &journal.Activity{
			ID:        types.RecordID(fmt.Sprintf("test-activity-%s-2", runID)),
			Name:      fmt.Sprintf("Cert B %s", runID),
			Kind:      kind,
			CreatedAt: now.Add(time.Second),
		}
		gt.NoError(t, repo.PutActivity(ctx, first))
		gt.NoError(t, repo.PutActivity(ctx, second))

		activities := gt.R1(repo.ActivitiesByKind(ctx, kind)).NoError(t)

		var mine journal.Activities
		for _, a := range activities {
			if a.ID == first.ID || a.ID == second.ID {
				mine = append(mine, a)
			}
		}
		gt.Equal(t, len(mine), 2)
		gt.Equal(t, mine[0].ID, first.ID)
		gt.Equal(t, mine[1].ID, second.ID)
	})

	t.Run("question materials survive the round trip", func(t *testing.T) {
		q := &journal.Question{
			ID:        types.RecordID(fmt.Sprintf("test-question-%s", runID)),
			Label:     fmt.Sprintf("test prompt %s", runID),
			Materials: []string{"activities:Test", "books:Test"},
			Body:      "integration fixture",
			CreatedAt: now,
		}
		gt.NoError(t, repo.PutQuestion(ctx, q))

		questions := gt.R1(repo.Questions(ctx)).NoError(t)
		var found *journal.Question
		for _, got := range questions {
			if got.ID == q.ID {
				found = got
			}
		}
		gt.NotNil(t, found)
		gt.Equal(t, found.Materials, q.Materials)
	})
}
