package digest_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/reflect-lab/stella/pkg/domain/model/journal"
	"github.com/reflect-lab/stella/pkg/domain/types"
	"github.com/reflect-lab/stella/pkg/service/digest"
)

func TestByCategory(t *testing.T) {
	subjects := journal.Subjects{
		{Name: "a", Category: types.SubjectCategoryProgramming},
		{Name: "b", Category: types.SubjectCategoryDataScience},
		{Name: "c", Category: types.SubjectCategoryProgramming},
		{Name: "d", Category: types.SubjectCategoryBusiness},
	}

	counts := digest.ByCategory(subjects)

	gt.Equal(t, counts, []digest.Count{
		{Label: "programming", Count: 2},
		{Label: "data-science", Count: 1},
		{Label: "business", Count: 1},
	})
}

func TestByKind(t *testing.T) {
	t.Run("ties keep first appearance", func(t *testing.T) {
		activities := journal.Activities{
			{Name: "a", Kind: types.ActivityKindClub},
			{Name: "b", Kind: types.ActivityKindInternship},
			{Name: "c", Kind: types.ActivityKindInternship},
			{Name: "d", Kind: types.ActivityKindClub},
		}

		counts := digest.ByKind(activities)

		gt.Equal(t, counts, []digest.Count{
			{Label: "club", Count: 2},
			{Label: "internship", Count: 2},
		})
	})

	t.Run("empty collection", func(t *testing.T) {
		gt.Equal(t, len(digest.ByKind(nil)), 0)
	})
}
