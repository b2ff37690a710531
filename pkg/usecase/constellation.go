package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/reflect-lab/stella/pkg/domain/model/errs"
	"github.com/reflect-lab/stella/pkg/domain/types"
	"github.com/reflect-lab/stella/pkg/service/similarity"
)

// Constellation projects every activity onto the 2D trait map and lists
// the nearest neighbors of the anchor activity.
func (uc *UseCases) Constellation(ctx context.Context, anchorID types.RecordID) (*similarity.Constellation, error) {
	if err := anchorID.Validate(); err != nil {
		return nil, goerr.Wrap(err, "anchor activity is required", goerr.T(errs.TagInvalidRequest))
	}

	activities, err := uc.repository.Activities(ctx)
	if err != nil {
		return nil, err
	}

	return uc.similarity.Build(ctx, activities, anchorID)
}
