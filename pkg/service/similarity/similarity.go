package similarity

import (
	"context"
	"math"
	"sort"

	goerr "github.com/m-mizutani/goerr/v2"
	"github.com/reflect-lab/stella/pkg/domain/model/errs"
	"github.com/reflect-lab/stella/pkg/domain/model/journal"
	"github.com/reflect-lab/stella/pkg/domain/types"
)

// MinRecords is the smallest activity collection the engine accepts.
const MinRecords = 3

// neighborhoodSize caps the anchor's neighborhood, anchor included, so
// at most neighborhoodSize-1 neighbors are reported.
const neighborhoodSize = 4

// Point is one activity placed on the 2D projection. The full activity
// rides along so clients can size or color markers by Flow.
type Point struct {
	Activity *journal.Activity `json:"activity"`
	X        float64           `json:"x"`
	Y        float64           `json:"y"`
}

// Neighbor is one nearby activity with its distance in raw trait space.
type Neighbor struct {
	Activity *journal.Activity `json:"activity"`
	Distance float64           `json:"distance"`
}

// Constellation is the similarity map around an anchor activity.
type Constellation struct {
	Anchor    *journal.Activity `json:"anchor"`
	Points    []Point           `json:"points"`
	Neighbors []Neighbor        `json:"neighbors"`
}

// Service builds similarity maps over activity collections.
type Service interface {
	// Build projects all activities onto their two principal trait axes
	// and lists the anchor's nearest neighbors in raw trait space.
	Build(ctx context.Context, activities journal.Activities, anchorID types.RecordID) (*Constellation, error)
}

// NewService creates a new similarity service instance.
func NewService() Service {
	return &service{}
}

type service struct{}

func (s *service) Build(ctx context.Context, activities journal.Activities, anchorID types.RecordID) (*Constellation, error) {
	if len(activities) < MinRecords {
		return nil, goerr.Wrap(errs.ErrInsufficientRecords, "constellation needs more activities",
			goerr.T(errs.TagInsufficientData),
			goerr.V("required", MinRecords),
			goerr.V("actual", len(activities)),
		)
	}

	anchor := activities.Find(anchorID)
	if anchor == nil {
		return nil, goerr.Wrap(errs.ErrRecordNotFound, "anchor activity not found",
			goerr.T(errs.TagNotFound),
			goerr.TV(errs.RecordIDKey, anchorID.String()),
		)
	}

	vecs := make([][3]float64, len(activities))
	for i, a := range activities {
		vecs[i] = a.TraitVector()
	}
	coords := project(vecs)

	points := make([]Point, len(activities))
	for i, a := range activities {
		points[i] = Point{Activity: a, X: coords[i][0], Y: coords[i][1]}
	}

	return &Constellation{
		Anchor:    anchor,
		Points:    points,
		Neighbors: s.nearest(activities, anchor, neighborhoodSize-1),
	}, nil
}

// nearest returns the k nearest activities to the anchor by Euclidean
// distance over raw trait vectors. The anchor is excluded by identity,
// never by distance: a duplicate vector under another ID is a legitimate
// neighbor at distance zero. Ties keep collection order.
func (s *service) nearest(activities journal.Activities, anchor *journal.Activity, k int) []Neighbor {
	anchorVec := anchor.TraitVector()
	candidates := make([]Neighbor, 0, len(activities)-1)
	for _, a := range activities {
		if a.ID == anchor.ID {
			continue
		}
		candidates = append(candidates, Neighbor{
			Activity: a,
			Distance: euclideanDistance(anchorVec, a.TraitVector()),
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Distance < candidates[j].Distance
	})

	if len(candidates) > k {
		candidates = candidates[:k]
	}
	return candidates
}

func euclideanDistance(v1, v2 [3]float64) float64 {
	var sum float64
	for i := range v1 {
		d := v1[i] - v2[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}
