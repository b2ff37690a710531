package journal

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/reflect-lab/stella/pkg/domain/types"
)

// Activity is a project, job, or extracurricular experience. The three
// motivation scores plus the immersion score drive ranking; only the
// motivation scores form the similarity feature space.
type Activity struct {
	ID          types.RecordID     `json:"id" yaml:"id"`
	Name        string             `json:"name" yaml:"name"`
	Kind        types.ActivityKind `json:"kind" yaml:"kind"`
	Summary     string             `json:"summary" yaml:"summary"`
	Achievement float64            `json:"achievement" yaml:"achievement"` // 0-10
	Power       float64            `json:"power" yaml:"power"`             // 0-10
	Affiliation float64            `json:"affiliation" yaml:"affiliation"` // 0-10
	Flow        float64            `json:"flow" yaml:"flow"`               // 0-100
	Memo        string             `json:"memo" yaml:"memo"`
	CreatedAt   time.Time          `json:"created_at" yaml:"created_at"`
}

func (x *Activity) Validate() error {
	if x.Name == "" {
		return goerr.New("activity name is required")
	}
	if err := x.Kind.Validate(); err != nil {
		return err
	}
	if err := checkScoreRange("achievement", x.Achievement, 0, 10); err != nil {
		return err
	}
	if err := checkScoreRange("power", x.Power, 0, 10); err != nil {
		return err
	}
	if err := checkScoreRange("affiliation", x.Affiliation, 0, 10); err != nil {
		return err
	}
	if err := checkScoreRange("flow", x.Flow, 0, 100); err != nil {
		return err
	}
	return nil
}

// TraitVector returns the similarity feature space. Flow is deliberately
// excluded: it is carried for presentation only.
func (x *Activity) TraitVector() [3]float64 {
	return [3]float64{x.Achievement, x.Power, x.Affiliation}
}

type Activities []*Activity

// Find returns the activity with the given ID, or nil.
func (x Activities) Find(id types.RecordID) *Activity {
	for _, a := range x {
		if a.ID == id {
			return a
		}
	}
	return nil
}

// FindByName returns the first activity with the given name, or nil.
func (x Activities) FindByName(name string) *Activity {
	for _, a := range x {
		if a.Name == name {
			return a
		}
	}
	return nil
}

// Names returns activity names in collection order.
func (x Activities) Names() []string {
	names := make([]string, 0, len(x))
	for _, a := range x {
		names = append(names, a.Name)
	}
	return names
}
