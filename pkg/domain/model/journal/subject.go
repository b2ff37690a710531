package journal

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/reflect-lab/stella/pkg/domain/types"
)

// Subject is a studied course with small psychometric annotations.
type Subject struct {
	ID        types.RecordID        `json:"id" yaml:"id"`
	Name      string                `json:"name" yaml:"name"`
	Category  types.SubjectCategory `json:"category" yaml:"category"`
	Summary   string                `json:"summary" yaml:"summary"`
	Curiosity float64               `json:"curiosity" yaml:"curiosity"` // 0-10
	Closure   float64               `json:"closure" yaml:"closure"`    // 0-10
	Memo      string                `json:"memo" yaml:"memo"`
	CreatedAt time.Time             `json:"created_at" yaml:"created_at"`
}

func (x *Subject) Validate() error {
	if x.Name == "" {
		return goerr.New("subject name is required")
	}
	if err := x.Category.Validate(); err != nil {
		return err
	}
	if err := checkScoreRange("curiosity", x.Curiosity, 0, 10); err != nil {
		return err
	}
	if err := checkScoreRange("closure", x.Closure, 0, 10); err != nil {
		return err
	}
	return nil
}

type Subjects []*Subject

// Names returns subject names in collection order.
func (x Subjects) Names() []string {
	names := make([]string, 0, len(x))
	for _, s := range x {
		names = append(names, s.Name)
	}
	return names
}
