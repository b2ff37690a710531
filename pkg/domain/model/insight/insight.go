package insight

import (
	"time"

	"github.com/reflect-lab/stella/pkg/domain/types"
	"github.com/reflect-lab/stella/pkg/service/digest"
	"github.com/reflect-lab/stella/pkg/service/keyword"
	"github.com/reflect-lab/stella/pkg/service/scoring"
)

// Overview holds the record count of each dataset.
type Overview struct {
	Subjects   int `json:"subjects"`
	Activities int `json:"activities"`
	Books      int `json:"books"`
	Questions  int `json:"questions"`
}

// Total returns the number of records across all datasets.
func (x Overview) Total() int {
	return x.Subjects + x.Activities + x.Books + x.Questions
}

// Breakdown tallies subjects by category and activities by kind. A skew
// toward a single label is the signal the caller is looking for.
type Breakdown struct {
	Categories []digest.Count `json:"categories"`
	Kinds      []digest.Count `json:"kinds"`
}

// Report bundles the overview, breakdown, ranking and keyword digest in a
// single result. Datasets whose store fetch failed are listed in
// Unavailable and their sections are computed from empty inputs, so a
// partial store outage still yields a usable report.
type Report struct {
	Overview    Overview        `json:"overview"`
	Breakdown   Breakdown       `json:"breakdown"`
	Ranking     scoring.Ranking `json:"ranking"`
	Keywords    []keyword.Entry `json:"keywords"`
	Unavailable []types.Dataset `json:"unavailable,omitempty"`
	GeneratedAt time.Time       `json:"generated_at"`
}

// Degraded reports whether any dataset was unavailable when the report
// was built.
func (x *Report) Degraded() bool {
	return len(x.Unavailable) > 0
}

// Materials lists the referenceable record names per dataset, used to
// populate the material pickers of the drafting workflow.
type Materials struct {
	Subjects   []string `json:"subjects"`
	Activities []string `json:"activities"`
	Books      []string `json:"books"`
}
