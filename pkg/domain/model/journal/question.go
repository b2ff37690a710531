package journal

import (
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/reflect-lab/stella/pkg/domain/types"
)

const draftLabelSuffix = " (draft)"

// Question is an essay prompt, or a drafted answer saved back into the
// same dataset. Drafts carry the source prompt's label with a suffix and
// the material refs their evidence was composed from.
type Question struct {
	ID        types.RecordID `json:"id" yaml:"id"`
	Label     string         `json:"label" yaml:"label"`
	Materials []string       `json:"materials,omitempty" yaml:"materials,omitempty"`
	Body      string         `json:"body" yaml:"body"`
	CreatedAt time.Time      `json:"created_at" yaml:"created_at"`
}

func (x *Question) Validate() error {
	if x.Label == "" {
		return goerr.New("question label is required")
	}
	if x.Body == "" {
		return goerr.New("question body is required")
	}
	return nil
}

// IsDraft reports whether the row is a saved answer rather than a prompt.
func (x *Question) IsDraft() bool {
	return strings.HasSuffix(x.Label, draftLabelSuffix)
}

// DraftLabel derives the label under which an answer to the given prompt
// label is stored.
func DraftLabel(promptLabel string) string {
	return promptLabel + draftLabelSuffix
}

type Questions []*Question

// Prompts returns only the prompt rows, in collection order.
func (x Questions) Prompts() Questions {
	var prompts Questions
	for _, q := range x {
		if !q.IsDraft() {
			prompts = append(prompts, q)
		}
	}
	return prompts
}

// FindByLabel returns the first question with the given label, or nil.
func (x Questions) FindByLabel(label string) *Question {
	for _, q := range x {
		if q.Label == label {
			return q
		}
	}
	return nil
}
