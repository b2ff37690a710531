package journal

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/reflect-lab/stella/pkg/domain/types"
)

// Book is a read book with an integrative-complexity score and a
// free-text reflection on what it meant to the reader.
type Book struct {
	ID         types.RecordID `json:"id" yaml:"id"`
	Title      string         `json:"title" yaml:"title"`
	Complexity float64        `json:"complexity" yaml:"complexity"` // 0-10
	Meaning    string         `json:"meaning" yaml:"meaning"`
	CreatedAt  time.Time      `json:"created_at" yaml:"created_at"`
}

func (x *Book) Validate() error {
	if x.Title == "" {
		return goerr.New("book title is required")
	}
	if err := checkScoreRange("complexity", x.Complexity, 0, 10); err != nil {
		return err
	}
	return nil
}

type Books []*Book

// Titles returns book titles in collection order.
func (x Books) Titles() []string {
	titles := make([]string, 0, len(x))
	for _, b := range x {
		titles = append(titles, b.Title)
	}
	return titles
}
