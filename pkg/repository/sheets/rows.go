package sheets

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/reflect-lab/stella/pkg/domain/model/journal"
	"github.com/reflect-lab/stella/pkg/domain/types"
)

// Worksheet columns per dataset. The first row of each worksheet is the
// header; decoding resolves columns by header name, so users may reorder
// or extend columns in the spreadsheet without breaking reads.
var (
	subjectColumns  = []string{"id", "name", "category", "summary", "curiosity", "closure", "memo", "created_at"}
	activityColumns = []string{"id", "name", "kind", "summary", "achievement", "power", "affiliation", "flow", "memo", "created_at"}
	bookColumns     = []string{"id", "title", "complexity", "meaning", "created_at"}
	questionColumns = []string{"id", "label", "materials", "body", "created_at"}
)

// materialSeparator joins material refs into a single cell.
const materialSeparator = ";"

type header map[string]int

func headerOf(row []interface{}) header {
	h := make(header, len(row))
	for i, v := range row {
		name := strings.ToLower(strings.TrimSpace(cellString(v)))
		if name == "" {
			continue
		}
		if _, ok := h[name]; !ok {
			h[name] = i
		}
	}
	return h
}

func cellString(v interface{}) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

func (h header) cell(row []interface{}, name string) string {
	idx, ok := h[name]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(cellString(row[idx]))
}

// rowID returns the id cell, or a deterministic fallback derived from the
// worksheet row number so rows added by hand without an id still resolve.
func rowID(h header, row []interface{}, dataset types.Dataset, rowNum int) types.RecordID {
	if id := h.cell(row, "id"); id != "" {
		return types.RecordID(id)
	}
	return types.RecordID(fmt.Sprintf("%s-%d", dataset, rowNum))
}

func parseTimestamp(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		return ts
	}
	return time.Time{}
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func decodeSubjects(values [][]interface{}) journal.Subjects {
	if len(values) < 2 {
		return nil
	}
	h := headerOf(values[0])

	var subjects journal.Subjects
	for i, row := range values[1:] {
		rowNum := i + 2 // worksheet row number, header is row 1
		s := &journal.Subject{
			ID:        rowID(h, row, types.DatasetSubjects, rowNum),
			Name:      h.cell(row, "name"),
			Category:  types.SubjectCategory(h.cell(row, "category")),
			Summary:   h.cell(row, "summary"),
			Curiosity: journal.CoerceTrait(h.cell(row, "curiosity")),
			Closure:   journal.CoerceTrait(h.cell(row, "closure")),
			Memo:      h.cell(row, "memo"),
			CreatedAt: parseTimestamp(h.cell(row, "created_at")),
		}
		subjects = append(subjects, s)
	}
	return subjects
}

func encodeSubject(s *journal.Subject) []interface{} {
	return []interface{}{
		s.ID.String(),
		s.Name,
		s.Category.String(),
		s.Summary,
		formatScore(s.Curiosity),
		formatScore(s.Closure),
		s.Memo,
		s.CreatedAt.Format(time.RFC3339),
	}
}

func decodeActivities(values [][]interface{}) journal.Activities {
	if len(values) < 2 {
		return nil
	}
	h := headerOf(values[0])

	var activities journal.Activities
	for i, row := range values[1:] {
		rowNum := i + 2
		a := &journal.Activity{
			ID:          rowID(h, row, types.DatasetActivities, rowNum),
			Name:        h.cell(row, "name"),
			Kind:        types.ActivityKind(h.cell(row, "kind")),
			Summary:     h.cell(row, "summary"),
			Achievement: journal.CoerceTrait(h.cell(row, "achievement")),
			Power:       journal.CoerceTrait(h.cell(row, "power")),
			Affiliation: journal.CoerceTrait(h.cell(row, "affiliation")),
			Flow:        journal.CoerceTrait(h.cell(row, "flow")),
			Memo:        h.cell(row, "memo"),
			CreatedAt:   parseTimestamp(h.cell(row, "created_at")),
		}
		activities = append(activities, a)
	}
	return activities
}

func encodeActivity(a *journal.Activity) []interface{} {
	return []interface{}{
		a.ID.String(),
		a.Name,
		a.Kind.String(),
		a.Summary,
		formatScore(a.Achievement),
		formatScore(a.Power),
		formatScore(a.Affiliation),
		formatScore(a.Flow),
		a.Memo,
		a.CreatedAt.Format(time.RFC3339),
	}
}

func decodeBooks(values [][]interface{}) journal.Books {
	if len(values) < 2 {
		return nil
	}
	h := headerOf(values[0])

	var books journal.Books
	for i, row := range values[1:] {
		rowNum := i + 2
		b := &journal.Book{
			ID:         rowID(h, row, types.DatasetBooks, rowNum),
			Title:      h.cell(row, "title"),
			Complexity: journal.CoerceTrait(h.cell(row, "complexity")),
			Meaning:    h.cell(row, "meaning"),
			CreatedAt:  parseTimestamp(h.cell(row, "created_at")),
		}
		books = append(books, b)
	}
	return books
}

func encodeBook(b *journal.Book) []interface{} {
	return []interface{}{
		b.ID.String(),
		b.Title,
		formatScore(b.Complexity),
		b.Meaning,
		b.CreatedAt.Format(time.RFC3339),
	}
}

func decodeQuestions(values [][]interface{}) journal.Questions {
	if len(values) < 2 {
		return nil
	}
	h := headerOf(values[0])

	var questions journal.Questions
	for i, row := range values[1:] {
		rowNum := i + 2
		q := &journal.Question{
			ID:        rowID(h, row, types.DatasetQuestions, rowNum),
			Label:     h.cell(row, "label"),
			Materials: splitMaterials(h.cell(row, "materials")),
			Body:      h.cell(row, "body"),
			CreatedAt: parseTimestamp(h.cell(row, "created_at")),
		}
		questions = append(questions, q)
	}
	return questions
}

func encodeQuestion(q *journal.Question) []interface{} {
	return []interface{}{
		q.ID.String(),
		q.Label,
		strings.Join(q.Materials, materialSeparator),
		q.Body,
		q.CreatedAt.Format(time.RFC3339),
	}
}

func splitMaterials(cell string) []string {
	if cell == "" {
		return nil
	}
	var materials []string
	for _, part := range strings.Split(cell, materialSeparator) {
		if ref := strings.TrimSpace(part); ref != "" {
			materials = append(materials, ref)
		}
	}
	return materials
}
