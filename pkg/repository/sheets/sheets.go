package sheets

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/reflect-lab/stella/pkg/domain/interfaces"
	"github.com/reflect-lab/stella/pkg/domain/model/errs"
	"github.com/reflect-lab/stella/pkg/domain/model/journal"
	"github.com/reflect-lab/stella/pkg/domain/types"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	sheets "google.golang.org/api/sheets/v4"
)

// Sheets stores journal records in a Google Spreadsheet, one worksheet
// per dataset with a header row. Reads resolve columns by header name and
// coerce malformed trait cells to zero, so spreadsheets maintained by
// hand keep working. Rows without an id cell get a deterministic
// "<dataset>-<row>" id derived from their worksheet row number.
type Sheets struct {
	svc           *sheets.Service
	spreadsheetID string

	mu    sync.Mutex
	ready map[types.Dataset]bool

	eb *goerr.Builder
}

var _ interfaces.Repository = &Sheets{}

func New(ctx context.Context, spreadsheetID string, opts ...option.ClientOption) (*Sheets, error) {
	svc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create sheets service",
			goerr.T(errs.TagUnavailable),
			goerr.V("spreadsheet_id", spreadsheetID))
	}

	return &Sheets{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		ready:         map[types.Dataset]bool{},
		eb: goerr.NewBuilder(
			goerr.TV(errs.BackendKey, "sheets"),
			goerr.V("spreadsheet_id", spreadsheetID),
		),
	}, nil
}

func (r *Sheets) Close() error {
	return nil
}

func (r *Sheets) PutSubject(ctx context.Context, subject *journal.Subject) error {
	if err := subject.Validate(); err != nil {
		return r.eb.Wrap(err, "invalid subject")
	}
	return r.putRow(ctx, types.DatasetSubjects, subjectColumns, subject.ID, encodeSubject(subject))
}

func (r *Sheets) Subjects(ctx context.Context) (journal.Subjects, error) {
	values, err := r.fetch(ctx, types.DatasetSubjects)
	if err != nil {
		return nil, err
	}
	return decodeSubjects(values), nil
}

func (r *Sheets) SubjectsByCategory(ctx context.Context, category types.SubjectCategory) (journal.Subjects, error) {
	all, err := r.Subjects(ctx)
	if err != nil {
		return nil, err
	}

	var subjects journal.Subjects
	for _, s := range all {
		if s.Category == category {
			subjects = append(subjects, s)
		}
	}
	return subjects, nil
}

func (r *Sheets) PutActivity(ctx context.Context, activity *journal.Activity) error {
	if err := activity.Validate(); err != nil {
		return r.eb.Wrap(err, "invalid activity")
	}
	return r.putRow(ctx, types.DatasetActivities, activityColumns, activity.ID, encodeActivity(activity))
}

func (r *Sheets) Activities(ctx context.Context) (journal.Activities, error) {
	values, err := r.fetch(ctx, types.DatasetActivities)
	if err != nil {
		return nil, err
	}
	return decodeActivities(values), nil
}

func (r *Sheets) ActivitiesByKind(ctx context.Context, kind types.ActivityKind) (journal.Activities, error) {
	all, err := r.Activities(ctx)
	if err != nil {
		return nil, err
	}

	var activities journal.Activities
	for _, a := range all {
		if a.Kind == kind {
			activities = append(activities, a)
		}
	}
	return activities, nil
}

func (r *Sheets) PutBook(ctx context.Context, book *journal.Book) error {
	if err := book.Validate(); err != nil {
		return r.eb.Wrap(err, "invalid book")
	}
	return r.putRow(ctx, types.DatasetBooks, bookColumns, book.ID, encodeBook(book))
}

func (r *Sheets) Books(ctx context.Context) (journal.Books, error) {
	values, err := r.fetch(ctx, types.DatasetBooks)
	if err != nil {
		return nil, err
	}
	return decodeBooks(values), nil
}

func (r *Sheets) PutQuestion(ctx context.Context, question *journal.Question) error {
	if err := question.Validate(); err != nil {
		return r.eb.Wrap(err, "invalid question")
	}
	return r.putRow(ctx, types.DatasetQuestions, questionColumns, question.ID, encodeQuestion(question))
}

func (r *Sheets) Questions(ctx context.Context) (journal.Questions, error) {
	values, err := r.fetch(ctx, types.DatasetQuestions)
	if err != nil {
		return nil, err
	}
	return decodeQuestions(values), nil
}

// fetch reads the full worksheet of a dataset. A worksheet that does not
// exist yet reads as empty rather than an error.
func (r *Sheets) fetch(ctx context.Context, dataset types.Dataset) ([][]interface{}, error) {
	rng := fmt.Sprintf("%s!A:Z", dataset)
	resp, err := r.svc.Spreadsheets.Values.Get(r.spreadsheetID, rng).Context(ctx).Do()
	if err != nil {
		if isMissingWorksheet(err) {
			return nil, nil
		}
		return nil, r.eb.Wrap(err, "failed to fetch worksheet",
			goerr.T(errs.TagUnavailable),
			goerr.TV(errs.DatasetKey, dataset.String()))
	}
	return resp.Values, nil
}

// putRow replaces the row with a matching id, or appends a new one.
func (r *Sheets) putRow(ctx context.Context, dataset types.Dataset, columns []string, id types.RecordID, row []interface{}) error {
	if err := r.ensureWorksheet(ctx, dataset, columns); err != nil {
		return err
	}

	values, err := r.fetch(ctx, dataset)
	if err != nil {
		return err
	}

	if len(values) > 1 {
		h := headerOf(values[0])
		for i, existing := range values[1:] {
			if rowID(h, existing, dataset, i+2) != id {
				continue
			}

			rng := fmt.Sprintf("%s!A%d", dataset, i+2)
			vr := &sheets.ValueRange{Values: [][]interface{}{row}}
			if _, err := r.svc.Spreadsheets.Values.Update(r.spreadsheetID, rng, vr).
				ValueInputOption("RAW").
				Context(ctx).Do(); err != nil {
				return r.eb.Wrap(err, "failed to update row",
					goerr.T(errs.TagUnavailable),
					goerr.TV(errs.DatasetKey, dataset.String()),
					goerr.TV(errs.RecordIDKey, id.String()))
			}
			return nil
		}
	}

	vr := &sheets.ValueRange{Values: [][]interface{}{row}}
	if _, err := r.svc.Spreadsheets.Values.Append(r.spreadsheetID, fmt.Sprintf("%s!A1", dataset), vr).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do(); err != nil {
		return r.eb.Wrap(err, "failed to append row",
			goerr.T(errs.TagUnavailable),
			goerr.TV(errs.DatasetKey, dataset.String()),
			goerr.TV(errs.RecordIDKey, id.String()))
	}
	return nil
}

// ensureWorksheet creates the dataset worksheet and its header row on
// first use of a fresh spreadsheet.
func (r *Sheets) ensureWorksheet(ctx context.Context, dataset types.Dataset, columns []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.ready[dataset] {
		return nil
	}

	resp, err := r.svc.Spreadsheets.Values.Get(r.spreadsheetID, fmt.Sprintf("%s!A1:A1", dataset)).Context(ctx).Do()
	switch {
	case err != nil && isMissingWorksheet(err):
		req := &sheets.BatchUpdateSpreadsheetRequest{
			Requests: []*sheets.Request{{
				AddSheet: &sheets.AddSheetRequest{
					Properties: &sheets.SheetProperties{Title: dataset.String()},
				},
			}},
		}
		if _, err := r.svc.Spreadsheets.BatchUpdate(r.spreadsheetID, req).Context(ctx).Do(); err != nil {
			return r.eb.Wrap(err, "failed to add worksheet",
				goerr.T(errs.TagUnavailable),
				goerr.TV(errs.DatasetKey, dataset.String()))
		}

	case err != nil:
		return r.eb.Wrap(err, "failed to inspect worksheet",
			goerr.T(errs.TagUnavailable),
			goerr.TV(errs.DatasetKey, dataset.String()))

	case len(resp.Values) > 0:
		r.ready[dataset] = true
		return nil
	}

	hdr := make([]interface{}, len(columns))
	for i, c := range columns {
		hdr[i] = c
	}
	vr := &sheets.ValueRange{Values: [][]interface{}{hdr}}
	if _, err := r.svc.Spreadsheets.Values.Append(r.spreadsheetID, fmt.Sprintf("%s!A1", dataset), vr).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do(); err != nil {
		return r.eb.Wrap(err, "failed to write header row",
			goerr.T(errs.TagUnavailable),
			goerr.TV(errs.DatasetKey, dataset.String()))
	}

	r.ready[dataset] = true
	return nil
}

func isMissingWorksheet(err error) bool {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return apiErr.Code == http.StatusBadRequest || apiErr.Code == http.StatusNotFound
	}
	return false
}
