package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/reflect-lab/stella/pkg/domain/model/errs"
	"github.com/reflect-lab/stella/pkg/domain/types"
	"github.com/reflect-lab/stella/pkg/utils/clock"
	"github.com/reflect-lab/stella/pkg/utils/logging"
	"github.com/reflect-lab/stella/pkg/utils/safe"
)

// Exports are UTF-8 with a BOM so spreadsheet applications detect the
// encoding of Korean text in memo fields.
var csvBOM = []byte{0xEF, 0xBB, 0xBF}

const exportDateLayout = "20060102"

var csvHeaders = map[types.Dataset][]string{
	types.DatasetSubjects:   {"id", "name", "category", "summary", "curiosity", "closure", "memo", "created_at"},
	types.DatasetActivities: {"id", "name", "kind", "summary", "achievement", "power", "affiliation", "flow", "memo", "created_at"},
	types.DatasetBooks:      {"id", "title", "complexity", "meaning", "created_at"},
	types.DatasetQuestions:  {"id", "label", "materials", "body", "created_at"},
}

// ExportCSV renders one dataset as CSV and returns the bytes together
// with the dated file name ("<dataset>_YYYYMMDD.csv", local timezone).
func (uc *UseCases) ExportCSV(ctx context.Context, dataset types.Dataset) ([]byte, string, error) {
	if err := dataset.Validate(); err != nil {
		return nil, "", goerr.Wrap(err, "invalid dataset", goerr.T(errs.TagInvalidRequest))
	}

	rows, err := uc.exportRows(ctx, dataset)
	if err != nil {
		return nil, "", err
	}

	var buf bytes.Buffer
	buf.Write(csvBOM)
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeaders[dataset]); err != nil {
		return nil, "", goerr.Wrap(err, "failed to write csv header", goerr.T(errs.TagInternal))
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return nil, "", goerr.Wrap(err, "failed to write csv row", goerr.T(errs.TagInternal))
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", goerr.Wrap(err, "failed to render csv", goerr.T(errs.TagInternal))
	}

	date := clock.Now(ctx).In(clock.Timezone(ctx)).Format(exportDateLayout)
	name := fmt.Sprintf("%s_%s.csv", dataset, date)
	return buf.Bytes(), name, nil
}

func (uc *UseCases) exportRows(ctx context.Context, dataset types.Dataset) ([][]string, error) {
	switch dataset {
	case types.DatasetSubjects:
		subjects, err := uc.repository.Subjects(ctx)
		if err != nil {
			return nil, err
		}
		rows := make([][]string, 0, len(subjects))
		for _, s := range subjects {
			rows = append(rows, []string{
				s.ID.String(), s.Name, s.Category.String(), s.Summary,
				formatScore(s.Curiosity), formatScore(s.Closure), s.Memo,
				formatTimestamp(s.CreatedAt),
			})
		}
		return rows, nil

	case types.DatasetActivities:
		activities, err := uc.repository.Activities(ctx)
		if err != nil {
			return nil, err
		}
		rows := make([][]string, 0, len(activities))
		for _, a := range activities {
			rows = append(rows, []string{
				a.ID.String(), a.Name, a.Kind.String(), a.Summary,
				formatScore(a.Achievement), formatScore(a.Power),
				formatScore(a.Affiliation), formatScore(a.Flow), a.Memo,
				formatTimestamp(a.CreatedAt),
			})
		}
		return rows, nil

	case types.DatasetBooks:
		books, err := uc.repository.Books(ctx)
		if err != nil {
			return nil, err
		}
		rows := make([][]string, 0, len(books))
		for _, b := range books {
			rows = append(rows, []string{
				b.ID.String(), b.Title, formatScore(b.Complexity), b.Meaning,
				formatTimestamp(b.CreatedAt),
			})
		}
		return rows, nil

	default:
		questions, err := uc.repository.Questions(ctx)
		if err != nil {
			return nil, err
		}
		rows := make([][]string, 0, len(questions))
		for _, q := range questions {
			rows = append(rows, []string{
				q.ID.String(), q.Label, joinMaterials(q.Materials), q.Body,
				formatTimestamp(q.CreatedAt),
			})
		}
		return rows, nil
	}
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func formatTimestamp(ts time.Time) string {
	if ts.IsZero() {
		return ""
	}
	return ts.Format(time.RFC3339)
}

func joinMaterials(materials []string) string {
	return strings.Join(materials, ";")
}

// Backup writes all four datasets to the configured storage client and
// returns the object names.
func (uc *UseCases) Backup(ctx context.Context) ([]string, error) {
	if uc.storageClient == nil {
		return nil, goerr.Wrap(ErrStorageNotConfigured, "cannot backup journal",
			goerr.T(errs.TagUnavailable))
	}

	objects := make([]string, 0, len(types.Datasets()))
	for _, dataset := range types.Datasets() {
		data, name, err := uc.ExportCSV(ctx, dataset)
		if err != nil {
			return nil, err
		}

		object := uc.storagePrefix + name
		w := uc.storageClient.PutObject(ctx, object)
		if _, err := w.Write(data); err != nil {
			safe.Close(ctx, w)
			return nil, goerr.Wrap(err, "failed to write backup object",
				goerr.T(errs.TagUnavailable),
				goerr.V("object", object))
		}
		if err := w.Close(); err != nil {
			return nil, goerr.Wrap(err, "failed to finalize backup object",
				goerr.T(errs.TagUnavailable),
				goerr.V("object", object))
		}

		objects = append(objects, object)
	}

	logging.From(ctx).Info("journal backup written", "objects", objects)
	return objects, nil
}
