package usecase_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/reflect-lab/stella/pkg/adapter/storage"
	"github.com/reflect-lab/stella/pkg/domain/model/errs"
	"github.com/reflect-lab/stella/pkg/domain/types"
	"github.com/reflect-lab/stella/pkg/usecase"
	"github.com/reflect-lab/stella/pkg/utils/clock"
)

var bom = []byte{0xEF, 0xBB, 0xBF}

func exportCtx() context.Context {
	now := time.Date(2025, 4, 1, 9, 30, 0, 0, time.UTC)
	ctx := clock.With(context.Background(), func() time.Time { return now })
	return clock.WithTimezone(ctx, time.UTC)
}

func TestExportCSV(t *testing.T) {
	ctx := exportCtx()
	uc := usecase.New()
	seedJournal(t, ctx, uc)

	data, name, err := uc.ExportCSV(ctx, types.DatasetSubjects)
	gt.NoError(t, err)
	gt.Equal(t, name, "subjects_20250401.csv")
	gt.True(t, bytes.HasPrefix(data, bom))

	records := gt.R1(csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, bom))).ReadAll()).NoError(t)
	gt.Equal(t, len(records), 4) // header + 3 subjects
	gt.Equal(t, records[0], []string{"id", "name", "category", "summary", "curiosity", "closure", "memo", "created_at"})
	gt.Equal(t, records[1][1], "Consumer Behavior")
	gt.Equal(t, records[1][2], "consumer-studies")
	gt.Equal(t, records[1][7], "2025-04-01T09:30:00Z")
}

func TestExportCSVActivities(t *testing.T) {
	ctx := exportCtx()
	uc := usecase.New()
	seedJournal(t, ctx, uc)

	data, name, err := uc.ExportCSV(ctx, types.DatasetActivities)
	gt.NoError(t, err)
	gt.Equal(t, name, "activities_20250401.csv")

	records := gt.R1(csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, bom))).ReadAll()).NoError(t)
	gt.Equal(t, len(records), 4)
	gt.Equal(t, records[1][1], "Consumer Panel Analysis")
	gt.Equal(t, records[1][4], "10") // achievement
	gt.Equal(t, records[1][7], "50") // flow
}

func TestExportCSVInvalidDataset(t *testing.T) {
	ctx := exportCtx()
	uc := usecase.New()

	_, _, err := uc.ExportCSV(ctx, "diary")
	gt.Error(t, err)
	gt.True(t, goerr.HasTag(err, errs.TagInvalidRequest))
}

func TestBackup(t *testing.T) {
	ctx := exportCtx()
	client := storage.NewMemoryClient()
	uc := usecase.New(
		usecase.WithStorageClient(client),
		usecase.WithStoragePrefix("backup/"),
	)
	seedJournal(t, ctx, uc)

	objects := gt.R1(uc.Backup(ctx)).NoError(t)
	gt.Equal(t, objects, []string{
		"backup/subjects_20250401.csv",
		"backup/activities_20250401.csv",
		"backup/books_20250401.csv",
		"backup/questions_20250401.csv",
	})
	gt.Equal(t, len(client.Objects()), 4)

	r := gt.R1(client.GetObject(ctx, "backup/books_20250401.csv")).NoError(t)
	defer r.Close()
	data := gt.R1(io.ReadAll(r)).NoError(t)
	gt.True(t, bytes.HasPrefix(data, bom))
	gt.True(t, bytes.Contains(data, []byte("Thinking, Fast and Slow")))
}

func TestBackupWithoutStorage(t *testing.T) {
	ctx := exportCtx()
	uc := usecase.New()

	_, err := uc.Backup(ctx)
	gt.Error(t, err)
	gt.True(t, errors.Is(err, usecase.ErrStorageNotConfigured))
	gt.True(t, goerr.HasTag(err, errs.TagUnavailable))
}
