package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	server "github.com/reflect-lab/stella/pkg/controller/http"
	"github.com/reflect-lab/stella/pkg/domain/interfaces"
	"github.com/reflect-lab/stella/pkg/domain/model/errs"
	"github.com/reflect-lab/stella/pkg/domain/model/journal"
	"github.com/reflect-lab/stella/pkg/domain/types"
	"github.com/reflect-lab/stella/pkg/repository/memory"
	"github.com/reflect-lab/stella/pkg/usecase"
)

func postJSON(t *testing.T, srv *server.Server, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data := gt.R1(json.Marshal(body)).NoError(t)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func get(srv *server.Server, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	srv := server.New(usecase.New())

	rec := get(srv, "/health")
	gt.Equal(t, rec.Code, http.StatusOK)
}

func TestRecordRoundTrip(t *testing.T) {
	srv := server.New(usecase.New())

	rec := postJSON(t, srv, "/api/records/subjects", map[string]any{
		"name":      "Consumer Behavior",
		"category":  "consumer-studies",
		"summary":   "survey design and decision models",
		"curiosity": 8,
		"closure":   6,
	})
	gt.Equal(t, rec.Code, http.StatusCreated)

	var created journal.Subject
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	gt.True(t, created.ID != types.EmptyRecordID)
	gt.False(t, created.CreatedAt.IsZero())

	rec = get(srv, "/api/records/subjects")
	gt.Equal(t, rec.Code, http.StatusOK)

	var listed struct {
		Dataset string            `json:"dataset"`
		Count   int               `json:"count"`
		Records []journal.Subject `json:"records"`
	}
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	gt.Equal(t, listed.Dataset, "subjects")
	gt.Equal(t, listed.Count, 1)
	gt.Equal(t, listed.Records[0].Name, "Consumer Behavior")
}

func TestRecordValidation(t *testing.T) {
	srv := server.New(usecase.New())

	rec := postJSON(t, srv, "/api/records/subjects", map[string]any{
		"name":     "Mystery",
		"category": "astrology",
	})
	gt.Equal(t, rec.Code, http.StatusBadRequest)

	rec = postJSON(t, srv, "/api/records/diary", map[string]any{"name": "x"})
	gt.Equal(t, rec.Code, http.StatusBadRequest)

	req := httptest.NewRequest(http.MethodPost, "/api/records/books", strings.NewReader("not json"))
	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	gt.Equal(t, rec.Code, http.StatusBadRequest)
}

func TestListRecordsFilter(t *testing.T) {
	srv := server.New(usecase.New())

	for _, body := range []map[string]any{
		{"name": "Hackathon", "kind": "team-project"},
		{"name": "Barista", "kind": "part-time-job"},
	} {
		rec := postJSON(t, srv, "/api/records/activities", body)
		gt.Equal(t, rec.Code, http.StatusCreated)
	}

	rec := get(srv, "/api/records/activities?kind=part-time-job")
	gt.Equal(t, rec.Code, http.StatusOK)

	var listed struct {
		Count   int                `json:"count"`
		Records []journal.Activity `json:"records"`
	}
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	gt.Equal(t, listed.Count, 1)
	gt.Equal(t, listed.Records[0].Name, "Barista")

	rec = get(srv, "/api/records/activities?kind=daydreaming")
	gt.Equal(t, rec.Code, http.StatusBadRequest)
}

func seedServer(t *testing.T, srv *server.Server) {
	t.Helper()

	for _, body := range []map[string]any{
		{"name": "Consumer Panel Analysis", "kind": "personal-research",
			"achievement": 10, "power": 0, "affiliation": 0, "flow": 50, "memo": "데이터 분석 프로젝트"},
		{"name": "Student Council", "kind": "club",
			"achievement": 0, "power": 10, "affiliation": 0, "flow": 50},
		{"name": "Volunteer Tutoring", "kind": "volunteering",
			"achievement": 0, "power": 0, "affiliation": 10, "flow": 50},
	} {
		rec := postJSON(t, srv, "/api/records/activities", body)
		gt.Equal(t, rec.Code, http.StatusCreated)
	}
	rec := postJSON(t, srv, "/api/records/questions", map[string]any{
		"label": "growth", "body": "Describe a moment of growth.",
	})
	gt.Equal(t, rec.Code, http.StatusCreated)
}

func TestInsightEndpoints(t *testing.T) {
	srv := server.New(usecase.New())
	seedServer(t, srv)

	rec := get(srv, "/api/insights/overview")
	gt.Equal(t, rec.Code, http.StatusOK)
	var overview struct {
		Activities int `json:"activities"`
		Questions  int `json:"questions"`
	}
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &overview))
	gt.Equal(t, overview.Activities, 3)
	gt.Equal(t, overview.Questions, 1)

	rec = get(srv, "/api/insights/ranking?achievement=2&limit=2")
	gt.Equal(t, rec.Code, http.StatusOK)
	var ranking struct {
		Entries []struct {
			Activity journal.Activity `json:"activity"`
			Score    float64          `json:"score"`
		} `json:"entries"`
		Weights struct {
			Achievement float64 `json:"achievement"`
			Power       float64 `json:"power"`
		} `json:"weights"`
	}
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ranking))
	gt.Equal(t, len(ranking.Entries), 2)
	// ascending contract: the top entry comes last
	gt.Equal(t, ranking.Entries[1].Activity.Name, "Consumer Panel Analysis")
	gt.Equal(t, ranking.Weights.Achievement, 2.0)
	gt.Equal(t, ranking.Weights.Power, 1.0)

	rec = get(srv, "/api/insights/ranking?achievement=99")
	gt.Equal(t, rec.Code, http.StatusBadRequest)

	rec = get(srv, "/api/insights/ranking?achievement=high")
	gt.Equal(t, rec.Code, http.StatusBadRequest)

	rec = get(srv, "/api/insights/report")
	gt.Equal(t, rec.Code, http.StatusOK)
	var report struct {
		Overview    map[string]int `json:"overview"`
		Unavailable []string       `json:"unavailable"`
	}
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	gt.Equal(t, report.Overview["activities"], 3)
	gt.Equal(t, len(report.Unavailable), 0)
}

// booksDownRepo forwards to a real repository but fails the books dataset.
type booksDownRepo struct {
	interfaces.Repository
}

func (x *booksDownRepo) Books(ctx context.Context) (journal.Books, error) {
	return nil, goerr.New("backend down", goerr.T(errs.TagUnavailable))
}

func TestReportWithUnavailableDataset(t *testing.T) {
	repo := &booksDownRepo{Repository: memory.New()}
	srv := server.New(usecase.New(usecase.WithRepository(repo)))
	seedServer(t, srv)

	rec := get(srv, "/api/insights/report")
	gt.Equal(t, rec.Code, http.StatusOK)

	var report struct {
		Overview    map[string]int `json:"overview"`
		Unavailable []string       `json:"unavailable"`
	}
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	gt.Equal(t, report.Unavailable, []string{"books"})
	gt.Equal(t, report.Overview["books"], 0)
	gt.Equal(t, report.Overview["activities"], 3)
}

func TestConstellationEndpoint(t *testing.T) {
	srv := server.New(usecase.New())
	seedServer(t, srv)

	rec := get(srv, "/api/records/activities")
	var listed struct {
		Records []journal.Activity `json:"records"`
	}
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	anchorID := listed.Records[0].ID

	rec = get(srv, "/api/constellation/"+anchorID.String())
	gt.Equal(t, rec.Code, http.StatusOK)
	var constellation struct {
		Points    []any `json:"points"`
		Neighbors []any `json:"neighbors"`
	}
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &constellation))
	gt.Equal(t, len(constellation.Points), 3)
	gt.Equal(t, len(constellation.Neighbors), 2)

	rec = get(srv, "/api/constellation/"+types.NewRecordID().String())
	gt.Equal(t, rec.Code, http.StatusNotFound)
}

func TestConstellationInsufficientData(t *testing.T) {
	srv := server.New(usecase.New())

	rec := postJSON(t, srv, "/api/records/activities", map[string]any{
		"name": "Hackathon", "kind": "team-project",
	})
	gt.Equal(t, rec.Code, http.StatusCreated)
	var created journal.Activity
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = get(srv, "/api/constellation/"+created.ID.String())
	gt.Equal(t, rec.Code, http.StatusUnprocessableEntity)

	var payload struct {
		Required int `json:"required"`
		Actual   int `json:"actual"`
	}
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	gt.Equal(t, payload.Required, 3)
	gt.Equal(t, payload.Actual, 1)
}

func TestDraftEndpoints(t *testing.T) {
	srv := server.New(usecase.New())
	seedServer(t, srv)

	rec := get(srv, "/api/drafts/materials")
	gt.Equal(t, rec.Code, http.StatusOK)
	var materials struct {
		Activities []string `json:"activities"`
	}
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &materials))
	gt.Equal(t, len(materials.Activities), 3)

	rec = postJSON(t, srv, "/api/drafts/evidence", map[string]any{
		"materials": []string{"activities:Consumer Panel Analysis"},
	})
	gt.Equal(t, rec.Code, http.StatusOK)
	var evidence struct {
		Evidence string `json:"evidence"`
	}
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &evidence))
	gt.S(t, evidence.Evidence).Contains("## activities:Consumer Panel Analysis")

	rec = postJSON(t, srv, "/api/drafts/evidence", map[string]any{
		"materials": []string{"questions:growth"},
	})
	gt.Equal(t, rec.Code, http.StatusBadRequest)

	rec = postJSON(t, srv, "/api/drafts/answers", map[string]any{
		"question":  "growth",
		"materials": []string{"activities:Consumer Panel Analysis"},
		"body":      "I learned to trust the data.",
	})
	gt.Equal(t, rec.Code, http.StatusCreated)
	var draft journal.Question
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &draft))
	gt.Equal(t, draft.Label, "growth (draft)")

	rec = postJSON(t, srv, "/api/drafts/answers", map[string]any{
		"question": "no-such-prompt", "body": "text",
	})
	gt.Equal(t, rec.Code, http.StatusNotFound)
}

func TestExportEndpoints(t *testing.T) {
	srv := server.New(usecase.New())
	seedServer(t, srv)

	rec := get(srv, "/api/export/activities.csv")
	gt.Equal(t, rec.Code, http.StatusOK)
	gt.Equal(t, rec.Header().Get("Content-Type"), "text/csv; charset=utf-8")
	gt.S(t, rec.Header().Get("Content-Disposition")).Contains("attachment")
	gt.S(t, rec.Header().Get("Content-Disposition")).Contains("activities_")
	gt.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte{0xEF, 0xBB, 0xBF}))

	rec = get(srv, "/api/export/diary.csv")
	gt.Equal(t, rec.Code, http.StatusBadRequest)

	// backup without a configured storage client
	req := httptest.NewRequest(http.MethodPost, "/api/export/backup", nil)
	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	gt.Equal(t, rec.Code, http.StatusServiceUnavailable)
}

func TestImportEndpoint(t *testing.T) {
	srv := server.New(usecase.New())

	doc := `
subjects:
  - name: Consumer Behavior
    category: consumer-studies
books:
  - title: Deep Work
    complexity: 7
    meaning: focus as a trainable skill
`
	req := httptest.NewRequest(http.MethodPost, "/api/import", strings.NewReader(doc))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	gt.Equal(t, rec.Code, http.StatusOK)

	var summary struct {
		Subjects int `json:"subjects"`
		Books    int `json:"books"`
	}
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	gt.Equal(t, summary.Subjects, 1)
	gt.Equal(t, summary.Books, 1)

	req = httptest.NewRequest(http.MethodPost, "/api/import", strings.NewReader("subjects: {bad"))
	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	gt.Equal(t, rec.Code, http.StatusBadRequest)
}
