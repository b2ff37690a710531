package http

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/m-mizutani/goerr/v2"
	"github.com/reflect-lab/stella/pkg/domain/interfaces"
	"github.com/reflect-lab/stella/pkg/domain/model/errs"
	"github.com/reflect-lab/stella/pkg/service/scoring"
)

func overviewHandler(uc interfaces.InsightUsecases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		overview, err := uc.Overview(r.Context())
		if err != nil {
			handleError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, overview)
	}
}

func breakdownHandler(uc interfaces.InsightUsecases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		breakdown, err := uc.Breakdown(r.Context())
		if err != nil {
			handleError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, breakdown)
	}
}

func rankingHandler(uc interfaces.InsightUsecases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		weights, err := parseWeights(r.URL.Query())
		if err != nil {
			handleError(w, r, err)
			return
		}
		limit, err := parseLimit(r.URL.Query())
		if err != nil {
			handleError(w, r, err)
			return
		}

		ranking, err := uc.Ranking(r.Context(), weights, limit)
		if err != nil {
			handleError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, ranking)
	}
}

func keywordsHandler(uc interfaces.InsightUsecases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, err := parseLimit(r.URL.Query())
		if err != nil {
			handleError(w, r, err)
			return
		}

		keywords, err := uc.Keywords(r.Context(), limit)
		if err != nil {
			handleError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, map[string]any{"keywords": keywords})
	}
}

func reportHandler(uc interfaces.InsightUsecases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		weights, err := parseWeights(r.URL.Query())
		if err != nil {
			handleError(w, r, err)
			return
		}

		report, err := uc.Report(r.Context(), weights)
		if err != nil {
			handleError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, report)
	}
}

// parseWeights reads the per-trait weight params. With none present the
// caller gets nil, which means the server defaults. A partial set fills
// the missing traits with 1.0.
func parseWeights(q url.Values) (*scoring.Weights, error) {
	weights := scoring.DefaultWeights()
	present := false

	for _, p := range []struct {
		key   string
		value *float64
	}{
		{"achievement", &weights.Achievement},
		{"power", &weights.Power},
		{"affiliation", &weights.Affiliation},
		{"flow", &weights.Flow},
	} {
		raw := q.Get(p.key)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, goerr.Wrap(err, "invalid weight param",
				goerr.T(errs.TagInvalidRequest),
				goerr.V("param", p.key),
				goerr.V("value", raw))
		}
		*p.value = v
		present = true
	}

	if !present {
		return nil, nil
	}
	return &weights, nil
}

func parseLimit(q url.Values) (int, error) {
	raw := q.Get("limit")
	if raw == "" {
		return 0, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil {
		return 0, goerr.Wrap(err, "invalid limit param",
			goerr.T(errs.TagInvalidRequest),
			goerr.V("value", raw))
	}
	return limit, nil
}
