package journal

import (
	"math"
	"strconv"
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// CoerceTrait parses a trait cell read from a tabular backend. Malformed
// values, empty cells, and null artifacts such as "nan" or "None" collapse
// to 0 so that a single bad cell never aborts an analytics pass.
func CoerceTrait(cell string) float64 {
	s := strings.TrimSpace(cell)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func checkScoreRange(name string, v, min, max float64) error {
	if math.IsNaN(v) || v < min || v > max {
		return goerr.New("score out of range",
			goerr.V("field", name),
			goerr.V("value", v),
			goerr.V("min", min),
			goerr.V("max", max),
		)
	}
	return nil
}
