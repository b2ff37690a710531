package config

import (
	"log/slog"

	"github.com/reflect-lab/stella/pkg/service/scoring"
	"github.com/urfave/cli/v3"
)

// Weights carries the trait weight flags for activity ranking. Each weight
// stays within [0.0, 3.0] in 0.1 steps and defaults to 1.0.
type Weights struct {
	achievement float64
	power       float64
	affiliation float64
	flow        float64
}

func (x *Weights) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.Float64Flag{
			Name:        "achievement-weight",
			Usage:       "Weight for the achievement trait [0.0-3.0]",
			Category:    "Weights",
			Value:       1.0,
			Destination: &x.achievement,
			Sources:     cli.EnvVars("STELLA_ACHIEVEMENT_WEIGHT"),
		},
		&cli.Float64Flag{
			Name:        "power-weight",
			Usage:       "Weight for the power trait [0.0-3.0]",
			Category:    "Weights",
			Value:       1.0,
			Destination: &x.power,
			Sources:     cli.EnvVars("STELLA_POWER_WEIGHT"),
		},
		&cli.Float64Flag{
			Name:        "affiliation-weight",
			Usage:       "Weight for the affiliation trait [0.0-3.0]",
			Category:    "Weights",
			Value:       1.0,
			Destination: &x.affiliation,
			Sources:     cli.EnvVars("STELLA_AFFILIATION_WEIGHT"),
		},
		&cli.Float64Flag{
			Name:        "flow-weight",
			Usage:       "Weight for the flow trait [0.0-3.0]",
			Category:    "Weights",
			Value:       1.0,
			Destination: &x.flow,
			Sources:     cli.EnvVars("STELLA_FLOW_WEIGHT"),
		},
	}
}

func (x Weights) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Float64("achievement", x.achievement),
		slog.Float64("power", x.power),
		slog.Float64("affiliation", x.affiliation),
		slog.Float64("flow", x.flow),
	)
}

// Configure validates the flag values and returns them as scoring weights.
func (x *Weights) Configure() (scoring.Weights, error) {
	w := scoring.Weights{
		Achievement: x.achievement,
		Power:       x.power,
		Affiliation: x.affiliation,
		Flow:        x.flow,
	}
	if err := w.Validate(); err != nil {
		return scoring.Weights{}, err
	}
	return w, nil
}
