package config_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/reflect-lab/stella/pkg/cli/config"
	"github.com/urfave/cli/v3"
)

func TestWeights_Configure(t *testing.T) {
	ctx := context.Background()

	run := func(t *testing.T, args ...string) *config.Weights {
		t.Helper()
		cfg := &config.Weights{}
		app := &cli.Command{
			Flags: cfg.Flags(),
			Action: func(ctx context.Context, c *cli.Command) error {
				return nil
			},
		}
		gt.NoError(t, app.Run(ctx, append([]string{"test"}, args...)))
		return cfg
	}

	t.Run("defaults to 1.0 for every trait", func(t *testing.T) {
		cfg := run(t)
		weights, err := cfg.Configure()
		gt.NoError(t, err)
		gt.Equal(t, weights.Achievement, 1.0)
		gt.Equal(t, weights.Power, 1.0)
		gt.Equal(t, weights.Affiliation, 1.0)
		gt.Equal(t, weights.Flow, 1.0)
	})

	t.Run("accepts values within range", func(t *testing.T) {
		cfg := run(t, "--achievement-weight", "2.5", "--flow-weight", "0")
		weights, err := cfg.Configure()
		gt.NoError(t, err)
		gt.Equal(t, weights.Achievement, 2.5)
		gt.Equal(t, weights.Flow, 0.0)
	})

	t.Run("rejects values out of range", func(t *testing.T) {
		cfg := run(t, "--power-weight", "3.5")
		_, err := cfg.Configure()
		gt.Error(t, err)
		gt.S(t, err.Error()).Contains("weight out of range")
	})
}
