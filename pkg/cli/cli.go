package cli

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/reflect-lab/stella/pkg/cli/config"
	"github.com/reflect-lab/stella/pkg/utils/clock"
	"github.com/reflect-lab/stella/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func Run(ctx context.Context, args []string) error {
	var loggerCfg config.Logger
	var timezone string
	var closer func()
	app := &cli.Command{
		Name:  "stella",
		Usage: "Personal journal of subjects, activities and books with trait insights",
		Flags: append(loggerCfg.Flags(),
			&cli.StringFlag{
				Name:        "timezone",
				Usage:       "IANA timezone for dates in output and export filenames (e.g. Asia/Seoul)",
				Value:       "Local",
				Sources:     cli.EnvVars("STELLA_TIMEZONE"),
				Destination: &timezone,
			},
		),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			f, err := loggerCfg.Configure()
			if err != nil {
				return ctx, err
			}
			closer = f

			logging.Default().Info("base options", "timezone", timezone, "logger", loggerCfg)

			loc, err := time.LoadLocation(timezone)
			if err != nil {
				return ctx, goerr.Wrap(err, "invalid timezone", goerr.V("timezone", timezone))
			}

			return clock.WithTimezone(ctx, loc), nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if closer != nil {
				closer()
			}
			return nil
		},
		Commands: []*cli.Command{
			cmdServe(),
			cmdAdd(),
			cmdList(),
			cmdReport(),
			cmdConstellation(),
			cmdDraft(),
			cmdExport(),
			cmdImport(),
			cmdMigrate(),
		},
	}

	if err := app.Run(ctx, args); err != nil {
		logging.Default().Error("failed to run app", logging.ErrAttr(err))
		return err
	}

	return nil
}
