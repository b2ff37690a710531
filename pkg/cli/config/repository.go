package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/reflect-lab/stella/pkg/domain/interfaces"
	"github.com/reflect-lab/stella/pkg/repository/memory"
	"github.com/reflect-lab/stella/pkg/utils/safe"
	"github.com/urfave/cli/v3"
)

// Repository selects the journal record store. The memory backend keeps
// records for the lifetime of the process and is the default, so every
// command works without any cloud setup.
type Repository struct {
	backend   string
	firestore Firestore
	sheets    Sheets
}

func (x *Repository) Flags() []cli.Flag {
	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "backend",
			Usage:       "Record store backend [memory|firestore|sheets]",
			Category:    "Repository",
			Value:       "memory",
			Destination: &x.backend,
			Sources:     cli.EnvVars("STELLA_BACKEND"),
		},
	}
	flags = append(flags, x.firestore.Flags()...)
	flags = append(flags, x.sheets.Flags()...)
	return flags
}

func (x Repository) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("backend", x.backend),
		slog.Any("firestore", x.firestore),
		slog.Any("sheets", x.sheets),
	)
}

// Configure builds the selected repository. The returned closer releases
// the backend client and can be called even if err is not nil.
func (x *Repository) Configure(ctx context.Context) (interfaces.Repository, func(), error) {
	closer := func() {}

	switch x.backend {
	case "memory":
		return memory.New(), closer, nil

	case "firestore":
		repo, err := x.firestore.Configure(ctx)
		if err != nil {
			return nil, closer, err
		}
		return repo, func() { safe.Close(ctx, repo) }, nil

	case "sheets":
		repo, err := x.sheets.Configure(ctx)
		if err != nil {
			return nil, closer, err
		}
		return repo, func() { safe.Close(ctx, repo) }, nil

	default:
		return nil, closer, goerr.New("unknown repository backend",
			goerr.V("backend", x.backend))
	}
}

// Backend returns the selected backend name
func (x *Repository) Backend() string {
	return x.backend
}
