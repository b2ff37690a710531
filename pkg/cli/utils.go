package cli

import (
	"context"

	"github.com/reflect-lab/stella/pkg/cli/config"
	"github.com/reflect-lab/stella/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func joinFlags(flags ...[]cli.Flag) []cli.Flag {
	var result []cli.Flag
	for _, flag := range flags {
		result = append(result, flag...)
	}
	return result
}

// setupUsecases wires the repository flags shared by the journal commands.
// The returned closer releases the repository client and can be called even
// if err is not nil.
func setupUsecases(ctx context.Context, repoCfg *config.Repository, opts ...usecase.Option) (*usecase.UseCases, func(), error) {
	repo, closer, err := repoCfg.Configure(ctx)
	if err != nil {
		return nil, closer, err
	}

	opts = append(opts, usecase.WithRepository(repo))

	return usecase.New(opts...), closer, nil
}
