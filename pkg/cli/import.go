package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"github.com/reflect-lab/stella/pkg/cli/config"
	"github.com/urfave/cli/v3"
)

func cmdImport() *cli.Command {
	var (
		repoCfg config.Repository
		file    string
	)

	flags := joinFlags(
		[]cli.Flag{
			&cli.StringFlag{
				Name:        "file",
				Aliases:     []string{"f"},
				Usage:       "YAML file with journal records",
				Required:    true,
				Destination: &file,
			},
		},
		repoCfg.Flags(),
	)

	return &cli.Command{
		Name:    "import",
		Aliases: []string{"i"},
		Usage:   "Import journal records from a YAML file",
		Flags:   flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			uc, closer, err := setupUsecases(ctx, &repoCfg)
			if err != nil {
				return err
			}
			defer closer()

			data, err := os.ReadFile(filepath.Clean(file))
			if err != nil {
				return goerr.Wrap(err, "failed to read import file", goerr.V("path", file))
			}

			summary, err := uc.ImportRecords(ctx, data)
			if err != nil {
				return err
			}

			fmt.Printf("Imported %d records (subjects=%d activities=%d books=%d questions=%d)\n",
				summary.Total(), summary.Subjects, summary.Activities, summary.Books, summary.Questions)
			return nil
		},
	}
}
