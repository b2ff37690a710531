package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"github.com/reflect-lab/stella/pkg/cli/config"
	"github.com/reflect-lab/stella/pkg/domain/types"
	"github.com/reflect-lab/stella/pkg/usecase"
	"github.com/reflect-lab/stella/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdExport() *cli.Command {
	var (
		repoCfg    config.Repository
		storageCfg config.Storage
		dataset    string
		all        bool
		backup     bool
		outDir     string
	)

	flags := joinFlags(
		[]cli.Flag{
			&cli.StringFlag{
				Name:        "dataset",
				Usage:       "Dataset to export [subjects|activities|books|questions]",
				Destination: &dataset,
			},
			&cli.BoolFlag{
				Name:        "all",
				Usage:       "Export every dataset",
				Destination: &all,
			},
			&cli.BoolFlag{
				Name:        "backup",
				Usage:       "Write all datasets to the storage bucket instead of local files",
				Destination: &backup,
			},
			&cli.StringFlag{
				Name:        "out",
				Usage:       "Directory for exported CSV files",
				Value:       ".",
				Destination: &outDir,
			},
		},
		repoCfg.Flags(),
		storageCfg.Flags(),
	)

	return &cli.Command{
		Name:    "export",
		Aliases: []string{"e"},
		Usage:   "Export journal datasets as CSV",
		Flags:   flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			var ucOptions []usecase.Option
			if backup {
				storageClient, err := storageCfg.Configure(ctx)
				if err != nil {
					return err
				}
				defer storageClient.Close(ctx)

				ucOptions = append(ucOptions,
					usecase.WithStorageClient(storageClient),
					usecase.WithStoragePrefix(storageCfg.Prefix()),
				)
			}

			uc, closer, err := setupUsecases(ctx, &repoCfg, ucOptions...)
			if err != nil {
				return err
			}
			defer closer()

			if backup {
				objects, err := uc.Backup(ctx)
				if err != nil {
					return err
				}
				for _, object := range objects {
					fmt.Printf("Backed up gs://%s/%s\n", storageCfg.Bucket(), object)
				}
				return nil
			}

			var datasets []types.Dataset
			switch {
			case all:
				datasets = types.Datasets()
			case dataset != "":
				d, err := types.ParseDataset(dataset)
				if err != nil {
					return err
				}
				datasets = []types.Dataset{d}
			default:
				return goerr.New("either --dataset, --all or --backup is required")
			}

			for _, d := range datasets {
				data, name, err := uc.ExportCSV(ctx, d)
				if err != nil {
					return err
				}

				path := filepath.Join(outDir, name)
				if err := os.WriteFile(path, data, 0600); err != nil {
					return goerr.Wrap(err, "failed to write export file", goerr.V("path", path))
				}

				logging.From(ctx).Info("dataset exported", "dataset", d, "path", path)
				fmt.Printf("Exported %s to %s\n", d, path)
			}
			return nil
		},
	}
}
