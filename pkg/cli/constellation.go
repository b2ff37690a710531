package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/reflect-lab/stella/pkg/cli/config"
	"github.com/reflect-lab/stella/pkg/domain/model/errs"
	"github.com/reflect-lab/stella/pkg/domain/types"
	"github.com/reflect-lab/stella/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdConstellation() *cli.Command {
	var (
		repoCfg config.Repository
		anchor  string
	)

	flags := joinFlags(
		[]cli.Flag{
			&cli.StringFlag{
				Name:        "anchor",
				Usage:       "Anchor activity, by record ID or name",
				Required:    true,
				Destination: &anchor,
			},
		},
		repoCfg.Flags(),
	)

	return &cli.Command{
		Name:  "constellation",
		Usage: "Map activities around an anchor by trait similarity",
		Flags: flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			uc, closer, err := setupUsecases(ctx, &repoCfg)
			if err != nil {
				return err
			}
			defer closer()

			anchorID, err := resolveAnchor(ctx, uc, anchor)
			if err != nil {
				return err
			}

			constellation, err := uc.Constellation(ctx, anchorID)
			if err != nil {
				return err
			}

			blue := color.New(color.FgBlue, color.Bold)
			blue.Printf("Constellation around %q\n", constellation.Anchor.Name)
			for _, p := range constellation.Points {
				marker := " "
				if p.Activity.ID == constellation.Anchor.ID {
					marker = "*"
				}
				fmt.Printf("  %s %-28s x=%+.3f y=%+.3f\n", marker, p.Activity.Name, p.X, p.Y)
			}

			blue.Println("Nearest neighbors:")
			for _, n := range constellation.Neighbors {
				fmt.Printf("  %-28s distance=%.3f\n", n.Activity.Name, n.Distance)
			}
			return nil
		},
	}
}

// resolveAnchor accepts either a record ID or an activity name. Names are
// looked up in the activity list, so an ID-shaped name still resolves.
func resolveAnchor(ctx context.Context, uc *usecase.UseCases, anchor string) (types.RecordID, error) {
	activities, err := uc.ListActivities(ctx, "")
	if err != nil {
		return types.EmptyRecordID, err
	}

	if found := activities.Find(types.RecordID(anchor)); found != nil {
		return found.ID, nil
	}
	if found := activities.FindByName(anchor); found != nil {
		return found.ID, nil
	}

	return types.EmptyRecordID, goerr.Wrap(errs.ErrRecordNotFound, "no activity matches the anchor",
		goerr.T(errs.TagNotFound),
		goerr.V("anchor", anchor))
}
