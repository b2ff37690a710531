package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/reflect-lab/stella/pkg/cli/config"
	"github.com/reflect-lab/stella/pkg/domain/model/insight"
	"github.com/reflect-lab/stella/pkg/utils/clock"
	"github.com/urfave/cli/v3"
)

func cmdReport() *cli.Command {
	var (
		repoCfg    config.Repository
		weightsCfg config.Weights
	)

	return &cli.Command{
		Name:    "report",
		Aliases: []string{"r"},
		Usage:   "Print the journal insight report",
		Flags:   joinFlags(repoCfg.Flags(), weightsCfg.Flags()),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			uc, closer, err := setupUsecases(ctx, &repoCfg)
			if err != nil {
				return err
			}
			defer closer()

			weights, err := weightsCfg.Configure()
			if err != nil {
				return err
			}

			report, err := uc.Report(ctx, &weights)
			if err != nil {
				return err
			}

			printReport(ctx, report)
			return nil
		},
	}
}

func printReport(ctx context.Context, report *insight.Report) {
	blue := color.New(color.FgBlue, color.Bold)
	yellow := color.New(color.FgYellow)

	generated := report.GeneratedAt.In(clock.Timezone(ctx))
	blue.Printf("Journal Report (%s)\n", generated.Format(time.DateOnly))
	fmt.Printf("  Subjects: %d  Activities: %d  Books: %d  Questions: %d  (total %d)\n\n",
		report.Overview.Subjects, report.Overview.Activities,
		report.Overview.Books, report.Overview.Questions,
		report.Overview.Total())

	blue.Println("Subjects by category:")
	for _, c := range report.Breakdown.Categories {
		fmt.Printf("  %-24s %d\n", c.Label, c.Count)
	}
	fmt.Println()

	blue.Println("Activities by kind:")
	for _, k := range report.Breakdown.Kinds {
		fmt.Printf("  %-24s %d\n", k.Label, k.Count)
	}
	fmt.Println()

	blue.Println("Top activities:")
	for i, e := range report.Ranking.Descending() {
		fmt.Printf("  #%d %-28s score=%.2f (ach=%.2f pow=%.2f aff=%.2f flow=%.2f)\n",
			i+1, e.Activity.Name, e.Score,
			e.NormAchievement, e.NormPower, e.NormAffiliation, e.NormFlow)
	}
	fmt.Println()

	blue.Println("Keywords:")
	tokens := make([]string, 0, len(report.Keywords))
	for _, k := range report.Keywords {
		tokens = append(tokens, fmt.Sprintf("%s(%d)", k.Token, k.Count))
	}
	fmt.Printf("  %s\n", strings.Join(tokens, " "))

	if report.Degraded() {
		fmt.Println()
		for _, d := range report.Unavailable {
			yellow.Printf("  warning: %s dataset was unavailable, its sections are computed without it\n", d)
		}
	}
}
