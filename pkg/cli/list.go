package cli

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/reflect-lab/stella/pkg/cli/config"
	"github.com/reflect-lab/stella/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

func cmdList() *cli.Command {
	return &cli.Command{
		Name:    "list",
		Aliases: []string{"ls"},
		Usage:   "List journal records",
		Commands: []*cli.Command{
			cmdListSubjects(),
			cmdListActivities(),
			cmdListBooks(),
			cmdListQuestions(),
		},
	}
}

var listHeader = color.New(color.FgBlue, color.Bold)

func cmdListSubjects() *cli.Command {
	var (
		repoCfg  config.Repository
		category string
	)

	flags := joinFlags(
		[]cli.Flag{
			&cli.StringFlag{
				Name:        "category",
				Usage:       "Only subjects of this category",
				Destination: &category,
			},
		},
		repoCfg.Flags(),
	)

	return &cli.Command{
		Name:  "subjects",
		Usage: "List subject records",
		Flags: flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			uc, closer, err := setupUsecases(ctx, &repoCfg)
			if err != nil {
				return err
			}
			defer closer()

			subjects, err := uc.ListSubjects(ctx, types.SubjectCategory(category))
			if err != nil {
				return err
			}

			listHeader.Printf("Subjects (%d)\n", len(subjects))
			for _, s := range subjects {
				fmt.Printf("  %-28s %-20s curiosity=%.1f closure=%.1f  %s\n",
					s.Name, s.Category.Label(), s.Curiosity, s.Closure, humanize.Time(s.CreatedAt))
			}
			return nil
		},
	}
}

func cmdListActivities() *cli.Command {
	var (
		repoCfg config.Repository
		kind    string
	)

	flags := joinFlags(
		[]cli.Flag{
			&cli.StringFlag{
				Name:        "kind",
				Usage:       "Only activities of this kind",
				Destination: &kind,
			},
		},
		repoCfg.Flags(),
	)

	return &cli.Command{
		Name:  "activities",
		Usage: "List activity records",
		Flags: flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			uc, closer, err := setupUsecases(ctx, &repoCfg)
			if err != nil {
				return err
			}
			defer closer()

			activities, err := uc.ListActivities(ctx, types.ActivityKind(kind))
			if err != nil {
				return err
			}

			listHeader.Printf("Activities (%d)\n", len(activities))
			for _, a := range activities {
				fmt.Printf("  %-28s %-16s ach=%.1f pow=%.1f aff=%.1f flow=%.0f  %s\n",
					a.Name, a.Kind.Label(), a.Achievement, a.Power, a.Affiliation, a.Flow,
					humanize.Time(a.CreatedAt))
			}
			return nil
		},
	}
}

func cmdListBooks() *cli.Command {
	var repoCfg config.Repository

	return &cli.Command{
		Name:  "books",
		Usage: "List book records",
		Flags: repoCfg.Flags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			uc, closer, err := setupUsecases(ctx, &repoCfg)
			if err != nil {
				return err
			}
			defer closer()

			books, err := uc.ListBooks(ctx)
			if err != nil {
				return err
			}

			listHeader.Printf("Books (%d)\n", len(books))
			for _, b := range books {
				fmt.Printf("  %-36s complexity=%.1f  %s\n",
					b.Title, b.Complexity, humanize.Time(b.CreatedAt))
			}
			return nil
		},
	}
}

func cmdListQuestions() *cli.Command {
	var repoCfg config.Repository

	return &cli.Command{
		Name:  "questions",
		Usage: "List reflection questions and drafts",
		Flags: repoCfg.Flags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			uc, closer, err := setupUsecases(ctx, &repoCfg)
			if err != nil {
				return err
			}
			defer closer()

			questions, err := uc.ListQuestions(ctx)
			if err != nil {
				return err
			}

			listHeader.Printf("Questions (%d)\n", len(questions))
			for _, q := range questions {
				fmt.Printf("  %-28s materials=%d  %s\n",
					q.Label, len(q.Materials), humanize.Time(q.CreatedAt))
			}
			return nil
		},
	}
}
