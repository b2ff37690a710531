package cli

import (
	"context"
	"fmt"

	"github.com/reflect-lab/stella/pkg/cli/config"
	"github.com/reflect-lab/stella/pkg/domain/model/journal"
	"github.com/reflect-lab/stella/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdAdd() *cli.Command {
	return &cli.Command{
		Name:    "add",
		Aliases: []string{"a"},
		Usage:   "Add a record to the journal",
		Commands: []*cli.Command{
			cmdAddSubject(),
			cmdAddActivity(),
			cmdAddBook(),
			cmdAddQuestion(),
		},
	}
}

func cmdAddSubject() *cli.Command {
	var (
		repoCfg config.Repository
		subject journal.Subject
	)

	flags := joinFlags(
		[]cli.Flag{
			&cli.StringFlag{
				Name:        "name",
				Usage:       "Subject name",
				Required:    true,
				Destination: &subject.Name,
			},
			&cli.StringFlag{
				Name:        "category",
				Usage:       "Subject category (e.g. consumer-studies, programming)",
				Required:    true,
				Destination: (*string)(&subject.Category),
			},
			&cli.StringFlag{
				Name:        "summary",
				Usage:       "What the subject covered",
				Destination: &subject.Summary,
			},
			&cli.Float64Flag{
				Name:        "curiosity",
				Usage:       "How much it sparked curiosity [0-10]",
				Destination: &subject.Curiosity,
			},
			&cli.Float64Flag{
				Name:        "closure",
				Usage:       "How settled the subject feels [0-10]",
				Destination: &subject.Closure,
			},
			&cli.StringFlag{
				Name:        "memo",
				Usage:       "Free-form memo",
				Destination: &subject.Memo,
			},
		},
		repoCfg.Flags(),
	)

	return &cli.Command{
		Name:  "subject",
		Usage: "Add a subject record",
		Flags: flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			uc, closer, err := setupUsecases(ctx, &repoCfg)
			if err != nil {
				return err
			}
			defer closer()

			created, err := uc.CreateSubject(ctx, &subject)
			if err != nil {
				return err
			}

			logging.From(ctx).Info("subject added", "id", created.ID, "name", created.Name)
			fmt.Printf("Added subject %q (%s)\n", created.Name, created.ID)
			return nil
		},
	}
}

func cmdAddActivity() *cli.Command {
	var (
		repoCfg  config.Repository
		activity journal.Activity
	)

	flags := joinFlags(
		[]cli.Flag{
			&cli.StringFlag{
				Name:        "name",
				Usage:       "Activity name",
				Required:    true,
				Destination: &activity.Name,
			},
			&cli.StringFlag{
				Name:        "kind",
				Usage:       "Activity kind (e.g. club, internship)",
				Required:    true,
				Destination: (*string)(&activity.Kind),
			},
			&cli.StringFlag{
				Name:        "summary",
				Usage:       "What the activity was about",
				Destination: &activity.Summary,
			},
			&cli.Float64Flag{
				Name:        "achievement",
				Usage:       "Achievement trait score [0-10]",
				Destination: &activity.Achievement,
			},
			&cli.Float64Flag{
				Name:        "power",
				Usage:       "Power trait score [0-10]",
				Destination: &activity.Power,
			},
			&cli.Float64Flag{
				Name:        "affiliation",
				Usage:       "Affiliation trait score [0-10]",
				Destination: &activity.Affiliation,
			},
			&cli.Float64Flag{
				Name:        "flow",
				Usage:       "Flow score [0-100]",
				Destination: &activity.Flow,
			},
			&cli.StringFlag{
				Name:        "memo",
				Usage:       "Free-form memo",
				Destination: &activity.Memo,
			},
		},
		repoCfg.Flags(),
	)

	return &cli.Command{
		Name:  "activity",
		Usage: "Add an activity record",
		Flags: flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			uc, closer, err := setupUsecases(ctx, &repoCfg)
			if err != nil {
				return err
			}
			defer closer()

			created, err := uc.CreateActivity(ctx, &activity)
			if err != nil {
				return err
			}

			logging.From(ctx).Info("activity added", "id", created.ID, "name", created.Name)
			fmt.Printf("Added activity %q (%s)\n", created.Name, created.ID)
			return nil
		},
	}
}

func cmdAddBook() *cli.Command {
	var (
		repoCfg config.Repository
		book    journal.Book
	)

	flags := joinFlags(
		[]cli.Flag{
			&cli.StringFlag{
				Name:        "title",
				Usage:       "Book title",
				Required:    true,
				Destination: &book.Title,
			},
			&cli.Float64Flag{
				Name:        "complexity",
				Usage:       "How demanding the book was [0-10]",
				Destination: &book.Complexity,
			},
			&cli.StringFlag{
				Name:        "meaning",
				Usage:       "What the book meant to you",
				Destination: &book.Meaning,
			},
		},
		repoCfg.Flags(),
	)

	return &cli.Command{
		Name:  "book",
		Usage: "Add a book record",
		Flags: flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			uc, closer, err := setupUsecases(ctx, &repoCfg)
			if err != nil {
				return err
			}
			defer closer()

			created, err := uc.CreateBook(ctx, &book)
			if err != nil {
				return err
			}

			logging.From(ctx).Info("book added", "id", created.ID, "title", created.Title)
			fmt.Printf("Added book %q (%s)\n", created.Title, created.ID)
			return nil
		},
	}
}

func cmdAddQuestion() *cli.Command {
	var (
		repoCfg   config.Repository
		question  journal.Question
		materials []string
	)

	flags := joinFlags(
		[]cli.Flag{
			&cli.StringFlag{
				Name:        "label",
				Usage:       "Question label (e.g. growth)",
				Required:    true,
				Destination: &question.Label,
			},
			&cli.StringFlag{
				Name:        "body",
				Usage:       "Question text",
				Required:    true,
				Destination: &question.Body,
			},
			&cli.StringSliceFlag{
				Name:        "material",
				Usage:       "Material reference as dataset:name (repeatable)",
				Destination: &materials,
			},
		},
		repoCfg.Flags(),
	)

	return &cli.Command{
		Name:  "question",
		Usage: "Add a reflection question",
		Flags: flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			uc, closer, err := setupUsecases(ctx, &repoCfg)
			if err != nil {
				return err
			}
			defer closer()

			question.Materials = materials
			created, err := uc.CreateQuestion(ctx, &question)
			if err != nil {
				return err
			}

			logging.From(ctx).Info("question added", "id", created.ID, "label", created.Label)
			fmt.Printf("Added question %q (%s)\n", created.Label, created.ID)
			return nil
		},
	}
}
