package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/reflect-lab/stella/pkg/cli/config"
	"github.com/reflect-lab/stella/pkg/domain/model/journal"
	"github.com/reflect-lab/stella/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdDraft() *cli.Command {
	return &cli.Command{
		Name:    "draft",
		Aliases: []string{"d"},
		Usage:   "Work on reflection question drafts",
		Commands: []*cli.Command{
			cmdDraftQuestions(),
			cmdDraftMaterials(),
			cmdDraftCompose(),
			cmdDraftAnswer(),
		},
	}
}

func cmdDraftQuestions() *cli.Command {
	var repoCfg config.Repository

	return &cli.Command{
		Name:  "questions",
		Usage: "List open reflection prompts",
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

			prompts := questions.Prompts()
			blue := color.New(color.FgBlue, color.Bold)
			blue.Printf("Prompts (%d)\n", len(prompts))
			for _, q := range prompts {
				fmt.Printf("  %-20s %s\n", q.Label, q.Body)
			}
			return nil
		},
	}
}

func cmdDraftMaterials() *cli.Command {
	var repoCfg config.Repository

	return &cli.Command{
		Name:  "materials",
		Usage: "List record names referenceable as draft materials",
		Flags: repoCfg.Flags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			uc, closer, err := setupUsecases(ctx, &repoCfg)
			if err != nil {
				return err
			}
			defer closer()

			materials, err := uc.DraftMaterials(ctx)
			if err != nil {
				return err
			}

			blue := color.New(color.FgBlue, color.Bold)
			for _, section := range []struct {
				dataset string
				names   []string
			}{
				{"subjects", materials.Subjects},
				{"activities", materials.Activities},
				{"books", materials.Books},
			} {
				blue.Printf("%s (%d)\n", section.dataset, len(section.names))
				for _, name := range section.names {
					fmt.Printf("  %s:%s\n", section.dataset, name)
				}
			}
			return nil
		},
	}
}

func cmdDraftCompose() *cli.Command {
	var (
		repoCfg   config.Repository
		materials []string
	)

	flags := joinFlags(
		[]cli.Flag{
			&cli.StringSliceFlag{
				Name:        "material",
				Usage:       "Material reference as dataset:name (repeatable)",
				Required:    true,
				Destination: &materials,
			},
		},
		repoCfg.Flags(),
	)

	return &cli.Command{
		Name:  "compose",
		Usage: "Compose an evidence scaffold from material records",
		Flags: flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			uc, closer, err := setupUsecases(ctx, &repoCfg)
			if err != nil {
				return err
			}
			defer closer()

			refs, err := journal.ParseMaterialRefs(materials)
			if err != nil {
				return err
			}

			evidence, err := uc.ComposeEvidence(ctx, refs)
			if err != nil {
				return err
			}

			fmt.Print(evidence)
			return nil
		},
	}
}

func cmdDraftAnswer() *cli.Command {
	var (
		repoCfg   config.Repository
		label     string
		body      string
		materials []string
	)

	flags := joinFlags(
		[]cli.Flag{
			&cli.StringFlag{
				Name:        "question",
				Usage:       "Label of the prompt being answered",
				Required:    true,
				Destination: &label,
			},
			&cli.StringFlag{
				Name:        "body",
				Usage:       "Answer text",
				Required:    true,
				Destination: &body,
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
		Name:  "answer",
		Usage: "Save a draft answer for a prompt",
		Flags: flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			uc, closer, err := setupUsecases(ctx, &repoCfg)
			if err != nil {
				return err
			}
			defer closer()

			refs, err := journal.ParseMaterialRefs(materials)
			if err != nil {
				return err
			}

			draft, err := uc.SaveAnswer(ctx, label, refs, body)
			if err != nil {
				return err
			}

			logging.From(ctx).Info("draft saved", "id", draft.ID, "label", draft.Label)
			fmt.Printf("Saved draft %q (%s)\n", draft.Label, draft.ID)
			return nil
		},
	}
}
