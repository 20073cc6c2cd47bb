package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/stemlab/internal/catalog"
	"github.com/abhisek/stemlab/internal/logging"
	"github.com/abhisek/stemlab/internal/playground"
	"github.com/abhisek/stemlab/internal/plans"
)

// NewPlanCommand creates the plan command.
func NewPlanCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "plan <lesson-id>",
		Short: "Show the build plan a lesson opens",
		Long: `Route a lesson to its playground and print the plan it opens: required
parts with quantities and the step-by-step instructions. Lessons without a
plan open the playground in free build mode.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.FromContext(cmd.Context())

			c, err := rootOpts.loadContent(cmd.Context())
			if err != nil {
				return err
			}
			engine, err := rootOpts.engine(c)
			if err != nil {
				return err
			}

			lesson, ok := engine.Lesson(args[0])
			if !ok {
				return fmt.Errorf("unknown lesson %q", args[0])
			}
			sel, err := playground.Route(lesson)
			if err != nil {
				logger.Error("lesson routing failed", "lesson", lesson.ID, "category", string(lesson.Category), "error", err)
				return err
			}
			p, ok := c.Platform(sel.Target)
			if !ok {
				return fmt.Errorf("no content loaded for platform %s", sel.Target)
			}

			w := cmd.OutOrStdout()
			plan, ok := p.Plans.Lookup(sel.LessonID)
			if !ok {
				printFreeBuild(w, lesson, p)
				return nil
			}
			printPlan(w, plan, p)
			return nil
		},
	}
}

func printFreeBuild(w io.Writer, lesson catalog.Lesson, p *playground.Platform) {
	fmt.Fprintf(w, "%s\n", lesson.Title)
	fmt.Fprintf(w, "Platform: %s\n\n", p.Name)
	fmt.Fprintf(w, "No plan for lesson %s: the %s playground opens in free build mode.\n", lesson.ID, p.Name)
}

func printPlan(w io.Writer, plan plans.Plan, p *playground.Platform) {
	fmt.Fprintf(w, "%s\n", plan.Title)
	if plan.Description != "" {
		fmt.Fprintf(w, "%s\n", plan.Description)
	}
	fmt.Fprintf(w, "Platform: %s\n", p.Name)

	fmt.Fprintf(w, "\nRequired parts\n")
	for _, r := range plans.RequiredParts(plan, p.Library) {
		fmt.Fprintf(w, "  %3d × %s\n", r.Quantity, r.Part.Name)
	}

	fmt.Fprintf(w, "\nSteps\n")
	for i, step := range plan.Steps {
		fmt.Fprintf(w, "  %d. %s\n", i+1, step.Title)
		if step.Description != "" {
			fmt.Fprintf(w, "     %s\n", step.Description)
		}
		if step.Code != "" {
			for _, line := range strings.Split(strings.TrimRight(step.Code, "\n"), "\n") {
				fmt.Fprintf(w, "     │ %s\n", line)
			}
		}
	}
}
