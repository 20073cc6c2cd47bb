package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/stemlab/internal/content"
)

// NewContentCommand creates the content command group.
func NewContentCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "content",
		Short: "Inspect lesson and platform content",
	}
	cmd.AddCommand(newContentValidateCommand(rootOpts))
	return cmd
}

func newContentValidateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Load content and report drift between lessons, plans and parts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := rootOpts.loadContent(cmd.Context())
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			issues := content.Check(c)
			for _, is := range issues {
				fmt.Fprintln(w, is.String())
			}
			if len(issues) > 0 {
				return fmt.Errorf("%d content issue(s)", len(issues))
			}

			plansTotal := 0
			for _, p := range c.Platforms {
				plansTotal += p.Plans.Len()
			}
			fmt.Fprintf(w, "✓ content OK: %d lessons, %d platforms, %d plans\n", len(c.Lessons), len(c.Platforms), plansTotal)
			return nil
		},
	}
}
