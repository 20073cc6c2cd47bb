package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/stemlab/internal/playground"
)

// NewPartsCommand creates the parts command.
func NewPartsCommand(rootOpts *RootOptions) *cobra.Command {
	var platform string

	cmd := &cobra.Command{
		Use:   "parts",
		Short: "List the part library of a playground",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := playground.ParseTarget(platform)
			if err != nil {
				return err
			}
			c, err := rootOpts.loadContent(cmd.Context())
			if err != nil {
				return err
			}
			p, ok := c.Platform(target)
			if !ok {
				return fmt.Errorf("no content loaded for platform %s", target)
			}

			printParts(cmd.OutOrStdout(), p)
			return nil
		},
	}

	cmd.Flags().StringVarP(&platform, "platform", "p", "", "Playground: microbit or arduino")
	_ = cmd.MarkFlagRequired("platform")

	return cmd
}

func printParts(w io.Writer, p *playground.Platform) {
	fmt.Fprintf(w, "%s parts\n\n", p.Name)
	fmt.Fprintf(w, "%-4s  %-30s  %s\n", "ID", "NAME", "CATEGORY")
	fmt.Fprintln(w, strings.Repeat("─", ruleWidth))
	all := p.Library.All()
	for _, part := range all {
		fmt.Fprintf(w, "%-4s  %-30s  %s\n", part.ID, part.Name, part.Category)
	}
	fmt.Fprintf(w, "\n%d parts\n", len(all))
}
