package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/stemlab/internal/catalog"
)

const ruleWidth = 78

// NewLessonsCommand creates the lessons command.
func NewLessonsCommand(rootOpts *RootOptions) *cobra.Command {
	var search, category, sortBy string

	cmd := &cobra.Command{
		Use:   "lessons",
		Short: "List lessons from the catalog",
		Long: `List lessons from the catalog.

Search matches the title, description and tags, ignoring case. Category is
"all" or one of Micro:bit and Arduino. Sort is one of title, difficulty,
category and progress (highest first).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := catalog.ParseSortKey(sortBy)
			if err != nil {
				return err
			}
			c, err := rootOpts.loadContent(cmd.Context())
			if err != nil {
				return err
			}
			engine, err := rootOpts.engine(c)
			if err != nil {
				return err
			}

			results := engine.Query(catalog.Query{Search: search, Category: category, Sort: key})
			printLessons(cmd.OutOrStdout(), results)
			return nil
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "Search term")
	cmd.Flags().StringVarP(&category, "category", "c", catalog.FilterAll, "Category filter")
	cmd.Flags().StringVar(&sortBy, "sort", string(catalog.SortTitle), "Sort key")

	return cmd
}

func printLessons(w io.Writer, lessons []catalog.Lesson) {
	fmt.Fprintf(w, "%-4s  %-36s  %-10s  %-12s  %s\n", "ID", "TITLE", "CATEGORY", "DIFFICULTY", "PROGRESS")
	fmt.Fprintln(w, strings.Repeat("─", ruleWidth))
	for _, l := range lessons {
		fmt.Fprintf(w, "%-4s  %-36s  %-10s  %-12s  %7d%%\n", l.ID, l.Title, l.Category, l.Difficulty, l.Progress)
	}
	fmt.Fprintf(w, "\n%d lessons\n", len(lessons))
}
