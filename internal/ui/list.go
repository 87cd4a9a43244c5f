package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mgalindo/wpeek/internal/wp"
)

func (a *App) listCmd() *cobra.Command {
	var (
		page    int
		perPage int
		search  string
		asc     bool
		source  string
		verbose bool
		noColor bool
	)

	cmd := &cobra.Command{
		Use:   "list [type]",
		Short: "List content items of a type",
		Long: `List one page of content items for the given type.

The type defaults to "posts". Use 'wpeek types' to see what the
configured site offers.`,
		Example: `  wpeek list
  wpeek list pages
  wpeek list posts --page=2 --per-page=10
  wpeek list posts --search=coffee`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if noColor {
				DisableColor()
			}

			contentType := "posts"
			if len(args) == 1 {
				contentType = args[0]
			}

			client, err := a.client(source)
			if err != nil {
				return err
			}

			result, err := client.ListContent(context.Background(), contentType, wp.ListQuery{
				Page:           page,
				PerPage:        perPage,
				SortDescending: !asc,
				Search:         search,
			})
			if err != nil {
				return fmt.Errorf("listing %s: %w", contentType, err)
			}

			if len(result.Items) == 0 {
				fmt.Println("No items found.")
				return nil
			}

			fmt.Printf("=== %s (page %d of %d, %d total) ===\n\n",
				formatHeader(contentType), page, result.TotalPages, result.Total)

			opts := PrintOpts{Verbose: verbose, Width: termWidth()}
			for _, item := range result.Items {
				PrintItemRow(item, opts)
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "Page number")
	cmd.Flags().IntVar(&perPage, "per-page", 5, "Items per page (1-20)")
	cmd.Flags().StringVar(&search, "search", "", "Full-text search term")
	cmd.Flags().BoolVar(&asc, "asc", false, "Sort oldest first")
	cmd.Flags().StringVar(&source, "source", "", "API source (current, parent, custom)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show excerpts")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")

	return cmd
}
