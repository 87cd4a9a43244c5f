package ui

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func (a *App) showCmd() *cobra.Command {
	var source string
	var noColor bool

	cmd := &cobra.Command{
		Use:   "show <type> <id>",
		Short: "Show a single content item in full",
		Example: `  wpeek show posts 42
  wpeek show pages 7`,
		Args: cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			if noColor {
				DisableColor()
			}

			contentType := args[0]
			id, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid id %q", args[1])
			}

			client, err := a.client(source)
			if err != nil {
				return err
			}

			item, err := client.GetItem(context.Background(), contentType, id)
			if err != nil {
				return fmt.Errorf("fetching %s/%d: %w", contentType, id, err)
			}

			PrintItemDetail(*item, termWidth())
			return nil
		},
	}

	cmd.Flags().StringVar(&source, "source", "", "API source (current, parent, custom)")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	return cmd
}
