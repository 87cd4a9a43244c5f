package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) typesCmd() *cobra.Command {
	var source string
	var noColor bool

	cmd := &cobra.Command{
		Use:   "types",
		Short: "List the browsable content types of the configured site",
		RunE: func(_ *cobra.Command, _ []string) error {
			if noColor {
				DisableColor()
			}

			client, err := a.client(source)
			if err != nil {
				return err
			}

			types, typesErr := client.ListContentTypes(context.Background())
			if typesErr != nil {
				fmt.Printf("%s\n\n", formatMuted(fmt.Sprintf("Discovery failed (%v); showing defaults.", typesErr)))
			}

			fmt.Printf("Content types at %s:\n\n", formatHeader(client.Source().BaseURL))
			for _, t := range types {
				label := t.Label
				if label == "" {
					label = t.Name
				}
				fmt.Printf("  %-16s %s\n", formatType(t.Name), formatMuted(label))
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&source, "source", "", "API source (current, parent, custom)")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	return cmd
}
