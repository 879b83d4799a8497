package main

import (
	"github.com/spf13/cobra"

	"github.com/uns-visa/visakit/pkg/shell"
)

func newNavCmd(a *app) *cobra.Command {
	var (
		opts     shell.Options
		document bool
		title    string
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "nav",
		Short: "Render the navigation shell",
		Long: `Renders the header and footer of the shell to standard output, either as a
fragment or as a complete HTML document. With --json the nav items are printed
instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.Lang = a.lang
			opts.Translator = a.translator
			if _, ok := shell.ItemByKey(opts.Active); opts.Active != "" && !ok {
				a.log.WarnContext(cmd.Context(), "unknown nav key, nothing is highlighted", "active", opts.Active)
			}

			out := cmd.OutOrStdout()
			switch {
			case asJSON:
				return writeJSON(out, shell.Links(opts))
			case document:
				return shell.Document(opts, title, nil).Render(cmd.Context(), out)
			default:
				return shell.Page(opts, nil).Render(cmd.Context(), out)
			}
		},
	}

	cmd.Flags().StringVar(&opts.Active, "active", shell.DefaultActive, "Key of the highlighted nav item")
	cmd.Flags().StringVar(&opts.Headline, "headline", "", "Headline; may contain inline markup")
	cmd.Flags().StringVar(&opts.Subtitle, "subtitle", "", "Subtitle; may contain inline markup")
	cmd.Flags().StringSliceVar(&opts.Stylesheets, "stylesheet", nil, "Stylesheet URL for --document (repeatable)")
	cmd.Flags().BoolVar(&document, "document", false, "Wrap the shell in a complete HTML document")
	cmd.Flags().StringVar(&title, "title", "", "Document title; defaults to the headline")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the nav items as JSON")
	return cmd
}
