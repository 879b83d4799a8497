package main

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/uns-visa/visakit/pkg/jpfield"
)

var errEmptyForm = errors.New("form file is empty")

// readForm decodes a flat YAML or JSON mapping. Unquoted numbers and dates
// keep their literal text.
func readForm(r io.Reader) (jpfield.Form, error) {
	var form jpfield.Form
	if err := yaml.NewDecoder(r).Decode(&form); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errEmptyForm
		}
		return nil, fmt.Errorf("decode form: %w", err)
	}
	if form == nil {
		return nil, errEmptyForm
	}
	return form, nil
}

func newFormCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "form <file>",
		Short: "Validate an application form",
		Long: `Validates a flat YAML or JSON file of form fields (familyName, givenName,
passportNumber, currentExpirationDate, ...) and prints the summary. Use "-" to
read standard input. Exits with status 1 when the form has errors.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}

			form, err := readForm(in)
			if err != nil {
				return err
			}

			summary := jpfield.ValidateForm(form, a.fieldOptions()...)
			a.log.DebugContext(cmd.Context(), "form validated",
				"errors", summary.ErrorCount,
				"warnings", summary.WarningCount,
			)

			out := cmd.OutOrStdout()
			if asJSON {
				if err := writeJSON(out, summary); err != nil {
					return err
				}
			} else {
				printSummary(out, summary)
			}
			if !summary.IsValid {
				return errInvalid
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the summary as JSON")
	return cmd
}

func printSummary(w io.Writer, s jpfield.Summary) {
	if s.IsValid {
		fmt.Fprintln(w, "valid")
	} else {
		fmt.Fprintf(w, "invalid: %d error(s)\n", s.ErrorCount)
	}
	for _, key := range slices.Sorted(maps.Keys(s.Errors)) {
		fmt.Fprintf(w, "  %s: %s\n", key, s.Errors[key])
	}
	for _, msg := range s.Warnings {
		fmt.Fprintf(w, "  warning: %s\n", msg)
	}
}
