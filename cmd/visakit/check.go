package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/uns-visa/visakit/pkg/jpfield"
	"github.com/uns-visa/visakit/pkg/logger"
)

func (a *app) fieldOptions() []jpfield.Option {
	return []jpfield.Option{
		jpfield.WithTranslator(a.translator),
		jpfield.WithLanguage(a.lang),
		jpfield.WithLocation(a.location),
	}
}

func newCheckCmd(a *app) *cobra.Command {
	var (
		nationality string
		phoneType   string
		label       string
		required    bool
		asJSON      bool
	)

	cmd := &cobra.Command{
		Use:   "check <field> <value>",
		Short: "Validate a single field value",
		Long: fmt.Sprintf(`Validates value with the named field validator and prints the result.
Exits with status 1 when the value is invalid.

Fields: %s`, strings.Join(jpfield.Names(), ", ")),
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := a.fieldOptions()
			if nationality != "" {
				opts = append(opts, jpfield.WithNationality(nationality))
			}
			if phoneType != "" {
				opts = append(opts, jpfield.WithPhoneType(jpfield.ParsePhoneType(phoneType)))
			}
			if label != "" {
				opts = append(opts, jpfield.WithLabel(label))
			}
			if cmd.Flags().Changed("required") {
				opts = append(opts, jpfield.WithRequired(required))
			}

			field := args[0]
			res, err := jpfield.Validate(field, args[1], opts...)
			if err != nil {
				return err
			}
			a.log.DebugContext(cmd.Context(), "field checked", logger.Field(field), logger.Code(res.Code))

			out := cmd.OutOrStdout()
			if asJSON {
				if err := writeJSON(out, res); err != nil {
					return err
				}
			} else {
				printResult(out, field, res)
			}
			if !res.Valid {
				return errInvalid
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&nationality, "nationality", "", "Passport nationality code, e.g. VNM")
	cmd.Flags().StringVar(&phoneType, "phone-type", "", "Phone kind: any, mobile or landline")
	cmd.Flags().StringVar(&label, "label", "", "Field label used in messages")
	cmd.Flags().BoolVar(&required, "required", false, "Override whether an empty value is an error")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the result as JSON")
	return cmd
}

func printResult(w io.Writer, field string, res jpfield.Result) {
	if res.Valid {
		fmt.Fprintf(w, "%s: valid\n", field)
	} else {
		fmt.Fprintf(w, "%s: invalid\n", field)
	}
	line := func(name, value string) {
		if value != "" {
			fmt.Fprintf(w, "  %s: %s\n", name, value)
		}
	}
	line("error", res.Error)
	line("hint", res.Hint)
	line("formatted", res.Formatted)
	line("kind", string(res.Kind))
	if res.Age > 0 {
		line("age", fmt.Sprint(res.Age))
	}
	if exp := res.Expiration; exp != nil {
		line("status", fmt.Sprintf("%s (%d days)", exp.Status, exp.DaysRemaining))
		line("message", exp.Message)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
