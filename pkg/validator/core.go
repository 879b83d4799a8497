package validator

import (
	"errors"
	"maps"
	"slices"
	"strings"
)

// ErrValidationFailed matches every ValidationErrors value with errors.Is.
var ErrValidationFailed = errors.New("validation failed")

// ValidationError describes one failed rule. Message and Hint are English
// defaults. TranslationKey and HintKey select the catalog entries, and
// TranslationValues fill their placeholders.
type ValidationError struct {
	Field             string
	Message           string
	Hint              string
	TranslationKey    string
	HintKey           string
	TranslationValues map[string]any
}

func (e ValidationError) Error() string { return e.Field + ": " + e.Message }

// ValidationErrors is the error returned by Apply and ApplyFirst.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return ErrValidationFailed.Error()
	}
	msgs := make([]string, len(ve))
	for i, e := range ve {
		msgs[i] = e.Error()
	}
	return ErrValidationFailed.Error() + ": " + strings.Join(msgs, "; ")
}

func (ve ValidationErrors) Is(target error) bool { return target == ErrValidationFailed }

// Has reports whether any error concerns field.
func (ve ValidationErrors) Has(field string) bool {
	for _, e := range ve {
		if e.Field == field {
			return true
		}
	}
	return false
}

// Fields lists the failing fields in order of first appearance.
func (ve ValidationErrors) Fields() []string {
	var fields []string
	for _, e := range ve {
		if !slices.Contains(fields, e.Field) {
			fields = append(fields, e.Field)
		}
	}
	return fields
}

// First returns the first error, if any.
func (ve ValidationErrors) First() (ValidationError, bool) {
	if len(ve) == 0 {
		return ValidationError{}, false
	}
	return ve[0], true
}

// Rule is a deferred check and the error it reports on failure.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// newRule builds a Rule whose translation values always include "field".
func newRule(field, key, msg string, check func() bool, values map[string]any) Rule {
	vals := map[string]any{"field": field}
	maps.Copy(vals, values)
	return Rule{
		Check: check,
		Error: ValidationError{Field: field, Message: msg, TranslationKey: key, TranslationValues: vals},
	}
}

// Keyed returns a copy of r reporting under key and, when non-empty, hintKey.
// values are merged over the rule's own values.
func (r Rule) Keyed(key, hintKey string, values map[string]any) Rule {
	r.Error.TranslationKey = key
	if hintKey != "" {
		r.Error.HintKey = hintKey
	}
	if len(values) > 0 {
		vals := maps.Clone(r.Error.TranslationValues)
		if vals == nil {
			vals = make(map[string]any, len(values))
		}
		maps.Copy(vals, values)
		r.Error.TranslationValues = vals
	}
	return r
}

// Apply runs every rule and reports all failures.
func Apply(rules ...Rule) error {
	return run(false, rules)
}

// ApplyFirst runs rules in order and stops at the first failure, for chains
// where a later rule assumes an earlier one passed, such as a checksum after
// a length check.
func ApplyFirst(rules ...Rule) error {
	return run(true, rules)
}

func run(stopEarly bool, rules []Rule) error {
	var failed ValidationErrors
	for _, r := range rules {
		if r.Check() {
			continue
		}
		failed = append(failed, r.Error)
		if stopEarly {
			break
		}
	}
	if len(failed) == 0 {
		return nil
	}
	return failed
}

// ExtractValidationErrors returns the ValidationErrors in err's chain, or nil.
func ExtractValidationErrors(err error) ValidationErrors {
	var ve ValidationErrors
	if errors.As(err, &ve) {
		return ve
	}
	return nil
}

// IsValidationError reports whether err's chain holds ValidationErrors.
func IsValidationError(err error) bool {
	return ExtractValidationErrors(err) != nil
}
