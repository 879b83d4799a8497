// Package validator provides small, composable validation rules whose failures carry
// translation metadata.
//
// A Rule pairs a Check func with the ValidationError to report when the check fails.
// Exported constructors (RequiredString, MatchesPattern, InListString, DateNotBefore,
// MinAge, ...) only build Rule values; nothing runs until Apply or ApplyFirst
// evaluates them, and there is no hidden global state.
//
// # Usage
//
//	err := validator.ApplyFirst(
//	    validator.RequiredString("postalCode", code),
//	    validator.MatchesPattern("postalCode", code, postalRe, "postal code").
//	        Keyed("validation.postal_code.format", "validation.postal_code.hint", nil),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    first, _ := verrs.First()
//	    // translate first.TranslationKey / first.HintKey
//	}
//
// Apply evaluates every rule and aggregates failures; ApplyFirst stops at the first
// failure, for rule chains where later checks assume earlier ones passed.
//
// # Dates
//
// Date rules take the reference day explicitly so callers control the clock. Age
// counts completed calendar years.
package validator
