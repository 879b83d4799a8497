// Package sanitizer normalises raw form input before it reaches a validator.
//
// Japanese users type identifiers through an IME, so the same residence card or phone
// number arrives as "AB12345678CD", "ａｂ１２３４５６７８ｃｄ" or "090－1234－5678". The
// helpers fold those variants into one canonical ASCII shape:
//
//   - Strings – trimming, case conversion, whitespace and separator removal.
//   - Width – fullwidth to halfwidth folding (golang.org/x/text/width) and dash
//     look-alike normalisation.
//   - Format – digit extraction and fixed-size digit grouping (123-4567).
//
// Helpers are small pure functions. Apply and Compose chain them:
//
//	clean := sanitizer.Compose(
//	    sanitizer.NarrowNumeric,
//	    sanitizer.RemoveSeparators,
//	)
//
//	clean("０９０－１２３４－５６７８") // "09012345678"
//
// None of the helpers returns an error and none keeps state, so they are safe for
// concurrent use.
package sanitizer
