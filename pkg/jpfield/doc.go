// Package jpfield validates and formats Japan-specific identity and document fields
// used in visa applications: residence cards, corporation numbers, passport numbers,
// phone numbers, postal codes, expiration windows, dates and names.
//
// Every validator is a pure function of its input and options. A failure is a
// Result with Valid == false carrying a localized message, an optional hint and
// the catalog key in Code; validators never return Go errors or panic on input.
//
//	res := jpfield.PhoneNumber("09012345678")
//	// res.Valid == true, res.Formatted == "090-1234-5678", res.Kind == jpfield.PhoneMobile
//
//	res = jpfield.PassportNumber("P123", jpfield.WithNationality("ベトナム"))
//	// res.Error == "旅券番号の形式が無効です"
//
// Inputs are normalised before matching: fullwidth ASCII is folded to halfwidth
// and whitespace is removed, so values typed with a Japanese IME behave like their
// ASCII equivalents.
//
// Fields can also be resolved by name through Lookup and Validate, and a whole
// application form is checked with ValidateForm, which reports field errors and
// expiration warnings in a Summary.
//
// Messages come from the catalogs embedded in the locales package. Japanese is
// the default; pass WithLanguage("en") or a custom translator with WithTranslator.
package jpfield
