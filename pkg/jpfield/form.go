package jpfield

// Form keys understood by ValidateForm.
const (
	FormFamilyName            = "familyName"
	FormGivenName             = "givenName"
	FormFamilyNameKanji       = "familyNameKanji"
	FormGivenNameKanji        = "givenNameKanji"
	FormNationality           = "nationality"
	FormSex                   = "sex"
	FormDateOfBirth           = "dateOfBirth"
	FormResidenceCardNumber   = "residenceCardNumber"
	FormPassportNumber        = "passportNumber"
	FormPassportExpiration    = "passportExpiration"
	FormCurrentExpirationDate = "currentExpirationDate"
	FormTelephoneJapan        = "telephoneJapan"
	FormCellularPhone         = "cellularPhone"
	FormEmail                 = "email"
	FormPostalCodeJapan       = "postalCodeJapan"
)

// Form is a flat application form: field name to raw value.
type Form map[string]string

// Summary aggregates the outcome of ValidateForm.
type Summary struct {
	IsValid      bool              `json:"isValid"`
	Errors       map[string]string `json:"errors"`
	Warnings     []string          `json:"warnings"`
	ErrorCount   int               `json:"errorCount"`
	WarningCount int               `json:"warningCount"`
}

// ValidateForm checks every field of an application form and collects one error
// per invalid field. Names and the passport number are required; the other fields
// are checked only when present. A residence period that is expired or due
// within CriticalDays is reported as a warning, not an error.
func ValidateForm(form Form, opts ...Option) Summary {
	c := newConfig(opts)
	errs := make(map[string]string)
	warnings := make([]string, 0)

	record := func(key string, res Result) {
		if !res.Valid {
			errs[key] = res.Error
		}
	}
	with := func(extra ...Option) []Option {
		out := make([]Option, 0, len(opts)+len(extra))
		out = append(out, opts...)
		return append(out, extra...)
	}
	present := func(key string) (string, bool) {
		v := form[key]
		return v, !blank(v)
	}

	record(FormFamilyName, RomajiName(form[FormFamilyName], with(WithLabel(c.message("labels.family_name", nil)))...))
	record(FormGivenName, RomajiName(form[FormGivenName], with(WithLabel(c.message("labels.given_name", nil)))...))

	if v, ok := present(FormFamilyNameKanji); ok {
		record(FormFamilyNameKanji, KanjiName(v, opts...))
	}
	if v, ok := present(FormGivenNameKanji); ok {
		record(FormGivenNameKanji, KanjiName(v, opts...))
	}

	if v, ok := present(FormResidenceCardNumber); ok {
		record(FormResidenceCardNumber, ResidenceCard(v, opts...))
	}

	record(FormPassportNumber, PassportNumber(form[FormPassportNumber], with(WithNationality(form[FormNationality]))...))

	if v, ok := present(FormCurrentExpirationDate); ok {
		res := VisaExpiration(v, opts...)
		switch {
		case !res.Valid:
			errs[FormCurrentExpirationDate] = res.Error
		case res.Urgency == UrgencyError:
			warnings = append(warnings, res.Message)
		}
	}

	if v, ok := present(FormPassportExpiration); ok {
		res := VisaExpiration(v, opts...)
		switch {
		case !res.Valid:
			errs[FormPassportExpiration] = res.Error
		case res.Status == StatusExpired:
			errs[FormPassportExpiration] = c.message("validation.passport.expired", nil)
		}
	}

	if v, ok := present(FormTelephoneJapan); ok {
		record(FormTelephoneJapan, PhoneNumber(v, with(WithPhoneType(PhoneLandline))...))
	}
	if v, ok := present(FormCellularPhone); ok {
		record(FormCellularPhone, PhoneNumber(v, with(WithPhoneType(PhoneMobile))...))
	}
	if v, ok := present(FormEmail); ok {
		record(FormEmail, Email(v, opts...))
	}
	if v, ok := present(FormPostalCodeJapan); ok {
		record(FormPostalCodeJapan, PostalCode(v, opts...))
	}
	if v, ok := present(FormDateOfBirth); ok {
		record(FormDateOfBirth, BirthDate(v, opts...))
	}
	if v, ok := present(FormSex); ok {
		record(FormSex, Sex(v, opts...))
	}

	return Summary{
		IsValid:      len(errs) == 0,
		Errors:       errs,
		Warnings:     warnings,
		ErrorCount:   len(errs),
		WarningCount: len(warnings),
	}
}
