package jpfield

import (
	"fmt"
	"regexp"
)

// Registered field names.
const (
	FieldResidenceCard             = "residenceCard"
	FieldCorporationNumber         = "corporationNumber"
	FieldEmploymentInsuranceNumber = "employmentInsuranceNumber"
	FieldPassportNumber            = "passportNumber"
	FieldPhoneNumber               = "phoneNumber"
	FieldPostalCode                = "postalCode"
	FieldVisaExpiration            = "visaExpiration"
	FieldDate                      = "date"
	FieldBirthDate                 = "birthDate"
	FieldEmail                     = "email"
	FieldRomajiName                = "romajiName"
	FieldKanjiName                 = "kanjiName"
	FieldSex                       = "sex"
	FieldApplicationType           = "applicationType"
	FieldImmigrationCategory       = "immigrationCategory"
)

// Field describes one named validator.
type Field struct {
	Name string
	// Pattern is the format the normalised value must match; nil for fields
	// checked by parsing or by a closed list.
	Pattern  *regexp.Regexp
	Format   func(string) string
	Validate func(string, ...Option) Result
}

func identity(s string) string { return s }

var fields = []Field{
	{Name: FieldResidenceCard, Pattern: ResidenceCardPattern, Format: FormatResidenceCard, Validate: ResidenceCard},
	{Name: FieldCorporationNumber, Pattern: CorporationNumberPattern, Format: FormatCorporationNumber, Validate: CorporationNumber},
	{Name: FieldEmploymentInsuranceNumber, Pattern: EmploymentInsurancePattern, Format: FormatEmploymentInsuranceNumber, Validate: EmploymentInsuranceNumber},
	{Name: FieldPassportNumber, Pattern: DefaultPassportPattern, Format: FormatPassportNumber, Validate: PassportNumber},
	{Name: FieldPhoneNumber, Pattern: PhonePattern, Format: FormatPhoneNumber, Validate: PhoneNumber},
	{Name: FieldPostalCode, Pattern: PostalCodePattern, Format: FormatPostalCode, Validate: PostalCode},
	{Name: FieldVisaExpiration, Format: FormatDate, Validate: VisaExpiration},
	{Name: FieldDate, Format: FormatDate, Validate: Date},
	{Name: FieldBirthDate, Format: FormatDate, Validate: BirthDate},
	{Name: FieldEmail, Pattern: EmailPattern, Format: FormatEmail, Validate: Email},
	{Name: FieldRomajiName, Pattern: RomajiPattern, Format: FormatRomajiName, Validate: RomajiName},
	{Name: FieldKanjiName, Pattern: KanjiPattern, Format: FormatKanjiName, Validate: KanjiName},
	{Name: FieldSex, Format: FormatSex, Validate: Sex},
	{Name: FieldApplicationType, Format: identity, Validate: ApplicationType},
	{Name: FieldImmigrationCategory, Format: identity, Validate: ImmigrationCategory},
}

var fieldIndex = func() map[string]int {
	idx := make(map[string]int, len(fields))
	for i, f := range fields {
		idx[f.Name] = i
	}
	return idx
}()

// Lookup returns the field registered under name.
func Lookup(name string) (Field, bool) {
	i, ok := fieldIndex[name]
	if !ok {
		return Field{}, false
	}
	return fields[i], true
}

// Fields returns every registered field in a stable order.
func Fields() []Field {
	out := make([]Field, len(fields))
	copy(out, fields)
	return out
}

// Names returns the registered field names in the order of Fields.
func Names() []string {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}
	return names
}

// Validate runs the validator registered under name.
// The error is ErrUnknownField for names that are not registered; validation
// failures are reported in the Result.
func Validate(name, value string, opts ...Option) (Result, error) {
	f, ok := Lookup(name)
	if !ok {
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	return f.Validate(value, opts...), nil
}
