package validator_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uns-visa/visakit/pkg/validator"
)

func TestRequiredString(t *testing.T) {
	assert.NoError(t, validator.Apply(validator.RequiredString("name", "Taro")))

	for _, value := range []string{"", "   ", "\t\n"} {
		err := validator.Apply(validator.RequiredString("name", value))
		require.Error(t, err, "value %q should be rejected", value)
		assert.Equal(t, "validation.required", validator.ExtractValidationErrors(err)[0].TranslationKey)
	}
}

func TestMatchesPattern(t *testing.T) {
	postal := regexp.MustCompile(`^\d{7}$`)

	t.Run("matching values", func(t *testing.T) {
		assert.NoError(t, validator.Apply(validator.MatchesPattern("postal", "1234567", postal, "postal code")))
	})

	t.Run("non-matching values", func(t *testing.T) {
		for _, value := range []string{"", "123456", "12345678", "123-4567", "abcdefg"} {
			err := validator.Apply(validator.MatchesPattern("postal", value, postal, "postal code"))
			require.Error(t, err, "value %q should be rejected", value)

			verr := validator.ExtractValidationErrors(err)[0]
			assert.Equal(t, "validation.regex_pattern", verr.TranslationKey)
			assert.Equal(t, "postal code", verr.TranslationValues["description"])
		}
	})
}

func TestSatisfies(t *testing.T) {
	even := func(n int) func() bool { return func() bool { return n%2 == 0 } }

	assert.NoError(t, validator.Apply(validator.Satisfies("n", even(4), "even number")))

	err := validator.Apply(validator.Satisfies("n", even(3), "even number"))
	require.Error(t, err)
	assert.Equal(t, "validation.invalid", validator.ExtractValidationErrors(err)[0].TranslationKey)
}

func TestInListString(t *testing.T) {
	allowed := []string{"認定", "変更", "更新"}

	for _, v := range allowed {
		assert.NoError(t, validator.Apply(validator.InListString("applicationType", v, allowed)))
	}

	err := validator.Apply(validator.InListString("applicationType", "永住", allowed))
	require.Error(t, err)

	verr := validator.ExtractValidationErrors(err)[0]
	assert.Equal(t, "validation.in_list", verr.TranslationKey)
	assert.Equal(t, "認定/変更/更新", verr.TranslationValues["allowed_values"])
}

func TestInList(t *testing.T) {
	assert.NoError(t, validator.Apply(validator.InList("category", 2, []int{1, 2, 3, 4})))
	assert.Error(t, validator.Apply(validator.InList("category", 5, []int{1, 2, 3, 4})))
}

func TestRangeNum(t *testing.T) {
	tests := []struct {
		value int
		valid bool
	}{
		{0, false},
		{1, true},
		{4, true},
		{5, false},
	}

	for _, tt := range tests {
		err := validator.Apply(validator.RangeNum("category", tt.value, 1, 4))
		if tt.valid {
			assert.NoError(t, err, "value %d", tt.value)
			continue
		}
		require.Error(t, err, "value %d", tt.value)
		assert.Equal(t, "validation.range", validator.ExtractValidationErrors(err)[0].TranslationKey)
	}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDateNotBefore(t *testing.T) {
	min := day(2024, time.January, 1)

	assert.NoError(t, validator.Apply(validator.DateNotBefore("date", min, min)), "boundary is inclusive")
	assert.NoError(t, validator.Apply(validator.DateNotBefore("date", day(2024, time.June, 1), min)))

	err := validator.Apply(validator.DateNotBefore("date", day(2023, time.December, 31), min))
	require.Error(t, err)
	verr := validator.ExtractValidationErrors(err)[0]
	assert.Equal(t, "validation.date_min", verr.TranslationKey)
	assert.Equal(t, "2024-01-01", verr.TranslationValues["min"])
}

func TestDateNotAfter(t *testing.T) {
	max := day(2024, time.December, 31)

	assert.NoError(t, validator.Apply(validator.DateNotAfter("date", max, max)), "boundary is inclusive")

	err := validator.Apply(validator.DateNotAfter("date", day(2025, time.January, 1), max))
	require.Error(t, err)
	assert.Equal(t, "validation.date_max", validator.ExtractValidationErrors(err)[0].TranslationKey)
}

func TestAge(t *testing.T) {
	today := day(2026, time.October, 19)

	tests := []struct {
		name     string
		birth    time.Time
		expected int
	}{
		{name: "birthday today", birth: day(2000, time.October, 19), expected: 26},
		{name: "birthday yesterday", birth: day(2000, time.October, 18), expected: 26},
		{name: "birthday tomorrow", birth: day(2000, time.October, 20), expected: 25},
		{name: "birthday next month", birth: day(2000, time.November, 1), expected: 25},
		{name: "birthday last month", birth: day(2000, time.September, 30), expected: 26},
		{name: "born today", birth: today, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, validator.Age(tt.birth, today))
		})
	}

	t.Run("leap day birthday", func(t *testing.T) {
		birth := day(2004, time.February, 29)
		assert.Equal(t, 17, validator.Age(birth, day(2022, time.February, 28)))
		assert.Equal(t, 18, validator.Age(birth, day(2022, time.March, 1)))
	})
}

func TestMinAge(t *testing.T) {
	today := day(2026, time.October, 19)

	assert.NoError(t, validator.Apply(validator.MinAge("dob", day(2008, time.October, 19), today, 18)))

	err := validator.Apply(validator.MinAge("dob", day(2008, time.October, 20), today, 18))
	require.Error(t, err)
	verr := validator.ExtractValidationErrors(err)[0]
	assert.Equal(t, "validation.min_age", verr.TranslationKey)
	assert.Equal(t, 18, verr.TranslationValues["min_age"])
}
