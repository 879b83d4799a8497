package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uns-visa/visakit/pkg/validator"
)

func failing(field, key string) validator.Rule {
	return validator.Rule{
		Check: func() bool { return false },
		Error: validator.ValidationError{Field: field, Message: "failed", TranslationKey: key},
	}
}

func passing() validator.Rule {
	return validator.Rule{Check: func() bool { return true }}
}

func TestApply(t *testing.T) {
	t.Run("no rules", func(t *testing.T) {
		assert.NoError(t, validator.Apply())
	})

	t.Run("all pass", func(t *testing.T) {
		assert.NoError(t, validator.Apply(passing(), passing()))
	})

	t.Run("collects every failure", func(t *testing.T) {
		err := validator.Apply(failing("a", "k1"), passing(), failing("b", "k2"))
		require.Error(t, err)

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 2)
		assert.Equal(t, []string{"a", "b"}, verrs.Fields())
		assert.True(t, verrs.Has("a"))
		assert.False(t, verrs.Has("c"))
		require.ErrorIs(t, err, validator.ErrValidationFailed)
	})
}

func TestApplyFirst(t *testing.T) {
	calls := 0
	counting := validator.Rule{Check: func() bool { calls++; return true }}

	err := validator.ApplyFirst(failing("a", "k1"), counting, failing("b", "k2"))
	require.Error(t, err)
	assert.Equal(t, 0, calls, "rules after the first failure must not run")

	verrs := validator.ExtractValidationErrors(err)
	require.Len(t, verrs, 1)
	first, ok := verrs.First()
	require.True(t, ok)
	assert.Equal(t, "k1", first.TranslationKey)

	assert.NoError(t, validator.ApplyFirst(passing(), counting))
	assert.Equal(t, 1, calls)
}

func TestRuleKeyedWithoutValues(t *testing.T) {
	r := validator.Rule{Check: func() bool { return false }}.Keyed("k", "", map[string]any{"n": 1})
	assert.Equal(t, 1, r.Error.TranslationValues["n"])
}

func TestRuleKeyed(t *testing.T) {
	base := validator.Rule{
		Check: func() bool { return false },
		Error: validator.ValidationError{
			Field:             "postalCode",
			TranslationKey:    "validation.regex_pattern",
			TranslationValues: map[string]any{"field": "postalCode"},
		},
	}

	keyed := base.Keyed("validation.postal_code.format", "validation.postal_code.hint", map[string]any{"example": "123-4567"})

	assert.Equal(t, "validation.postal_code.format", keyed.Error.TranslationKey)
	assert.Equal(t, "validation.postal_code.hint", keyed.Error.HintKey)
	assert.Equal(t, "postalCode", keyed.Error.TranslationValues["field"])
	assert.Equal(t, "123-4567", keyed.Error.TranslationValues["example"])

	// The original rule is untouched.
	assert.Equal(t, "validation.regex_pattern", base.Error.TranslationKey)
	assert.NotContains(t, base.Error.TranslationValues, "example")

	unhinted := base.Keyed("k", "", nil)
	assert.Empty(t, unhinted.Error.HintKey)
}

func TestExtractValidationErrors(t *testing.T) {
	assert.Nil(t, validator.ExtractValidationErrors(nil))
	assert.Nil(t, validator.ExtractValidationErrors(errors.New("plain")))

	wrapped := fmt.Errorf("binding: %w", validator.ValidationErrors{{Field: "x"}})
	assert.True(t, validator.IsValidationError(wrapped))
	assert.Len(t, validator.ExtractValidationErrors(wrapped), 1)
	assert.False(t, validator.IsValidationError(nil))
}

func TestValidationErrorsError(t *testing.T) {
	assert.Equal(t, "validation failed", validator.ValidationErrors{}.Error())

	verrs := validator.ValidationErrors{
		{Field: "email", Message: "invalid"},
		{Field: "name", Message: "required"},
	}
	assert.Equal(t, "validation failed: email: invalid; name: required", verrs.Error())

	assert.Equal(t, []string{"email", "name"}, append(verrs, validator.ValidationError{Field: "email"}).Fields())
	_, ok := validator.ValidationErrors{}.First()
	assert.False(t, ok)
}
