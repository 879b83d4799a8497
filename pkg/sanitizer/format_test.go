package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/uns-visa/visakit/pkg/sanitizer"
)

func TestExtractDigits(t *testing.T) {
	assert.Equal(t, "09012345678", sanitizer.ExtractDigits("tel: 090-1234-5678"))
	assert.Equal(t, "", sanitizer.ExtractDigits("abc"))
}

func TestGroupDigits(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		sizes    []int
		expected string
	}{
		{name: "postal code", input: "1234567", sizes: []int{3, 4}, expected: "123-4567"},
		{name: "mobile", input: "09012345678", sizes: []int{3, 4, 4}, expected: "090-1234-5678"},
		{name: "insurance number", input: "12345678901", sizes: []int{4, 6, 1}, expected: "1234-567890-1"},
		{name: "length mismatch", input: "123456", sizes: []int{3, 4}, expected: "123456"},
		{name: "no sizes", input: "123", sizes: nil, expected: "123"},
		{name: "zero size", input: "123", sizes: []int{0, 3}, expected: "123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizer.GroupDigits(tt.input, tt.sizes...))
		})
	}
}
