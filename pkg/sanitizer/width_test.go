package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/uns-visa/visakit/pkg/sanitizer"
)

func TestFoldWidth(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "fullwidth letters and digits", input: "ＡＢ１２３４５６７８ＣＤ", expected: "AB12345678CD"},
		{name: "already narrow", input: "AB12345678CD", expected: "AB12345678CD"},
		{name: "kanji untouched", input: "山田太郎", expected: "山田太郎"},
		{name: "hiragana untouched", input: "やまだ", expected: "やまだ"},
		{name: "fullwidth at sign", input: "ｔａｒｏ＠ｅｘａｍｐｌｅ．ｃｏｍ", expected: "taro@example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizer.FoldWidth(tt.input))
		})
	}
}

func TestNarrowNumeric(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "fullwidth phone", input: "０９０－１２３４－５６７８", expected: "090-1234-5678"},
		{name: "prolonged sound mark as dash", input: "123ー4567", expected: "123-4567"},
		{name: "en dash", input: "03–1234–5678", expected: "03-1234-5678"},
		{name: "plain", input: "1234567", expected: "1234567"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizer.NarrowNumeric(tt.input))
		})
	}
}
