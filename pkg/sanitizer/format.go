package sanitizer

import "strings"

// GroupDigits splits s into consecutive groups of the given sizes joined by a hyphen.
// When the sizes do not add up to len(s), s is returned unchanged.
//
//	GroupDigits("1234567", 3, 4) // "123-4567"
func GroupDigits(s string, sizes ...int) string {
	total := 0
	for _, n := range sizes {
		if n <= 0 {
			return s
		}
		total += n
	}
	if total != len(s) || len(sizes) == 0 {
		return s
	}

	parts := make([]string, 0, len(sizes))
	offset := 0
	for _, n := range sizes {
		parts = append(parts, s[offset:offset+n])
		offset += n
	}
	return strings.Join(parts, "-")
}
