package shell

import (
	"html/template"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	inlinePolicyOnce sync.Once
	inlinePolicy     *bluemonday.Policy
)

// sanitizeInline keeps inline formatting elements and drops everything else.
func sanitizeInline(raw string) template.HTML {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return template.HTML(strings.TrimSpace(inlineSanitizer().Sanitize(trimmed)))
}

func inlineSanitizer() *bluemonday.Policy {
	inlinePolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements("b", "strong", "i", "em", "small", "mark", "code", "br", "span")
		policy.AllowAttrs("class").OnElements("span", "small", "mark")
		inlinePolicy = policy
	})
	return inlinePolicy
}

// plainText strips all markup, for places such as <title> that cannot hold any.
func plainText(raw string) string {
	return strings.TrimSpace(bluemonday.StrictPolicy().Sanitize(raw))
}
