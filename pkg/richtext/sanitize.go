// Package richtext sanitizes HTML carried by rich text field values before
// it is handed to the persistence layer.
package richtext

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	htmlPolicyOnce sync.Once
	htmlPolicy     *bluemonday.Policy
)

// Sanitize strips markup that is not part of the sanctioned rich text
// vocabulary. Empty or whitespace-only input yields the empty string.
func Sanitize(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(sanitizer().Sanitize(trimmed))
}

func sanitizer() *bluemonday.Policy {
	htmlPolicyOnce.Do(func() {
		policy := bluemonday.UGCPolicy()
		policy.AllowAttrs("class").OnElements("p", "span", "div", "blockquote", "pre", "code")
		policy.AllowAttrs("start", "type").OnElements("ol")
		policy.RequireNoFollowOnLinks(true)
		htmlPolicy = policy
	})
	return htmlPolicy
}
