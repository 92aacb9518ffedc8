package richtext_test

import (
	"strings"
	"testing"

	"github.com/goliatone/go-collections/pkg/richtext"
)

func TestSanitizeRemovesScripts(t *testing.T) {
	got := richtext.Sanitize(`<p>hello</p><script>alert("x")</script>`)
	if strings.Contains(got, "script") {
		t.Fatalf("script survived: %q", got)
	}
	if !strings.Contains(got, "<p>hello</p>") {
		t.Fatalf("paragraph removed: %q", got)
	}
}

func TestSanitizeKeepsCommonMarkup(t *testing.T) {
	input := `<p class="lead">intro</p><ul><li><strong>bold</strong></li></ul><blockquote>q</blockquote>`
	got := richtext.Sanitize(input)

	for _, keep := range []string{"<p", "class=\"lead\"", "<strong>", "<blockquote>"} {
		if !strings.Contains(got, keep) {
			t.Fatalf("%s stripped from %q", keep, got)
		}
	}
}

func TestSanitizeStripsEventHandlers(t *testing.T) {
	got := richtext.Sanitize(`<p onclick="steal()">x</p>`)
	if strings.Contains(got, "onclick") {
		t.Fatalf("handler survived: %q", got)
	}
}

func TestSanitizeEmptyInput(t *testing.T) {
	if got := richtext.Sanitize("   "); got != "" {
		t.Fatalf("got %q", got)
	}
	if got := richtext.Sanitize(""); got != "" {
		t.Fatalf("got %q", got)
	}
}
