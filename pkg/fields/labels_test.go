package fields_test

import (
	"testing"

	"github.com/goliatone/go-collections/pkg/fields"
)

func TestHumanizeFieldName(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: ""},
		{name: "single word", input: "title", want: "Title"},
		{name: "camel case", input: "firstName", want: "First Name"},
		{name: "snake case", input: "first_name", want: "First Name"},
		{name: "kebab case", input: "first-name", want: "First Name"},
		{name: "leading acronym", input: "SEOTitle", want: "SEO Title"},
		{name: "trailing acronym", input: "apiURL", want: "Api URL"},
		{name: "acronym only", input: "URL", want: "URL"},
		{name: "mixed separators", input: "meta_ogImage", want: "Meta Og Image"},
		{name: "pascal case", input: "PublishedAt", want: "Published At"},
		{name: "repeated separators", input: "a__b", want: "A B"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := fields.HumanizeFieldName(tc.input); got != tc.want {
				t.Fatalf("HumanizeFieldName(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}
