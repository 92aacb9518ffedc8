package collections_test

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	collections "github.com/goliatone/go-collections"
	"github.com/goliatone/go-collections/pkg/testsupport"
)

func TestLoadRegisterValidateRoundTrip(t *testing.T) {
	configs := testsupport.MustLoadCollections(t, filepath.Join("testdata", "collections.yml"))

	reg := collections.NewRegistry()
	for _, cfg := range configs {
		if _, err := reg.Register(cfg); err != nil {
			t.Fatalf("register %q: %v", cfg.Slug, err)
		}
	}

	articles, ok := reg.Collection("articles")
	if !ok {
		t.Fatal("articles not registered")
	}

	var names []string
	for _, field := range articles.FlatFields() {
		names = append(names, field.Name)
	}
	want := []string{"title", "contactEmail", "subtitle", "seo"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Fatalf("flat names mismatch (-want +got):\n%s", diff)
	}

	doc := testsupport.MustLoadDocument(t, filepath.Join("testdata", "article.json"))
	violations := articles.ValidateDocument(doc)

	var messages []string
	for _, violation := range violations {
		messages = append(messages, violation.Message)
	}
	wantMessages := []string{
		"Title must be at least 5 characters",
		"Meta Title must be no more than 10 characters",
	}
	if diff := cmp.Diff(wantMessages, messages); diff != "" {
		t.Fatalf("violations mismatch (-want +got):\n%s", diff)
	}
}

func TestFacadeReExportsCore(t *testing.T) {
	tree := []collections.Field{
		{Name: "title", Type: "text"},
	}
	flat := collections.FlattenDataFields(tree)
	if len(flat) != 1 || flat[0].Name != "title" {
		t.Fatalf("flat = %+v", flat)
	}

	if collections.HumanizeFieldName("SEOTitle") != "SEO Title" {
		t.Fatal("humanize mismatch")
	}
	if collections.IsLayoutField(collections.Field{Type: "row"}) != true {
		t.Fatal("row not classified as layout")
	}
	if got := collections.ValidateFieldConstraints(collections.Field{Name: "n", Type: "text"}, "x"); len(got) != 0 {
		t.Fatalf("unconstrained field produced %v", got)
	}
}
