package config_test

import (
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-collections/pkg/config"
	"github.com/goliatone/go-collections/pkg/fields"
)

func TestLoadFileParsesCollections(t *testing.T) {
	configs, err := config.LoadFile(filepath.Join("testdata", "articles.yml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(configs) != 2 {
		t.Fatalf("collections = %d, want 2", len(configs))
	}

	articles := configs[0]
	if articles.Slug != "articles" {
		t.Fatalf("slug = %q", articles.Slug)
	}
	if articles.Labels.Singular != "Article" {
		t.Fatalf("labels = %+v", articles.Labels)
	}

	byName := map[string]fields.Field{}
	for _, field := range articles.Fields {
		byName[field.Name] = field
	}

	title := byName["title"]
	if title.Type != fields.FieldTypeText {
		t.Fatalf("title type = %q", title.Type)
	}
	if title.Label != "Headline" {
		t.Fatalf("title label = %q", title.Label)
	}
	if title.MinLength == nil || *title.MinLength != 5 {
		t.Fatalf("title minLength = %v", title.MinLength)
	}
	if title.Admin == nil || title.Admin.Placeholder != "Write a headline" {
		t.Fatalf("title admin = %+v", title.Admin)
	}

	status := byName["status"]
	if len(status.Options) != 2 || status.Options[0].Value != "draft" {
		t.Fatalf("status options = %+v", status.Options)
	}
	if status.Default != "draft" {
		t.Fatalf("status default = %v", status.Default)
	}

	rating := byName["rating"]
	if rating.Step == nil || *rating.Step != 0.5 {
		t.Fatalf("rating step = %v", rating.Step)
	}

	gallery := byName["gallery"]
	if gallery.Type != fields.FieldTypeArray || len(gallery.Fields) != 2 {
		t.Fatalf("gallery = %+v", gallery)
	}
	if got := gallery.Fields[0].RelationTo; len(got) != 1 || got[0] != "media" {
		t.Fatalf("gallery upload relationTo = %v", got)
	}

	content := byName["content"]
	if len(content.Blocks) != 1 || content.Blocks[0].Slug != "quote" {
		t.Fatalf("content blocks = %+v", content.Blocks)
	}
}

func TestLoadFileParsesTabs(t *testing.T) {
	configs, err := config.LoadFile(filepath.Join("testdata", "articles.yml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	var tabsField fields.Field
	for _, field := range configs[0].Fields {
		if field.Type == fields.FieldTypeTabs {
			tabsField = field
		}
	}
	if len(tabsField.Tabs) != 2 {
		t.Fatalf("tabs = %+v", tabsField.Tabs)
	}
	if tabsField.Tabs[0].Named() {
		t.Fatal("General tab should be unnamed")
	}
	seo := tabsField.Tabs[1]
	if seo.Name != "seo" || seo.Description != "Search engine hints" {
		t.Fatalf("seo tab = %+v", seo)
	}

	// The loaded tree flattens exactly like a hand-built one.
	flat := fields.FlattenDataFields(configs[0].Fields)
	var names []string
	for _, field := range flat {
		names = append(names, field.Name)
	}
	want := "title status rating publishedAt featured subtitle seo gallery content"
	if got := strings.Join(names, " "); got != want {
		t.Fatalf("flat names = %q, want %q", got, want)
	}
}

func TestLoadFSAccumulatesErrors(t *testing.T) {
	fsys := fstest.MapFS{
		"good.yml": &fstest.MapFile{Data: []byte(
			"collections:\n  - slug: posts\n    fields:\n      - name: title\n        type: text\n",
		)},
		"bad.yml": &fstest.MapFile{Data: []byte(
			"collections:\n  - slug: broken\n    fields:\n      - name: what\n        type: hologram\n",
		)},
		"notes.txt": &fstest.MapFile{Data: []byte("ignored")},
	}

	configs, err := config.LoadFS(fsys)
	if err == nil {
		t.Fatal("expected an error for the unknown field type")
	}
	if !strings.Contains(err.Error(), "hologram") {
		t.Fatalf("err = %v", err)
	}

	// The healthy file still loads.
	if len(configs) != 1 || configs[0].Slug != "posts" {
		t.Fatalf("configs = %+v", configs)
	}
}

func TestLoadFSNilFilesystem(t *testing.T) {
	configs, err := config.LoadFS(nil)
	if err != nil || configs != nil {
		t.Fatalf("got %v, %v", configs, err)
	}
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	if _, err := config.Parse([]byte("collections: [")); err == nil {
		t.Fatal("expected parse error")
	}
}
