package fields_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/goliatone/go-collections/pkg/fields"
)

func TestBuildersMergeConfig(t *testing.T) {
	field := fields.Text("title", fields.Config{
		Label:       "Headline",
		Description: "Shown on the article card.",
		MinLength:   fields.Int(5),
		MaxLength:   fields.Int(120),
		Admin:       &fields.Admin{Position: "sidebar", Width: "50%"},
	})

	if field.Name != "title" {
		t.Fatalf("name = %q", field.Name)
	}
	if field.Type != fields.FieldTypeText {
		t.Fatalf("type = %q", field.Type)
	}
	if field.Label != "Headline" {
		t.Fatalf("label = %q", field.Label)
	}
	if field.MinLength == nil || *field.MinLength != 5 {
		t.Fatalf("minLength = %v", field.MinLength)
	}
	if field.Admin == nil || field.Admin.Position != "sidebar" {
		t.Fatalf("admin = %+v", field.Admin)
	}
}

func TestBuildersWithoutConfig(t *testing.T) {
	field := fields.Number("price")

	if field.Type != fields.FieldTypeNumber {
		t.Fatalf("type = %q", field.Type)
	}
	if field.Label != "" || field.Min != nil || field.Default != nil {
		t.Fatalf("expected a bare descriptor, got %+v", field)
	}
}

func TestBuildersAreDeterministic(t *testing.T) {
	build := func() fields.Field {
		return fields.Select("status", fields.Config{
			Options: []fields.Option{
				{Label: "Draft", Value: "draft"},
				{Label: "Published", Value: "published"},
			},
			Default: "draft",
		})
	}

	if diff := cmp.Diff(build(), build(), cmpopts.IgnoreFields(fields.Field{}, "Access")); diff != "" {
		t.Fatalf("two identical builder calls diverge (-first +second):\n%s", diff)
	}
}

func TestCheckboxDefaultsToFalse(t *testing.T) {
	field := fields.Checkbox("featured")
	if field.Default != false {
		t.Fatalf("default = %v, want false", field.Default)
	}

	overridden := fields.Checkbox("featured", fields.Config{Default: true})
	if overridden.Default != true {
		t.Fatalf("default = %v, want true", overridden.Default)
	}
}

func TestTabsBuilderCarriesTabs(t *testing.T) {
	field := fields.Tabs("meta", fields.Config{
		Tabs: []fields.Tab{
			{Label: "General", Fields: []fields.Field{fields.Text("subtitle")}},
			{Name: "seo", Label: "SEO", Fields: []fields.Field{fields.Text("metaTitle")}},
		},
	})

	if field.Type != fields.FieldTypeTabs {
		t.Fatalf("type = %q", field.Type)
	}
	if len(field.Tabs) != 2 {
		t.Fatalf("tabs = %d", len(field.Tabs))
	}
	if field.Tabs[0].Named() {
		t.Fatal("tab without name reported as named")
	}
	if !field.Tabs[1].Named() {
		t.Fatal("named tab reported as unnamed")
	}
}

func TestIsLayoutField(t *testing.T) {
	layouts := []fields.Field{
		fields.Tabs("t"),
		fields.Collapsible("c"),
		fields.Row("r"),
	}
	for _, field := range layouts {
		if !fields.IsLayoutField(field) {
			t.Fatalf("%s not classified as layout", field.Type)
		}
	}

	data := []fields.Field{
		fields.Text("a"),
		fields.Group("g"),
		fields.Array("rows"),
		fields.Blocks("content"),
		fields.Point("location"),
	}
	for _, field := range data {
		if fields.IsLayoutField(field) {
			t.Fatalf("%s misclassified as layout", field.Type)
		}
	}
}

func TestLayoutFieldTypesSorted(t *testing.T) {
	want := []fields.FieldType{
		fields.FieldTypeCollapsible,
		fields.FieldTypeRow,
		fields.FieldTypeTabs,
	}
	if diff := cmp.Diff(want, fields.LayoutFieldTypes()); diff != "" {
		t.Fatalf("layout types mismatch (-want +got):\n%s", diff)
	}
}
