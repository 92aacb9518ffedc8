// Package collections re-exports the core field schema API so callers can
// depend on a single import for the common path: build a field tree, derive
// the canonical flat shape, and validate document values against it.
package collections

import (
	"io/fs"

	"github.com/goliatone/go-collections/pkg/config"
	"github.com/goliatone/go-collections/pkg/fields"
	"github.com/goliatone/go-collections/pkg/registry"
	"github.com/goliatone/go-collections/pkg/validation"
)

// Field is the descriptor consumed across the toolkit.
type Field = fields.Field

// FieldType discriminates field variants.
type FieldType = fields.FieldType

// Tab is one entry of a tabs layout field.
type Tab = fields.Tab

// Violation describes a value failing a configured constraint.
type Violation = validation.Violation

// Collection is a registered collection with its canonical flat shape.
type Collection = registry.Collection

// CollectionConfig declares a collection for registration.
type CollectionConfig = registry.Config

// Registry indexes registered collections by slug.
type Registry = registry.Registry

// IsLayoutField reports whether the field is a pure display wrapper.
func IsLayoutField(field Field) bool {
	return fields.IsLayoutField(field)
}

// FlattenDataFields derives the canonical flat list of data fields from a
// nested field tree.
func FlattenDataFields(list []Field) []Field {
	return fields.FlattenDataFields(list)
}

// ValidateFieldConstraints checks one value against the constraints
// configured on its field.
func ValidateFieldConstraints(field Field, value any) []Violation {
	return validation.ValidateFieldConstraints(field, value)
}

// HumanizeFieldName converts a storage key into a human-friendly label.
func HumanizeFieldName(name string) string {
	return fields.HumanizeFieldName(name)
}

// New registers a single collection from its config.
func New(cfg CollectionConfig) (*Collection, error) {
	return registry.New(cfg)
}

// NewRegistry creates an empty collection registry.
func NewRegistry() *Registry {
	return registry.NewRegistry()
}

// LoadFS loads collection definitions from every YAML/JSON file in the
// filesystem.
func LoadFS(fsys fs.FS) ([]CollectionConfig, error) {
	return config.LoadFS(fsys)
}
