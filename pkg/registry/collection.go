// Package registry implements the collection registration layer: it derives
// the canonical storage shape of each collection once, runs the document
// write pipeline against it, and applies per-operation field access.
package registry

import (
	"errors"
	"strings"

	"github.com/go-openapi/inflect"

	"github.com/goliatone/go-collections/pkg/fields"
	"github.com/goliatone/go-collections/pkg/richtext"
	"github.com/goliatone/go-collections/pkg/validation"
)

// Operation names a document capability gated by field access predicates.
type Operation string

const (
	OperationCreate Operation = "create"
	OperationRead   Operation = "read"
	OperationUpdate Operation = "update"
)

// Labels holds the display names of a collection.
type Labels struct {
	Singular string `json:"singular"`
	Plural   string `json:"plural"`
}

// Config declares a collection: its slug, optional labels, and the authored
// field tree, layout wrappers included.
type Config struct {
	Slug   string
	Labels Labels
	Fields []fields.Field
}

// Collection is a registered collection. The canonical flat shape is
// computed once at registration and shared read-only afterwards.
type Collection struct {
	slug   string
	labels Labels
	fields []fields.Field
	flat   []fields.Field
}

// ErrSlugRequired is returned when a collection config carries no slug.
var ErrSlugRequired = errors.New("registry: collection slug is required")

// New registers a collection from its config, deriving labels from the slug
// when they are not supplied and flattening the field tree once.
func New(cfg Config) (*Collection, error) {
	slug := strings.TrimSpace(cfg.Slug)
	if slug == "" {
		return nil, ErrSlugRequired
	}

	labels := cfg.Labels
	if labels.Singular == "" {
		labels.Singular = fields.HumanizeFieldName(inflect.Singularize(slug))
	}
	if labels.Plural == "" {
		labels.Plural = fields.HumanizeFieldName(inflect.Pluralize(slug))
	}

	collection := &Collection{
		slug:   slug,
		labels: labels,
		fields: append([]fields.Field(nil), cfg.Fields...),
	}
	collection.flat = fields.FlattenDataFields(collection.fields)
	return collection, nil
}

// Slug returns the storage identifier of the collection.
func (c *Collection) Slug() string { return c.slug }

// Labels returns the display names of the collection.
func (c *Collection) Labels() Labels { return c.labels }

// Fields returns a copy of the authored field tree, layout wrappers
// included.
func (c *Collection) Fields() []fields.Field {
	return append([]fields.Field(nil), c.fields...)
}

// FlatFields returns a copy of the canonical flat storage shape.
func (c *Collection) FlatFields() []fields.Field {
	return append([]fields.Field(nil), c.flat...)
}

// ValidateDocument runs every configured constraint against the document and
// returns the accumulated violations. It recurses into group values and
// array/blocks rows. An empty result means the document satisfies every
// constraint; whether violations block the write is the caller's policy.
func (c *Collection) ValidateDocument(doc map[string]any) []validation.Violation {
	return validateFields(c.flat, doc)
}

func validateFields(list []fields.Field, doc map[string]any) []validation.Violation {
	var violations []validation.Violation
	for _, field := range list {
		value := doc[field.Name]
		violations = append(violations, validation.ValidateFieldConstraints(field, value)...)

		switch field.Type {
		case fields.FieldTypeGroup:
			if nested, ok := value.(map[string]any); ok {
				violations = append(violations, validateFields(fields.FlattenDataFields(field.Fields), nested)...)
			}
		case fields.FieldTypeArray:
			for _, row := range documentRows(value) {
				violations = append(violations, validateFields(fields.FlattenDataFields(field.Fields), row)...)
			}
		case fields.FieldTypeBlocks:
			for _, row := range documentRows(value) {
				block, ok := blockForRow(field.Blocks, row)
				if !ok {
					continue
				}
				violations = append(violations, validateFields(fields.FlattenDataFields(block.Fields), row)...)
			}
		}
	}
	return violations
}

func documentRows(value any) []map[string]any {
	items, ok := value.([]any)
	if !ok {
		return nil
	}
	rows := make([]map[string]any, 0, len(items))
	for _, item := range items {
		if row, ok := item.(map[string]any); ok {
			rows = append(rows, row)
		}
	}
	return rows
}

func blockForRow(blocks []fields.Block, row map[string]any) (fields.Block, bool) {
	slug, _ := row["blockType"].(string)
	if slug == "" {
		return fields.Block{}, false
	}
	for _, block := range blocks {
		if block.Slug == slug {
			return block, true
		}
	}
	return fields.Block{}, false
}

// SanitizeDocument returns a copy of the document with every rich text
// string passed through the sanctioned HTML policy, recursing into groups
// and array/blocks rows. The input document is never mutated.
func (c *Collection) SanitizeDocument(doc map[string]any) map[string]any {
	return sanitizeFields(c.flat, doc)
}

func sanitizeFields(list []fields.Field, doc map[string]any) map[string]any {
	if doc == nil {
		return nil
	}
	out := make(map[string]any, len(doc))
	for key, value := range doc {
		out[key] = value
	}

	for _, field := range list {
		value, present := out[field.Name]
		if !present {
			continue
		}
		switch field.Type {
		case fields.FieldTypeRichText:
			if html, ok := value.(string); ok {
				out[field.Name] = richtext.Sanitize(html)
			}
		case fields.FieldTypeGroup:
			if nested, ok := value.(map[string]any); ok {
				out[field.Name] = sanitizeFields(fields.FlattenDataFields(field.Fields), nested)
			}
		case fields.FieldTypeArray:
			out[field.Name] = sanitizeRows(value, func(row map[string]any) map[string]any {
				return sanitizeFields(fields.FlattenDataFields(field.Fields), row)
			})
		case fields.FieldTypeBlocks:
			out[field.Name] = sanitizeRows(value, func(row map[string]any) map[string]any {
				block, ok := blockForRow(field.Blocks, row)
				if !ok {
					return row
				}
				return sanitizeFields(fields.FlattenDataFields(block.Fields), row)
			})
		}
	}
	return out
}

func sanitizeRows(value any, sanitize func(map[string]any) map[string]any) any {
	items, ok := value.([]any)
	if !ok {
		return value
	}
	out := make([]any, len(items))
	for i, item := range items {
		if row, ok := item.(map[string]any); ok {
			out[i] = sanitize(row)
			continue
		}
		out[i] = item
	}
	return out
}

// FieldsForOperation filters the canonical flat shape through each field's
// access predicates for the given operation. Fields without a predicate for
// the operation are allowed.
func (c *Collection) FieldsForOperation(op Operation, args fields.AccessArgs) []fields.Field {
	allowed := make([]fields.Field, 0, len(c.flat))
	for _, field := range c.flat {
		if operationAllowed(field.Access, op, args) {
			allowed = append(allowed, field)
		}
	}
	return allowed
}

func operationAllowed(access *fields.Access, op Operation, args fields.AccessArgs) bool {
	if access == nil {
		return true
	}
	var predicate fields.AccessFunc
	switch op {
	case OperationCreate:
		predicate = access.Create
	case OperationRead:
		predicate = access.Read
	case OperationUpdate:
		predicate = access.Update
	}
	if predicate == nil {
		return true
	}
	return predicate(args)
}
