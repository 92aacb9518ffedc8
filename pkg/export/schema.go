// Package export derives an OpenAPI document schema from the canonical flat
// shape of a collection, so storage and query layers can consume the field
// descriptors without re-implementing flattening.
package export

import (
	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-collections/pkg/fields"
	"github.com/goliatone/go-collections/pkg/registry"
)

// CollectionSchema builds the object schema of a stored document for the
// collection, one property per canonical data field.
func CollectionSchema(collection *registry.Collection) *openapi3.Schema {
	schema := openapi3.NewObjectSchema()
	schema.Title = collection.Labels().Singular
	for _, field := range collection.FlatFields() {
		schema.WithProperty(field.Name, FieldSchema(field))
	}
	return schema
}

// FieldSchema maps one data field descriptor onto an OpenAPI schema.
// Layout fields have no storage identity and therefore no schema; callers
// flatten before exporting.
func FieldSchema(field fields.Field) *openapi3.Schema {
	schema := fieldValueSchema(field)
	if title := fieldTitle(field); title != "" {
		schema.Title = title
	}
	if field.Description != "" {
		schema.Description = field.Description
	}
	if field.Default != nil {
		schema.WithDefault(field.Default)
	}
	return schema
}

func fieldValueSchema(field fields.Field) *openapi3.Schema {
	switch field.Type {
	case fields.FieldTypeText, fields.FieldTypeTextarea, fields.FieldTypePassword, fields.FieldTypeSlug:
		schema := openapi3.NewStringSchema()
		if field.MinLength != nil {
			schema.WithMinLength(int64(*field.MinLength))
		}
		if field.MaxLength != nil {
			schema.WithMaxLength(int64(*field.MaxLength))
		}
		return schema
	case fields.FieldTypeRichText:
		return openapi3.NewStringSchema().WithFormat("html")
	case fields.FieldTypeEmail:
		return openapi3.NewStringSchema().WithFormat("email")
	case fields.FieldTypeDate:
		return openapi3.NewDateTimeSchema()
	case fields.FieldTypeNumber:
		schema := openapi3.NewFloat64Schema()
		if field.Min != nil {
			schema.WithMin(*field.Min)
		}
		if field.Max != nil {
			schema.WithMax(*field.Max)
		}
		if field.Step != nil {
			schema.MultipleOf = openapi3.Float64Ptr(*field.Step)
		}
		return schema
	case fields.FieldTypeCheckbox:
		return openapi3.NewBoolSchema()
	case fields.FieldTypeSelect, fields.FieldTypeRadio:
		enum := openapi3.NewStringSchema()
		if len(field.Options) > 0 {
			values := make([]any, 0, len(field.Options))
			for _, option := range field.Options {
				values = append(values, option.Value)
			}
			enum.WithEnum(values...)
		}
		if field.HasMany {
			return openapi3.NewArraySchema().WithItems(enum)
		}
		return enum
	case fields.FieldTypeUpload, fields.FieldTypeRelationship:
		ref := openapi3.NewStringSchema()
		if field.HasMany {
			return openapi3.NewArraySchema().WithItems(ref)
		}
		return ref
	case fields.FieldTypeGroup:
		return objectSchema(field.Fields)
	case fields.FieldTypeArray:
		schema := openapi3.NewArraySchema().WithItems(objectSchema(field.Fields))
		applyRowBounds(schema, field)
		return schema
	case fields.FieldTypeBlocks:
		schema := openapi3.NewArraySchema().WithItems(blocksItemSchema(field.Blocks))
		applyRowBounds(schema, field)
		return schema
	case fields.FieldTypePoint:
		return openapi3.NewArraySchema().
			WithItems(openapi3.NewFloat64Schema()).
			WithMinItems(2).
			WithMaxItems(2)
	case fields.FieldTypeJSON:
		return openapi3.NewObjectSchema().WithAnyAdditionalProperties()
	default:
		return openapi3.NewStringSchema()
	}
}

func objectSchema(children []fields.Field) *openapi3.Schema {
	schema := openapi3.NewObjectSchema()
	for _, child := range fields.FlattenDataFields(children) {
		schema.WithProperty(child.Name, FieldSchema(child))
	}
	return schema
}

func blocksItemSchema(blocks []fields.Block) *openapi3.Schema {
	if len(blocks) == 0 {
		return openapi3.NewObjectSchema().WithAnyAdditionalProperties()
	}
	shapes := make([]*openapi3.Schema, 0, len(blocks))
	for _, block := range blocks {
		shape := objectSchema(block.Fields)
		shape.WithProperty("blockType", openapi3.NewStringSchema().WithEnum(block.Slug))
		shape.Title = block.Slug
		shapes = append(shapes, shape)
	}
	if len(shapes) == 1 {
		return shapes[0]
	}
	return openapi3.NewOneOfSchema(shapes...)
}

func applyRowBounds(schema *openapi3.Schema, field fields.Field) {
	if field.MinRows != nil {
		schema.WithMinItems(int64(*field.MinRows))
	}
	if field.MaxRows != nil {
		schema.WithMaxItems(int64(*field.MaxRows))
	}
}

func fieldTitle(field fields.Field) string {
	if field.Label != "" {
		return field.Label
	}
	return fields.HumanizeFieldName(field.Name)
}
