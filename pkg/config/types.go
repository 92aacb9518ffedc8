// Package config loads collection definitions from YAML or JSON documents
// and turns them into field trees through the builders.
package config

import (
	"fmt"

	"github.com/goliatone/go-collections/pkg/fields"
	"github.com/goliatone/go-collections/pkg/registry"
)

// Document is the root of a collection definition file.
type Document struct {
	Collections []CollectionConfig `yaml:"collections" json:"collections"`
}

// CollectionConfig declares one collection.
type CollectionConfig struct {
	Slug   string        `yaml:"slug" json:"slug"`
	Labels LabelsConfig  `yaml:"labels" json:"labels"`
	Fields []FieldConfig `yaml:"fields" json:"fields"`
}

// LabelsConfig overrides the labels derived from the slug.
type LabelsConfig struct {
	Singular string `yaml:"singular" json:"singular"`
	Plural   string `yaml:"plural" json:"plural"`
}

// FieldConfig is the serialized form of a field declaration. Type selects
// the builder; the remaining attributes mirror the builder config bag.
type FieldConfig struct {
	Name        string         `yaml:"name" json:"name"`
	Type        string         `yaml:"type" json:"type"`
	Label       string         `yaml:"label" json:"label"`
	Description string         `yaml:"description" json:"description"`
	Default     any            `yaml:"default" json:"default"`
	Admin       *AdminConfig   `yaml:"admin" json:"admin"`
	MinLength   *int           `yaml:"minLength" json:"minLength"`
	MaxLength   *int           `yaml:"maxLength" json:"maxLength"`
	Min         *float64       `yaml:"min" json:"min"`
	Max         *float64       `yaml:"max" json:"max"`
	Step        *float64       `yaml:"step" json:"step"`
	Options     []OptionConfig `yaml:"options" json:"options"`
	HasMany     bool           `yaml:"hasMany" json:"hasMany"`
	MinRows     *int           `yaml:"minRows" json:"minRows"`
	MaxRows     *int           `yaml:"maxRows" json:"maxRows"`
	RelationTo  []string       `yaml:"relationTo" json:"relationTo"`
	Fields      []FieldConfig  `yaml:"fields" json:"fields"`
	Blocks      []BlockConfig  `yaml:"blocks" json:"blocks"`
	Tabs        []TabConfig    `yaml:"tabs" json:"tabs"`
}

// AdminConfig mirrors fields.Admin.
type AdminConfig struct {
	Position    string `yaml:"position" json:"position"`
	Width       string `yaml:"width" json:"width"`
	ReadOnly    bool   `yaml:"readOnly" json:"readOnly"`
	Hidden      bool   `yaml:"hidden" json:"hidden"`
	Placeholder string `yaml:"placeholder" json:"placeholder"`
}

// OptionConfig mirrors fields.Option.
type OptionConfig struct {
	Label string `yaml:"label" json:"label"`
	Value any    `yaml:"value" json:"value"`
}

// BlockConfig mirrors fields.Block.
type BlockConfig struct {
	Slug   string        `yaml:"slug" json:"slug"`
	Labels string        `yaml:"labels" json:"labels"`
	Fields []FieldConfig `yaml:"fields" json:"fields"`
}

// TabConfig mirrors fields.Tab.
type TabConfig struct {
	Name        string        `yaml:"name" json:"name"`
	Label       string        `yaml:"label" json:"label"`
	Description string        `yaml:"description" json:"description"`
	Fields      []FieldConfig `yaml:"fields" json:"fields"`
}

var builders = map[string]func(string, ...fields.Config) fields.Field{
	"text":         fields.Text,
	"textarea":     fields.Textarea,
	"richText":     fields.RichText,
	"number":       fields.Number,
	"date":         fields.Date,
	"checkbox":     fields.Checkbox,
	"select":       fields.Select,
	"radio":        fields.Radio,
	"email":        fields.Email,
	"password":     fields.Password,
	"upload":       fields.Upload,
	"relationship": fields.Relationship,
	"array":        fields.Array,
	"group":        fields.Group,
	"blocks":       fields.Blocks,
	"json":         fields.JSON,
	"point":        fields.Point,
	"slug":         fields.Slug,
	"tabs":         fields.Tabs,
	"collapsible":  fields.Collapsible,
	"row":          fields.Row,
}

func (cc CollectionConfig) registryConfig() (registry.Config, error) {
	tree, err := fieldTree(cc.Fields)
	if err != nil {
		return registry.Config{}, fmt.Errorf("config: collection %q: %w", cc.Slug, err)
	}
	return registry.Config{
		Slug: cc.Slug,
		Labels: registry.Labels{
			Singular: cc.Labels.Singular,
			Plural:   cc.Labels.Plural,
		},
		Fields: tree,
	}, nil
}

func fieldTree(list []FieldConfig) ([]fields.Field, error) {
	if len(list) == 0 {
		return nil, nil
	}
	tree := make([]fields.Field, 0, len(list))
	for _, fc := range list {
		field, err := fc.field()
		if err != nil {
			return nil, err
		}
		tree = append(tree, field)
	}
	return tree, nil
}

func (fc FieldConfig) field() (fields.Field, error) {
	builder, ok := builders[fc.Type]
	if !ok {
		return fields.Field{}, fmt.Errorf("unknown field type %q for field %q", fc.Type, fc.Name)
	}

	children, err := fieldTree(fc.Fields)
	if err != nil {
		return fields.Field{}, err
	}

	blocks := make([]fields.Block, 0, len(fc.Blocks))
	for _, bc := range fc.Blocks {
		blockFields, err := fieldTree(bc.Fields)
		if err != nil {
			return fields.Field{}, err
		}
		blocks = append(blocks, fields.Block{Slug: bc.Slug, Labels: bc.Labels, Fields: blockFields})
	}
	if len(blocks) == 0 {
		blocks = nil
	}

	tabs := make([]fields.Tab, 0, len(fc.Tabs))
	for _, tc := range fc.Tabs {
		tabFields, err := fieldTree(tc.Fields)
		if err != nil {
			return fields.Field{}, err
		}
		tabs = append(tabs, fields.Tab{
			Name:        tc.Name,
			Label:       tc.Label,
			Description: tc.Description,
			Fields:      tabFields,
		})
	}
	if len(tabs) == 0 {
		tabs = nil
	}

	bag := fields.Config{
		Label:       fc.Label,
		Description: fc.Description,
		Default:     fc.Default,
		MinLength:   fc.MinLength,
		MaxLength:   fc.MaxLength,
		Min:         fc.Min,
		Max:         fc.Max,
		Step:        fc.Step,
		HasMany:     fc.HasMany,
		MinRows:     fc.MinRows,
		MaxRows:     fc.MaxRows,
		RelationTo:  fc.RelationTo,
		Fields:      children,
		Blocks:      blocks,
		Tabs:        tabs,
	}
	if fc.Admin != nil {
		bag.Admin = &fields.Admin{
			Position:    fc.Admin.Position,
			Width:       fc.Admin.Width,
			ReadOnly:    fc.Admin.ReadOnly,
			Hidden:      fc.Admin.Hidden,
			Placeholder: fc.Admin.Placeholder,
		}
	}
	if len(fc.Options) > 0 {
		options := make([]fields.Option, 0, len(fc.Options))
		for _, oc := range fc.Options {
			options = append(options, fields.Option{Label: oc.Label, Value: oc.Value})
		}
		bag.Options = options
	}

	return builder(fc.Name, bag), nil
}
