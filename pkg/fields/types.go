package fields

// FieldType discriminates the field variants. Data field types own a storage
// key; layout field types exist only to group other fields for display.
type FieldType string

const (
	FieldTypeText         FieldType = "text"
	FieldTypeTextarea     FieldType = "textarea"
	FieldTypeRichText     FieldType = "richText"
	FieldTypeNumber       FieldType = "number"
	FieldTypeDate         FieldType = "date"
	FieldTypeCheckbox     FieldType = "checkbox"
	FieldTypeSelect       FieldType = "select"
	FieldTypeRadio        FieldType = "radio"
	FieldTypeEmail        FieldType = "email"
	FieldTypePassword     FieldType = "password"
	FieldTypeUpload       FieldType = "upload"
	FieldTypeRelationship FieldType = "relationship"
	FieldTypeArray        FieldType = "array"
	FieldTypeGroup        FieldType = "group"
	FieldTypeBlocks       FieldType = "blocks"
	FieldTypeJSON         FieldType = "json"
	FieldTypePoint        FieldType = "point"
	FieldTypeSlug         FieldType = "slug"

	FieldTypeTabs        FieldType = "tabs"
	FieldTypeCollapsible FieldType = "collapsible"
	FieldTypeRow         FieldType = "row"
)

// Field is the descriptor every component of the toolkit consumes. It is a
// tagged value: Type is fixed at construction and selects which of the
// optional attributes are meaningful. Struct fields are annotated so admin
// clients can serialise descriptors directly.
type Field struct {
	Name        string    `json:"name,omitempty"`
	Type        FieldType `json:"type"`
	Label       string    `json:"label,omitempty"`
	Description string    `json:"description,omitempty"`
	Default     any       `json:"defaultValue,omitempty"`
	Admin       *Admin    `json:"admin,omitempty"`
	Access      *Access   `json:"-"`

	// text, textarea, password
	MinLength *int `json:"minLength,omitempty"`
	MaxLength *int `json:"maxLength,omitempty"`

	// number
	Min  *float64 `json:"min,omitempty"`
	Max  *float64 `json:"max,omitempty"`
	Step *float64 `json:"step,omitempty"`

	// select, radio, relationship, upload
	Options []Option `json:"options,omitempty"`
	HasMany bool     `json:"hasMany,omitempty"`

	// array, blocks
	MinRows *int `json:"minRows,omitempty"`
	MaxRows *int `json:"maxRows,omitempty"`

	// relationship, upload
	RelationTo []string `json:"relationTo,omitempty"`

	// group, array, row, collapsible
	Fields []Field `json:"fields,omitempty"`
	// blocks
	Blocks []Block `json:"blocks,omitempty"`
	// tabs
	Tabs []Tab `json:"tabs,omitempty"`
}

// Admin carries display hints consumed by the admin rendering layer. The
// core never interprets these beyond passing them through.
type Admin struct {
	Position    string `json:"position,omitempty"`
	Width       string `json:"width,omitempty"`
	ReadOnly    bool   `json:"readOnly,omitempty"`
	Hidden      bool   `json:"hidden,omitempty"`
	Placeholder string `json:"placeholder,omitempty"`
}

// AccessArgs is handed to access predicates when a capability is evaluated.
type AccessArgs struct {
	// Doc is the stored document, when one exists for the operation.
	Doc map[string]any
	// Data is the incoming payload for create/update operations.
	Data map[string]any
}

// AccessFunc decides whether an operation may touch a field. A nil AccessFunc
// grants the capability.
type AccessFunc func(args AccessArgs) bool

// Access groups the per-operation capability predicates of a field.
type Access struct {
	Create AccessFunc
	Read   AccessFunc
	Update AccessFunc
}

// Option is a configured choice for select and radio fields. Value is a
// string or a number.
type Option struct {
	Label string `json:"label"`
	Value any    `json:"value"`
}

// Block describes one block shape available inside a blocks field. Rows of a
// blocks field reference their shape by slug.
type Block struct {
	Slug   string  `json:"slug"`
	Labels string  `json:"labels,omitempty"`
	Fields []Field `json:"fields"`
}

// Tab is one entry of a tabs layout field. A tab is named iff Name is a
// non-empty string; named tabs become genuine data containers during
// flattening while unnamed tabs are pure display pass-throughs.
type Tab struct {
	Name        string  `json:"name,omitempty"`
	Label       string  `json:"label"`
	Description string  `json:"description,omitempty"`
	Fields      []Field `json:"fields"`
}

// Named reports whether the tab lifts its contents into a synthetic group.
func (t Tab) Named() bool {
	return t.Name != ""
}

// Int returns a pointer to v, for use in builder configs.
func Int(v int) *int { return &v }

// Float returns a pointer to v, for use in builder configs.
func Float(v float64) *float64 { return &v }
