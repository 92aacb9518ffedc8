package fields

// Config is the optional attribute bag accepted by every builder. Builders
// merge the name, their literal type tag, and the bag into one descriptor;
// attributes that do not apply to the built type are carried verbatim and
// ignored by the rest of the toolkit.
type Config struct {
	Label       string
	Description string
	Default     any
	Admin       *Admin
	Access      *Access

	MinLength *int
	MaxLength *int

	Min  *float64
	Max  *float64
	Step *float64

	Options []Option
	HasMany bool

	MinRows *int
	MaxRows *int

	RelationTo []string

	Fields []Field
	Blocks []Block
	Tabs   []Tab
}

func newField(name string, fieldType FieldType, cfg []Config) Field {
	field := Field{Name: name, Type: fieldType}
	if len(cfg) == 0 {
		return field
	}
	bag := cfg[0]
	field.Label = bag.Label
	field.Description = bag.Description
	field.Default = bag.Default
	field.Admin = bag.Admin
	field.Access = bag.Access
	field.MinLength = bag.MinLength
	field.MaxLength = bag.MaxLength
	field.Min = bag.Min
	field.Max = bag.Max
	field.Step = bag.Step
	field.Options = bag.Options
	field.HasMany = bag.HasMany
	field.MinRows = bag.MinRows
	field.MaxRows = bag.MaxRows
	field.RelationTo = bag.RelationTo
	field.Fields = bag.Fields
	field.Blocks = bag.Blocks
	field.Tabs = bag.Tabs
	return field
}

// Text builds a single-line text field.
func Text(name string, cfg ...Config) Field { return newField(name, FieldTypeText, cfg) }

// Textarea builds a multi-line text field.
func Textarea(name string, cfg ...Config) Field { return newField(name, FieldTypeTextarea, cfg) }

// RichText builds a rich text field.
func RichText(name string, cfg ...Config) Field { return newField(name, FieldTypeRichText, cfg) }

// Number builds a numeric field.
func Number(name string, cfg ...Config) Field { return newField(name, FieldTypeNumber, cfg) }

// Date builds a date field.
func Date(name string, cfg ...Config) Field { return newField(name, FieldTypeDate, cfg) }

// Checkbox builds a boolean field. Unlike every other builder it applies one
// implicit default: Default is false when the config does not supply one.
func Checkbox(name string, cfg ...Config) Field {
	field := newField(name, FieldTypeCheckbox, cfg)
	if field.Default == nil {
		field.Default = false
	}
	return field
}

// Select builds a select field over the configured options.
func Select(name string, cfg ...Config) Field { return newField(name, FieldTypeSelect, cfg) }

// Radio builds a radio group over the configured options.
func Radio(name string, cfg ...Config) Field { return newField(name, FieldTypeRadio, cfg) }

// Email builds an email field.
func Email(name string, cfg ...Config) Field { return newField(name, FieldTypeEmail, cfg) }

// Password builds a password field.
func Password(name string, cfg ...Config) Field { return newField(name, FieldTypePassword, cfg) }

// Upload builds an upload reference field.
func Upload(name string, cfg ...Config) Field { return newField(name, FieldTypeUpload, cfg) }

// Relationship builds a reference to documents of other collections.
func Relationship(name string, cfg ...Config) Field {
	return newField(name, FieldTypeRelationship, cfg)
}

// Array builds a repeating field whose rows share the configured child
// fields. The nesting is real stored data, never removed by flattening.
func Array(name string, cfg ...Config) Field { return newField(name, FieldTypeArray, cfg) }

// Group builds a nested data container around the configured child fields.
func Group(name string, cfg ...Config) Field { return newField(name, FieldTypeGroup, cfg) }

// Blocks builds a polymorphic repeating field over the configured block
// shapes.
func Blocks(name string, cfg ...Config) Field { return newField(name, FieldTypeBlocks, cfg) }

// JSON builds a free-form JSON field.
func JSON(name string, cfg ...Config) Field { return newField(name, FieldTypeJSON, cfg) }

// Point builds a geographic point field.
func Point(name string, cfg ...Config) Field { return newField(name, FieldTypePoint, cfg) }

// Slug builds a URL slug field.
func Slug(name string, cfg ...Config) Field { return newField(name, FieldTypeSlug, cfg) }

// Tabs builds a tabbed layout wrapper over the configured tabs. The name has
// no storage identity; it only helps admin clients address the widget.
func Tabs(name string, cfg ...Config) Field { return newField(name, FieldTypeTabs, cfg) }

// Collapsible builds a collapsible layout wrapper around the configured
// child fields.
func Collapsible(name string, cfg ...Config) Field {
	return newField(name, FieldTypeCollapsible, cfg)
}

// Row builds a horizontal layout wrapper around the configured child fields.
func Row(name string, cfg ...Config) Field { return newField(name, FieldTypeRow, cfg) }
