package fields

import "sort"

// layoutFieldTypes is the static partition of field types without a storage
// identity. Initialized once, read-only for the life of the process.
var layoutFieldTypes = map[FieldType]struct{}{
	FieldTypeTabs:        {},
	FieldTypeCollapsible: {},
	FieldTypeRow:         {},
}

// IsLayoutField reports whether the field is a pure display wrapper with no
// storage key of its own.
func IsLayoutField(field Field) bool {
	_, ok := layoutFieldTypes[field.Type]
	return ok
}

// LayoutFieldTypes returns a sorted copy of the layout type set.
func LayoutFieldTypes() []FieldType {
	types := make([]FieldType, 0, len(layoutFieldTypes))
	for fieldType := range layoutFieldTypes {
		types = append(types, fieldType)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}
