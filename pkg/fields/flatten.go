package fields

// FlattenDataFields converts an arbitrarily nested field tree into the
// canonical flat list of data fields, in depth-first left-to-right order.
// Layout wrappers never appear in the output; only their contents do:
//
//   - row and collapsible wrappers are discarded and their flattened
//     contents spliced in place;
//   - an unnamed tab is spliced the same way, with no namespacing, so two
//     unnamed tabs may legitimately contribute colliding field names;
//   - a named tab is lifted into exactly one synthetic group field carrying
//     the tab's fields verbatim, unflattened, because a named tab is a
//     genuine data container rather than a display pass-through;
//   - group, array, and blocks fields pass through untouched, including
//     their nested fields, which represent real stored data.
//
// The function is pure: it allocates a fresh output list and never mutates
// its input.
func FlattenDataFields(list []Field) []Field {
	flattened := make([]Field, 0, len(list))
	for _, field := range list {
		switch field.Type {
		case FieldTypeRow, FieldTypeCollapsible:
			flattened = append(flattened, FlattenDataFields(field.Fields)...)
		case FieldTypeTabs:
			for _, tab := range field.Tabs {
				if !tab.Named() {
					flattened = append(flattened, FlattenDataFields(tab.Fields)...)
					continue
				}
				flattened = append(flattened, Field{
					Name:        tab.Name,
					Type:        FieldTypeGroup,
					Label:       tab.Label,
					Description: tab.Description,
					Fields:      tab.Fields,
				})
			}
		default:
			flattened = append(flattened, field)
		}
	}
	return flattened
}
