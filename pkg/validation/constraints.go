// Package validation implements the per-type constraint engine for field
// values. Failures are data, not errors: callers accumulate every violation
// across a document in one pass and decide policy themselves.
package validation

import (
	"fmt"
	"math"
	"reflect"
	"regexp"
	"strconv"
	"unicode/utf8"

	"github.com/goliatone/go-collections/pkg/fields"
)

// Violation describes one value that fails a configured per-type rule.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// local-part@domain with a dotted domain segment and no embedded whitespace.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const stepEpsilon = 1e-9

// ValidateFieldConstraints checks a value against the constraints configured
// on the field. An empty result means valid. A violation is only produced
// when both a relevant constraint is configured and the value is present;
// nil values are skipped, not rejected.
func ValidateFieldConstraints(field fields.Field, value any) []Violation {
	if value == nil {
		return nil
	}

	switch field.Type {
	case fields.FieldTypeText, fields.FieldTypeTextarea, fields.FieldTypePassword:
		return validateLength(field, value)
	case fields.FieldTypeNumber:
		return validateNumber(field, value)
	case fields.FieldTypeEmail:
		return validateEmail(field, value)
	case fields.FieldTypeSelect, fields.FieldTypeRadio:
		return validateOptions(field, value)
	case fields.FieldTypeArray, fields.FieldTypeBlocks:
		return validateRows(field, value)
	default:
		// checkbox, date, richText, json, upload, relationship, group,
		// point, slug carry no constraints at this layer.
		return nil
	}
}

func validateLength(field fields.Field, value any) []Violation {
	str, ok := value.(string)
	if !ok {
		return nil
	}

	length := utf8.RuneCountInString(str)
	var violations []Violation
	if field.MinLength != nil && length < *field.MinLength {
		violations = append(violations, Violation{
			Field:   field.Name,
			Message: fmt.Sprintf("%s must be at least %d characters", fieldLabel(field), *field.MinLength),
		})
	}
	if field.MaxLength != nil && length > *field.MaxLength {
		violations = append(violations, Violation{
			Field:   field.Name,
			Message: fmt.Sprintf("%s must be no more than %d characters", fieldLabel(field), *field.MaxLength),
		})
	}
	return violations
}

// validateNumber reports every applicable violation together, in min, max,
// step order.
func validateNumber(field fields.Field, value any) []Violation {
	num, ok := asNumber(value)
	if !ok {
		return nil
	}

	var violations []Violation
	if field.Min != nil && num < *field.Min {
		violations = append(violations, Violation{
			Field:   field.Name,
			Message: fmt.Sprintf("%s must be at least %s", fieldLabel(field), formatBound(*field.Min)),
		})
	}
	if field.Max != nil && num > *field.Max {
		violations = append(violations, Violation{
			Field:   field.Name,
			Message: fmt.Sprintf("%s must be no more than %s", fieldLabel(field), formatBound(*field.Max)),
		})
	}
	if field.Step != nil && *field.Step > 0 && !isMultipleOf(num, *field.Step) {
		violations = append(violations, Violation{
			Field:   field.Name,
			Message: fmt.Sprintf("%s must be a multiple of %s", fieldLabel(field), formatBound(*field.Step)),
		})
	}
	return violations
}

func validateEmail(field fields.Field, value any) []Violation {
	str, ok := value.(string)
	if !ok || str == "" {
		// "not provided" is not "invalid".
		return nil
	}
	if emailPattern.MatchString(str) {
		return nil
	}
	return []Violation{{
		Field:   field.Name,
		Message: fmt.Sprintf("%s must be a valid email address", fieldLabel(field)),
	}}
}

func validateOptions(field fields.Field, value any) []Violation {
	if len(field.Options) == 0 {
		return nil
	}

	if items, ok := asSlice(value); ok {
		if !field.HasMany {
			// Single-select fields handed an array bypass validation
			// entirely; callers rely on this falsy-shape behaviour.
			return nil
		}
		for _, item := range items {
			if !matchesOption(field.Options, item) {
				return []Violation{{
					Field:   field.Name,
					Message: fmt.Sprintf("%s contains an invalid selection", fieldLabel(field)),
				}}
			}
		}
		return nil
	}

	// Scalar values run the membership check regardless of HasMany.
	if matchesOption(field.Options, value) {
		return nil
	}
	return []Violation{{
		Field:   field.Name,
		Message: fmt.Sprintf("%s must be one of the available options", fieldLabel(field)),
	}}
}

// validateRows checks row-count bounds. Messages always use the literal word
// "rows", even for a bound of 1.
func validateRows(field fields.Field, value any) []Violation {
	items, ok := asSlice(value)
	if !ok {
		return nil
	}

	count := len(items)
	var violations []Violation
	if field.MinRows != nil && count < *field.MinRows {
		violations = append(violations, Violation{
			Field:   field.Name,
			Message: fmt.Sprintf("%s requires at least %d rows", fieldLabel(field), *field.MinRows),
		})
	}
	if field.MaxRows != nil && count > *field.MaxRows {
		violations = append(violations, Violation{
			Field:   field.Name,
			Message: fmt.Sprintf("%s requires no more than %d rows", fieldLabel(field), *field.MaxRows),
		})
	}
	return violations
}

func fieldLabel(field fields.Field) string {
	if field.Label != "" {
		return field.Label
	}
	return fields.HumanizeFieldName(field.Name)
}

func matchesOption(options []fields.Option, value any) bool {
	for _, option := range options {
		if optionValueEqual(option.Value, value) {
			return true
		}
	}
	return false
}

// optionValueEqual mirrors strict equality over the two supported option
// value kinds: strings compare as strings, numbers compare numerically, and
// a string never equals a number.
func optionValueEqual(a, b any) bool {
	if as, ok := a.(string); ok {
		bs, ok := b.(string)
		return ok && as == bs
	}
	af, aok := asNumber(a)
	bf, bok := asNumber(b)
	return aok && bok && af == bf
}

func asNumber(value any) (float64, bool) {
	switch v := value.(type) {
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	default:
		return 0, false
	}
}

func asSlice(value any) ([]any, bool) {
	if items, ok := value.([]any); ok {
		return items, true
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	items := make([]any, rv.Len())
	for i := range items {
		items[i] = rv.Index(i).Interface()
	}
	return items, true
}

// isMultipleOf tolerates the float error of fractional steps such as 0.01.
func isMultipleOf(value, step float64) bool {
	remainder := math.Abs(math.Mod(value, step))
	return remainder < stepEpsilon || math.Abs(remainder-step) < stepEpsilon
}

func formatBound(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
