package cin7

import (
	"fmt"
	"strconv"
	"strings"
)

// Document is one raw credit note or purchase order as decoded from the API.
// The upstream shape is not validated; accessors extract only the fields the
// pipeline needs and tolerate absent or oddly-typed values.
type Document map[string]any

// Str returns the field as a string, or "" when absent or null. Numeric
// values are formatted without a trailing ".0" so quantities round-trip the
// way the API sends them.
func (d Document) Str(key string) string {
	value, ok := d[key]
	if !ok || value == nil {
		return ""
	}
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", v))
	}
}

// Num returns the field as a float64. Absent or null fields yield the
// provided default; a value that is present but not numeric is an error.
func (d Document) Num(key string, def float64) (float64, error) {
	value, ok := d[key]
	if !ok || value == nil {
		return def, nil
	}
	switch v := value.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, fmt.Errorf("field %q is not numeric: %q", key, v)
		}
		return parsed, nil
	default:
		return 0, fmt.Errorf("field %q is not numeric: %T", key, value)
	}
}

// Flag returns the field as a bool, false when absent or not a bool.
func (d Document) Flag(key string) bool {
	value, ok := d[key].(bool)
	return ok && value
}

// Items returns the nested line items. Entries that are not objects are
// dropped; a missing or empty lineItems field yields nil.
func (d Document) Items() []Document {
	raw, ok := d["lineItems"].([]any)
	if !ok {
		return nil
	}
	var items []Document
	for _, entry := range raw {
		if item, ok := entry.(map[string]any); ok {
			items = append(items, Document(item))
		}
	}
	return items
}

// Ref returns the document reference for log identification, falling back to
// the id field and then a placeholder.
func (d Document) Ref() string {
	if ref := d.Str("reference"); ref != "" {
		return ref
	}
	if id := d.Str("id"); id != "" {
		return id
	}
	return "unknown"
}
