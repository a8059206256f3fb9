package output

import (
	"fmt"
	"strings"
)

// Style selects how attribute values are rendered.
type Style string

const (
	// StyleTable pads values to fixed widths so rows line up.
	StyleTable Style = "table"
	// StyleLine renders bare values.
	StyleLine Style = "line"
)

// Field describes one named attribute of T: how to extract its value and
// the fmt verb used per style. Styles without a verb use "%v".
type Field[T any] struct {
	Name    string
	Extract func(T) any
	Styles  map[Style]string
}

// Format renders the field of obj in the given style.
func (f Field[T]) Format(obj T, style Style) string {
	verb, ok := f.Styles[style]
	if !ok {
		verb = "%v"
	}
	return fmt.Sprintf(verb, f.Extract(obj))
}

// ObjectFormatter renders a chosen list of attributes of T.
type ObjectFormatter[T any] struct {
	order  []string
	fields map[string]Field[T]
}

// NewObjectFormatter creates a formatter from fields. Field order is kept
// for Attributes.
func NewObjectFormatter[T any](fields ...Field[T]) *ObjectFormatter[T] {
	f := &ObjectFormatter[T]{
		order:  make([]string, 0, len(fields)),
		fields: make(map[string]Field[T], len(fields)),
	}
	for _, field := range fields {
		f.order = append(f.order, field.Name)
		f.fields[field.Name] = field
	}
	return f
}

// Attributes returns the known attribute names in declaration order.
func (f *ObjectFormatter[T]) Attributes() []string {
	return append([]string(nil), f.order...)
}

// UnknownAttributes returns the names not known to the formatter, in input order.
func (f *ObjectFormatter[T]) UnknownAttributes(names []string) []string {
	var unknown []string
	for _, name := range names {
		if _, ok := f.fields[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	return unknown
}

// FormatAttribute renders a single attribute.
func (f *ObjectFormatter[T]) FormatAttribute(obj T, name string, style Style) (string, error) {
	field, ok := f.fields[name]
	if !ok {
		return "", &UnknownAttributesError{Names: []string{name}}
	}
	return field.Format(obj, style), nil
}

// Format renders one cell per attribute name.
func (f *ObjectFormatter[T]) Format(obj T, names []string, style Style) ([]string, error) {
	if unknown := f.UnknownAttributes(names); len(unknown) > 0 {
		return nil, &UnknownAttributesError{Names: unknown}
	}

	cells := make([]string, 0, len(names))
	for _, name := range names {
		cells = append(cells, f.fields[name].Format(obj, style))
	}
	return cells, nil
}

// UnknownAttributesError reports attribute names a formatter does not know.
type UnknownAttributesError struct {
	Names []string
}

func (e *UnknownAttributesError) Error() string {
	return "Unknown droplet attributes(s): " + strings.Join(e.Names, " ")
}

// Validate checks that names selects at least one attribute and that every
// name is known. An empty selection is reported as the unknown attribute "".
func (f *ObjectFormatter[T]) Validate(names []string) error {
	if len(names) == 0 {
		return &UnknownAttributesError{Names: []string{""}}
	}
	if unknown := f.UnknownAttributes(names); len(unknown) > 0 {
		return &UnknownAttributesError{Names: unknown}
	}
	return nil
}

// ParseAttributeList flattens repeated, comma separated flag values into
// attribute names. Blank entries are dropped.
//
// Example: ["name,status", "ip"] → [name status ip]
func ParseAttributeList(values []string) []string {
	var names []string
	for _, value := range values {
		for _, name := range strings.Split(value, ",") {
			name = strings.TrimSpace(name)
			if name != "" {
				names = append(names, name)
			}
		}
	}
	return names
}

// Record returns the raw extracted values in the order of names. A name
// repeated in names appears once.
func (f *ObjectFormatter[T]) Record(obj T, names []string) (Record, error) {
	if unknown := f.UnknownAttributes(names); len(unknown) > 0 {
		return Record{}, &UnknownAttributesError{Names: unknown}
	}

	var rec Record
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true
		rec.Names = append(rec.Names, name)
		rec.Values = append(rec.Values, f.fields[name].Extract(obj))
	}
	return rec, nil
}
