package validate

import (
	"strconv"
	"strings"
)

const root = "instance"

// ValidationError carries one message per schema violation.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}

// Validate checks instance against schema and returns every violation,
// in schema order. It returns nil when the instance is valid.
//
// Messages follow the jsonschema package wording:
//
//	instance.book requires property "isbn"
//	instance.book.pages is not of a type(s) integer
//	instance.book is not allowed to have the additional property "foo"
func Validate(schema *Schema, instance any) []string {
	return validateAt(schema, instance, root, nil)
}

// Check is Validate returning a *ValidationError.
func Check(schema *Schema, instance any) error {
	if msgs := Validate(schema, instance); len(msgs) > 0 {
		return &ValidationError{Messages: msgs}
	}
	return nil
}

func validateAt(s *Schema, v any, path string, out []string) []string {
	if s == nil {
		return out
	}
	if !hasType(v, s.Type) {
		return append(out, path+" is not of a type(s) "+s.Type)
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return out
	}

	for _, p := range s.Properties {
		child, present := obj[p.Name]
		if !present {
			continue
		}
		out = validateAt(p.Schema, child, childPath(path, p.Name), out)
	}

	if s.AdditionalProperties != nil && !*s.AdditionalProperties {
		for _, k := range sortedKeys(obj) {
			if _, known := s.property(k); !known {
				out = append(out, path+" is not allowed to have the additional property "+strconv.Quote(k))
			}
		}
	}

	for _, name := range s.Required {
		if _, present := obj[name]; !present {
			out = append(out, path+" requires property "+strconv.Quote(name))
		}
	}
	return out
}
