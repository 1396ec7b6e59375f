package validate

import (
	"math"
	"math/big"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Schema is the subset of JSON Schema the service needs: type, ordered
// properties, required and additionalProperties.
type Schema struct {
	Type       string
	Properties []Property
	Required   []string
	// AdditionalProperties false rejects keys not listed in Properties.
	AdditionalProperties *bool
}

// Property is a named sub-schema. Properties are a slice, not a map, so
// messages come out in declaration order.
type Property struct {
	Name   string
	Schema *Schema
}

func (s *Schema) property(name string) (*Schema, bool) {
	for _, p := range s.Properties {
		if p.Name == name {
			return p.Schema, true
		}
	}
	return nil, false
}

var identRe = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// childPath renders instance.foo for identifiers and instance["foo bar"] otherwise.
func childPath(parent, name string) string {
	if identRe.MatchString(name) {
		return parent + "." + name
	}
	return parent + "[" + strconv.Quote(name) + "]"
}

func hasType(v any, typ string) bool {
	switch typ {
	case "":
		return true
	case "object":
		_, ok := v.(map[string]any)
		return ok
	case "array":
		_, ok := v.([]any)
		return ok
	case "string":
		_, ok := v.(string)
		return ok
	case "boolean":
		_, ok := v.(bool)
		return ok
	case "null":
		return v == nil
	case "number":
		_, ok := number(v)
		return ok
	case "integer":
		_, ok := Int64(v)
		return ok
	}
	return false
}

// Int64 returns v as an int64 when it is an integral number that fits.
// Decimal text (json.Number) is converted exactly, so 264.0 and 1e3 are
// integers while 9007199254740993 keeps its last digit.
func Int64(v any) (int64, bool) {
	switch n := v.(type) {
	case interface{ String() string }:
		if _, ok := v.(floater); !ok {
			return 0, false
		}
		return exactInt(n.String())
	case float64:
		return floatInt(n)
	case float32:
		return floatInt(float64(n))
	case int:
		return int64(n), true
	case int64:
		return n, true
	}
	return 0, false
}

// maxExp bounds the exponent handed to big.Rat; anything larger cannot be
// an int64 once the mantissa fits in a request body.
const maxExp = 400

func exactInt(s string) (int64, bool) {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i, true
	}
	if i := strings.IndexAny(s, "eE"); i >= 0 {
		exp, err := strconv.Atoi(s[i+1:])
		if err != nil || exp > maxExp || exp < -maxExp {
			return 0, false
		}
	}
	r, ok := new(big.Rat).SetString(s)
	if !ok || !r.IsInt() || !r.Num().IsInt64() {
		return 0, false
	}
	return r.Num().Int64(), true
}

func floatInt(f float64) (int64, bool) {
	// 2^63 is exact in float64; the int64 range is [-2^63, 2^63)
	if f != math.Trunc(f) || f < -(1<<63) || f >= 1<<63 {
		return 0, false
	}
	return int64(f), true
}

// floater is satisfied by json.Number and by json-iterator's number type.
type floater interface {
	Float64() (float64, error)
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case floater:
		f, err := n.Float64()
		return f, err == nil
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
