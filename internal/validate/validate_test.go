package validate_test

import (
	"encoding/json"
	"fmt"
	"math"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/5w1tchy/isbn-books/internal/validate"
)

var decoder = jsoniter.Config{UseNumber: true}.Froze()

func decode(t *testing.T, raw string) any {
	t.Helper()
	var v any
	require.NoError(t, decoder.UnmarshalFromString(raw, &v))
	return v
}

const validBody = `{"book":{
	"isbn":"0691161520","amazon_url":"http://a.co/eosdfads","author":"John Doe",
	"language":"french","pages":222,"publisher":"Albertsons University Press",
	"title":"Once Upon a Time","year":2020}}`

func TestValidate_Valid(t *testing.T) {
	assert.Empty(t, validate.Validate(validate.CreateBook, decode(t, validBody)))
	assert.NoError(t, validate.Check(validate.CreateBook, decode(t, validBody)))
}

func TestValidate_MissingISBN(t *testing.T) {
	body := decode(t, `{"book":{
		"amazon_url":"http://a.co/eobPtX2","author":"Matthew Lane","language":"english",
		"pages":264,"publisher":"Princeton University Press",
		"title":"Power-Up: Unlocking Hidden Math in Vide","year":2017}}`)

	assert.Equal(t, []string{`instance.book requires property "isbn"`}, validate.Validate(validate.CreateBook, body))
}

func TestValidate_Messages(t *testing.T) {
	tests := []struct {
		name string
		body string
		want []string
	}{
		{
			name: "not an object",
			body: `[]`,
			want: []string{"instance is not of a type(s) object"},
		},
		{
			name: "no book",
			body: `{}`,
			want: []string{`instance requires property "book"`},
		},
		{
			name: "book is a string",
			body: `{"book":"nope"}`,
			want: []string{"instance.book is not of a type(s) object"},
		},
		{
			name: "wrong types",
			body: `{"book":{"isbn":1,"amazon_url":"u","author":"a","language":"l","pages":"264",
				"publisher":"p","title":"t","year":2017.5}}`,
			want: []string{
				"instance.book.isbn is not of a type(s) string",
				"instance.book.pages is not of a type(s) integer",
				"instance.book.year is not of a type(s) integer",
			},
		},
		{
			name: "null is present but mistyped",
			body: `{"book":{"isbn":null,"amazon_url":"u","author":"a","language":"l","pages":1,
				"publisher":"p","title":"t","year":2017}}`,
			want: []string{"instance.book.isbn is not of a type(s) string"},
		},
		{
			name: "additional properties",
			body: `{"book":{"isbn":"1","amazon_url":"u","author":"a","language":"l","pages":1,
				"publisher":"p","title":"t","year":2017,"zeta":1,"cover url":"x"}}`,
			want: []string{
				`instance.book is not allowed to have the additional property "cover url"`,
				`instance.book is not allowed to have the additional property "zeta"`,
			},
		},
		{
			name: "integers outside int64",
			body: `{"book":{"isbn":"1","amazon_url":"u","author":"a","language":"l","pages":1e20,
				"publisher":"p","title":"t","year":9223372036854775808}}`,
			want: []string{
				"instance.book.pages is not of a type(s) integer",
				"instance.book.year is not of a type(s) integer",
			},
		},
		{
			name: "empty book",
			body: `{"book":{}}`,
			want: []string{
				`instance.book requires property "isbn"`,
				`instance.book requires property "amazon_url"`,
				`instance.book requires property "author"`,
				`instance.book requires property "language"`,
				`instance.book requires property "pages"`,
				`instance.book requires property "publisher"`,
				`instance.book requires property "title"`,
				`instance.book requires property "year"`,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validate.Validate(validate.CreateBook, decode(t, tt.body)))
		})
	}
}

func TestValidate_IntegralFloatIsInteger(t *testing.T) {
	body := decode(t, `{"book":{"isbn":"1","amazon_url":"u","author":"a","language":"l","pages":264.0,
		"publisher":"p","title":"t","year":2017}}`)
	assert.Empty(t, validate.Validate(validate.CreateBook, body))
}

func TestValidate_BracketPathForOddNames(t *testing.T) {
	schema := &validate.Schema{
		Type:       "object",
		Properties: []validate.Property{{Name: "first name", Schema: &validate.Schema{Type: "string"}}},
	}
	assert.Equal(t,
		[]string{`instance["first name"] is not of a type(s) string`},
		validate.Validate(schema, map[string]any{"first name": 3}),
	)
}

func TestCheck_ReturnsValidationError(t *testing.T) {
	err := validate.Check(validate.CreateBook, decode(t, `{}`))

	var ve *validate.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, []string{`instance requires property "book"`}, ve.Messages)
}

func TestInt64(t *testing.T) {
	tests := []struct {
		in     any
		want   int64
		wantOK bool
	}{
		{json.Number("264"), 264, true},
		{json.Number("264.0"), 264, true},
		{json.Number("1e3"), 1000, true},
		{json.Number("9007199254740993"), 9007199254740993, true},
		{json.Number("-9223372036854775808"), math.MinInt64, true},
		{json.Number("9223372036854775807"), math.MaxInt64, true},
		{json.Number("9223372036854775808"), 0, false},
		{json.Number("1e20"), 0, false},
		{json.Number("1e999999999"), 0, false},
		{json.Number("2017.5"), 0, false},
		{float64(2017), 2017, true},
		{float64(1 << 63), 0, false},
		{math.Inf(1), 0, false},
		{math.NaN(), 0, false},
		{7, 7, true},
		{"264", 0, false},
		{nil, 0, false},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.in), func(t *testing.T) {
			got, ok := validate.Int64(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidate_BookPatch(t *testing.T) {
	assert.Empty(t, validate.Validate(validate.BookPatch, decode(t, `{}`)))
	assert.Empty(t, validate.Validate(validate.BookPatch, decode(t, `{"isbn":5,"book":{},"title":"x"}`)))
	assert.Equal(t,
		[]string{"instance.pages is not of a type(s) integer", "instance.title is not of a type(s) string"},
		validate.Validate(validate.BookPatch, decode(t, `{"title":1,"pages":"264"}`)))
}
