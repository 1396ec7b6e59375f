package validate

var closed = false

func str() *Schema { return &Schema{Type: "string"} }
func integer() *Schema { return &Schema{Type: "integer"} }

// BookFields is the column order used for properties and required.
var BookFields = []string{"isbn", "amazon_url", "author", "language", "pages", "publisher", "title", "year"}

// Book is the schema of a single book: every field required, pages and
// year integers, nothing else allowed.
var Book = &Schema{
	Type: "object",
	Properties: []Property{
		{Name: "isbn", Schema: str()},
		{Name: "amazon_url", Schema: str()},
		{Name: "author", Schema: str()},
		{Name: "language", Schema: str()},
		{Name: "pages", Schema: integer()},
		{Name: "publisher", Schema: str()},
		{Name: "title", Schema: str()},
		{Name: "year", Schema: integer()},
	},
	Required:             BookFields,
	AdditionalProperties: &closed,
}

// CreateBook is the schema of a POST /books body: {"book": {...}}.
var CreateBook = &Schema{
	Type:       "object",
	Properties: []Property{{Name: "book", Schema: Book}},
	Required:   []string{"book"},
}

// BookPatch types the fields of a PUT or PATCH body. Nothing is required
// and unknown keys, isbn included, pass through untouched.
var BookPatch = &Schema{
	Type: "object",
	Properties: []Property{
		{Name: "amazon_url", Schema: str()},
		{Name: "author", Schema: str()},
		{Name: "language", Schema: str()},
		{Name: "pages", Schema: integer()},
		{Name: "publisher", Schema: str()},
		{Name: "title", Schema: str()},
		{Name: "year", Schema: integer()},
	},
}
