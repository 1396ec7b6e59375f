package models

import "github.com/5w1tchy/isbn-books/internal/validate"

// Book is a row of the books table. ISBN is the primary key and never
// changes after creation.
type Book struct {
	ISBN      string `json:"isbn" db:"isbn"`
	AmazonURL string `json:"amazon_url" db:"amazon_url"`
	Author    string `json:"author" db:"author"`
	Language  string `json:"language" db:"language"`
	Pages     int    `json:"pages" db:"pages"`
	Publisher string `json:"publisher" db:"publisher"`
	Title     string `json:"title" db:"title"`
	Year      int    `json:"year" db:"year"`
}

// BookPatch carries the mutable fields of a Book; nil means "leave as is".
// There is no ISBN field, so an isbn in a request body is dropped on decode.
type BookPatch struct {
	AmazonURL *string `json:"amazon_url,omitempty"`
	Author    *string `json:"author,omitempty"`
	Language  *string `json:"language,omitempty"`
	Pages     *int    `json:"pages,omitempty"`
	Publisher *string `json:"publisher,omitempty"`
	Title     *string `json:"title,omitempty"`
	Year      *int    `json:"year,omitempty"`
}

// Complete reports whether every mutable field is set.
func (p BookPatch) Complete() bool {
	return p.AmazonURL != nil && p.Author != nil && p.Language != nil &&
		p.Pages != nil && p.Publisher != nil && p.Title != nil && p.Year != nil
}

// Empty reports whether no field is set.
func (p BookPatch) Empty() bool {
	return p.AmazonURL == nil && p.Author == nil && p.Language == nil &&
		p.Pages == nil && p.Publisher == nil && p.Title == nil && p.Year == nil
}

// Apply overlays the set fields on b and returns the result.
func (p BookPatch) Apply(b Book) Book {
	if p.AmazonURL != nil {
		b.AmazonURL = *p.AmazonURL
	}
	if p.Author != nil {
		b.Author = *p.Author
	}
	if p.Language != nil {
		b.Language = *p.Language
	}
	if p.Pages != nil {
		b.Pages = *p.Pages
	}
	if p.Publisher != nil {
		b.Publisher = *p.Publisher
	}
	if p.Title != nil {
		b.Title = *p.Title
	}
	if p.Year != nil {
		b.Year = *p.Year
	}
	return b
}

// Columns returns the set fields keyed by column name.
func (p BookPatch) Columns() map[string]any {
	cols := map[string]any{}
	if p.AmazonURL != nil {
		cols["amazon_url"] = *p.AmazonURL
	}
	if p.Author != nil {
		cols["author"] = *p.Author
	}
	if p.Language != nil {
		cols["language"] = *p.Language
	}
	if p.Pages != nil {
		cols["pages"] = *p.Pages
	}
	if p.Publisher != nil {
		cols["publisher"] = *p.Publisher
	}
	if p.Title != nil {
		cols["title"] = *p.Title
	}
	if p.Year != nil {
		cols["year"] = *p.Year
	}
	return cols
}

// PatchFrom builds a complete patch from b. The ISBN is not carried.
func PatchFrom(b Book) BookPatch {
	return BookPatch{
		AmazonURL: &b.AmazonURL,
		Author:    &b.Author,
		Language:  &b.Language,
		Pages:     &b.Pages,
		Publisher: &b.Publisher,
		Title:     &b.Title,
		Year:      &b.Year,
	}
}

// BookFromFields reads a decoded JSON object that has already been checked
// against the book schema. Integers are converted exactly.
func BookFromFields(m map[string]any) Book {
	return Book{
		ISBN:      str(m["isbn"]),
		AmazonURL: str(m["amazon_url"]),
		Author:    str(m["author"]),
		Language:  str(m["language"]),
		Pages:     integer(m["pages"]),
		Publisher: str(m["publisher"]),
		Title:     str(m["title"]),
		Year:      integer(m["year"]),
	}
}

// PatchFromFields sets the fields present in m, which has already been
// checked against the patch schema. Other keys, isbn included, are ignored.
func PatchFromFields(m map[string]any) BookPatch {
	var p BookPatch
	for k, v := range m {
		switch k {
		case "amazon_url":
			p.AmazonURL = ptr(str(v))
		case "author":
			p.Author = ptr(str(v))
		case "language":
			p.Language = ptr(str(v))
		case "pages":
			p.Pages = ptr(integer(v))
		case "publisher":
			p.Publisher = ptr(str(v))
		case "title":
			p.Title = ptr(str(v))
		case "year":
			p.Year = ptr(integer(v))
		}
	}
	return p
}

func ptr[T any](v T) *T { return &v }

func str(v any) string {
	s, _ := v.(string)
	return s
}

func integer(v any) int {
	n, _ := validate.Int64(v)
	return int(n)
}
