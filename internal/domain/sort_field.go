package domain

import (
	"cmp"
	"strings"

	"github.com/listenupapp/bookcatalog/internal/errors"
)

// SortField names a Record attribute the catalog can order by.
type SortField string

// Sortable fields.
const (
	SortByTitle  SortField = "title"
	SortByAuthor SortField = "author"
	SortByYear   SortField = "year"
	SortByGenre  SortField = "genre"
)

// SortFields lists every valid SortField in display order.
var SortFields = []SortField{SortByTitle, SortByAuthor, SortByYear, SortByGenre}

// Valid reports whether f is one of the sortable fields.
func (f SortField) Valid() bool {
	switch f {
	case SortByTitle, SortByAuthor, SortByYear, SortByGenre:
		return true
	default:
		return false
	}
}

// ParseSortField converts s to a SortField, failing with an invalid field error.
func ParseSortField(s string) (SortField, error) {
	f := SortField(s)
	if !f.Valid() {
		return "", invalidSortField(s)
	}
	return f, nil
}

// Compare orders a and b by the field: lexicographic for text, numeric for year.
// It returns 0 for an invalid field.
func (f SortField) Compare(a, b Record) int {
	switch f {
	case SortByTitle:
		return strings.Compare(a.Title, b.Title)
	case SortByAuthor:
		return strings.Compare(a.Author, b.Author)
	case SortByYear:
		return cmp.Compare(a.Year, b.Year)
	case SortByGenre:
		return strings.Compare(a.Genre, b.Genre)
	default:
		return 0
	}
}

func invalidSortField(s string) *errors.Error {
	names := make([]string, len(SortFields))
	for i, f := range SortFields {
		names[i] = string(f)
	}
	return errors.InvalidFieldf("invalid sort field %q: choose from %s", s, strings.Join(names, ", ")).
		WithDetails(map[string]string{"field": s})
}
