package catalog

import (
	"maps"
	"slices"

	"github.com/listenupapp/bookcatalog/internal/domain"
)

// ByAuthor returns records whose author contains substring, ignoring case,
// in catalog order.
func (c *Catalog) ByAuthor(substring string) []domain.Record {
	m := newMatcher()
	needle := m.fold(substring)

	out := []domain.Record{}
	for _, e := range c.records {
		if m.contains(e.record.Author, needle) {
			out = append(out, e.record)
		}
	}
	return out
}

// Search returns records matching every supplied criterion, in catalog order.
func (c *Catalog) Search(criteria domain.Criteria) []domain.Record {
	m := newMatcher()
	genre := m.fold(criteria.Genre)
	author := m.fold(criteria.Author)
	title := m.fold(criteria.Title)

	out := []domain.Record{}
	for _, e := range c.records {
		r := e.record
		if criteria.Year != nil && !criteria.Year.Contains(r.Year) {
			continue
		}
		if !m.contains(r.Genre, genre) || !m.contains(r.Author, author) || !m.contains(r.Title, title) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Recent returns a snapshot of the records published after domain.RecentAfterYear.
func (c *Catalog) Recent() []domain.Record {
	return recordsOf(c.recent)
}

// GenreCounts returns a snapshot of the per-genre record counts.
// Genres with no records are absent.
func (c *Catalog) GenreCounts() map[string]int {
	return maps.Clone(c.genreCounts)
}

// SortBy returns the records ordered by field without reordering the catalog.
// Ties keep insertion order in both directions.
func (c *Catalog) SortBy(field domain.SortField, ascending bool) ([]domain.Record, error) {
	if _, err := domain.ParseSortField(string(field)); err != nil {
		return nil, err
	}

	out := c.All()
	slices.SortStableFunc(out, func(a, b domain.Record) int {
		if ascending {
			return field.Compare(a, b)
		}
		return field.Compare(b, a)
	})
	return out, nil
}
