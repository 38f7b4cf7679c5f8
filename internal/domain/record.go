// Package domain contains the core entities of the book catalog.
package domain

import "strconv"

// RecentAfterYear is the exclusive lower bound for the recent-records view.
const RecentAfterYear = 2000

// Record is a single catalog entry.
// Title identifies the record for removal, though duplicates are permitted.
type Record struct {
	Title  string `json:"title" validate:"required"`
	Author string `json:"author" validate:"required"`
	Year   int    `json:"year"`
	Genre  string `json:"genre" validate:"required"`
}

// IsRecent reports whether the record belongs in the recent-records view.
func (r Record) IsRecent() bool {
	return r.Year > RecentAfterYear
}

// String renders the record as `"Title" by Author (Year)`.
func (r Record) String() string {
	str := strconv.Quote(r.Title)
	if r.Author != "" {
		str += " by " + r.Author
	}
	return str + " (" + strconv.Itoa(r.Year) + ")"
}
