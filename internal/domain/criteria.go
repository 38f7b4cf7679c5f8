package domain

// YearRange is an inclusive year interval. An exact year has Min == Max.
// A range with Min > Max matches nothing.
type YearRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// ExactYear returns a range matching only year.
func ExactYear(year int) *YearRange {
	return &YearRange{Min: year, Max: year}
}

// Between returns the inclusive range [lo, hi].
func Between(lo, hi int) *YearRange {
	return &YearRange{Min: lo, Max: hi}
}

// Contains reports whether year lies within the range.
func (y YearRange) Contains(year int) bool {
	return year >= y.Min && year <= y.Max
}

// Criteria narrows a search. Every supplied criterion must match (logical AND);
// a nil Year or an empty text field matches everything.
// Text criteria are case-insensitive substrings.
type Criteria struct {
	Year   *YearRange `json:"year,omitempty"`
	Genre  string     `json:"genre,omitempty"`
	Author string     `json:"author,omitempty"`
	Title  string     `json:"title,omitempty"`
}

// IsEmpty reports whether no criterion is set.
func (c Criteria) IsEmpty() bool {
	return c.Year == nil && c.Genre == "" && c.Author == "" && c.Title == ""
}
