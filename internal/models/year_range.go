package models

import "fmt"

// YearRange is the year span scraped from a detail page. End is 0 for an
// open-ended range.
type YearRange struct {
	Start int `json:"start"`
	End   int `json:"end,omitempty"`
}

// ExactYear returns the single-year range used for movies.
func ExactYear(year int) YearRange {
	return YearRange{Start: year, End: year}
}

// Contains reports whether year falls inside the range, bounds included.
func (r YearRange) Contains(year int) bool {
	if year < r.Start {
		return false
	}
	return r.End == 0 || year <= r.End
}

func (r YearRange) String() string {
	switch {
	case r.End == 0:
		return fmt.Sprintf("%d-", r.Start)
	case r.Start == r.End:
		return fmt.Sprintf("%d", r.Start)
	default:
		return fmt.Sprintf("%d-%d", r.Start, r.End)
	}
}
