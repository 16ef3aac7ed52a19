package domain

import (
	"regexp"
	"strings"
	"time"
)

// SearchQuery defines the parameters of a train search.
type SearchQuery struct {
	// From is the origin station code (e.g., "NDLS")
	From string `json:"from"`

	// To is the destination station code (e.g., "BCT")
	To string `json:"to"`

	// Date is the journey date in YYYY-MM-DD format
	Date string `json:"date"`

	// Class is the class code (default: 3A)
	Class string `json:"cls"`

	// Passengers is the passenger count, clamped to at least 1
	Passengers int `json:"pax"`
}

// dateRegex matches dates in YYYY-MM-DD format.
var dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Normalize trims and upper-cases station and class codes, applies the default
// class and clamps the passenger count to at least 1.
func (q *SearchQuery) Normalize() {
	q.From = strings.ToUpper(strings.TrimSpace(q.From))
	q.To = strings.ToUpper(strings.TrimSpace(q.To))
	q.Date = strings.TrimSpace(q.Date)
	q.Class = strings.ToUpper(strings.TrimSpace(q.Class))
	if q.Class == "" {
		q.Class = DefaultClass
	}
	q.Passengers = ClampPassengers(q.Passengers)
}

// Validate checks that from, to and date are present and the date is well formed.
// It returns *ValidationErrors, which wraps ErrInvalidRequest.
func (q *SearchQuery) Validate() error {
	errs := &ValidationErrors{}

	if q.From == "" {
		errs.Add("from", "from is required")
	}
	if q.To == "" {
		errs.Add("to", "to is required")
	}

	switch {
	case q.Date == "":
		errs.Add("date", "date is required")
	case !dateRegex.MatchString(q.Date):
		errs.Add("date", "date must be in YYYY-MM-DD format")
	default:
		if _, err := time.Parse("2006-01-02", q.Date); err != nil {
			errs.Add("date", "date is not a valid date")
		}
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// ClampPassengers returns pax, or 1 when pax is below 1.
func ClampPassengers(pax int) int {
	if pax < 1 {
		return 1
	}
	return pax
}

// SearchResult is one matching train with its advisory availability and fare.
type SearchResult struct {
	Train        Train               `json:"train"`
	Availability []CoachAvailability `json:"availability"`
	Fare         FareQuote           `json:"fare"`
}

// SearchResponse is the outcome of a search, results in catalog order.
type SearchResponse struct {
	Query   SearchQuery    `json:"query"`
	Results []SearchResult `json:"results"`
	Total   int            `json:"total"`
}

// NewSearchResponse builds a SearchResponse, never returning a nil results slice.
func NewSearchResponse(q SearchQuery, results []SearchResult) *SearchResponse {
	if results == nil {
		results = []SearchResult{}
	}
	return &SearchResponse{
		Query:   q,
		Results: results,
		Total:   len(results),
	}
}
