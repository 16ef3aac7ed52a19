package http

import (
	"strings"

	"github.com/rail-reserve/railway-reservation-system/internal/domain"
)

// SearchTrainsRequest represents the request body for a train search.
type SearchTrainsRequest struct {
	// From is the origin station code (e.g., "NDLS")
	From string `json:"from" example:"NDLS"`

	// To is the destination station code (e.g., "BCT")
	To string `json:"to" example:"BCT"`

	// Date is the journey date in YYYY-MM-DD format
	Date string `json:"date" example:"2026-11-02"`

	// Class is the class code: SL, 3A, 2A or CC (default 3A)
	Class string `json:"cls,omitempty" example:"3A"`

	// Passengers is the passenger count; values below 1 count as 1
	Passengers int `json:"pax" example:"2"`
}

// ToQuery converts the request to a domain query.
func (r *SearchTrainsRequest) ToQuery() domain.SearchQuery {
	return domain.SearchQuery{
		From:       r.From,
		To:         r.To,
		Date:       r.Date,
		Class:      r.Class,
		Passengers: r.Passengers,
	}
}

// SelectCoachRequest chooses a train, class and coach on a session.
type SelectCoachRequest struct {
	// TrainNo is the train number from the search results
	TrainNo string `json:"trainNo" example:"12952"`

	// Class defaults to the class of the session's search
	Class string `json:"cls,omitempty" example:"3A"`

	// Coach is one of S1, S2, S3
	Coach string `json:"coach" example:"S1"`
}

// Validate checks that the train number and coach are present.
func (r *SelectCoachRequest) Validate() error {
	errs := &domain.ValidationErrors{}
	if strings.TrimSpace(r.TrainNo) == "" {
		errs.Add("trainNo", "trainNo is required")
	}
	if strings.TrimSpace(r.Coach) == "" {
		errs.Add("coach", "coach is required")
	}
	if errs.HasErrors() {
		return errs
	}
	return nil
}

// SetPassengersRequest changes the passenger count of a session.
type SetPassengersRequest struct {
	// Passengers is the new passenger count; values below 1 count as 1
	Passengers *int `json:"pax" example:"2"`
}

// Validate checks that pax is present.
func (r *SetPassengersRequest) Validate() error {
	if r.Passengers == nil {
		errs := &domain.ValidationErrors{}
		errs.Add("pax", "pax is required")
		return errs
	}
	return nil
}
