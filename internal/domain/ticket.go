package domain

import (
	"strings"
	"time"
)

// PNR format: 8 symbols from an alphabet without I, O, 0 and 1.
const (
	PNRAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	PNRLength   = 8
)

// IsValidPNR reports whether s has the PNR length and uses only alphabet symbols.
func IsValidPNR(s string) bool {
	if len(s) != PNRLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(PNRAlphabet, s[i]) < 0 {
			return false
		}
	}
	return true
}

// Ticket is a confirmed booking. It is never modified after creation.
type Ticket struct {
	PNR       string    `json:"pnr"`
	TrainNo   string    `json:"trainNo"`
	TrainName string    `json:"trainName"`
	From      string    `json:"from"`
	To        string    `json:"to"`
	Date      string    `json:"date"`
	Class     string    `json:"cls"`
	Coach     string    `json:"coach"`
	Seats     []string  `json:"seats"`
	Amount    int64     `json:"amount"`
	BookedAt  time.Time `json:"bookedAt"`
}

// Key returns the occupancy key the ticket's seats were sold under.
func (t *Ticket) Key() OccupancyKey {
	return NewOccupancyKey(t.TrainNo, t.Class, t.Date, t.Coach)
}

//go:generate mockgen -source=ticket.go -destination=mock_pnr.go -package=domain

// PNRGenerator issues booking references.
type PNRGenerator interface {
	// Generate returns a new PNR. Uniqueness is not guaranteed.
	Generate() string
}
