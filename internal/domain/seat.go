package domain

import (
	"strconv"
	"strings"
)

// Coach layout: rows A..J, columns 1..18 with aisles at columns 5 and 15.
const (
	SeatRows    = "ABCDEFGHIJ"
	SeatColumns = 18
)

// aisleColumns are skipped when numbering seats.
var aisleColumns = map[int]bool{5: true, 15: true}

// SeatsPerCoach is the number of addressable seats in one coach.
const SeatsPerCoach = len(SeatRows) * (SeatColumns - 2)

// Coaches lists the coach names of the reference layout.
var Coaches = []string{"S1", "S2", "S3"}

// IsCoach reports whether name is one of the layout's coaches.
func IsCoach(name string) bool {
	for _, c := range Coaches {
		if c == name {
			return true
		}
	}
	return false
}

// IsAisle reports whether col is an aisle column.
func IsAisle(col int) bool {
	return aisleColumns[col]
}

// ParseSeatID splits a seat id such as "C7" into row and column.
// It returns ErrInvalidSeat for ids outside the layout or on an aisle.
func ParseSeatID(id string) (row byte, col int, err error) {
	if len(id) < 2 {
		return 0, 0, WrapSeat(id)
	}
	row = id[0]
	if strings.IndexByte(SeatRows, row) < 0 {
		return 0, 0, WrapSeat(id)
	}
	digits := id[1:]
	if digits[0] == '0' || strings.TrimLeft(digits, "0123456789") != "" {
		return 0, 0, WrapSeat(id)
	}
	col, convErr := strconv.Atoi(digits)
	if convErr != nil || col < 1 || col > SeatColumns || IsAisle(col) {
		return 0, 0, WrapSeat(id)
	}
	return row, col, nil
}

// WrapSeat returns ErrInvalidSeat annotated with the offending id.
func WrapSeat(id string) error {
	return &seatError{id: id}
}

type seatError struct {
	id string
}

func (e *seatError) Error() string {
	return ErrInvalidSeat.Error() + ": " + strconv.Quote(e.id)
}

func (e *seatError) Unwrap() error {
	return ErrInvalidSeat
}

// AllSeatIDs returns every seat id of a coach in row-major order.
func AllSeatIDs() []string {
	ids := make([]string, 0, SeatsPerCoach)
	for i := 0; i < len(SeatRows); i++ {
		for c := 1; c <= SeatColumns; c++ {
			if IsAisle(c) {
				continue
			}
			ids = append(ids, string(SeatRows[i])+strconv.Itoa(c))
		}
	}
	return ids
}

// SeatStatus is the display state of a seat in a seat map.
type SeatStatus string

// Seat statuses.
const (
	SeatAvailable SeatStatus = "available"
	SeatOccupied  SeatStatus = "occupied"
	SeatSelected  SeatStatus = "selected"
)

// Seat is one cell of a seat map.
type Seat struct {
	ID     string     `json:"id"`
	Row    string     `json:"row"`
	Column int        `json:"col"`
	Status SeatStatus `json:"status"`
	Price  int64      `json:"price"`
}

// SeatMap is the generated layout of one coach for an occupancy key.
type SeatMap struct {
	Key      OccupancyKey `json:"key"`
	UnitFare int64        `json:"unitFare"`
	Seats    []Seat       `json:"seats"`
}

// Seat returns the seat with the given id, if present.
func (m *SeatMap) Seat(id string) (Seat, bool) {
	for _, s := range m.Seats {
		if s.ID == id {
			return s, true
		}
	}
	return Seat{}, false
}

// OccupancyKey scopes sold seats: "trainNo|cls|date|coach".
type OccupancyKey string

// NewOccupancyKey builds the composite key for a train, class, date and coach.
func NewOccupancyKey(trainNo, cls, date, coach string) OccupancyKey {
	return OccupancyKey(trainNo + "|" + cls + "|" + date + "|" + coach)
}
