// Package document renders issued tickets as printable PDF e-tickets.
package document

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/phpdave11/gofpdf"

	"github.com/rail-reserve/railway-reservation-system/internal/domain"
	"github.com/rail-reserve/railway-reservation-system/internal/infrastructure/timeutil"
)

// StationLookup resolves station codes to display names.
type StationLookup interface {
	Station(code string) (domain.Station, bool)
}

// TicketRenderer builds one-page A4 e-tickets.
type TicketRenderer struct {
	stations StationLookup
}

// NewTicketRenderer creates a renderer. A nil lookup prints bare station codes.
func NewTicketRenderer(stations StationLookup) *TicketRenderer {
	return &TicketRenderer{stations: stations}
}

// Filename returns the download name of a ticket's PDF.
func (r *TicketRenderer) Filename(t domain.Ticket) string {
	return "ETICKET_" + t.PNR + ".pdf"
}

// Render returns the PDF bytes of t.
func (r *TicketRenderer) Render(t domain.Ticket) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("E-Ticket "+t.PNR, false)
	pdf.SetCreator("RailReserve", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "RAILRESERVE E-TICKET")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 8, "PNR: "+t.PNR)
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		"Train       : " + t.TrainNo + " " + t.TrainName,
		"From        : " + r.stationLabel(t.From),
		"To          : " + r.stationLabel(t.To),
		"Journey date: " + t.Date,
		"Class/Coach : " + t.Class + " / " + t.Coach,
		"Seats       : " + strings.Join(t.Seats, ", "),
		"Passengers  : " + strconv.Itoa(len(t.Seats)),
		"Booked at   : " + timeutil.FormatBookedAt(t.BookedAt),
	}
	for _, s := range lines {
		pdf.Cell(0, 7, s)
		pdf.Ln(7)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, "Amount paid: Rs. "+GroupIndian(t.Amount))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "This is a demo booking. No payment was taken and the ticket is not valid for travel.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render ticket %s: %w", t.PNR, err)
	}
	return buf.Bytes(), nil
}

func (r *TicketRenderer) stationLabel(code string) string {
	if r.stations == nil {
		return code
	}
	if st, ok := r.stations.Station(code); ok {
		return fmt.Sprintf("%s (%s)", st.Name, st.Code)
	}
	return code
}

// GroupIndian formats n with Indian digit grouping: 12,34,567.
func GroupIndian(n int64) string {
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return sign + s
	}

	head, tail := s[:len(s)-3], s[len(s)-3:]
	var parts []string
	for len(head) > 2 {
		parts = append([]string{head[len(head)-2:]}, parts...)
		head = head[:len(head)-2]
	}
	parts = append([]string{head}, parts...)
	return sign + strings.Join(parts, ",") + "," + tail
}

// FormatINR formats a rupee amount for display, e.g. ₹3,886.
func FormatINR(n int64) string {
	if n < 0 {
		return "-₹" + GroupIndian(-n)
	}
	return "₹" + GroupIndian(n)
}
