package usecase

import (
	"crypto/rand"
	"io"
	mathrand "math/rand"

	"github.com/rail-reserve/railway-reservation-system/internal/domain"
)

// pnrGenerator draws PNR symbols uniformly from domain.PNRAlphabet.
type pnrGenerator struct {
	source io.Reader
}

// NewPNRGenerator returns a generator backed by crypto/rand.
func NewPNRGenerator() domain.PNRGenerator {
	return &pnrGenerator{source: rand.Reader}
}

// Generate implements domain.PNRGenerator.
func (g *pnrGenerator) Generate() string {
	var buf [domain.PNRLength]byte
	if _, err := io.ReadFull(g.source, buf[:]); err != nil {
		for i := range buf {
			buf[i] = byte(mathrand.Intn(len(domain.PNRAlphabet)))
		}
	}

	// The alphabet has 32 symbols, so masking a byte keeps the draw uniform.
	const mask = byte(len(domain.PNRAlphabet) - 1)
	out := make([]byte, domain.PNRLength)
	for i, b := range buf {
		out[i] = domain.PNRAlphabet[b&mask]
	}
	return string(out)
}
