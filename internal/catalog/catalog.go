// Package catalog provides the read-only reference data: stations and trains.
// The default data set is embedded; a replacement JSON file can be loaded instead.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/rail-reserve/railway-reservation-system/internal/domain"
)

//go:embed data/catalog.json
var defaultData []byte

// Catalog holds stations and trains in their declared order.
type Catalog struct {
	stations []domain.Station
	trains   []domain.Train
	byNo     map[string]int
	byCode   map[string]int
}

// Stats summarizes the catalog size.
type Stats struct {
	Stations int `json:"stations"`
	Trains   int `json:"trains"`
}

type catalogFile struct {
	Stations []domain.Station `json:"stations"`
	Trains   []domain.Train   `json:"trains"`
}

// Default returns the embedded reference catalog.
// It panics if the embedded data is malformed, which is a build defect.
func Default() *Catalog {
	c, err := Parse(defaultData)
	if err != nil {
		panic(fmt.Sprintf("embedded catalog: %v", err))
	}
	return c
}

// Load reads a catalog from a JSON file. An empty path returns the default catalog.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes and indexes catalog JSON.
func Parse(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return New(f.Stations, f.Trains)
}

// New builds a catalog, rejecting duplicate train numbers or station codes
// and trains without a route.
func New(stations []domain.Station, trains []domain.Train) (*Catalog, error) {
	c := &Catalog{
		stations: stations,
		trains:   trains,
		byNo:     make(map[string]int, len(trains)),
		byCode:   make(map[string]int, len(stations)),
	}
	for i, s := range stations {
		if _, dup := c.byCode[s.Code]; dup {
			return nil, fmt.Errorf("duplicate station code %q", s.Code)
		}
		c.byCode[s.Code] = i
	}
	for i, t := range trains {
		if _, dup := c.byNo[t.No]; dup {
			return nil, fmt.Errorf("duplicate train number %q", t.No)
		}
		if len(t.Route) < 2 {
			return nil, fmt.Errorf("train %s: route needs at least two stations", t.No)
		}
		c.byNo[t.No] = i
	}
	return c, nil
}

// Stations returns a copy of the station list.
func (c *Catalog) Stations() []domain.Station {
	out := make([]domain.Station, len(c.stations))
	copy(out, c.stations)
	return out
}

// Trains returns a copy of the train list in catalog order.
func (c *Catalog) Trains() []domain.Train {
	out := make([]domain.Train, len(c.trains))
	copy(out, c.trains)
	return out
}

// Train looks up a train by number.
func (c *Catalog) Train(no string) (domain.Train, error) {
	i, ok := c.byNo[no]
	if !ok {
		return domain.Train{}, fmt.Errorf("%w: %s", domain.ErrTrainNotFound, no)
	}
	return c.trains[i], nil
}

// Station looks up a station by code.
func (c *Catalog) Station(code string) (domain.Station, bool) {
	i, ok := c.byCode[code]
	if !ok {
		return domain.Station{}, false
	}
	return c.stations[i], true
}

// Stats returns the number of stations and trains.
func (c *Catalog) Stats() Stats {
	return Stats{Stations: len(c.stations), Trains: len(c.trains)}
}

// UnpricedClasses lists "trainNo/class" pairs a train runs but has no base fare for.
// Such pairs are priced with the fallback fare; callers log them at startup.
func (c *Catalog) UnpricedClasses() []string {
	var out []string
	for _, t := range c.trains {
		for _, cls := range t.Classes {
			if _, ok := t.BaseFare[cls]; !ok {
				out = append(out, t.No+"/"+cls)
			}
		}
	}
	sort.Strings(out)
	return out
}
