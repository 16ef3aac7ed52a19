// Package domain contains the core entities and rules of the railway reservation flow.
// It has no knowledge of transport or storage; those live in the adapter packages.
package domain

// Class codes used by the reference catalog.
const (
	ClassSleeper  = "SL"
	ClassThreeAC  = "3A"
	ClassTwoAC    = "2A"
	ClassChairCar = "CC"
)

// DefaultClass is the class searched when the query leaves it empty.
const DefaultClass = ClassThreeAC

// Station is a railway station from the reference catalog.
type Station struct {
	// Code is the station code (e.g., "NDLS")
	Code string `json:"code"`

	// Name is the display name (e.g., "New Delhi")
	Name string `json:"name"`
}

// Train is a scheduled train with its route, classes and base fares.
type Train struct {
	// No is the train number (e.g., "12952")
	No string `json:"no"`

	// Name is the train name (e.g., "Rajdhani Express")
	Name string `json:"name"`

	// Route is the ordered list of station codes; only the endpoints are matched
	Route []string `json:"route"`

	// Classes lists the class codes the train runs
	Classes []string `json:"classes"`

	// Dep is the departure time as HH:MM
	Dep string `json:"dep"`

	// Arr is the arrival time as HH:MM
	Arr string `json:"arr"`

	// BaseFare maps class code to the per-passenger base fare in rupees
	BaseFare map[string]int64 `json:"baseFare"`
}

// Origin returns the first station of the route, or "" for an empty route.
func (t *Train) Origin() string {
	if len(t.Route) == 0 {
		return ""
	}
	return t.Route[0]
}

// Destination returns the last station of the route, or "" for an empty route.
func (t *Train) Destination() string {
	if len(t.Route) == 0 {
		return ""
	}
	return t.Route[len(t.Route)-1]
}

// HasClass reports whether the train runs the given class.
func (t *Train) HasClass(cls string) bool {
	for _, c := range t.Classes {
		if c == cls {
			return true
		}
	}
	return false
}

// Serves reports whether the train runs directly from origin to destination.
func (t *Train) Serves(from, to string) bool {
	return t.Origin() == from && t.Destination() == to
}
