package integration

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rail-reserve/railway-reservation-system/internal/catalog"
	"github.com/rail-reserve/railway-reservation-system/internal/domain"
)

func TestSearch_KnownAvailabilityAndFare(t *testing.T) {
	ts := NewTestServer(t, Options{})

	resp := ts.Do(Request{Method: http.MethodPost, Path: "/api/v1/trains/search", Body: SearchBody("ndls", "bct", "", 2)})
	require.Equal(t, http.StatusOK, resp.Code)

	var out domain.SearchResponse
	resp.Decode(t, &out)

	assert.Equal(t, "3A", out.Query.Class, "default class")
	require.Equal(t, 2, out.Total)
	assert.Equal(t, "12952", out.Results[0].Train.No, "catalog order")
	assert.Equal(t, "12261", out.Results[1].Train.No)

	rajdhani := out.Results[0]
	assert.Equal(t, []domain.CoachAvailability{
		{Coach: "S1", SeatsLeft: 34},
		{Coach: "S2", SeatsLeft: 73},
		{Coach: "S3", SeatsLeft: 34},
	}, rajdhani.Availability)
	assert.Equal(t, int64(1850), rajdhani.Fare.BaseFare)
	assert.Equal(t, int64(93), rajdhani.Fare.ConvenienceFee)
	assert.Equal(t, int64(3886), rajdhani.Fare.Total)
}

func TestSearch_ClassFilterAndNoResults(t *testing.T) {
	ts := NewTestServer(t, Options{})

	resp := ts.Do(Request{Method: http.MethodPost, Path: "/api/v1/trains/search", Body: SearchBody("NDLS", "BCT", "CC", 1)})
	var out domain.SearchResponse
	resp.Decode(t, &out)
	require.Equal(t, 1, out.Total)
	assert.Equal(t, "12952", out.Results[0].Train.No)

	resp = ts.Do(Request{Method: http.MethodPost, Path: "/api/v1/trains/search", Body: SearchBody("BCT", "NDLS", "3A", 1)})
	resp.Decode(t, &out)
	assert.Zero(t, out.Total, "routes are directional")
	assert.NotNil(t, out.Results)
}

func TestSearch_FallbackFareForUnpricedClass(t *testing.T) {
	cat, err := catalog.Parse([]byte(`{
		"stations": [{"code": "LKO", "name": "Lucknow NR"}, {"code": "NDLS", "name": "New Delhi"}],
		"trains": [{"no": "12229", "name": "Lucknow Mail", "route": ["LKO", "NDLS"], "classes": ["SL", "1A"],
			"dep": "22:00", "arr": "07:05", "baseFare": {"SL": 400}}]
	}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"12229/1A"}, cat.UnpricedClasses())

	ts := NewTestServer(t, Options{Catalog: cat})

	resp := ts.Do(Request{Method: http.MethodPost, Path: "/api/v1/trains/search", Body: SearchBody("LKO", "NDLS", "1A", 1)})
	require.Equal(t, http.StatusOK, resp.Code)
	var out domain.SearchResponse
	resp.Decode(t, &out)

	require.Equal(t, 1, out.Total)
	assert.True(t, out.Results[0].Fare.Fallback)
	assert.Equal(t, int64(1050), out.Results[0].Fare.UnitFare)
	assert.Contains(t, ts.Logs.String(), "fallback")
}
