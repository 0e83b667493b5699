package seatsaero

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchResponseStandardEnvelope(t *testing.T) {
	body := `{"data":[{"ID":"av1","Source":"british","Date":"2025-08-09","Route":{"ID":"r1","OriginAirport":"JFK","DestinationAirport":"LHR"}}],"count":1,"hasMore":false,"cursor":123}`

	var resp SearchResponse
	require.NoError(t, json.Unmarshal([]byte(body), &resp))

	require.Len(t, resp.Data, 1)
	assert.Equal(t, "av1", resp.Data[0].ID)
	assert.Equal(t, 1, resp.Count)
	assert.Equal(t, int64(123), resp.Cursor)
}

func TestSearchResponseAvailabilityEnvelope(t *testing.T) {
	body := `{"availability":[{"ID":"av2","Source":"united"}]}`

	var resp SearchResponse
	require.NoError(t, json.Unmarshal([]byte(body), &resp))

	require.Len(t, resp.Data, 1)
	assert.Equal(t, "av2", resp.Data[0].ID)
}

func TestSearchResponseBareArray(t *testing.T) {
	body := `[{"ID":"av3","Source":"delta"}]`

	var resp SearchResponse
	require.NoError(t, json.Unmarshal([]byte(body), &resp))

	require.Len(t, resp.Data, 1)
	assert.Equal(t, 1, resp.Count)
}

func TestSearchResponseEmptyButValid(t *testing.T) {
	body := `{"count":0,"data":[]}`

	var resp SearchResponse
	require.NoError(t, json.Unmarshal([]byte(body), &resp))

	assert.Empty(t, resp.Data)
	assert.Equal(t, 0, resp.Count)
}

func TestSearchResponseUnrecognizedShape(t *testing.T) {
	body := `{"message":"maintenance window"}`

	var resp SearchResponse
	require.NoError(t, json.Unmarshal([]byte(body), &resp))

	assert.Empty(t, resp.Data, "unknown object shapes decode to zero records, not an error")
}

func TestAvailabilityCabinFields(t *testing.T) {
	av := Availability{
		JAvailable:      true,
		JMileageCostRaw: 57000,
		JRemainingSeats: 2,
		JAirlines:       "BA",
		YAvailable:      false,
	}

	j, ok := av.CabinFields("business")
	require.True(t, ok)
	assert.True(t, j.Available)
	assert.Equal(t, 57000, j.MileageCostRaw)
	assert.Equal(t, 2, j.RemainingSeats)
	assert.Equal(t, "BA", j.Airlines)

	y, ok := av.CabinFields("economy")
	require.True(t, ok)
	assert.False(t, y.Available)

	_, ok = av.CabinFields("suites")
	assert.False(t, ok)
}

func TestTripLocalTimeAliases(t *testing.T) {
	body := `{"ID":"t1","DepartureTimeLocal":"2025-08-09T16:30:00","ArrivesAtLocal":"2025-08-10T07:30:00"}`

	var trip Trip
	require.NoError(t, json.Unmarshal([]byte(body), &trip))

	assert.Equal(t, "2025-08-09T16:30:00", trip.LocalDeparture())
	assert.Equal(t, "2025-08-10T07:30:00", trip.LocalArrival())
}

func TestTripAliasPrecedence(t *testing.T) {
	// DepartsAtLocal is first in the alias chain and must win.
	body := `{"DepartsAtLocal":"primary","DepartureTimeLocal":"secondary"}`

	var trip Trip
	require.NoError(t, json.Unmarshal([]byte(body), &trip))

	assert.Equal(t, "primary", trip.LocalDeparture())
}

func TestTripEmptyAliasValuesSkipped(t *testing.T) {
	body := `{"DepartsAtLocal":"","DepartureTimeLocal":"fallback"}`

	var trip Trip
	require.NoError(t, json.Unmarshal([]byte(body), &trip))

	assert.Equal(t, "fallback", trip.LocalDeparture())
}

func TestTripHasStops(t *testing.T) {
	var withStops, withoutStops Trip
	require.NoError(t, json.Unmarshal([]byte(`{"Stops":0}`), &withStops))
	require.NoError(t, json.Unmarshal([]byte(`{"ID":"t1"}`), &withoutStops))

	assert.True(t, withStops.HasStops())
	assert.False(t, withoutStops.HasStops())
}

func TestSegmentAliases(t *testing.T) {
	body := `{"FlightNumber":"BA178","DepartureAirport":"JFK","ArrivalAirport":"LHR","AircraftName":"Boeing 777-300ER","DepartsAt":"2025-08-09T20:30:00Z","FareClass":"I"}`

	var seg Segment
	require.NoError(t, json.Unmarshal([]byte(body), &seg))

	assert.Equal(t, "JFK", seg.Origin())
	assert.Equal(t, "LHR", seg.Destination())
	assert.Equal(t, "Boeing 777-300ER", seg.Aircraft())
	assert.Equal(t, "2025-08-09T20:30:00Z", seg.DepartsAt())
	assert.Equal(t, "I", seg.FareClass)
}

func TestSegmentAlternateAirportKeys(t *testing.T) {
	body := `{"OriginAirport":"JFK","DestinationAirport":"LHR","AircraftCode":"77W"}`

	var seg Segment
	require.NoError(t, json.Unmarshal([]byte(body), &seg))

	assert.Equal(t, "JFK", seg.Origin())
	assert.Equal(t, "LHR", seg.Destination())
	assert.Equal(t, "77W", seg.Aircraft())
}

func TestTripsEnvelopeVariants(t *testing.T) {
	var wrapped, bare tripsEnvelope
	require.NoError(t, json.Unmarshal([]byte(`{"data":[{"ID":"t1"}]}`), &wrapped))
	require.NoError(t, json.Unmarshal([]byte(`[{"ID":"t2"}]`), &bare))

	require.Len(t, wrapped.Data, 1)
	assert.Equal(t, "t1", wrapped.Data[0].ID)
	require.Len(t, bare.Data, 1)
	assert.Equal(t, "t2", bare.Data[0].ID)
}
