package normalizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aeropoints/awardsearch/internal/models"
	"github.com/aeropoints/awardsearch/internal/seatsaero"
)

func availabilityJFKLHR() seatsaero.Availability {
	return seatsaero.Availability{
		ID:      "av1",
		RouteID: "r1",
		Route: seatsaero.Route{
			ID:                 "r1",
			OriginAirport:      "JFK",
			DestinationAirport: "LHR",
		},
		Date:   "2025-08-09",
		Source: "british",
	}
}

func TestBusinessCabinExtraction(t *testing.T) {
	av := availabilityJFKLHR()
	av.JAvailable = true
	av.JMileageCostRaw = 57000
	av.JRemainingSeats = 2
	av.JAirlines = "BA"

	resp := &seatsaero.SearchResponse{Data: []seatsaero.Availability{av}}
	candidates := FromResponse(resp, models.CabinBusiness, nil)

	require.Len(t, candidates, 1)
	c := candidates[0]
	assert.Equal(t, "british_r1_2025-08-09", c.ID)
	assert.Equal(t, models.CabinBusiness, c.Cabin)
	assert.Equal(t, 2, c.AvailableSeats)
	assert.Equal(t, "BA", c.Airline)
	assert.Equal(t, "av1", c.Availability.ID)
}

func TestCabinFamiliesAreIndependent(t *testing.T) {
	av := availabilityJFKLHR()
	av.JAvailable = true

	resp := &seatsaero.SearchResponse{Data: []seatsaero.Availability{av}}

	assert.Len(t, FromResponse(resp, models.CabinBusiness, nil), 1)
	assert.Empty(t, FromResponse(resp, models.CabinEconomy, nil), "business availability must not leak into economy")
	assert.Empty(t, FromResponse(resp, models.CabinFirst, nil))
}

func TestPermissiveAvailabilitySignals(t *testing.T) {
	flagOnly := availabilityJFKLHR()
	flagOnly.YAvailable = true

	rawFlagOnly := availabilityJFKLHR()
	rawFlagOnly.YAvailableRaw = true

	costOnly := availabilityJFKLHR()
	costOnly.YMileageCostRaw = 30000

	nothing := availabilityJFKLHR()

	resp := &seatsaero.SearchResponse{
		Data: []seatsaero.Availability{flagOnly, rawFlagOnly, costOnly, nothing},
	}
	candidates := FromResponse(resp, models.CabinEconomy, nil)

	assert.Len(t, candidates, 3, "flag, raw flag, or positive cost each suffice")
}

func TestMalformedRecordsSkipped(t *testing.T) {
	noRoute := seatsaero.Availability{ID: "a", Source: "united", YAvailable: true}
	noSource := availabilityJFKLHR()
	noSource.Source = ""
	noSource.YAvailable = true
	good := availabilityJFKLHR()
	good.YAvailable = true

	resp := &seatsaero.SearchResponse{
		Data: []seatsaero.Availability{noRoute, noSource, good},
	}
	candidates := FromResponse(resp, models.CabinEconomy, nil)

	require.Len(t, candidates, 1)
	assert.Equal(t, "british", candidates[0].Source)
}

func TestSeatCountFallsBackToRaw(t *testing.T) {
	av := availabilityJFKLHR()
	av.FAvailable = true
	av.FRemainingSeatsRaw = 3

	resp := &seatsaero.SearchResponse{Data: []seatsaero.Availability{av}}
	candidates := FromResponse(resp, models.CabinFirst, nil)

	require.Len(t, candidates, 1)
	assert.Equal(t, 3, candidates[0].AvailableSeats)
}

func TestSeatCountDefaultsToZero(t *testing.T) {
	av := availabilityJFKLHR()
	av.WAvailable = true

	resp := &seatsaero.SearchResponse{Data: []seatsaero.Availability{av}}
	candidates := FromResponse(resp, models.CabinPremium, nil)

	require.Len(t, candidates, 1)
	assert.Zero(t, candidates[0].AvailableSeats)
}

func TestEmptyAndNilResponses(t *testing.T) {
	assert.Empty(t, FromResponse(nil, models.CabinEconomy, nil))
	assert.Empty(t, FromResponse(&seatsaero.SearchResponse{}, models.CabinEconomy, nil))
	assert.Empty(t, FromResponse(&seatsaero.SearchResponse{Count: 0, Data: []seatsaero.Availability{}}, models.CabinEconomy, nil))
}
