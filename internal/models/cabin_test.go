package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCabinFromLabel(t *testing.T) {
	assert.Equal(t, CabinEconomy, CabinFromLabel("Economy"))
	assert.Equal(t, CabinPremium, CabinFromLabel("Premium Economy"))
	assert.Equal(t, CabinBusiness, CabinFromLabel("Business"))
	assert.Equal(t, CabinFirst, CabinFromLabel("First"))
}

func TestCabinLabelsAreCaseSensitive(t *testing.T) {
	// External labels are exact; anything else falls back to economy.
	assert.Equal(t, CabinEconomy, CabinFromLabel("business"))
	assert.Equal(t, CabinEconomy, CabinFromLabel("BUSINESS"))
	assert.Equal(t, CabinEconomy, CabinFromLabel(""))
}

func TestCabinLabelRoundTrip(t *testing.T) {
	for _, c := range []Cabin{CabinEconomy, CabinPremium, CabinBusiness, CabinFirst} {
		assert.Equal(t, c, CabinFromLabel(c.Label()))
	}
}

func TestRequestValidation(t *testing.T) {
	req := SearchRequest{From: "JFK", To: "LHR", Date: "2025-08-09"}
	assert.NoError(t, req.Validate())
	assert.Equal(t, 1, req.Passengers)
	assert.Equal(t, "Economy", req.CabinClass)

	missing := SearchRequest{From: "JFK", To: "LHR"}
	assert.ErrorIs(t, missing.Validate(), ErrMissingDate)

	missing = SearchRequest{To: "LHR", Date: "2025-08-09"}
	assert.ErrorIs(t, missing.Validate(), ErrMissingFrom)

	missing = SearchRequest{From: "JFK", Date: "2025-08-09"}
	assert.ErrorIs(t, missing.Validate(), ErrMissingTo)
}
