// Package consolidate merges normalized offers that describe the same
// physical flight into single results with per-program booking options.
package consolidate

import (
	"fmt"
	"math"
	"sort"

	"github.com/aeropoints/awardsearch/internal/models"
)

// Consolidate groups offers by physical-flight identity (airline code,
// flight number, departure time), keeps the cheapest offer per program
// within each group, and sorts each group's offers by mileage price
// ascending. Offers without a price sort last: a priceless offer is not a
// bargain, it is unknown.
//
// Grouping is data-derived, so the output set is invariant to input order.
func Consolidate(offers []models.NormalizedOffer, from, to models.Airport) []models.ConsolidatedFlight {
	grouped := make(map[string]*models.ConsolidatedFlight)
	var order []string

	for i := range offers {
		o := &offers[i]
		key := fmt.Sprintf("%s|%s|%s", o.OperatingAirlineCode, o.FlightNumber, o.DepartureTime)

		flight, ok := grouped[key]
		if !ok {
			// The first offer seeds the flight mechanics; every offer in
			// a group shares schedule, segments, and aircraft.
			flight = &models.ConsolidatedFlight{
				ID:                   key,
				From:                 from,
				To:                   to,
				OperatingAirline:     o.OperatingAirline,
				OperatingAirlineCode: o.OperatingAirlineCode,
				FlightNumber:         o.FlightNumber,
				DepartureTime:        o.DepartureTime,
				ArrivalTime:          o.ArrivalTime,
				DepartureTimeLocal:   o.DepartureTimeLocal,
				ArrivalTimeLocal:     o.ArrivalTimeLocal,
				Duration:             o.Duration,
				Aircraft:             o.Aircraft,
				CabinClass:           o.Cabin,
				Stops:                o.Stops,
				Segments:             o.Segments,
			}
			grouped[key] = flight
			order = append(order, key)
		}

		flight.Offers = append(flight.Offers, models.Offer{
			Program:        o.Program,
			ProgramCode:    o.ProgramCode,
			Miles:          o.Miles,
			Taxes:          o.Taxes,
			Currency:       o.Currency,
			Cabin:          o.Cabin,
			RemainingSeats: o.AvailableSeats,
		})
	}

	results := make([]models.ConsolidatedFlight, 0, len(order))
	for _, key := range order {
		flight := grouped[key]
		flight.Offers = dedupeOffers(flight.Offers)
		sortOffers(flight.Offers)
		results = append(results, *flight)
	}
	return results
}

// dedupeOffers keeps one offer per program, preferring the lowest mileage
// price. A missing price loses to any real one.
func dedupeOffers(offers []models.Offer) []models.Offer {
	best := make(map[string]models.Offer)
	var order []string

	for _, o := range offers {
		existing, seen := best[o.Program]
		if !seen {
			best[o.Program] = o
			order = append(order, o.Program)
			continue
		}
		if offerMiles(o) < offerMiles(existing) {
			best[o.Program] = o
		}
	}

	deduped := make([]models.Offer, 0, len(order))
	for _, program := range order {
		deduped = append(deduped, best[program])
	}
	return deduped
}

func sortOffers(offers []models.Offer) {
	sort.SliceStable(offers, func(i, j int) bool {
		return offerMiles(offers[i]) < offerMiles(offers[j])
	})
}

// offerMiles treats a zero (absent) price as infinitely expensive so it
// ranks after every priced offer.
func offerMiles(o models.Offer) float64 {
	if o.Miles <= 0 {
		return math.Inf(1)
	}
	return float64(o.Miles)
}
