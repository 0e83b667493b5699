// Package normalizer converts raw availability records into candidate
// flights for the cabin a search requested.
package normalizer

import (
	"fmt"

	"github.com/aeropoints/awardsearch/internal/models"
	"github.com/aeropoints/awardsearch/internal/seatsaero"
	"github.com/aeropoints/awardsearch/pkg/logger"
)

// Candidate is one availability record judged bookable for the requested
// cabin. It keeps the backing record because trip detail is fetched by the
// availability's ID later in the pipeline.
type Candidate struct {
	ID             string
	Route          seatsaero.Route
	Source         string
	Cabin          models.Cabin
	Date           string
	Airline        string
	AvailableSeats int
	Availability   seatsaero.Availability
}

// FromResponse extracts candidates from an availability response.
// A record qualifies when its cabin-specific availability flag, raw flag,
// or a positive raw mileage cost says so; records without a route or
// source program are malformed and skipped. A nil or unrecognized
// response yields an empty slice, never an error.
func FromResponse(resp *seatsaero.SearchResponse, cabin models.Cabin, log logger.Client) []Candidate {
	if log == nil {
		log = logger.NewNop()
	}
	if resp == nil || len(resp.Data) == 0 {
		return nil
	}

	var candidates []Candidate
	skipped := 0
	for i := range resp.Data {
		av := &resp.Data[i]

		if (av.Route == seatsaero.Route{}) || av.Source == "" {
			skipped++
			continue
		}

		fields, ok := av.CabinFields(string(cabin))
		if !ok {
			continue
		}

		available := fields.Available || fields.AvailableRaw || fields.MileageCostRaw > 0
		if !available {
			continue
		}

		seats := fields.RemainingSeats
		if seats == 0 {
			seats = fields.RemainingSeatsRaw
		}
		airline := fields.Airlines
		if airline == "" {
			airline = fields.AirlinesRaw
		}

		routeID := av.RouteID
		if routeID == "" {
			routeID = av.Route.ID
		}
		if routeID == "" {
			routeID = "route"
		}

		candidates = append(candidates, Candidate{
			ID:             fmt.Sprintf("%s_%s_%s", av.Source, routeID, av.Date),
			Route:          av.Route,
			Source:         av.Source,
			Cabin:          cabin,
			Date:           av.Date,
			Airline:        airline,
			AvailableSeats: seats,
			Availability:   *av,
		})
	}

	if skipped > 0 {
		log.Debug("skipped malformed availability records", logger.F("count", skipped))
	}
	return candidates
}
