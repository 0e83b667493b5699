// Package resolver turns candidate flights into normalized, priced offers
// by fetching full trip detail from the provider, with a live-search
// fallback when the cached detail is missing.
package resolver

import (
	"context"
	"fmt"
	"math"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/aeropoints/awardsearch/internal/models"
	"github.com/aeropoints/awardsearch/internal/normalizer"
	"github.com/aeropoints/awardsearch/internal/seatsaero"
	"github.com/aeropoints/awardsearch/pkg/airlines"
	"github.com/aeropoints/awardsearch/pkg/logger"
	"github.com/aeropoints/awardsearch/pkg/loyalty"
)

// TripSource is the slice of the provider client the resolver needs.
type TripSource interface {
	FetchTrips(ctx context.Context, availabilityID string) ([]seatsaero.Trip, error)
	FetchLiveTrips(ctx context.Context, p seatsaero.SearchParams, source string) ([]seatsaero.Trip, error)
}

type Config struct {
	// Workers bounds the concurrent trip-detail fetches per request.
	Workers int
	// AssumeMinorUnitTaxes applies the cents-to-major conversion when the
	// provider reports a whole-number tax total. Best-effort heuristic:
	// the API does not state its units.
	AssumeMinorUnitTaxes bool
	// SchemaSampleLimit is how many raw trip schemas to log per resolver
	// instance, for diagnosing provider field drift.
	SchemaSampleLimit int64
}

func DefaultConfig() Config {
	return Config{
		Workers:              4,
		AssumeMinorUnitTaxes: true,
		SchemaSampleLimit:    1,
	}
}

type Resolver struct {
	source  TripSource
	config  Config
	log     logger.Client
	sampled atomic.Int64
}

func New(source TripSource, config Config, log logger.Client) *Resolver {
	if config.Workers <= 0 {
		config.Workers = DefaultConfig().Workers
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &Resolver{
		source: source,
		config: config,
		log:    log,
	}
}

// Resolve fetches trip detail for every candidate concurrently and returns
// the normalized offers across all of them. One candidate's failure never
// aborts the batch; it just contributes zero offers.
func (r *Resolver) Resolve(ctx context.Context, candidates []normalizer.Candidate, cabin models.Cabin) []models.NormalizedOffer {
	if len(candidates) == 0 {
		return nil
	}

	workers := r.config.Workers
	if workers > len(candidates) {
		workers = len(candidates)
	}

	jobs := make(chan normalizer.Candidate)
	results := make(chan []models.NormalizedOffer, len(candidates))
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for cand := range jobs {
				results <- r.resolveCandidate(ctx, cand, cabin)
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, cand := range candidates {
			select {
			case jobs <- cand:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	var offers []models.NormalizedOffer
	for batch := range results {
		offers = append(offers, batch...)
	}
	return offers
}

func (r *Resolver) resolveCandidate(ctx context.Context, cand normalizer.Candidate, cabin models.Cabin) []models.NormalizedOffer {
	availabilityID := cand.Availability.ID
	if availabilityID == "" {
		r.log.Debug("candidate has no availability id, skipping", logger.F("candidate", cand.ID))
		return nil
	}

	var offers []models.NormalizedOffer

	trips, err := r.source.FetchTrips(ctx, availabilityID)
	if err != nil {
		r.log.Warn("trip detail fetch failed",
			logger.F("availability_id", availabilityID),
			logger.F("error", err))
	}
	for i := range trips {
		r.sampleSchema(&trips[i])
		if offer, ok := r.normalizeTrip(&trips[i], cabin); ok {
			offers = append(offers, offer)
		}
	}

	// Some cached availabilities carry no trips; retry as a live search
	// scoped to the exact route, date, and program.
	if len(offers) == 0 && cand.Route.OriginAirport != "" && cand.Route.DestinationAirport != "" {
		params := seatsaero.SearchParams{
			Origin:      cand.Route.OriginAirport,
			Destination: cand.Route.DestinationAirport,
			Cabin:       string(cabin),
			StartDate:   cand.Date,
			EndDate:     cand.Date,
		}
		liveTrips, err := r.source.FetchLiveTrips(ctx, params, cand.Source)
		if err != nil {
			r.log.Warn("live trip fallback failed",
				logger.F("availability_id", availabilityID),
				logger.F("error", err))
			return offers
		}
		for i := range liveTrips {
			if offer, ok := r.normalizeTrip(&liveTrips[i], cabin); ok {
				offers = append(offers, offer)
			}
		}
	}

	return offers
}

func (r *Resolver) sampleSchema(trip *seatsaero.Trip) {
	if r.sampled.Add(1) > r.config.SchemaSampleLimit {
		return
	}
	r.log.Debug("trip schema sample",
		logger.F("fields", trip.FieldNames()),
		logger.F("segments", len(trip.AvailabilitySegments)))
}

// normalizeTrip extracts one offer from a trip-detail record. The second
// return is false when the trip has no segments or its cabin does not
// match the requested one; mismatched cabins are dropped, never relabeled.
func (r *Resolver) normalizeTrip(trip *seatsaero.Trip, requested models.Cabin) (models.NormalizedOffer, bool) {
	segments := trip.AvailabilitySegments
	if len(segments) == 0 {
		return models.NormalizedOffer{}, false
	}

	cabin := tripCabin(trip, requested)
	if cabin != requested {
		return models.NormalizedOffer{}, false
	}

	primary := &segments[0]
	last := &segments[len(segments)-1]

	flightNumber := primary.FlightNumber
	if flightNumber == "" {
		flightNumber = firstListed(trip.FlightNumbers)
	}

	carrier := firstListed(trip.Carriers)

	// Local-time priority chain: trip-level field, then edge segments,
	// then the absolute time with its UTC marker stripped. The last step
	// is an approximation, not a timezone conversion.
	depLocal := trip.LocalDeparture()
	if depLocal == "" {
		depLocal = primary.LocalDeparture()
	}
	if depLocal == "" {
		depLocal = stripUTCMarker(trip.DepartsAt)
	}
	arrLocal := trip.LocalArrival()
	if arrLocal == "" {
		arrLocal = last.LocalArrival()
	}
	if arrLocal == "" {
		arrLocal = stripUTCMarker(trip.ArrivesAt)
	}

	depTime := trip.DepartsAt
	if depTime == "" {
		depTime = depLocal
	}
	arrTime := trip.ArrivesAt
	if arrTime == "" {
		arrTime = arrLocal
	}

	stops := trip.Stops
	if !trip.HasStops() {
		stops = len(segments) - 1
		if stops < 0 {
			stops = 0
		}
	}

	currency := trip.TaxesCurrency
	if currency == "" {
		currency = trip.Currency
	}
	if currency == "" {
		currency = "USD"
	}

	outSegments := make([]models.Segment, len(segments))
	for i := range segments {
		s := &segments[i]
		outSegments[i] = models.Segment{
			FlightNumber:       s.FlightNumber,
			Aircraft:           s.Aircraft(),
			Origin:             s.Origin(),
			Destination:        s.Destination(),
			DepartureTime:      s.DepartsAt(),
			ArrivalTime:        s.ArrivesAt(),
			DepartureTimeLocal: stripUTCMarker(s.LocalDeparture()),
			ArrivalTimeLocal:   stripUTCMarker(s.LocalArrival()),
			Distance:           s.Distance,
			FareClass:          s.FareClass,
		}
	}

	return models.NormalizedOffer{
		OperatingAirline:     airlines.Name(carrier),
		OperatingAirlineCode: carrier,
		FlightNumber:         flightNumber,
		DepartureTime:        depTime,
		ArrivalTime:          arrTime,
		DepartureTimeLocal:   stripUTCMarker(depLocal),
		ArrivalTimeLocal:     stripUTCMarker(arrLocal),
		Duration:             formatDuration(trip.TotalDuration),
		Aircraft:             primary.Aircraft(),
		Stops:                stops,
		Segments:             outSegments,
		AvailableSeats:       trip.RemainingSeats,
		Miles:                trip.MileageCost,
		Taxes:                r.normalizeTaxes(trip.TotalTaxes),
		Currency:             currency,
		Program:              loyalty.ProgramName(trip.Source),
		ProgramCode:          trip.Source,
		Cabin:                cabin.Label(),
	}, true
}

// tripCabin resolves the trip's own cabin, falling back to the first
// segment's, then to the requested cabin when neither is recognizable.
func tripCabin(trip *seatsaero.Trip, requested models.Cabin) models.Cabin {
	c := models.Cabin(strings.ToLower(trip.Cabin))
	if c.Valid() {
		return c
	}
	if len(trip.AvailabilitySegments) > 0 {
		c = models.Cabin(strings.ToLower(trip.AvailabilitySegments[0].Cabin))
		if c.Valid() {
			return c
		}
	}
	return requested
}

// normalizeTaxes converts a whole-number tax total from minor currency
// units to major ones. Fractional totals are assumed to already be major
// units.
func (r *Resolver) normalizeTaxes(total float64) float64 {
	if !r.config.AssumeMinorUnitTaxes {
		return total
	}
	if total > 0 && total == math.Trunc(total) {
		return total / 100
	}
	return total
}

func formatDuration(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}

func firstListed(commaSeparated string) string {
	if commaSeparated == "" {
		return ""
	}
	first := strings.SplitN(commaSeparated, ",", 2)[0]
	return strings.TrimSpace(first)
}

// stripUTCMarker removes a trailing 'Z' so an absolute timestamp can stand
// in for a missing local one.
func stripUTCMarker(s string) string {
	if strings.HasSuffix(s, "Z") || strings.HasSuffix(s, "z") {
		return s[:len(s)-1]
	}
	return s
}
