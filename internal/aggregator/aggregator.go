// Package aggregator is the award-search pipeline entry point: it
// validates a request, queries availability, resolves trip detail, and
// consolidates offers into the final result set.
package aggregator

import (
	"context"

	"github.com/aeropoints/awardsearch/internal/airports"
	"github.com/aeropoints/awardsearch/internal/consolidate"
	"github.com/aeropoints/awardsearch/internal/models"
	"github.com/aeropoints/awardsearch/internal/normalizer"
	"github.com/aeropoints/awardsearch/internal/seatsaero"
	"github.com/aeropoints/awardsearch/pkg/logger"
)

// SearchClient is the slice of the provider client the orchestrator uses.
type SearchClient interface {
	IsConfigured() bool
	SearchCached(ctx context.Context, p seatsaero.SearchParams) (*seatsaero.SearchResponse, error)
	SearchLive(ctx context.Context, p seatsaero.SearchParams, passengers int) (*seatsaero.SearchResponse, error)
}

// OfferResolver resolves candidates into normalized offers.
type OfferResolver interface {
	Resolve(ctx context.Context, candidates []normalizer.Candidate, cabin models.Cabin) []models.NormalizedOffer
}

type Aggregator struct {
	client   SearchClient
	resolver OfferResolver
	log      logger.Client
}

func New(client SearchClient, resolver OfferResolver, log logger.Client) *Aggregator {
	if log == nil {
		log = logger.NewNop()
	}
	return &Aggregator{
		client:   client,
		resolver: resolver,
		log:      log,
	}
}

// Search runs the full pipeline. Upstream unavailability degrades to an
// empty result set; the only error returned is a validation failure on
// the request itself.
func (a *Aggregator) Search(ctx context.Context, req models.SearchRequest) ([]models.ConsolidatedFlight, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if !a.client.IsConfigured() {
		a.log.Warn("provider credential not configured, returning empty results")
		return []models.ConsolidatedFlight{}, nil
	}

	cabin := req.Cabin()
	params := seatsaero.SearchParams{
		Origin:      req.From,
		Destination: req.To,
		Cabin:       string(cabin),
		StartDate:   req.Date,
		EndDate:     req.Date,
	}

	resp, err := a.client.SearchCached(ctx, params)
	if err != nil {
		a.log.Warn("cached search failed, falling back to live search",
			logger.F("route", req.From+"-"+req.To),
			logger.F("error", err))
		resp, err = a.client.SearchLive(ctx, params, req.Passengers)
		if err != nil {
			a.log.Error("live search failed, returning empty results",
				logger.F("route", req.From+"-"+req.To),
				logger.F("error", err))
			return []models.ConsolidatedFlight{}, nil
		}
	}

	candidates := normalizer.FromResponse(resp, cabin, a.log)
	if req.LoyaltyProgram != "" {
		candidates = filterByProgram(candidates, req.LoyaltyProgram)
	}
	if len(candidates) == 0 {
		a.log.Info("no award availability for route",
			logger.F("route", req.From+"-"+req.To),
			logger.F("date", req.Date))
		return []models.ConsolidatedFlight{}, nil
	}

	a.log.Info("resolving trip details",
		logger.F("candidates", len(candidates)),
		logger.F("cabin", string(cabin)))
	offers := a.resolver.Resolve(ctx, candidates, cabin)

	flights := consolidate.Consolidate(offers, airportSummary(req.From), airportSummary(req.To))

	// Only flights with at least one confirmed offer go out.
	results := make([]models.ConsolidatedFlight, 0, len(flights))
	for _, f := range flights {
		if len(f.Offers) > 0 {
			results = append(results, f)
		}
	}

	a.log.Info("search complete",
		logger.F("offers", len(offers)),
		logger.F("flights", len(results)))
	return results, nil
}

func filterByProgram(candidates []normalizer.Candidate, program string) []normalizer.Candidate {
	filtered := candidates[:0]
	for _, c := range candidates {
		if c.Source == program {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

func airportSummary(code string) models.Airport {
	if a, ok := airports.Lookup(code); ok {
		return models.Airport{Code: a.Code, Name: a.Name, City: a.City, Country: a.Country}
	}
	return models.Airport{Code: code, Name: code + " Airport", City: code}
}
