package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aeropoints/awardsearch/internal/cache"
	"github.com/aeropoints/awardsearch/internal/models"
	"github.com/aeropoints/awardsearch/pkg/logger"
)

// Searcher is the aggregation pipeline as the transport layer sees it.
type Searcher interface {
	Search(ctx context.Context, req models.SearchRequest) ([]models.ConsolidatedFlight, error)
}

type SearchHandler struct {
	aggregator Searcher
	cache      cache.Cache
	log        logger.Client
}

func NewSearchHandler(agg Searcher, c cache.Cache, log logger.Client) *SearchHandler {
	if log == nil {
		log = logger.NewNop()
	}
	return &SearchHandler{
		aggregator: agg,
		cache:      c,
		log:        log,
	}
}

func (h *SearchHandler) Search(c echo.Context) error {
	ctx := c.Request().Context()

	var req models.SearchRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Failed to parse request body: " + err.Error(),
			Code:    http.StatusBadRequest,
		})
	}

	if flights, found := h.cache.Get(ctx, req); found {
		return c.JSON(http.StatusOK, flights)
	}

	flights, err := h.aggregator.Search(ctx, req)
	if err != nil {
		var verr models.ValidationError
		if errors.As(err, &verr) {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "validation_error",
				Message: verr.Error(),
				Code:    http.StatusBadRequest,
			})
		}
		h.log.Error("flight search failed", logger.F("error", err))
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "search_error",
			Message: "Failed to search flights",
			Code:    http.StatusInternalServerError,
		})
	}

	_ = h.cache.Set(ctx, req, flights)
	return c.JSON(http.StatusOK, flights)
}
