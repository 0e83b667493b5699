package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/aeropoints/awardsearch/internal/airports"
	"github.com/aeropoints/awardsearch/internal/models"
)

type AirportHandler struct{}

func NewAirportHandler() *AirportHandler {
	return &AirportHandler{}
}

func (h *AirportHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, airports.All())
}

func (h *AirportHandler) Search(c echo.Context) error {
	q := strings.TrimSpace(c.QueryParam("q"))
	if q == "" {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Query parameter \"q\" is required",
			Code:    http.StatusBadRequest,
		})
	}

	results := airports.Search(q)
	if results == nil {
		results = []airports.Airport{}
	}
	return c.JSON(http.StatusOK, results)
}

func (h *AirportHandler) Get(c echo.Context) error {
	airport, ok := airports.Lookup(c.Param("code"))
	if !ok {
		return c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "not_found",
			Message: "Airport not found",
			Code:    http.StatusNotFound,
		})
	}
	return c.JSON(http.StatusOK, airport)
}
