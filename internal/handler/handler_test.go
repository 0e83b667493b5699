package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aeropoints/awardsearch/internal/cache"
	"github.com/aeropoints/awardsearch/internal/models"
	"github.com/aeropoints/awardsearch/internal/seatsaero"
)

type stubSearcher struct {
	flights []models.ConsolidatedFlight
	err     error
	lastReq models.SearchRequest
}

func (s *stubSearcher) Search(ctx context.Context, req models.SearchRequest) ([]models.ConsolidatedFlight, error) {
	s.lastReq = req
	return s.flights, s.err
}

func performSearch(t *testing.T, searcher Searcher, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/flights/search", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewSearchHandler(searcher, cache.NewNoOpCache(), nil)
	require.NoError(t, h.Search(c))
	return rec
}

func TestSearchReturnsFlights(t *testing.T) {
	searcher := &stubSearcher{flights: []models.ConsolidatedFlight{{
		FlightNumber: "BA178",
		Offers:       []models.Offer{{Program: "British Airways Executive Club", Miles: 57000}},
	}}}

	rec := performSearch(t, searcher, `{"from":"JFK","to":"LHR","date":"2025-08-09","cabinClass":"Business"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	var flights []models.ConsolidatedFlight
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &flights))
	require.Len(t, flights, 1)
	assert.Equal(t, "BA178", flights[0].FlightNumber)
	assert.Equal(t, "JFK", searcher.lastReq.From)
}

func TestSearchValidationFailure(t *testing.T) {
	searcher := &stubSearcher{err: models.ErrMissingDate}

	rec := performSearch(t, searcher, `{"from":"JFK","to":"LHR"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "validation_error", resp.Error)
	assert.Equal(t, "date is required", resp.Message)
}

func TestSearchMalformedBody(t *testing.T) {
	rec := performSearch(t, &stubSearcher{}, `{"from":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "invalid_request", resp.Error)
}

func TestSearchEmptyResultIsOK(t *testing.T) {
	searcher := &stubSearcher{flights: []models.ConsolidatedFlight{}}

	rec := performSearch(t, searcher, `{"from":"JFK","to":"LHR","date":"2025-08-09"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestAirportLookup(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/airports/jfk", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("code")
	c.SetParamValues("jfk")

	h := NewAirportHandler()
	require.NoError(t, h.Get(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "John F. Kennedy International")
}

func TestAirportLookupUnknown(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/airports/XXX", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("code")
	c.SetParamValues("XXX")

	h := NewAirportHandler()
	require.NoError(t, h.Get(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAirportSearchRequiresQuery(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/airports/search", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewAirportHandler()
	require.NoError(t, h.Search(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAirportSearchMatches(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/airports/search?q=tokyo", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewAirportHandler()
	require.NoError(t, h.Search(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "NRT")
	assert.Contains(t, rec.Body.String(), "HND")
}

type stubProber struct {
	status seatsaero.ConnectionStatus
}

func (s *stubProber) TestConnection(ctx context.Context) seatsaero.ConnectionStatus {
	return s.status
}

func TestStatusEndpoint(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/status", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewStatusHandler(&stubProber{status: seatsaero.ConnectionStatus{OK: false, Message: "Invalid API key"}})
	require.NoError(t, h.Status(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp models.StatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.OK)
	assert.Equal(t, "Invalid API key", resp.Message)
}

func TestHealthHandler(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, HealthHandler(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
