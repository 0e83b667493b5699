package seatsaero

import (
	"bytes"
	"encoding/json"
)

// SearchParams are the route/date/cabin inputs shared by the cached and
// live search endpoints. Field names on the wire follow the Partner API.
type SearchParams struct {
	Origin      string
	Destination string
	Cabin       string
	StartDate   string
	EndDate     string
}

// Route is the provider's route descriptor attached to each availability.
type Route struct {
	ID                 string `json:"ID"`
	OriginAirport      string `json:"OriginAirport"`
	OriginRegion       string `json:"OriginRegion"`
	DestinationAirport string `json:"DestinationAirport"`
	DestinationRegion  string `json:"DestinationRegion"`
	NumDaysOut         int    `json:"NumDaysOut"`
	Distance           int    `json:"Distance"`
	Source             string `json:"Source"`
}

// Availability is one raw award-availability record: a route/date/program
// tuple with per-cabin availability field families (Y economy, W premium
// economy, J business, F first).
type Availability struct {
	ID      string `json:"ID"`
	RouteID string `json:"RouteID"`
	Route   Route  `json:"Route"`
	Date    string `json:"Date"`
	Source  string `json:"Source"`

	YAvailable         bool   `json:"YAvailable"`
	YAvailableRaw      bool   `json:"YAvailableRaw"`
	YMileageCostRaw    int    `json:"YMileageCostRaw"`
	YRemainingSeats    int    `json:"YRemainingSeats"`
	YRemainingSeatsRaw int    `json:"YRemainingSeatsRaw"`
	YAirlines          string `json:"YAirlines"`
	YAirlinesRaw       string `json:"YAirlinesRaw"`

	WAvailable         bool   `json:"WAvailable"`
	WAvailableRaw      bool   `json:"WAvailableRaw"`
	WMileageCostRaw    int    `json:"WMileageCostRaw"`
	WRemainingSeats    int    `json:"WRemainingSeats"`
	WRemainingSeatsRaw int    `json:"WRemainingSeatsRaw"`
	WAirlines          string `json:"WAirlines"`
	WAirlinesRaw       string `json:"WAirlinesRaw"`

	JAvailable         bool   `json:"JAvailable"`
	JAvailableRaw      bool   `json:"JAvailableRaw"`
	JMileageCostRaw    int    `json:"JMileageCostRaw"`
	JRemainingSeats    int    `json:"JRemainingSeats"`
	JRemainingSeatsRaw int    `json:"JRemainingSeatsRaw"`
	JAirlines          string `json:"JAirlines"`
	JAirlinesRaw       string `json:"JAirlinesRaw"`

	FAvailable         bool   `json:"FAvailable"`
	FAvailableRaw      bool   `json:"FAvailableRaw"`
	FMileageCostRaw    int    `json:"FMileageCostRaw"`
	FRemainingSeats    int    `json:"FRemainingSeats"`
	FRemainingSeatsRaw int    `json:"FRemainingSeatsRaw"`
	FAirlines          string `json:"FAirlines"`
	FAirlinesRaw       string `json:"FAirlinesRaw"`
}

// CabinFields is the per-cabin slice of an Availability record.
type CabinFields struct {
	Available         bool
	AvailableRaw      bool
	MileageCostRaw    int
	RemainingSeats    int
	RemainingSeatsRaw int
	Airlines          string
	AirlinesRaw       string
}

// CabinFields selects the field family for an internal cabin key
// (economy/premium/business/first). The second return is false for an
// unknown cabin.
func (a *Availability) CabinFields(cabin string) (CabinFields, bool) {
	switch cabin {
	case "economy":
		return CabinFields{a.YAvailable, a.YAvailableRaw, a.YMileageCostRaw, a.YRemainingSeats, a.YRemainingSeatsRaw, a.YAirlines, a.YAirlinesRaw}, true
	case "premium":
		return CabinFields{a.WAvailable, a.WAvailableRaw, a.WMileageCostRaw, a.WRemainingSeats, a.WRemainingSeatsRaw, a.WAirlines, a.WAirlinesRaw}, true
	case "business":
		return CabinFields{a.JAvailable, a.JAvailableRaw, a.JMileageCostRaw, a.JRemainingSeats, a.JRemainingSeatsRaw, a.JAirlines, a.JAirlinesRaw}, true
	case "first":
		return CabinFields{a.FAvailable, a.FAvailableRaw, a.FMileageCostRaw, a.FRemainingSeats, a.FRemainingSeatsRaw, a.FAirlines, a.FAirlinesRaw}, true
	}
	return CabinFields{}, false
}

// SearchResponse is the availability envelope. The Partner API has been
// observed returning {"data": [...]}, {"availability": [...]}, and a bare
// array; UnmarshalJSON accepts all three. An object with none of the known
// keys decodes to an empty Data slice rather than an error.
type SearchResponse struct {
	Data    []Availability
	Count   int
	HasMore bool
	Cursor  int64
}

func (r *SearchResponse) UnmarshalJSON(b []byte) error {
	trimmed := bytes.TrimSpace(b)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var data []Availability
		if err := json.Unmarshal(trimmed, &data); err != nil {
			return err
		}
		r.Data = data
		r.Count = len(data)
		return nil
	}

	var env struct {
		Data         []Availability `json:"data"`
		Availability []Availability `json:"availability"`
		Count        int            `json:"count"`
		HasMore      bool           `json:"hasMore"`
		Cursor       int64          `json:"cursor"`
	}
	if err := json.Unmarshal(b, &env); err != nil {
		return err
	}

	switch {
	case env.Data != nil:
		r.Data = env.Data
	case env.Availability != nil:
		r.Data = env.Availability
	}
	r.Count = env.Count
	r.HasMore = env.HasMore
	r.Cursor = env.Cursor
	return nil
}

// tripsEnvelope decodes the trips response, tolerating both {"data": [...]}
// and a bare array.
type tripsEnvelope struct {
	Data []Trip
}

func (e *tripsEnvelope) UnmarshalJSON(b []byte) error {
	trimmed := bytes.TrimSpace(b)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return json.Unmarshal(trimmed, &e.Data)
	}
	var env struct {
		Data []Trip `json:"data"`
	}
	if err := json.Unmarshal(b, &env); err != nil {
		return err
	}
	e.Data = env.Data
	return nil
}

// rawFields keeps the undecoded JSON object so callers can probe field
// names that vary between API versions.
type rawFields map[string]json.RawMessage

// firstString returns the first present, non-empty string value among the
// candidate keys, tried in order.
func (r rawFields) firstString(keys ...string) string {
	for _, k := range keys {
		raw, ok := r[k]
		if !ok {
			continue
		}
		var s string
		if err := json.Unmarshal(raw, &s); err != nil || s == "" {
			continue
		}
		return s
	}
	return ""
}

func (r rawFields) has(key string) bool {
	_, ok := r[key]
	return ok
}

// Field name aliases observed across Partner API responses.
var (
	departureLocalAliases = []string{"DepartsAtLocal", "DepartureTimeLocal", "DepartsLocal", "LocalDepartsAt", "DepartureLocal", "LocalDeparture"}
	arrivalLocalAliases   = []string{"ArrivesAtLocal", "ArrivalTimeLocal", "ArrivesLocal", "LocalArrivesAt", "ArrivalLocal", "LocalArrival"}
	departureAliases      = []string{"DepartsAt", "DepartureTime", "DepartsAtUtc", "DepartureUtc"}
	arrivalAliases        = []string{"ArrivesAt", "ArrivalTime", "ArrivesAtUtc", "ArrivalUtc"}
	originAliases         = []string{"DepartureAirport", "OriginAirport", "Origin"}
	destinationAliases    = []string{"ArrivalAirport", "DestinationAirport", "Destination"}
	aircraftAliases       = []string{"AircraftName", "AircraftCode", "Equipment"}
)

// Trip is one fully resolved itinerary from the trip-detail endpoint.
// Timestamps stay strings: the API mixes UTC and local encodings and the
// resolver needs the original text.
type Trip struct {
	ID                   string    `json:"ID"`
	RouteID              string    `json:"RouteID"`
	AvailabilityID       string    `json:"AvailabilityID"`
	AvailabilitySegments []Segment `json:"AvailabilitySegments"`
	TotalDuration        int       `json:"TotalDuration"`
	Stops                int       `json:"Stops"`
	Carriers             string    `json:"Carriers"`
	RemainingSeats       int       `json:"RemainingSeats"`
	MileageCost          int       `json:"MileageCost"`
	TotalTaxes           float64   `json:"TotalTaxes"`
	TaxesCurrency        string    `json:"TaxesCurrency"`
	Currency             string    `json:"Currency"`
	FlightNumbers        string    `json:"FlightNumbers"`
	DepartsAt            string    `json:"DepartsAt"`
	ArrivesAt            string    `json:"ArrivesAt"`
	Cabin                string    `json:"Cabin"`
	Source               string    `json:"Source"`

	raw rawFields
}

func (t *Trip) UnmarshalJSON(b []byte) error {
	type tripNoMethods Trip
	var decoded tripNoMethods
	if err := json.Unmarshal(b, &decoded); err != nil {
		return err
	}
	*t = Trip(decoded)
	return json.Unmarshal(b, &t.raw)
}

// LocalDeparture probes the trip-level local departure field aliases.
func (t *Trip) LocalDeparture() string {
	return t.raw.firstString(departureLocalAliases...)
}

// LocalArrival probes the trip-level local arrival field aliases.
func (t *Trip) LocalArrival() string {
	return t.raw.firstString(arrivalLocalAliases...)
}

// HasStops reports whether the response carried an explicit Stops field,
// distinguishing "zero stops" from "not provided".
func (t *Trip) HasStops() bool {
	return t.raw.has("Stops")
}

// FieldNames lists the keys present on the raw trip object, for schema
// diagnostics.
func (t *Trip) FieldNames() []string {
	names := make([]string, 0, len(t.raw))
	for k := range t.raw {
		names = append(names, k)
	}
	return names
}

// Segment is one takeoff-to-landing leg of a trip. Airport, timestamp, and
// aircraft fields vary by API version, so they are exposed through
// alias-probing accessors instead of fixed struct fields.
type Segment struct {
	FlightNumber string `json:"FlightNumber"`
	Distance     int    `json:"Distance"`
	FareClass    string `json:"FareClass"`
	Cabin        string `json:"Cabin"`
	Order        int    `json:"Order"`

	raw rawFields
}

func (s *Segment) UnmarshalJSON(b []byte) error {
	type segmentNoMethods Segment
	var decoded segmentNoMethods
	if err := json.Unmarshal(b, &decoded); err != nil {
		return err
	}
	*s = Segment(decoded)
	return json.Unmarshal(b, &s.raw)
}

func (s *Segment) Origin() string {
	return s.raw.firstString(originAliases...)
}

func (s *Segment) Destination() string {
	return s.raw.firstString(destinationAliases...)
}

func (s *Segment) Aircraft() string {
	return s.raw.firstString(aircraftAliases...)
}

func (s *Segment) DepartsAt() string {
	return s.raw.firstString(departureAliases...)
}

func (s *Segment) ArrivesAt() string {
	return s.raw.firstString(arrivalAliases...)
}

func (s *Segment) LocalDeparture() string {
	return s.raw.firstString(departureLocalAliases...)
}

func (s *Segment) LocalArrival() string {
	return s.raw.firstString(arrivalLocalAliases...)
}
