package models

type Airport struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	City    string `json:"city"`
	Country string `json:"country"`
}

type Segment struct {
	FlightNumber       string `json:"flightNumber"`
	Aircraft           string `json:"aircraft,omitempty"`
	Origin             string `json:"origin"`
	Destination        string `json:"destination"`
	DepartureTime      string `json:"departureTime,omitempty"`
	ArrivalTime        string `json:"arrivalTime,omitempty"`
	DepartureTimeLocal string `json:"departureTimeLocal,omitempty"`
	ArrivalTimeLocal   string `json:"arrivalTimeLocal,omitempty"`
	Distance           int    `json:"distance,omitempty"`
	FareClass          string `json:"fareClass,omitempty"`
}

// Offer is one redemption option attached to a consolidated flight:
// a loyalty program, its mileage price, and the seats it reports.
type Offer struct {
	Program        string  `json:"program"`
	ProgramCode    string  `json:"programCode"`
	Miles          int     `json:"miles"`
	Taxes          float64 `json:"taxes"`
	Currency       string  `json:"currency"`
	Cabin          string  `json:"cabin"`
	RemainingSeats int     `json:"remainingSeats"`
}

// NormalizedOffer is one real, priced, schedule-bearing offer extracted
// from a trip-detail record. It is a per-request intermediate; the
// consolidator folds these into ConsolidatedFlight values.
type NormalizedOffer struct {
	OperatingAirline     string
	OperatingAirlineCode string
	FlightNumber         string
	DepartureTime        string
	ArrivalTime          string
	DepartureTimeLocal   string
	ArrivalTimeLocal     string
	Duration             string
	Aircraft             string
	Stops                int
	Segments             []Segment
	AvailableSeats       int
	Miles                int
	Taxes                float64
	Currency             string
	Program              string
	ProgramCode          string
	Cabin                string
}

// ConsolidatedFlight is the externally visible unit: one physical flight
// (airline code + flight number + departure time) carrying every booking
// offer found for it across mileage programs.
type ConsolidatedFlight struct {
	ID                   string    `json:"id"`
	From                 Airport   `json:"from"`
	To                   Airport   `json:"to"`
	OperatingAirline     string    `json:"operatingAirline"`
	OperatingAirlineCode string    `json:"operatingAirlineCode"`
	FlightNumber         string    `json:"flightNumber"`
	DepartureTime        string    `json:"departureTime"`
	ArrivalTime          string    `json:"arrivalTime"`
	DepartureTimeLocal   string    `json:"departureTimeLocal,omitempty"`
	ArrivalTimeLocal     string    `json:"arrivalTimeLocal,omitempty"`
	Duration             string    `json:"duration"`
	Aircraft             string    `json:"aircraft,omitempty"`
	CabinClass           string    `json:"cabinClass"`
	Stops                int       `json:"stops"`
	Segments             []Segment `json:"segments"`
	Offers               []Offer   `json:"offers"`
}
