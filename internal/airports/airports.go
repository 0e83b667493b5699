// Package airports is the static airport reference dataset: code to
// name/city/country/timezone lookups used to decorate search results.
package airports

import "strings"

type Airport struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	City     string `json:"city"`
	Country  string `json:"country"`
	Timezone string `json:"timezone,omitempty"`
}

var airports = []Airport{
	{Code: "JFK", Name: "John F. Kennedy International", City: "New York", Country: "USA", Timezone: "America/New_York"},
	{Code: "LAX", Name: "Los Angeles International", City: "Los Angeles", Country: "USA", Timezone: "America/Los_Angeles"},
	{Code: "ORD", Name: "O'Hare International", City: "Chicago", Country: "USA", Timezone: "America/Chicago"},
	{Code: "SFO", Name: "San Francisco International", City: "San Francisco", Country: "USA", Timezone: "America/Los_Angeles"},
	{Code: "MIA", Name: "Miami International", City: "Miami", Country: "USA", Timezone: "America/New_York"},
	{Code: "DFW", Name: "Dallas/Fort Worth International", City: "Dallas", Country: "USA", Timezone: "America/Chicago"},
	{Code: "SEA", Name: "Seattle-Tacoma International", City: "Seattle", Country: "USA", Timezone: "America/Los_Angeles"},
	{Code: "BOS", Name: "Logan International", City: "Boston", Country: "USA", Timezone: "America/New_York"},
	{Code: "ATL", Name: "Hartsfield-Jackson Atlanta International", City: "Atlanta", Country: "USA", Timezone: "America/New_York"},
	{Code: "YYZ", Name: "Toronto Pearson International", City: "Toronto", Country: "Canada", Timezone: "America/Toronto"},
	{Code: "YVR", Name: "Vancouver International", City: "Vancouver", Country: "Canada", Timezone: "America/Vancouver"},
	{Code: "MEX", Name: "Mexico City International", City: "Mexico City", Country: "Mexico", Timezone: "America/Mexico_City"},
	{Code: "LHR", Name: "Heathrow", City: "London", Country: "UK", Timezone: "Europe/London"},
	{Code: "CDG", Name: "Charles de Gaulle", City: "Paris", Country: "France", Timezone: "Europe/Paris"},
	{Code: "FRA", Name: "Frankfurt Airport", City: "Frankfurt", Country: "Germany", Timezone: "Europe/Berlin"},
	{Code: "AMS", Name: "Amsterdam Airport Schiphol", City: "Amsterdam", Country: "Netherlands", Timezone: "Europe/Amsterdam"},
	{Code: "MAD", Name: "Adolfo Suárez Madrid-Barajas", City: "Madrid", Country: "Spain", Timezone: "Europe/Madrid"},
	{Code: "BCN", Name: "Barcelona-El Prat", City: "Barcelona", Country: "Spain", Timezone: "Europe/Madrid"},
	{Code: "FCO", Name: "Leonardo da Vinci-Fiumicino", City: "Rome", Country: "Italy", Timezone: "Europe/Rome"},
	{Code: "MUC", Name: "Munich Airport", City: "Munich", Country: "Germany", Timezone: "Europe/Berlin"},
	{Code: "ZRH", Name: "Zurich Airport", City: "Zurich", Country: "Switzerland", Timezone: "Europe/Zurich"},
	{Code: "VIE", Name: "Vienna International", City: "Vienna", Country: "Austria", Timezone: "Europe/Vienna"},
	{Code: "CPH", Name: "Copenhagen Airport", City: "Copenhagen", Country: "Denmark", Timezone: "Europe/Copenhagen"},
	{Code: "ARN", Name: "Stockholm Arlanda", City: "Stockholm", Country: "Sweden", Timezone: "Europe/Stockholm"},
	{Code: "NRT", Name: "Narita International", City: "Tokyo", Country: "Japan", Timezone: "Asia/Tokyo"},
	{Code: "HND", Name: "Haneda", City: "Tokyo", Country: "Japan", Timezone: "Asia/Tokyo"},
	{Code: "ICN", Name: "Incheon International", City: "Seoul", Country: "South Korea", Timezone: "Asia/Seoul"},
	{Code: "HKG", Name: "Hong Kong International", City: "Hong Kong", Country: "China", Timezone: "Asia/Hong_Kong"},
	{Code: "SIN", Name: "Singapore Changi", City: "Singapore", Country: "Singapore", Timezone: "Asia/Singapore"},
	{Code: "BKK", Name: "Suvarnabhumi", City: "Bangkok", Country: "Thailand", Timezone: "Asia/Bangkok"},
	{Code: "KUL", Name: "Kuala Lumpur International", City: "Kuala Lumpur", Country: "Malaysia", Timezone: "Asia/Kuala_Lumpur"},
	{Code: "PVG", Name: "Shanghai Pudong International", City: "Shanghai", Country: "China", Timezone: "Asia/Shanghai"},
	{Code: "PEK", Name: "Beijing Capital International", City: "Beijing", Country: "China", Timezone: "Asia/Shanghai"},
	{Code: "DEL", Name: "Indira Gandhi International", City: "New Delhi", Country: "India", Timezone: "Asia/Kolkata"},
	{Code: "BOM", Name: "Chhatrapati Shivaji Maharaj International", City: "Mumbai", Country: "India", Timezone: "Asia/Kolkata"},
	{Code: "DXB", Name: "Dubai International", City: "Dubai", Country: "UAE", Timezone: "Asia/Dubai"},
	{Code: "DOH", Name: "Hamad International", City: "Doha", Country: "Qatar", Timezone: "Asia/Qatar"},
	{Code: "SYD", Name: "Sydney Kingsford Smith", City: "Sydney", Country: "Australia", Timezone: "Australia/Sydney"},
	{Code: "MEL", Name: "Melbourne Airport", City: "Melbourne", Country: "Australia", Timezone: "Australia/Melbourne"},
	{Code: "BNE", Name: "Brisbane Airport", City: "Brisbane", Country: "Australia", Timezone: "Australia/Brisbane"},
	{Code: "PER", Name: "Perth Airport", City: "Perth", Country: "Australia", Timezone: "Australia/Perth"},
	{Code: "AKL", Name: "Auckland Airport", City: "Auckland", Country: "New Zealand", Timezone: "Pacific/Auckland"},
	{Code: "GRU", Name: "São Paulo-Guarulhos International", City: "São Paulo", Country: "Brazil", Timezone: "America/Sao_Paulo"},
	{Code: "GIG", Name: "Rio de Janeiro-Galeão International", City: "Rio de Janeiro", Country: "Brazil", Timezone: "America/Sao_Paulo"},
	{Code: "EZE", Name: "Ministro Pistarini International", City: "Buenos Aires", Country: "Argentina", Timezone: "America/Argentina/Buenos_Aires"},
	{Code: "SCL", Name: "Arturo Merino Benítez International", City: "Santiago", Country: "Chile", Timezone: "America/Santiago"},
	{Code: "BOG", Name: "El Dorado International", City: "Bogotá", Country: "Colombia", Timezone: "America/Bogota"},
	{Code: "LIM", Name: "Jorge Chávez International", City: "Lima", Country: "Peru", Timezone: "America/Lima"},
	{Code: "JNB", Name: "OR Tambo International", City: "Johannesburg", Country: "South Africa", Timezone: "Africa/Johannesburg"},
	{Code: "CPT", Name: "Cape Town International", City: "Cape Town", Country: "South Africa", Timezone: "Africa/Johannesburg"},
	{Code: "CAI", Name: "Cairo International", City: "Cairo", Country: "Egypt", Timezone: "Africa/Cairo"},
	{Code: "NBO", Name: "Jomo Kenyatta International", City: "Nairobi", Country: "Kenya", Timezone: "Africa/Nairobi"},
	{Code: "ADD", Name: "Addis Ababa Bole International", City: "Addis Ababa", Country: "Ethiopia", Timezone: "Africa/Addis_Ababa"},
	{Code: "LOS", Name: "Murtala Muhammed International", City: "Lagos", Country: "Nigeria", Timezone: "Africa/Lagos"},
}

var byCode = func() map[string]Airport {
	m := make(map[string]Airport, len(airports))
	for _, a := range airports {
		m[a.Code] = a
	}
	return m
}()

// All returns the full reference list.
func All() []Airport {
	out := make([]Airport, len(airports))
	copy(out, airports)
	return out
}

// Lookup finds an airport by its IATA code, case-insensitively.
func Lookup(code string) (Airport, bool) {
	a, ok := byCode[strings.ToUpper(code)]
	return a, ok
}

// Search matches codes, names, cities, and countries against a query
// substring, capped at 10 results.
func Search(query string) []Airport {
	term := strings.ToLower(strings.TrimSpace(query))
	if term == "" {
		return nil
	}

	var results []Airport
	for _, a := range airports {
		if strings.Contains(strings.ToLower(a.Code), term) ||
			strings.Contains(strings.ToLower(a.Name), term) ||
			strings.Contains(strings.ToLower(a.City), term) ||
			strings.Contains(strings.ToLower(a.Country), term) {
			results = append(results, a)
			if len(results) == 10 {
				break
			}
		}
	}
	return results
}
