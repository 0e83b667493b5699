// Package airlines maps IATA carrier codes to airline names.
package airlines

var names = map[string]string{
	"UA": "United Airlines",
	"AA": "American Airlines",
	"DL": "Delta Air Lines",
	"AS": "Alaska Airlines",
	"WN": "Southwest Airlines",
	"B6": "JetBlue Airways",
	"SQ": "Singapore Airlines",
	"EK": "Emirates",
	"LH": "Lufthansa",
	"BA": "British Airways",
	"AF": "Air France",
	"KL": "KLM Royal Dutch Airlines",
	"AC": "Air Canada",
	"NH": "ANA",
	"JL": "Japan Airlines",
	"CX": "Cathay Pacific",
	"QF": "Qantas",
	"QR": "Qatar Airways",
	"EY": "Etihad Airways",
	"VS": "Virgin Atlantic",
	"TK": "Turkish Airlines",
	"IB": "Iberia",
	"AY": "Finnair",
	"LX": "Swiss International Air Lines",
	"OS": "Austrian Airlines",
}

// Name returns the airline name for an IATA code, falling back to the
// code itself when unknown.
func Name(code string) string {
	if name, ok := names[code]; ok {
		return name
	}
	if code != "" {
		return code
	}
	return "Unknown Airline"
}
