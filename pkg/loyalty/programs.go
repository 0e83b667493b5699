// Package loyalty maps seats.aero mileage-program source codes to
// human-readable program names.
package loyalty

var programNames = map[string]string{
	"smiles":     "GOL Smiles",
	"united":     "United MileagePlus",
	"american":   "American AAdvantage",
	"delta":      "Delta SkyMiles",
	"alaska":     "Alaska Mileage Plan",
	"southwest":  "Southwest Rapid Rewards",
	"jetblue":    "JetBlue TrueBlue",
	"british":    "British Airways Executive Club",
	"lufthansa":  "Lufthansa Miles & More",
	"singapore":  "Singapore Airlines KrisFlyer",
	"emirates":   "Emirates Skywards",
	"cathay":     "Cathay Pacific Asia Miles",
	"virgin":     "Virgin Atlantic Flying Club",
	"air_canada": "Air Canada Aeroplan",
	"ana":        "ANA Mileage Club",
	"jal":        "JAL Mileage Bank",
	"flyingblue": "Air France-KLM Flying Blue",
	"qantas":     "Qantas Frequent Flyer",
	"qatar":      "Qatar Airways Privilege Club",
	"etihad":     "Etihad Guest",
	"velocity":   "Virgin Australia Velocity",
	"aeroplan":   "Air Canada Aeroplan",
}

// ProgramName returns the display name for a source code. Unknown codes
// pass through unchanged so new programs still render something usable.
func ProgramName(sourceCode string) string {
	if name, ok := programNames[sourceCode]; ok {
		return name
	}
	if sourceCode != "" {
		return sourceCode
	}
	return "Unknown Program"
}
