package models

// Cabin is the internal cabin key used by the seats.aero Partner API.
type Cabin string

const (
	CabinEconomy  Cabin = "economy"
	CabinPremium  Cabin = "premium"
	CabinBusiness Cabin = "business"
	CabinFirst    Cabin = "first"
)

var cabinByLabel = map[string]Cabin{
	"Economy":         CabinEconomy,
	"Premium Economy": CabinPremium,
	"Business":        CabinBusiness,
	"First":           CabinFirst,
}

var labelByCabin = map[Cabin]string{
	CabinEconomy:  "Economy",
	CabinPremium:  "Premium Economy",
	CabinBusiness: "Business",
	CabinFirst:    "First",
}

// CabinFromLabel maps an external cabin label to its internal key.
// Labels are case-sensitive; anything unrecognized defaults to economy.
func CabinFromLabel(label string) Cabin {
	if c, ok := cabinByLabel[label]; ok {
		return c
	}
	return CabinEconomy
}

// Label returns the external display label for a cabin key.
func (c Cabin) Label() string {
	if l, ok := labelByCabin[c]; ok {
		return l
	}
	return "Economy"
}

// Valid reports whether c is one of the four known cabin keys.
func (c Cabin) Valid() bool {
	_, ok := labelByCabin[c]
	return ok
}
