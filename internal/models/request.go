package models

type SearchRequest struct {
	From           string `json:"from"`
	To             string `json:"to"`
	Date           string `json:"date"`
	CabinClass     string `json:"cabinClass,omitempty"`
	Passengers     int    `json:"passengers,omitempty"`
	LoyaltyProgram string `json:"loyaltyProgram,omitempty"`
}

func (r *SearchRequest) Validate() error {
	if r.From == "" {
		return ErrMissingFrom
	}
	if r.To == "" {
		return ErrMissingTo
	}
	if r.Date == "" {
		return ErrMissingDate
	}
	if r.Passengers <= 0 {
		r.Passengers = 1
	}
	if r.CabinClass == "" {
		r.CabinClass = "Economy"
	}
	return nil
}

// Cabin returns the internal cabin key for the request's external label.
func (r *SearchRequest) Cabin() Cabin {
	return CabinFromLabel(r.CabinClass)
}

type ValidationError string

func (e ValidationError) Error() string {
	return string(e)
}

const (
	ErrMissingFrom ValidationError = "from is required"
	ErrMissingTo   ValidationError = "to is required"
	ErrMissingDate ValidationError = "date is required"
)
