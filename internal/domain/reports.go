package domain

// Direction describes which side of the reconciliation is larger.
type Direction string

const (
	// Balanced means the tally equals the counted cash.
	Balanced Direction = "BALANCED"
	// Shortfall means the tally exceeds the counted cash.
	Shortfall Direction = "SHORTFALL"
	// Overage means the counted cash exceeds the tally.
	Overage Direction = "OVERAGE"
)

// DirectionOf classifies a signed difference (tally - counted).
func DirectionOf(difference int64) Direction {
	switch {
	case difference > 0:
		return Shortfall
	case difference < 0:
		return Overage
	default:
		return Balanced
	}
}

// Label is the short caption shown next to the absolute difference.
func (d Direction) Label() string {
	switch d {
	case Shortfall:
		return "- less by"
	case Overage:
		return "+ greater by"
	default:
		return "-"
	}
}

// LineItem is one row of the denomination grid.
type LineItem struct {
	Denomination Denomination `json:"denomination"`
	CountText    string       `json:"count_text"` // as entered, "" when unset
	Count        int64        `json:"count"`
	LineTotal    int64        `json:"line_total"`
}

// Totals holds everything derived from a LedgerState.
type Totals struct {
	TotalAmount   int64     `json:"total_amount"`
	TotalNotes    int64     `json:"total_notes"`
	Difference    int64     `json:"difference"` // tally - total amount
	Direction     Direction `json:"direction"`
	AmountInWords string    `json:"amount_in_words"`
}

// AbsDifference returns the magnitude of the difference.
func (t Totals) AbsDifference() int64 {
	if t.Difference < 0 {
		return -t.Difference
	}
	return t.Difference
}
