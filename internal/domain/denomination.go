package domain

// CurrencyCode is the ISO 4217 code of the only currency the ledger counts.
const CurrencyCode = "INR"

// Denomination is one recognized note face value.
type Denomination struct {
	FaceValue int64  `json:"value" yaml:"value"`
	Label     string `json:"label" yaml:"label"`
}

// DefaultDenominations returns the note table, ordered by descending face value.
// A fresh slice is returned on every call so callers cannot alter the table.
func DefaultDenominations() []Denomination {
	return []Denomination{
		{FaceValue: 500, Label: "₹500"},
		{FaceValue: 200, Label: "₹200"},
		{FaceValue: 100, Label: "₹100"},
		{FaceValue: 50, Label: "₹50"},
		{FaceValue: 20, Label: "₹20"},
		{FaceValue: 10, Label: "₹10"},
	}
}
