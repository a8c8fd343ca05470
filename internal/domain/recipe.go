package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Unit is a measuring unit used by the recipe.
type Unit string

const (
	UnitCup         Unit = "cups"
	UnitTablespoon  Unit = "tablespoons"
	UnitMilliliters Unit = "ml"
	UnitGrams       Unit = "g"
)

// Abbrev returns the short form used on cards.
func (u Unit) Abbrev() string {
	if u == UnitTablespoon {
		return "tbsp"
	}
	return string(u)
}

// IngredientQuantity is an ingredient scaled to a cup count.
// Quantity and Converted keep full precision; the display strings are rounded.
type IngredientQuantity struct {
	Name          string          `json:"name"`
	Unit          Unit            `json:"unit"`
	Quantity      decimal.Decimal `json:"quantity"`
	ConvertedUnit Unit            `json:"converted_unit"`
	Converted     decimal.Decimal `json:"converted"`
	Note          string          `json:"note,omitempty"`
}

// QuantityText is the base quantity rounded to two places, e.g. "4.00".
func (q IngredientQuantity) QuantityText() string {
	return q.Quantity.StringFixed(2)
}

// ConvertedText is the converted quantity rounded to a whole number, e.g. "500".
func (q IngredientQuantity) ConvertedText() string {
	return q.Converted.StringFixed(0)
}

// TimerConfig is an optional timer attached to a step.
type TimerConfig struct {
	Duration time.Duration `json:"duration"`
	Label    string        `json:"label"`
}

// Step is a single preparation instruction.
type Step struct {
	Order       int          `json:"order"`
	Instruction string       `json:"instruction"`
	Timer       *TimerConfig `json:"timer,omitempty"`
}
