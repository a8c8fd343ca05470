package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"cashbook/internal/domain"
)

// Cup range of the recipe slider.
const (
	MinCups     = 1
	MaxCups     = 20
	DefaultCups = 6
)

// Unit conversions.
const (
	MillilitersPerCup  = 125
	GramsPerTablespoon = 8
)

// RestDuration is how long the tea rests between the two boils.
const RestDuration = 6*time.Minute + 30*time.Second

const (
	littleMoreWaterNote  = "+ a little more"
	firstStepInstruction = "Add ingredients to a saucepan"
	restStepInstruction  = "Turn off heat and rest for 6:30 minutes. Set a timer now."
)

// ingredientRatio is a per-cup amount expressed as numerator/denominator so the
// scaled value can be computed with a single division.
type ingredientRatio struct {
	name        string
	unit        domain.Unit
	numerator   int64
	denominator int64
	converted   domain.Unit
	factor      int64
	note        string
}

var teaRatios = []ingredientRatio{
	{name: "milk", unit: domain.UnitCup, numerator: 2, denominator: 3, converted: domain.UnitMilliliters, factor: MillilitersPerCup},
	{name: "water", unit: domain.UnitCup, numerator: 1, denominator: 3, converted: domain.UnitMilliliters, factor: MillilitersPerCup, note: littleMoreWaterNote},
	{name: "tea leaves", unit: domain.UnitTablespoon, numerator: 1, denominator: 2, converted: domain.UnitGrams, factor: GramsPerTablespoon},
	{name: "sugar", unit: domain.UnitTablespoon, numerator: 5, denominator: 4, converted: domain.UnitGrams, factor: GramsPerTablespoon},
}

var teaExtras = []string{"Ginger", "Tea Masala", "Cardamom"}

// RecipeScaler scales the tea recipe to a number of cups.
type RecipeScaler struct {
	cups      int
	clipboard ClipboardWriter
}

// NewRecipeScaler starts at DefaultCups.
func NewRecipeScaler(clipboard ClipboardWriter) *RecipeScaler {
	return &RecipeScaler{cups: DefaultCups, clipboard: clipboard}
}

// SetCups sets the cup count, clamped to [MinCups, MaxCups].
func (r *RecipeScaler) SetCups(n int) {
	r.cups = min(max(n, MinCups), MaxCups)
}

// Cups returns the effective cup count.
func (r *RecipeScaler) Cups() int { return r.cups }

// Ingredients returns every ingredient scaled to the current cup count.
func (r *RecipeScaler) Ingredients() []domain.IngredientQuantity {
	cups := int64(r.cups)
	out := make([]domain.IngredientQuantity, len(teaRatios))
	for i, ratio := range teaRatios {
		den := decimal.NewFromInt(ratio.denominator)
		out[i] = domain.IngredientQuantity{
			Name:          ratio.name,
			Unit:          ratio.unit,
			Quantity:      decimal.NewFromInt(cups * ratio.numerator).Div(den),
			ConvertedUnit: ratio.converted,
			Converted:     decimal.NewFromInt(cups * ratio.numerator * ratio.factor).Div(den),
			Note:          ratio.note,
		}
	}
	return out
}

// Extras lists the optional add-ins.
func (r *RecipeScaler) Extras() []string {
	return append([]string(nil), teaExtras...)
}

// Steps returns the four preparation steps for the current cup count.
func (r *RecipeScaler) Steps() []domain.Step {
	boils := fmt.Sprintf("%d %s", r.cups, plural(r.cups, "time", "times"))
	return []domain.Step{
		{Order: 1, Instruction: firstStepInstruction},
		{Order: 2, Instruction: fmt.Sprintf("Boil on high flame %s. (Let it rise, drop, and repeat.)", boils)},
		{Order: 3, Instruction: restStepInstruction, Timer: &domain.TimerConfig{Duration: RestDuration, Label: "rest"}},
		{Order: 4, Instruction: fmt.Sprintf("After resting, boil again on high flame %s. Strain and serve hot.", boils)},
	}
}

// ExportText renders the ingredient list that is copied to the clipboard.
func (r *RecipeScaler) ExportText() string {
	var b strings.Builder
	fmt.Fprintf(&b, "For %d cup(s) of tea:", r.cups)
	for _, q := range r.Ingredients() {
		fmt.Fprintf(&b, "\n- %s %s (%s %s) %s", q.QuantityText(), q.Unit, q.ConvertedText(), q.ConvertedUnit, q.Name)
		if q.Note != "" {
			fmt.Fprintf(&b, " (%s)", q.Note)
		}
	}
	return b.String()
}

// Export copies ExportText to the clipboard and returns it with the copy outcome.
func (r *RecipeScaler) Export(ctx context.Context) (string, error) {
	text := r.ExportText()
	return text, CopyText(ctx, r.clipboard, text)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
