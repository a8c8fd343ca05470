package usecase_test

import (
	"context"
	"testing"

	"cashbook/internal/domain"
	"cashbook/internal/usecase"
	mock_usecase "cashbook/internal/usecase/mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecipeScaler_Ingredients(t *testing.T) {
	type row struct {
		name      string
		quantity  string
		converted string
		unit      domain.Unit
		into      domain.Unit
	}

	tests := []struct {
		name string
		cups int
		want []row
	}{
		{
			name: "six cups",
			cups: 6,
			want: []row{
				{"milk", "4.00", "500", domain.UnitCup, domain.UnitMilliliters},
				{"water", "2.00", "250", domain.UnitCup, domain.UnitMilliliters},
				{"tea leaves", "3.00", "24", domain.UnitTablespoon, domain.UnitGrams},
				{"sugar", "7.50", "60", domain.UnitTablespoon, domain.UnitGrams},
			},
		},
		{
			name: "one cup rounds for display only",
			cups: 1,
			want: []row{
				{"milk", "0.67", "83", domain.UnitCup, domain.UnitMilliliters},
				{"water", "0.33", "42", domain.UnitCup, domain.UnitMilliliters},
				{"tea leaves", "0.50", "4", domain.UnitTablespoon, domain.UnitGrams},
				{"sugar", "1.25", "10", domain.UnitTablespoon, domain.UnitGrams},
			},
		},
		{
			name: "twenty cups",
			cups: 20,
			want: []row{
				{"milk", "13.33", "1667", domain.UnitCup, domain.UnitMilliliters},
				{"water", "6.67", "833", domain.UnitCup, domain.UnitMilliliters},
				{"tea leaves", "10.00", "80", domain.UnitTablespoon, domain.UnitGrams},
				{"sugar", "25.00", "200", domain.UnitTablespoon, domain.UnitGrams},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scaler := usecase.NewRecipeScaler(nil)
			scaler.SetCups(tt.cups)

			got := scaler.Ingredients()

			require.Len(t, got, len(tt.want))
			for i, w := range tt.want {
				assert.Equal(t, w.name, got[i].Name)
				assert.Equal(t, w.quantity, got[i].QuantityText(), w.name)
				assert.Equal(t, w.converted, got[i].ConvertedText(), w.name)
				assert.Equal(t, w.unit, got[i].Unit)
				assert.Equal(t, w.into, got[i].ConvertedUnit)
			}
			assert.Equal(t, got, scaler.Ingredients(), "derivation must be reproducible")
		})
	}
}

func TestRecipeScaler_SetCups(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{in: 0, want: 1},
		{in: -4, want: 1},
		{in: 1, want: 1},
		{in: 6, want: 6},
		{in: 20, want: 20},
		{in: 99, want: 20},
	}

	scaler := usecase.NewRecipeScaler(nil)
	assert.Equal(t, usecase.DefaultCups, scaler.Cups())

	for _, tt := range tests {
		scaler.SetCups(tt.in)
		assert.Equal(t, tt.want, scaler.Cups(), "SetCups(%d)", tt.in)
	}
}

func TestRecipeScaler_Steps(t *testing.T) {
	scaler := usecase.NewRecipeScaler(nil)

	scaler.SetCups(1)
	one := scaler.Steps()
	require.Len(t, one, 4)
	assert.Equal(t, "Boil on high flame 1 time. (Let it rise, drop, and repeat.)", one[1].Instruction)
	assert.Equal(t, "After resting, boil again on high flame 1 time. Strain and serve hot.", one[3].Instruction)

	scaler.SetCups(2)
	two := scaler.Steps()
	require.Len(t, two, 4)
	assert.Equal(t, "Boil on high flame 2 times. (Let it rise, drop, and repeat.)", two[1].Instruction)

	for i, step := range two {
		assert.Equal(t, i+1, step.Order)
	}
	assert.Equal(t, one[0], two[0])
	assert.Equal(t, one[2], two[2])
	require.NotNil(t, two[2].Timer)
	assert.Equal(t, usecase.RestDuration, two[2].Timer.Duration)
	assert.Nil(t, two[0].Timer)
}

func TestRecipeScaler_ExportText(t *testing.T) {
	scaler := usecase.NewRecipeScaler(nil)

	want := "For 6 cup(s) of tea:\n" +
		"- 4.00 cups (500 ml) milk\n" +
		"- 2.00 cups (250 ml) water (+ a little more)\n" +
		"- 3.00 tablespoons (24 g) tea leaves\n" +
		"- 7.50 tablespoons (60 g) sugar"

	assert.Equal(t, want, scaler.ExportText())
}

func TestRecipeScaler_Export(t *testing.T) {
	ctrl := gomock.NewController(t)
	clipboard := mock_usecase.NewMockClipboardWriter(ctrl)

	scaler := usecase.NewRecipeScaler(clipboard)
	scaler.SetCups(2)

	clipboard.EXPECT().TryPrimary(gomock.Any(), scaler.ExportText()).Return(nil)

	text, err := scaler.Export(context.Background())

	assert.NoError(t, err)
	assert.Contains(t, text, "For 2 cup(s) of tea:")
}

func TestRecipeScaler_Extras(t *testing.T) {
	scaler := usecase.NewRecipeScaler(nil)

	extras := scaler.Extras()
	assert.Equal(t, []string{"Ginger", "Tea Masala", "Cardamom"}, extras)

	extras[0] = "Salt"
	assert.Equal(t, "Ginger", scaler.Extras()[0])
}
