package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatter_Words(t *testing.T) {
	f := NewRupeeFormatter()

	tests := []struct {
		name   string
		amount int64
		want   string
	}{
		{name: "zero has a defined phrase", amount: 0, want: "Zero rupees"},
		{name: "singular unit", amount: 1, want: "One rupee"},
		{name: "teens", amount: 15, want: "Fifteen rupees"},
		{name: "round tens", amount: 90, want: "Ninety rupees"},
		{name: "hundreds", amount: 1100, want: "One thousand one hundred rupees"},
		{name: "thousands", amount: 2500, want: "Two thousand five hundred rupees"},
		{name: "one lakh", amount: 100000, want: "One lakh rupees"},
		{name: "lakhs and thousands", amount: 1234567, want: "Twelve lakh thirty four thousand five hundred sixty seven rupees"},
		{name: "crore", amount: 10000000, want: "One crore rupees"},
		{name: "hundreds of crores", amount: 1250000000, want: "One hundred twenty five crore rupees"},
		{name: "negative", amount: -200, want: "Minus two hundred rupees"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.Words(tt.amount))
		})
	}
}

func TestFormatter_GroupAndDisplay(t *testing.T) {
	f := NewRupeeFormatter()

	assert.Equal(t, "₹", f.Symbol())
	assert.Equal(t, "INR", f.Code())

	assert.Equal(t, "0", f.Group(0))
	assert.Equal(t, "999", f.Group(999))
	assert.Equal(t, "1,100", f.Group(1100))
	assert.Equal(t, "1,00,000", f.Group(100000))
	assert.Equal(t, "12,34,567", f.Group(1234567))

	assert.Equal(t, "₹25,000", f.Display(25000))
	assert.Equal(t, "-₹200", f.Display(-200))
}
