package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAmountInWords(t *testing.T) {
	tests := []struct {
		amount string
		want   string
	}{
		{"0", "Rupees Zero Only"},
		{"7", "Rupees Seven Only"},
		{"42", "Rupees Forty Two Only"},
		{"236", "Rupees Two Hundred Thirty Six Only"},
		{"1000", "Rupees One Thousand Only"},
		{"123050", "Rupees One Lakh Twenty Three Thousand Fifty Only"},
		{"12345678", "Rupees One Crore Twenty Three Lakh Forty Five Thousand Six Hundred Seventy Eight Only"},
		{"1234.56", "Rupees One Thousand Two Hundred Thirty Four and Fifty Six Paise Only"},
		{"0.05", "Rupees Zero and Five Paise Only"},
	}
	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			got := AmountInWords(decimal.RequireFromString(tt.amount))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAmountInWordsNegative(t *testing.T) {
	got := AmountInWords(decimal.RequireFromString("-12"))
	assert.Equal(t, "Minus Rupees Twelve Only", got)
}
