package utils

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var ones = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight",
	"Nine", "Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen",
	"Sixteen", "Seventeen", "Eighteen", "Nineteen",
}

var tens = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy",
	"Eighty", "Ninety",
}

func below100(n int64) string {
	if n < 20 {
		return ones[n]
	}
	s := tens[n/10]
	if n%10 != 0 {
		s += " " + ones[n%10]
	}
	return s
}

func below1000(n int64) string {
	var parts []string
	if n >= 100 {
		parts = append(parts, ones[n/100]+" Hundred")
		n %= 100
	}
	if n > 0 {
		parts = append(parts, below100(n))
	}
	return strings.Join(parts, " ")
}

// AmountInWords spells a rupee amount in the Indian numbering system
// (lakh/crore), e.g. "Rupees One Lakh Twenty Three Thousand and Fifty
// Paise Only". Used for the amount_in_words invoice field.
func AmountInWords(amount decimal.Decimal) string {
	if amount.IsNegative() {
		return "Minus " + AmountInWords(amount.Neg())
	}

	rupees := amount.IntPart()
	paise := amount.Sub(decimal.NewFromInt(rupees)).Mul(decimal.NewFromInt(100)).Round(0).IntPart()

	var parts []string
	scales := []struct {
		div  int64
		name string
	}{
		{10000000, "Crore"},
		{100000, "Lakh"},
		{1000, "Thousand"},
	}
	n := rupees
	for _, sc := range scales {
		if n >= sc.div {
			parts = append(parts, below1000(n/sc.div)+" "+sc.name)
			n %= sc.div
		}
	}
	if n > 0 {
		parts = append(parts, below1000(n))
	}
	if len(parts) == 0 {
		parts = append(parts, "Zero")
	}

	words := "Rupees " + strings.Join(parts, " ")
	if paise > 0 {
		words += fmt.Sprintf(" and %s Paise", below100(paise))
	}
	return words + " Only"
}
