package documents_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hvac-backoffice/documents"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func line(qty, rate, pct string) documents.Line {
	return documents.Line{Quantity: d(qty), Rate: d(rate), GSTPercent: d(pct)}
}

func TestCompute_ExclusiveSplit(t *testing.T) {
	got, err := documents.Compute(
		[]documents.Line{line("2", "100.00", "18")},
		documents.GSTSplitCGSTSGST, documents.TaxExclusive,
		decimal.Zero, decimal.Zero,
	)
	require.NoError(t, err)

	assert.True(t, got.Subtotal.Equal(d("200.00")), "subtotal = %s", got.Subtotal)
	assert.True(t, got.GSTAmount.Equal(d("36.00")), "gst = %s", got.GSTAmount)
	assert.True(t, got.CGSTAmount.Equal(d("18.00")), "cgst = %s", got.CGSTAmount)
	assert.True(t, got.SGSTAmount.Equal(d("18.00")), "sgst = %s", got.SGSTAmount)
	assert.True(t, got.IGSTAmount.IsZero())
	assert.True(t, got.GrandTotal.Equal(d("236.00")), "grand = %s", got.GrandTotal)
}

func TestCompute_InclusiveKeepsBase(t *testing.T) {
	// Inclusive semantics back-calculate the tax out of the rate but leave
	// the stored taxable base unchanged (original system behavior).
	got, err := documents.Compute(
		[]documents.Line{line("2", "100.00", "18")},
		documents.GSTSingleIGST, documents.TaxInclusive,
		decimal.Zero, decimal.Zero,
	)
	require.NoError(t, err)

	assert.True(t, got.Subtotal.Equal(d("200.00")), "subtotal = %s", got.Subtotal)
	assert.True(t, got.GSTAmount.Equal(d("30.51")), "gst = %s", got.GSTAmount)
	assert.True(t, got.IGSTAmount.Equal(d("30.51")))
	assert.True(t, got.CGSTAmount.IsZero())
}

func TestCompute_SingleIGST(t *testing.T) {
	got, err := documents.Compute(
		[]documents.Line{line("1", "1000.00", "28")},
		documents.GSTSingleIGST, documents.TaxExclusive,
		decimal.Zero, decimal.Zero,
	)
	require.NoError(t, err)

	assert.True(t, got.IGSTAmount.Equal(d("280.00")))
	assert.True(t, got.CGSTAmount.IsZero())
	assert.True(t, got.SGSTAmount.IsZero())
	assert.True(t, got.GrandTotal.Equal(d("1280.00")))
}

func TestCompute_FlatChargesFoldIntoSubtotalNotTax(t *testing.T) {
	ln := line("1", "500.00", "18")
	ln.FlatCharges = d("120.00") // mathadi + transport, untaxed
	got, err := documents.Compute(
		[]documents.Line{ln},
		documents.GSTSplitCGSTSGST, documents.TaxExclusive,
		decimal.Zero, decimal.Zero,
	)
	require.NoError(t, err)

	assert.True(t, got.Subtotal.Equal(d("620.00")), "subtotal = %s", got.Subtotal)
	assert.True(t, got.GSTAmount.Equal(d("90.00")), "gst computed on base only, got %s", got.GSTAmount)
	assert.True(t, got.Lines[0].Total.Equal(d("710.00")))
	// breakup buckets carry the taxable base without the flat charges
	require.Len(t, got.Breakup, 1)
	assert.True(t, got.Breakup[0].TaxableValue.Equal(d("500.00")))
}

func TestCompute_SectionLinesContributeNothing(t *testing.T) {
	got, err := documents.Compute(
		[]documents.Line{
			{Section: true},
			line("3", "50.00", "18"),
		},
		documents.GSTSplitCGSTSGST, documents.TaxExclusive,
		decimal.Zero, decimal.Zero,
	)
	require.NoError(t, err)

	assert.True(t, got.Subtotal.Equal(d("150.00")))
	assert.True(t, got.Lines[0].Base.IsZero())
	assert.True(t, got.Lines[0].Total.IsZero())
}

func TestCompute_BreakupByRate(t *testing.T) {
	got, err := documents.Compute(
		[]documents.Line{
			line("1", "100.00", "18"),
			line("1", "200.00", "18"),
			line("1", "100.00", "28"),
		},
		documents.GSTSplitCGSTSGST, documents.TaxExclusive,
		decimal.Zero, decimal.Zero,
	)
	require.NoError(t, err)
	require.Len(t, got.Breakup, 2)

	b18, b28 := got.Breakup[0], got.Breakup[1]
	assert.True(t, b18.GSTPercent.Equal(d("18")))
	assert.True(t, b18.TaxableValue.Equal(d("300.00")))
	assert.True(t, b18.CGSTRate.Equal(d("9")))
	assert.True(t, b18.CGSTAmount.Equal(d("27.00")))
	assert.True(t, b18.SGSTAmount.Equal(d("27.00")))

	assert.True(t, b28.TaxableValue.Equal(d("100.00")))
	assert.True(t, b28.CGSTAmount.Equal(d("14.00")))
}

func TestCompute_SurchargesAndRounding(t *testing.T) {
	got, err := documents.Compute(
		[]documents.Line{line("1", "100.00", "0")},
		documents.GSTSingleIGST, documents.TaxExclusive,
		d("50.00"), d("-0.37"),
	)
	require.NoError(t, err)
	assert.True(t, got.GrandTotal.Equal(d("149.63")), "grand = %s", got.GrandTotal)
}

func TestCompute_RoundingAdjustmentBounded(t *testing.T) {
	for _, adj := range []string{"10.01", "-10.01", "999"} {
		_, err := documents.Compute(
			[]documents.Line{line("1", "100.00", "18")},
			documents.GSTSingleIGST, documents.TaxExclusive,
			decimal.Zero, d(adj),
		)
		assert.Error(t, err, "adjustment %s must be rejected", adj)
	}
	_, err := documents.Compute(
		[]documents.Line{line("1", "100.00", "18")},
		documents.GSTSingleIGST, documents.TaxExclusive,
		decimal.Zero, d("10.00"),
	)
	assert.NoError(t, err)
}

func TestCompute_RejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		ln   documents.Line
		gst  documents.GSTType
	}{
		{"negative quantity", line("-1", "100.00", "18"), documents.GSTSplitCGSTSGST},
		{"negative rate", line("1", "-5.00", "18"), documents.GSTSplitCGSTSGST},
		{"negative percent", line("1", "5.00", "-18"), documents.GSTSplitCGSTSGST},
		{"bad gst type", line("1", "5.00", "18"), documents.GSTType("VAT")},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := documents.Compute([]documents.Line{tc.ln}, tc.gst,
				documents.TaxExclusive, decimal.Zero, decimal.Zero)
			assert.Error(t, err)
		})
	}
}

func TestCompute_Idempotent(t *testing.T) {
	lines := []documents.Line{
		line("2", "100.00", "18"),
		line("5", "49.99", "28"),
	}
	first, err := documents.Compute(lines, documents.GSTSplitCGSTSGST,
		documents.TaxExclusive, d("10.00"), d("0.01"))
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		again, err := documents.Compute(lines, documents.GSTSplitCGSTSGST,
			documents.TaxExclusive, d("10.00"), d("0.01"))
		require.NoError(t, err)
		assert.True(t, first.Subtotal.Equal(again.Subtotal))
		assert.True(t, first.GSTAmount.Equal(again.GSTAmount))
		assert.True(t, first.GrandTotal.Equal(again.GrandTotal))
	}
}

func TestCompute_SubtotalEqualsSumOfLineBases(t *testing.T) {
	lines := []documents.Line{
		line("2", "100.00", "18"),
		{Section: true},
		line("3", "33.33", "12"),
	}
	got, err := documents.Compute(lines, documents.GSTSingleIGST,
		documents.TaxExclusive, decimal.Zero, decimal.Zero)
	require.NoError(t, err)

	sum := decimal.Zero
	for _, lt := range got.Lines {
		sum = sum.Add(lt.Base)
	}
	assert.True(t, got.Subtotal.Equal(sum), "subtotal %s != sum of bases %s", got.Subtotal, sum)
}
