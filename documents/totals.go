package documents

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// GSTType selects how the computed tax is split across components.
// CGST_SGST halves the tax between the two intra-state components,
// IGST assigns the full amount to the single inter-state component.
type GSTType string

const (
	GSTSplitCGSTSGST GSTType = "CGST_SGST"
	GSTSingleIGST    GSTType = "IGST"
)

// Valid reports whether t is one of the supported GST types.
func (t GSTType) Valid() bool {
	return t == GSTSplitCGSTSGST || t == GSTSingleIGST
}

// TaxSemantics selects how line tax relates to the line rate.
type TaxSemantics int

const (
	// TaxExclusive: tax = base * percent / 100, added on top of the base.
	TaxExclusive TaxSemantics = iota
	// TaxInclusive: tax = base * percent / (100 + percent), back-calculated
	// out of a tax-inclusive rate. The base carried into the subtotal is
	// left unchanged.
	TaxInclusive
)

// MaxRoundingAdjustment bounds the symmetric rounding adjustment to
// 1000 minor units in either direction.
var MaxRoundingAdjustment = decimal.NewFromInt(10)

var hundred = decimal.NewFromInt(100)

// Line is one priced row of a commercial document. Section rows carry a
// description only and contribute nothing to the totals.
type Line struct {
	Section     bool
	Quantity    decimal.Decimal
	Rate        decimal.Decimal
	GSTPercent  decimal.Decimal
	FlatCharges decimal.Decimal // untaxed surcharges folded into the line total and subtotal
}

// LineTotals holds the computed amounts of a single line, in input order.
type LineTotals struct {
	Base      decimal.Decimal
	GSTAmount decimal.Decimal
	Total     decimal.Decimal // base + tax + flat charges
}

// RateBucket is one row of the breakup-by-rate table: all taxable value
// accumulated under a single GST percentage.
type RateBucket struct {
	GSTPercent   decimal.Decimal
	TaxableValue decimal.Decimal
	CGSTRate     decimal.Decimal
	CGSTAmount   decimal.Decimal
	SGSTRate     decimal.Decimal
	SGSTAmount   decimal.Decimal
	IGSTRate     decimal.Decimal
	IGSTAmount   decimal.Decimal
}

// Totals is the result of a computation pass over a document's lines.
type Totals struct {
	Subtotal   decimal.Decimal
	CGSTAmount decimal.Decimal
	SGSTAmount decimal.Decimal
	IGSTAmount decimal.Decimal
	GSTAmount  decimal.Decimal
	GrandTotal decimal.Decimal
	Lines      []LineTotals
	Breakup    []RateBucket
}

// Compute runs the totals pass: per-line base and tax, subtotal, tax split
// by GST type, breakup by rate, and the grand total including flat
// surcharges and a bounded rounding adjustment. It has no side effects and
// is idempotent over the same inputs.
func Compute(lines []Line, gstType GSTType, sem TaxSemantics, surcharges, rounding decimal.Decimal) (Totals, error) {
	if !gstType.Valid() {
		return Totals{}, fmt.Errorf("invalid gst_type %q", gstType)
	}
	if rounding.Abs().GreaterThan(MaxRoundingAdjustment) {
		return Totals{}, fmt.Errorf("rounding adjustment %s exceeds ±%s", rounding, MaxRoundingAdjustment)
	}

	var (
		subtotal = decimal.Zero
		gstTotal = decimal.Zero
		perLine  = make([]LineTotals, 0, len(lines))
		buckets  = map[string]*RateBucket{}
	)

	for i, ln := range lines {
		if ln.Section {
			perLine = append(perLine, LineTotals{})
			continue
		}
		if ln.Quantity.IsNegative() || ln.Rate.IsNegative() {
			return Totals{}, fmt.Errorf("line %d: negative quantity or rate", i+1)
		}
		if ln.GSTPercent.IsNegative() {
			return Totals{}, fmt.Errorf("line %d: negative gst_percent", i+1)
		}

		base := ln.Quantity.Mul(ln.Rate).Round(2)

		var tax decimal.Decimal
		switch sem {
		case TaxInclusive:
			tax = base.Mul(ln.GSTPercent).Div(hundred.Add(ln.GSTPercent)).Round(2)
		default:
			tax = base.Mul(ln.GSTPercent).Div(hundred).Round(2)
		}

		total := base.Add(tax).Add(ln.FlatCharges).Round(2)

		subtotal = subtotal.Add(base).Add(ln.FlatCharges)
		gstTotal = gstTotal.Add(tax)
		perLine = append(perLine, LineTotals{Base: base, GSTAmount: tax, Total: total})

		key := ln.GSTPercent.String()
		b, ok := buckets[key]
		if !ok {
			b = &RateBucket{GSTPercent: ln.GSTPercent}
			buckets[key] = b
		}
		b.TaxableValue = b.TaxableValue.Add(base)
	}

	t := Totals{
		Subtotal:  subtotal.Round(2),
		GSTAmount: gstTotal.Round(2),
		Lines:     perLine,
	}

	two := decimal.NewFromInt(2)
	if gstType == GSTSplitCGSTSGST {
		t.CGSTAmount = t.GSTAmount.Div(two).Round(2)
		t.SGSTAmount = t.GSTAmount.Div(two).Round(2)
	} else {
		t.IGSTAmount = t.GSTAmount
	}

	for _, b := range buckets {
		if gstType == GSTSplitCGSTSGST {
			half := b.GSTPercent.Div(two)
			b.CGSTRate = half
			b.SGSTRate = half
			b.CGSTAmount = b.TaxableValue.Mul(half).Div(hundred).Round(2)
			b.SGSTAmount = b.TaxableValue.Mul(half).Div(hundred).Round(2)
		} else {
			b.IGSTRate = b.GSTPercent
			b.IGSTAmount = b.TaxableValue.Mul(b.GSTPercent).Div(hundred).Round(2)
		}
		t.Breakup = append(t.Breakup, *b)
	}
	sort.Slice(t.Breakup, func(i, j int) bool {
		return t.Breakup[i].GSTPercent.LessThan(t.Breakup[j].GSTPercent)
	})

	t.GrandTotal = t.Subtotal.Add(t.GSTAmount).Add(surcharges).Add(rounding).Round(2)
	return t, nil
}
