// Package pricing derives prices and order totals from cart lines.
//
// All arithmetic is done on full-precision decimals; callers round to cents
// only when presenting a value.
package pricing

import (
	"time"

	"overcooked-storefront/storefront-svc/internal/domain"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// EffectivePrice is the unit price after applying the line's promotion when
// now falls inside its window.
func EffectivePrice(line domain.CartLine, now time.Time) decimal.Decimal {
	if !line.Promotion.ActiveAt(now) {
		return line.UnitPrice
	}
	factor := decimal.NewFromInt(1).Sub(line.Promotion.Percent.Div(hundred))
	return line.UnitPrice.Mul(factor)
}

func LineTotal(line domain.CartLine, now time.Time) decimal.Decimal {
	return EffectivePrice(line, now).Mul(decimal.NewFromInt(int64(line.Quantity)))
}

func TotalItems(lines []domain.CartLine) int {
	total := 0
	for _, line := range lines {
		total += line.Quantity
	}
	return total
}

func Subtotal(lines []domain.CartLine, now time.Time) decimal.Decimal {
	subtotal := decimal.Zero
	for _, line := range lines {
		subtotal = subtotal.Add(LineTotal(line, now))
	}
	return subtotal
}

// Tax is charged on the pre-tax subtotal only.
func Tax(subtotal decimal.Decimal, settings domain.OrderSettings) decimal.Decimal {
	return subtotal.Mul(settings.TaxRate)
}

// OrderTotal is subtotal + tax + delivery fee. The delivery fee is not taxed.
func OrderTotal(subtotal decimal.Decimal, settings domain.OrderSettings) decimal.Decimal {
	return subtotal.Add(Tax(subtotal, settings)).Add(settings.DeliveryFee)
}

func Compute(lines []domain.CartLine, settings domain.OrderSettings, now time.Time) domain.Totals {
	subtotal := Subtotal(lines, now)
	tax := Tax(subtotal, settings)
	return domain.Totals{
		ItemCount:   TotalItems(lines),
		Subtotal:    subtotal,
		Tax:         tax,
		DeliveryFee: settings.DeliveryFee,
		Total:       subtotal.Add(tax).Add(settings.DeliveryFee),
	}
}

func PriceLines(lines []domain.CartLine, now time.Time) []domain.PricedLine {
	priced := make([]domain.PricedLine, 0, len(lines))
	for _, line := range lines {
		priced = append(priced, domain.PricedLine{
			CartLine:        line,
			PromotionActive: line.Promotion.ActiveAt(now),
			EffectivePrice:  EffectivePrice(line, now),
			LineTotal:       LineTotal(line, now),
		})
	}
	return priced
}
