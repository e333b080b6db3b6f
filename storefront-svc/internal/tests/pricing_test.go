package tests

import (
	"testing"
	"time"

	"overcooked-storefront/storefront-svc/internal/domain"
	"overcooked-storefront/storefront-svc/internal/pricing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func line(price string, qty int, promo *domain.Promotion) domain.CartLine {
	return domain.CartLine{
		ItemID:    "1",
		ItemType:  domain.ItemTypeProduct,
		UnitPrice: dec(price),
		Promotion: promo,
		Quantity:  qty,
	}
}

func TestEffectivePrice(t *testing.T) {
	before := fixedNow.Add(-24 * time.Hour)
	after := fixedNow.Add(24 * time.Hour)

	tests := []struct {
		name  string
		promo *domain.Promotion
		want  string
	}{
		{name: "no promotion", promo: nil, want: "20"},
		{name: "open window", promo: &domain.Promotion{Percent: dec("25")}, want: "15"},
		{name: "inside window", promo: &domain.Promotion{Percent: dec("50"), StartsAt: &before, EndsAt: &after}, want: "10"},
		{name: "not started", promo: &domain.Promotion{Percent: dec("50"), StartsAt: &after}, want: "20"},
		{name: "expired", promo: &domain.Promotion{Percent: dec("50"), EndsAt: &before}, want: "20"},
		{name: "zero percent", promo: &domain.Promotion{Percent: dec("0")}, want: "20"},
		{name: "full discount", promo: &domain.Promotion{Percent: dec("100")}, want: "0"},
		{name: "fractional percent", promo: &domain.Promotion{Percent: dec("12.5")}, want: "17.5"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			assertDecimal(t, testCase.want, pricing.EffectivePrice(line("20", 1, testCase.promo), fixedNow))
		})
	}
}

func TestPromotion_ActiveAt_ClosedInterval(t *testing.T) {
	start := fixedNow
	end := fixedNow.Add(time.Hour)
	promo := &domain.Promotion{Percent: dec("10"), StartsAt: &start, EndsAt: &end}

	assert.True(t, promo.ActiveAt(start))
	assert.True(t, promo.ActiveAt(end))
	assert.False(t, promo.ActiveAt(start.Add(-time.Millisecond)))
	assert.False(t, promo.ActiveAt(end.Add(time.Millisecond)))

	var none *domain.Promotion
	assert.False(t, none.ActiveAt(fixedNow))
}

func TestPricing_FullPrecisionUntilPresentation(t *testing.T) {
	lines := []domain.CartLine{
		line("0.333", 3, nil),
		line("1.005", 1, nil),
	}
	settings := domain.OrderSettings{TaxRate: dec("0.1"), DeliveryFee: dec("0")}

	totals := pricing.Compute(lines, settings, fixedNow)
	assertDecimal(t, "2.004", totals.Subtotal)
	assertDecimal(t, "0.2004", totals.Tax)
	assertDecimal(t, "2.2044", totals.Total)

	rounded := totals.Rounded()
	assertDecimal(t, "2", rounded.Subtotal)
	assertDecimal(t, "0.2", rounded.Tax)
	assertDecimal(t, "2.2", rounded.Total)
}

func TestPricing_DeliveryFeeIsNotTaxed(t *testing.T) {
	settings := domain.OrderSettings{TaxRate: dec("0.2"), DeliveryFee: dec("10")}

	assertDecimal(t, "130", pricing.OrderTotal(dec("100"), settings))
	assertDecimal(t, "10", pricing.OrderTotal(dec("0"), settings))
}

func TestPricing_EmptyCart(t *testing.T) {
	totals := pricing.Compute(nil, domain.DefaultOrderSettings(), fixedNow)

	assert.Equal(t, 0, totals.ItemCount)
	assertDecimal(t, "0", totals.Subtotal)
	assertDecimal(t, "0", totals.Total)
	assert.Empty(t, pricing.PriceLines(nil, fixedNow))
}

func TestCatalogItem_Validate(t *testing.T) {
	start := fixedNow
	end := fixedNow.Add(-time.Hour)

	tests := []struct {
		name    string
		mutate  func(*domain.CatalogItem)
		wantErr bool
	}{
		{name: "valid", mutate: func(*domain.CatalogItem) {}},
		{name: "missing id", mutate: func(i *domain.CatalogItem) { i.ID = " " }, wantErr: true},
		{name: "bad type", mutate: func(i *domain.CatalogItem) { i.Type = "drink" }, wantErr: true},
		{name: "negative price", mutate: func(i *domain.CatalogItem) { i.Price = dec("-1") }, wantErr: true},
		{name: "negative stock", mutate: func(i *domain.CatalogItem) { i.Stock = -1 }, wantErr: true},
		{name: "percent over 100", mutate: func(i *domain.CatalogItem) { i.Promotion = &domain.Promotion{Percent: dec("101")} }, wantErr: true},
		{name: "window ends before start", mutate: func(i *domain.CatalogItem) {
			i.Promotion = &domain.Promotion{Percent: dec("5"), StartsAt: &start, EndsAt: &end}
		}, wantErr: true},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			item := product("1", "Croissant", "2.5")
			testCase.mutate(&item)
			err := item.Validate()
			if testCase.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidItem)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestOrderSettings_Validate(t *testing.T) {
	assert.NoError(t, domain.DefaultOrderSettings().Validate())
	assert.ErrorIs(t, domain.OrderSettings{DeliveryFee: dec("-1"), TaxRate: dec("0.1")}.Validate(), domain.ErrInvalidSettings)
	assert.ErrorIs(t, domain.OrderSettings{MinOrderAmount: dec("-1"), TaxRate: dec("0.1")}.Validate(), domain.ErrInvalidSettings)
	assert.ErrorIs(t, domain.OrderSettings{TaxRate: dec("1.5")}.Validate(), domain.ErrInvalidSettings)
}

func TestParseItemType(t *testing.T) {
	got, err := domain.ParseItemType(" Menu ")
	assert.NoError(t, err)
	assert.Equal(t, domain.ItemTypeMenu, got)

	_, err = domain.ParseItemType("drink")
	assert.ErrorIs(t, err, domain.ErrInvalidItemType)
}

func TestOrderStatus_Transitions(t *testing.T) {
	tests := []struct {
		from, to domain.OrderStatus
		allowed  bool
	}{
		{domain.OrderStatusPending, domain.OrderStatusConfirmed, true},
		{domain.OrderStatusConfirmed, domain.OrderStatusPreparing, true},
		{domain.OrderStatusPreparing, domain.OrderStatusDelivering, true},
		{domain.OrderStatusDelivering, domain.OrderStatusCompleted, true},
		{domain.OrderStatusPending, domain.OrderStatusCancelled, true},
		{domain.OrderStatusDelivering, domain.OrderStatusCancelled, true},
		{domain.OrderStatusPending, domain.OrderStatusCompleted, false},
		{domain.OrderStatusCompleted, domain.OrderStatusCancelled, false},
		{domain.OrderStatusCancelled, domain.OrderStatusPending, false},
	}

	for _, testCase := range tests {
		t.Run(string(testCase.from)+"->"+string(testCase.to), func(t *testing.T) {
			assert.Equal(t, testCase.allowed, testCase.from.CanTransitionTo(testCase.to))
		})
	}

	_, err := domain.ParseOrderStatus("shipped")
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func lineTotal(l domain.CartLine) decimal.Decimal {
	return pricing.LineTotal(l, fixedNow)
}
