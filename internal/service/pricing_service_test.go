package service

import (
	"testing"

	"github.com/sefazor/pricing-web/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func price(v float64) *float64 {
	return &v
}

type stubPlans struct {
	header models.PricingHeader
	plans  []models.Plan
}

func (s stubPlans) Header() models.PricingHeader { return s.header }
func (s stubPlans) GetAll() []models.Plan        { return s.plans }

func TestBuildCard_Prices(t *testing.T) {
	basic := models.Plan{Title: "Basic", MonthlyPrice: price(10), YearlyPrice: price(100), ActionLabel: "Get Started"}
	yearlyOnly := models.Plan{Title: "Annual", YearlyPrice: price(90), ActionLabel: "Get Started"}
	enterprise := models.Plan{Title: "Enterprise", ActionLabel: models.ContactSalesLabel, Exclusive: true}
	zero := models.Plan{Title: "Free", MonthlyPrice: price(0), YearlyPrice: price(0), ActionLabel: "Get Started"}

	tests := []struct {
		name     string
		plan     models.Plan
		yearly   bool
		price    string
		interval string
		savings  string
	}{
		{"monthly", basic, false, "$10", "/month", ""},
		{"yearly with savings", basic, true, "$100", "/year", "20"},
		{"yearly only price shows per year without badge", yearlyOnly, true, "$90", "/year", ""},
		{"yearly only price in monthly mode", yearlyOnly, false, customPriceText, "", ""},
		{"no prices", enterprise, true, customPriceText, "", ""},
		{"zero price counts as absent", zero, false, customPriceText, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card := BuildCard(tt.plan, tt.yearly)
			assert.Equal(t, tt.price, card.Price)
			assert.Equal(t, tt.interval, card.Interval)
			assert.Equal(t, tt.savings, card.Savings)
			assert.Equal(t, tt.yearly, card.Yearly)
		})
	}
}

func TestBuildCard_Classes(t *testing.T) {
	popular := BuildCard(models.Plan{Title: "Pro", Popular: true}, false)
	assert.Contains(t, popular.CardClass, "border-rose-400")
	assert.NotContains(t, popular.CardClass, "border-zinc-700")
	assert.Contains(t, popular.BadgeClass, "from-orange-400")

	exclusive := BuildCard(models.Plan{Title: "Enterprise", Exclusive: true}, false)
	assert.Contains(t, exclusive.CardClass, "animate-background-shine")
	assert.Contains(t, exclusive.CardClass, "border-zinc-700")
	// the shine background replaces the card background
	assert.NotContains(t, exclusive.CardClass, "bg-card ")
}

func TestSavings(t *testing.T) {
	cases := []struct {
		monthly, yearly float64
	}{
		{10, 100},
		{25, 250},
		{9.99, 99.99},
		{5, 70},
	}
	for _, c := range cases {
		m := decimal.NewFromFloat(c.monthly)
		y := decimal.NewFromFloat(c.yearly)
		got := Savings(m, y)
		assert.True(t, got.Add(y).Equal(m.Mul(decimal.NewFromInt(12))), "savings plus yearly must equal twelve months")
	}
	assert.Equal(t, "-10", Savings(decimal.NewFromInt(5), decimal.NewFromInt(70)).String())
}

func TestMinorUnits(t *testing.T) {
	assert.Equal(t, int64(1000), MinorUnits(decimal.NewFromFloat(10)))
	assert.Equal(t, int64(1999), MinorUnits(decimal.NewFromFloat(19.99)))
	assert.Equal(t, int64(25000), MinorUnits(decimal.NewFromFloat(250)))
}

func TestEffectivePrice(t *testing.T) {
	plan := models.Plan{MonthlyPrice: price(25), YearlyPrice: price(250)}

	p, ok := EffectivePrice(plan, false)
	require.True(t, ok)
	assert.Equal(t, "25", p.String())

	p, ok = EffectivePrice(plan, true)
	require.True(t, ok)
	assert.Equal(t, "250", p.String())

	_, ok = EffectivePrice(models.Plan{MonthlyPrice: price(25)}, true)
	assert.False(t, ok)
}

func TestPricingService_Page(t *testing.T) {
	svc := NewPricingService(stubPlans{
		header: models.PricingHeader{Title: "Pricing Plans"},
		plans: []models.Plan{
			{Title: "Basic", MonthlyPrice: price(10), YearlyPrice: price(100)},
			{Title: "Enterprise", ActionLabel: models.ContactSalesLabel},
		},
	})

	page := svc.Page(true)
	assert.True(t, page.Yearly)
	assert.Equal(t, "Pricing Plans", page.Header.Title)
	require.Len(t, page.Cards, 2)
	assert.Equal(t, "Basic", page.Cards[0].Title)
	assert.Equal(t, "$100", page.Cards[0].Price)
	assert.Equal(t, customPriceText, page.Cards[1].Price)
	assert.Empty(t, page.Error)
}
