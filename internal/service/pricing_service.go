package service

import (
	"github.com/sefazor/pricing-web/internal/models"
	"github.com/sefazor/pricing-web/pkg/ui"
	"github.com/shopspring/decimal"
)

const (
	cardBaseClass   = "rounded-lg border bg-card text-card-foreground shadow-sm w-72 flex flex-col justify-between py-1"
	cardShineClass  = "animate-background-shine bg-white dark:bg-[linear-gradient(110deg,#000103,45%,#1e2631,55%,#000103)] bg-[length:200%_100%] transition-colors"
	badgeBaseClass  = "px-2.5 rounded-xl h-fit text-sm py-1 bg-zinc-200 text-black dark:bg-zinc-800 dark:text-white"
	badgeHotClass   = "bg-gradient-to-r from-orange-400 to-rose-400 dark:text-black"
	customPriceText = "Custom"
)

var twelve = decimal.NewFromInt(12)

// PlanCard is everything the pricing card template needs for one plan.
type PlanCard struct {
	Title       string
	Description string
	Price       string
	Interval    string
	Savings     string
	Features    []string
	ActionLabel string
	Popular     bool
	Exclusive   bool
	Yearly      bool
	CardClass   string
	BadgeClass  string
}

type PricingPage struct {
	Header models.PricingHeader
	Yearly bool
	Cards  []PlanCard
	Error  string
}

type PlanLister interface {
	Header() models.PricingHeader
	GetAll() []models.Plan
}

type PricingService struct {
	plans PlanLister
}

func NewPricingService(plans PlanLister) *PricingService {
	return &PricingService{
		plans: plans,
	}
}

func (s *PricingService) Page(yearly bool) PricingPage {
	plans := s.plans.GetAll()
	cards := make([]PlanCard, 0, len(plans))
	for _, p := range plans {
		cards = append(cards, BuildCard(p, yearly))
	}
	return PricingPage{
		Header: s.plans.Header(),
		Yearly: yearly,
		Cards:  cards,
	}
}

// BuildCard selects the displayed price of a plan. The savings badge needs
// both prices; a yearly price alone still displays per year.
func BuildCard(plan models.Plan, yearly bool) PlanCard {
	card := PlanCard{
		Title:       plan.Title,
		Description: plan.Description,
		Features:    plan.Features,
		ActionLabel: plan.ActionLabel,
		Popular:     plan.Popular,
		Exclusive:   plan.Exclusive,
		Yearly:      yearly,
		CardClass: ui.Merge(
			cardBaseClass,
			borderClass(plan.Popular),
			"mx-auto sm:mx-0",
			ui.If(plan.Exclusive, cardShineClass),
		),
		BadgeClass: ui.Merge(badgeBaseClass, ui.If(plan.Popular, badgeHotClass)),
	}

	monthly, hasMonthly := amount(plan.MonthlyPrice)
	annual, hasYearly := amount(plan.YearlyPrice)

	if yearly && hasYearly && hasMonthly {
		card.Savings = Savings(monthly, annual).String()
	}

	switch {
	case yearly && hasYearly:
		card.Price = "$" + annual.String()
		card.Interval = "/year"
	case hasMonthly:
		card.Price = "$" + monthly.String()
		card.Interval = "/month"
	default:
		card.Price = customPriceText
	}

	return card
}

// Savings is what a year costs on the monthly price minus the yearly price.
func Savings(monthly, yearly decimal.Decimal) decimal.Decimal {
	return monthly.Mul(twelve).Sub(yearly)
}

// EffectivePrice is the price charged for the interval: yearly when the
// yearly flag is set, monthly otherwise.
func EffectivePrice(plan models.Plan, yearly bool) (decimal.Decimal, bool) {
	if yearly {
		return amount(plan.YearlyPrice)
	}
	return amount(plan.MonthlyPrice)
}

// MinorUnits converts a major-unit price to the provider's minor units.
func MinorUnits(price decimal.Decimal) int64 {
	return price.Shift(2).Round(0).IntPart()
}

func amount(p *float64) (decimal.Decimal, bool) {
	if p == nil || *p == 0 {
		return decimal.Zero, false
	}
	return decimal.NewFromFloat(*p), true
}

func borderClass(popular bool) string {
	if popular {
		return "border-rose-400"
	}
	return "border-zinc-700"
}
