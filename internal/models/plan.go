package models

// ContactSalesLabel is the action label that routes a plan to the contact
// page instead of checkout.
const ContactSalesLabel = "Contact Sales"

// Plan is the display data of one pricing tier. Prices are in major currency
// units; a nil or zero price means the tier has no numeric price for that
// interval.
type Plan struct {
	Title        string   `yaml:"title" json:"title" validate:"required"`
	Description  string   `yaml:"description" json:"description"`
	MonthlyPrice *float64 `yaml:"monthly_price" json:"monthly_price,omitempty" validate:"omitempty,gte=0,cents"`
	YearlyPrice  *float64 `yaml:"yearly_price" json:"yearly_price,omitempty" validate:"omitempty,gte=0,cents"`
	Features     []string `yaml:"features" json:"features" validate:"dive,required"`
	ActionLabel  string   `yaml:"action_label" json:"action_label" validate:"required"`
	Popular      bool     `yaml:"popular" json:"popular"`
	Exclusive    bool     `yaml:"exclusive" json:"exclusive"`
}

func (p Plan) IsContactSales() bool {
	return p.ActionLabel == ContactSalesLabel
}

type PricingHeader struct {
	Title    string `yaml:"title" json:"title"`
	Subtitle string `yaml:"subtitle" json:"subtitle"`
}

type Catalog struct {
	Header PricingHeader `yaml:"header" json:"header"`
	Plans  []Plan        `yaml:"plans" json:"plans" validate:"required,min=1,dive"`
}
