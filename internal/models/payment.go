package models

// CheckoutItem is a single line of a checkout session. Price is in minor
// currency units.
type CheckoutItem struct {
	Name     string `json:"name" validate:"required"`
	Price    int64  `json:"price" validate:"gt=0"`
	Quantity int64  `json:"quantity" validate:"gte=1"`
}

type CheckoutRequest struct {
	Items []CheckoutItem `json:"items" validate:"required,min=1,dive"`
}

// CheckoutSession is the backend's answer to a checkout request. The id is
// handed to the payment provider exactly once.
type CheckoutSession struct {
	ID string `json:"id"`
}

type CheckoutForm struct {
	Plan     string `form:"plan" validate:"required"`
	Interval string `form:"interval" validate:"omitempty,oneof=monthly yearly"`
}

func (f CheckoutForm) Yearly() bool {
	return f.Interval == "yearly"
}
