package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/sefazor/pricing-web/internal/models"
	"github.com/sefazor/pricing-web/pkg/payment"
	"github.com/sefazor/pricing-web/pkg/utils"
	"go.uber.org/zap"
)

var ErrNoPrice = errors.New("plan has no price for the selected interval")

type Action int

const (
	ActionFailed Action = iota
	ActionContact
	ActionRedirect
)

func (a Action) String() string {
	switch a {
	case ActionContact:
		return "contact"
	case ActionRedirect:
		return "redirect"
	default:
		return "failed"
	}
}

// Result is the outcome of a checkout attempt. Failed results carry the
// cause so the page can tell the user; nothing is retried.
type Result struct {
	Action   Action
	Location string
	Handoff  *payment.Handoff
	Err      error
}

func (r Result) Failed() bool {
	return r.Action == ActionFailed
}

// Message is the text shown to the user for a failed checkout.
func (r Result) Message() string {
	switch {
	case !r.Failed():
		return ""
	case errors.Is(r.Err, ErrNoPrice):
		return "This plan can't be purchased online for the selected billing period."
	case errors.Is(r.Err, payment.ErrRejected):
		return "The payment provider could not open checkout. Please try again."
	default:
		return "We couldn't start checkout. Please try again in a moment."
	}
}

type SessionCreator interface {
	CreateCheckoutSession(ctx context.Context, req models.CheckoutRequest) (*models.CheckoutSession, error)
}

type CheckoutService struct {
	sessions     SessionCreator
	provider     payment.Provider
	validator    *utils.Validator
	contactRoute string
	logger       *zap.Logger
}

func NewCheckoutService(sessions SessionCreator, provider payment.Provider, validator *utils.Validator, contactRoute string, logger *zap.Logger) *CheckoutService {
	return &CheckoutService{
		sessions:     sessions,
		provider:     provider,
		validator:    validator,
		contactRoute: contactRoute,
		logger:       logger.Named("checkout"),
	}
}

// Start runs the action of a plan card: contact-sales plans go to the
// contact route, every other plan gets a payment session handed off to the
// provider.
func (s *CheckoutService) Start(ctx context.Context, plan models.Plan, yearly bool) Result {
	if plan.IsContactSales() {
		return Result{Action: ActionContact, Location: s.contactRoute}
	}

	log := s.logger.With(zap.String("plan", plan.Title), zap.Bool("yearly", yearly))

	price, ok := EffectivePrice(plan, yearly)
	if !ok {
		log.Warn("checkout requested without a price")
		return Result{Action: ActionFailed, Err: ErrNoPrice}
	}

	req := models.CheckoutRequest{
		Items: []models.CheckoutItem{
			{
				Name:     plan.Title,
				Price:    MinorUnits(price),
				Quantity: 1,
			},
		},
	}
	if err := s.validator.Struct(req); err != nil {
		log.Error("invalid checkout request", zap.Error(err))
		return Result{Action: ActionFailed, Err: fmt.Errorf("invalid checkout request: %w", err)}
	}

	session, err := s.sessions.CreateCheckoutSession(ctx, req)
	if err != nil {
		log.Error("Error creating checkout session", zap.Error(err))
		return Result{Action: ActionFailed, Err: err}
	}

	handoff, err := s.provider.Handoff(ctx, session.ID)
	if err != nil {
		log.Error("payment provider handoff failed", zap.String("session_id", session.ID), zap.Error(err))
		return Result{Action: ActionFailed, Err: err}
	}

	log.Info("checkout session created", zap.String("session_id", session.ID), zap.Int64("amount", req.Items[0].Price))
	return Result{Action: ActionRedirect, Location: handoff.URL, Handoff: handoff}
}
