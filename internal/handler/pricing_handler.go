package handler

import (
	"context"
	"errors"
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/pricing-web/internal/models"
	"github.com/sefazor/pricing-web/internal/repository"
	"github.com/sefazor/pricing-web/internal/service"
	"github.com/sefazor/pricing-web/pkg/utils"
)

type PageBuilder interface {
	Page(yearly bool) service.PricingPage
}

type PlanFinder interface {
	GetByTitle(title string) (*models.Plan, error)
}

type CheckoutStarter interface {
	Start(ctx context.Context, plan models.Plan, yearly bool) service.Result
}

type PricingHandler struct {
	pricingService  PageBuilder
	checkoutService CheckoutStarter
	plans           PlanFinder
	validator       *utils.Validator
}

func NewPricingHandler(pricingService PageBuilder, checkoutService CheckoutStarter, plans PlanFinder, validator *utils.Validator) *PricingHandler {
	return &PricingHandler{
		pricingService:  pricingService,
		checkoutService: checkoutService,
		plans:           plans,
		validator:       validator,
	}
}

func (h *PricingHandler) GetPricing(c *fiber.Ctx) error {
	yearly := c.Query("interval") == "yearly"
	return c.Render("pricing", h.pricingService.Page(yearly))
}

// Checkout runs the action of a pricing card. Browsers get a redirect (or
// the provider's handoff page); callers asking for JSON get the result.
func (h *PricingHandler) Checkout(c *fiber.Ctx) error {
	var form models.CheckoutForm
	if err := c.BodyParser(&form); err != nil {
		return h.checkoutFailed(c, fiber.StatusBadRequest, form.Yearly(), "Invalid checkout request")
	}
	if err := h.validator.Struct(form); err != nil {
		return h.checkoutFailed(c, fiber.StatusBadRequest, form.Yearly(), "Please choose a plan")
	}

	plan, err := h.plans.GetByTitle(form.Plan)
	if err != nil {
		if errors.Is(err, repository.ErrPlanNotFound) {
			return h.checkoutFailed(c, fiber.StatusNotFound, form.Yearly(), "Plan not found")
		}
		return h.checkoutFailed(c, fiber.StatusInternalServerError, form.Yearly(), err.Error())
	}

	result := h.checkoutService.Start(c.UserContext(), *plan, form.Yearly())

	switch result.Action {
	case service.ActionContact:
		location := result.Location + "?plan=" + url.QueryEscape(plan.Title)
		if wantsJSON(c) {
			return c.JSON(models.SuccessResponse(fiber.Map{"action": result.Action.String(), "location": location}, ""))
		}
		return c.Redirect(location, fiber.StatusSeeOther)

	case service.ActionRedirect:
		if wantsJSON(c) && result.Location != "" {
			return c.JSON(models.SuccessResponse(fiber.Map{"action": result.Action.String(), "location": result.Location}, ""))
		}
		if result.Location != "" {
			return c.Redirect(result.Location, fiber.StatusSeeOther)
		}
		c.Type("html", "utf-8")
		return c.SendString(string(result.Handoff.Page))
	}

	status := fiber.StatusBadGateway
	if errors.Is(result.Err, service.ErrNoPrice) {
		status = fiber.StatusBadRequest
	}
	return h.checkoutFailed(c, status, form.Yearly(), result.Message())
}

func (h *PricingHandler) checkoutFailed(c *fiber.Ctx, status int, yearly bool, msg string) error {
	if wantsJSON(c) {
		return c.Status(status).JSON(models.ErrorResponse(msg))
	}
	page := h.pricingService.Page(yearly)
	page.Error = msg
	return c.Status(status).Render("pricing", page)
}

func wantsJSON(c *fiber.Ctx) bool {
	return strings.Contains(c.Get(fiber.HeaderAccept), fiber.MIMEApplicationJSON)
}
