package handler

import (
	"context"
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/pricing-web/internal/middleware"
	"github.com/sefazor/pricing-web/internal/models"
	"github.com/sefazor/pricing-web/pkg/backend"
)

type CategoryClient interface {
	ListCategories(ctx context.Context, scope backend.Scope) (json.RawMessage, error)
	DeleteCategory(ctx context.Context, scope backend.Scope, productID string) error
}

type CategoryHandler struct {
	client CategoryClient
}

func NewCategoryHandler(client CategoryClient) *CategoryHandler {
	return &CategoryHandler{
		client: client,
	}
}

func (h *CategoryHandler) GetCategories(c *fiber.Ctx) error {
	scope, ok := middleware.ScopeFrom(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	categories, err := h.client.ListCategories(c.UserContext(), scope)
	if err != nil {
		return c.Status(statusFor(err)).JSON(models.ErrorResponse(err.Error()))
	}

	return c.JSON(models.SuccessResponse(categories, "Categories retrieved successfully"))
}

func (h *CategoryHandler) DeleteCategory(c *fiber.Ctx) error {
	scope, ok := middleware.ScopeFrom(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	productID := c.Params("id")
	if productID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid product ID"))
	}

	if err := h.client.DeleteCategory(c.UserContext(), scope, productID); err != nil {
		return c.Status(statusFor(err)).JSON(models.ErrorResponse(err.Error()))
	}

	return c.JSON(models.SuccessResponse(nil, "Product removed successfully"))
}

func statusFor(err error) int {
	switch backend.KindOf(err) {
	case backend.KindNotFound:
		return fiber.StatusNotFound
	case backend.KindUnauthorized:
		return fiber.StatusUnauthorized
	default:
		return fiber.StatusBadGateway
	}
}
