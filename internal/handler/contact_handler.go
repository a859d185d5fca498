package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/pricing-web/internal/models"
	"github.com/sefazor/pricing-web/internal/service"
	"github.com/sefazor/pricing-web/pkg/ui"
)

type ContactSubmitter interface {
	Submit(req models.ContactRequest) error
}

// ContactPage is the view model of the contact form.
type ContactPage struct {
	Form         models.ContactRequest
	Errors       []string
	Sent         bool
	NameInput    ui.InputProps
	EmailInput   ui.InputProps
	CompanyInput ui.InputProps
}

func newContactPage(form models.ContactRequest) ContactPage {
	return ContactPage{
		Form: form,
		NameInput: ui.InputProps{
			ID: "contact-name", Name: "name", Placeholder: "Your name", Value: form.Name, Required: true,
			Attrs: map[string]string{"autocomplete": "name"},
		},
		EmailInput: ui.InputProps{
			ID: "contact-email", Name: "email", Type: "email", Placeholder: "Work email", Value: form.Email, Required: true,
			Attrs: map[string]string{"autocomplete": "email"},
		},
		CompanyInput: ui.InputProps{
			ID: "contact-company", Name: "company", Placeholder: "Company", Value: form.Company, Class: "h-10",
			Attrs: map[string]string{"autocomplete": "organization"},
		},
	}
}

type ContactHandler struct {
	contactService ContactSubmitter
}

func NewContactHandler(contactService ContactSubmitter) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
	}
}

func (h *ContactHandler) GetContact(c *fiber.Ctx) error {
	return c.Render("contact", newContactPage(models.ContactRequest{Plan: c.Query("plan")}))
}

func (h *ContactHandler) SubmitContact(c *fiber.Ctx) error {
	var form models.ContactRequest
	if err := c.BodyParser(&form); err != nil {
		page := newContactPage(form)
		page.Errors = []string{"Invalid form submission"}
		return c.Status(fiber.StatusBadRequest).Render("contact", page)
	}

	page := newContactPage(form)

	err := h.contactService.Submit(form)
	var verr *service.ValidationError
	switch {
	case err == nil:
		page.Sent = true
		return c.Render("contact", page)
	case errors.As(err, &verr):
		page.Errors = verr.Messages
		return c.Status(fiber.StatusBadRequest).Render("contact", page)
	default:
		page.Errors = []string{"We couldn't send your message. Please try again later."}
		return c.Status(fiber.StatusBadGateway).Render("contact", page)
	}
}
