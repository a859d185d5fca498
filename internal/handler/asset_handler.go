package handler

import (
	"github.com/gofiber/fiber/v2"
)

// AssetHandler serves the stylesheet compiled from the theme at startup.
type AssetHandler struct {
	themeCSS string
}

func NewAssetHandler(themeCSS string) *AssetHandler {
	return &AssetHandler{themeCSS: themeCSS}
}

func (h *AssetHandler) ThemeCSS(c *fiber.Ctx) error {
	c.Type("css", "utf-8")
	c.Set(fiber.HeaderCacheControl, "public, max-age=3600")
	return c.SendString(h.themeCSS)
}
