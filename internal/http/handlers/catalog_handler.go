package handlers

import (
	"neotech/internal/services"
	"neotech/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type CatalogHandler struct {
	Catalog *services.CatalogService
}

func (h *CatalogHandler) Home(c *fiber.Ctx) error {
	products, categories, err := h.Catalog.Home()
	if err != nil {
		return err
	}
	return render(c, "index", fiber.Map{"Products": products, "Categories": categories})
}

func (h *CatalogHandler) Product(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Page not found"})
	}
	p, recs, err := h.Catalog.Product(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Page not found"})
	}
	return render(c, "product", fiber.Map{"Product": p, "Recs": recs})
}

func (h *CatalogHandler) Category(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Page not found"})
	}
	cat, products, err := h.Catalog.Category(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Page not found"})
	}
	return render(c, "category", fiber.Map{"Category": cat, "Products": products})
}
