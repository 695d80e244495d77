package handlers

import (
	applog "neotech/internal/log"
	"neotech/internal/services"
	"neotech/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type CartHandler struct {
	Cart *services.CartService
}

// Add puts a product snapshot in the session cart. An unknown product id
// redirects home without effect.
func (h *CartHandler) Add(c *fiber.Ctx) error {
	sid := ensureSID(c)
	pid, ok := validate.ID(c.FormValue("product_id"))
	if !ok {
		return c.Redirect("/")
	}
	qty := validate.Qty(c.FormValue("qty"))
	if err := h.Cart.Add(sid, pid, qty); err != nil {
		return c.Redirect("/")
	}
	applog.Info(c, "cart.add", map[string]any{"product_id": pid, "qty": qty})
	return c.Redirect("/cart")
}

func (h *CartHandler) View(c *fiber.Ctx) error {
	cv, err := h.Cart.View(ensureSID(c))
	if err != nil {
		return err
	}
	return render(c, "cart", fiber.Map{"Cart": cv.Lines, "Total": cv.Total})
}

// Update sets a line's quantity; products not in the cart are a no-op.
func (h *CartHandler) Update(c *fiber.Ctx) error {
	sid := ensureSID(c)
	pid, ok := validate.ID(c.FormValue("id"))
	if !ok {
		return c.Redirect("/cart")
	}
	qty := validate.Qty(c.FormValue("qty"))
	if err := h.Cart.Update(sid, pid, qty); err != nil {
		return err
	}
	return c.Redirect("/cart")
}

func (h *CartHandler) Clear(c *fiber.Ctx) error {
	if err := h.Cart.Clear(ensureSID(c)); err != nil {
		return err
	}
	return c.Redirect("/cart")
}
