package handlers

import (
	"neotech/internal/domain"
	applog "neotech/internal/log"
	"neotech/internal/services"

	"github.com/gofiber/fiber/v2"
)

type CheckoutHandler struct {
	Cart      *services.CartService
	Orders    *services.CheckoutService
	PublicKey string
}

// Checkout renders the payment initiation page. It performs no server-side
// state change: the payment happens on the gateway's hosted flow and control
// returns via /checkout/verify.
func (h *CheckoutHandler) Checkout(c *fiber.Ctx) error {
	cv, err := h.Cart.View(ensureSID(c))
	if err != nil {
		return err
	}
	if cv.Lines.Empty() {
		return c.Redirect("/cart")
	}
	return render(c, "checkout", fiber.Map{
		"Cart":        cv.Lines,
		"Total":       cv.Total,
		"PaystackKey": h.PublicKey,
	})
}

// Verify handles the gateway callback. Any verification error — declined
// payment, missing secret, network failure, malformed response — is logged
// and rendered as the same generic failure page.
func (h *CheckoutHandler) Verify(c *fiber.Ctx) error {
	reference := c.Query("reference")
	if reference == "" {
		return c.Redirect("/checkout")
	}
	sid := ensureSID(c)

	orderID, err := h.Orders.VerifyAndPlace(c.UserContext(), sid, reference)
	if err != nil {
		applog.Error(c, "payment.verify.fail", err, map[string]any{"reference": reference})
		return render(c, "payment", fiber.Map{"OK": false})
	}
	applog.Audit(c, "payment.verify.success", map[string]any{"reference": reference, "order_id": orderID})
	return render(c, "payment", fiber.Map{"OK": true, "Ref": reference})
}

// History lists the logged-in user's orders, newest first.
func (h *CheckoutHandler) History(c *fiber.Ctx) error {
	if u, _ := c.Locals("user").(*domain.User); u == nil {
		return c.Redirect("/login")
	}
	orders, err := h.Orders.History(ensureSID(c))
	if err != nil {
		return err
	}
	return render(c, "orders", fiber.Map{"Orders": orders})
}
