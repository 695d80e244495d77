package handlers

import (
	"errors"
	"time"

	applog "neotech/internal/log"
	"neotech/internal/services"
	"neotech/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	Auth *services.AuthService
}

func (h *AuthHandler) LoginForm(c *fiber.Ctx) error {
	return render(c, "login", fiber.Map{"Err": ""})
}

// Login re-renders the form with an inline message on bad credentials;
// the response stays HTTP 200 so no probe can distinguish failure modes.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	sid := ensureSID(c)
	email := c.FormValue("email")
	pass := c.FormValue("password")
	if email == "" || pass == "" {
		return render(c, "login", fiber.Map{"Err": "Missing fields"})
	}
	if _, ok := validate.Email(email); !ok {
		applog.Security(c, "auth.login.fail", map[string]any{"reason": "bad_format"})
		return render(c, "login", fiber.Map{"Err": "Invalid credentials"})
	}
	if _, err := h.Auth.Login(sid, email, pass); err != nil {
		applog.Security(c, "auth.login.fail", map[string]any{"email": email})
		return render(c, "login", fiber.Map{"Err": "Invalid credentials"})
	}
	applog.Audit(c, "auth.login.success", map[string]any{"email": email})
	return c.Redirect("/")
}

func (h *AuthHandler) RegisterForm(c *fiber.Ctx) error {
	return render(c, "register", fiber.Map{"Err": ""})
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	email := c.FormValue("email")
	pass := c.FormValue("password")
	if email == "" || pass == "" {
		return render(c, "register", fiber.Map{"Err": "Missing fields"})
	}
	if _, ok := validate.Email(email); !ok {
		return render(c, "register", fiber.Map{"Err": "Enter a valid email"})
	}
	if _, err := h.Auth.Register(email, pass); err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			applog.Security(c, "auth.register.duplicate", map[string]any{"email": email})
			return render(c, "register", fiber.Map{"Err": "Email already in use"})
		}
		applog.Error(c, "auth.register.fail", err, nil)
		return render(c, "register", fiber.Map{"Err": "Could not create account"})
	}
	applog.Audit(c, "auth.register", map[string]any{"email": email})
	return c.Redirect("/login")
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sid := ensureSID(c)
	_ = h.Auth.Logout(sid)
	c.Cookie(&fiber.Cookie{
		Name:     "sid",
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Secure:   false,
		Expires:  time.Now().Add(-1 * time.Hour),
	})
	applog.Audit(c, "auth.logout", map[string]any{"sid": sid})
	return c.Redirect("/")
}
