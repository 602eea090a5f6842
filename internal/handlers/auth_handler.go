package handlers

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"catalogo/internal/middleware"
	"catalogo/internal/services"
	"catalogo/internal/web"
)

// AuthHandler serves the login page and manages the session cookie.
type AuthHandler struct {
	authService *services.AuthService
	render      *web.Renderer
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService, render *web.Renderer) *AuthHandler {
	return &AuthHandler{authService: authService, render: render}
}

// RegisterRoutes registers the public authentication routes.
func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/login", h.HandleLoginForm)
	router.Post("/login", h.HandleLogin)
	router.Post("/logout", h.HandleLogout)
}

// HandleLoginForm renders the login page.
func (h *AuthHandler) HandleLoginForm(c *fiber.Ctx) error {
	return h.render.Render(c, "login.html", fiber.Map{
		"Error":    "",
		"Username": "",
	})
}

// HandleLogin checks the posted credentials and opens a session.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	username := c.FormValue("username")
	password := c.FormValue("password")

	token, err := h.authService.Login(username, password)
	if err != nil {
		log.Printf("Failed login for %q: %v", username, err)
		c.Status(fiber.StatusUnauthorized)
		return h.render.Render(c, "login.html", fiber.Map{
			"Error":    "Usuario o contraseña incorrectos",
			"Username": username,
		})
	}

	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(24 * time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})
	return c.Redirect("/", fiber.StatusSeeOther)
}

// HandleLogout drops the session cookie.
func (h *AuthHandler) HandleLogout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})
	return c.Redirect("/login", fiber.StatusSeeOther)
}
