package middleware

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"catalogo/internal/services"
)

// SessionCookie is the name of the admin session cookie.
const SessionCookie = "catalogo_session"

// SessionRequired is a Fiber middleware that sends browsers without a
// valid session to the login page.
func SessionRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := c.Cookies(SessionCookie)
		if tokenString == "" {
			return c.Redirect("/login", fiber.StatusSeeOther)
		}

		claims, err := authService.ValidateToken(tokenString)
		if err != nil {
			log.Printf("Session validation failed: %v", err)
			return c.Redirect("/login", fiber.StatusSeeOther)
		}

		// Store the identity for handlers and the request logger.
		c.Locals("username", claims["username"])

		return c.Next()
	}
}
