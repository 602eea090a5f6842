package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"catalogo/internal/api"
	"catalogo/internal/controllers"
	"catalogo/internal/web"
)

// DashboardHandler renders the landing page with its bounded product
// preview and navigation shortcuts.
type DashboardHandler struct {
	products api.ProductAPI
	render   *web.Renderer
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(products api.ProductAPI, render *web.Renderer) *DashboardHandler {
	return &DashboardHandler{products: products, render: render}
}

// RegisterRoutes registers the dashboard route.
func (h *DashboardHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/", h.HandleDashboard)
}

// HandleDashboard fetches the product collection and renders the preview.
func (h *DashboardHandler) HandleDashboard(c *fiber.Ctx) error {
	dash := controllers.NewDashboard(h.products)

	var errMsg string
	if err := dash.Load(c.UserContext()); err != nil {
		log.Printf("Error loading dashboard products: %v", err)
		errMsg = displayError("Error al cargar los datos", err)
	}

	return h.render.Render(c, "dashboard.html", fiber.Map{
		"Dashboard": dash,
		"Error":     errMsg,
	})
}
