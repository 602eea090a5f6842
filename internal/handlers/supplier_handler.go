package handlers

import (
	"fmt"
	"log"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"catalogo/internal/api"
	"catalogo/internal/controllers"
	"catalogo/internal/web"
)

// SupplierHandler serves the supplier list with its search box, the
// create/edit form and the delete action.
type SupplierHandler struct {
	suppliers api.SupplierAPI
	render    *web.Renderer
}

// NewSupplierHandler creates a new SupplierHandler.
func NewSupplierHandler(suppliers api.SupplierAPI, render *web.Renderer) *SupplierHandler {
	return &SupplierHandler{suppliers: suppliers, render: render}
}

// RegisterRoutes registers the supplier routes with the Fiber app.
func (h *SupplierHandler) RegisterRoutes(router fiber.Router) {
	supplierRoutes := router.Group("/proveedores")
	supplierRoutes.Get("/", h.HandleList)
	supplierRoutes.Get("/nuevo", h.HandleNewForm)
	supplierRoutes.Post("/nuevo", h.HandleCreate)
	supplierRoutes.Get("/:id/editar", h.HandleEditForm)
	supplierRoutes.Post("/:id/editar", h.HandleUpdate)
	supplierRoutes.Post("/:id/eliminar", h.HandleDelete)
}

// HandleList fetches the supplier collection and renders it, applying the
// optional search term against the loaded list.
func (h *SupplierHandler) HandleList(c *fiber.Ctx) error {
	list := controllers.NewSupplierList(h.suppliers)

	errMsg := c.Query("error")
	if err := list.Load(c.UserContext()); err != nil {
		log.Printf("Error loading suppliers: %v", err)
		errMsg = displayError("Error al cargar los datos", err)
	}

	term := c.Query("q")
	return h.render.Render(c, "supplier_list.html", fiber.Map{
		"List":     list,
		"Filtered": list.Filter(term),
		"Query":    term,
		"Error":    errMsg,
	})
}

// HandleNewForm renders an empty supplier form.
func (h *SupplierHandler) HandleNewForm(c *fiber.Ctx) error {
	form := controllers.NewSupplierForm(h.suppliers)
	return h.renderForm(c, form, "/proveedores/nuevo", "")
}

// HandleCreate submits a new supplier from the posted form values.
func (h *SupplierHandler) HandleCreate(c *fiber.Ctx) error {
	form := controllers.NewSupplierForm(h.suppliers)
	form.Draft = controllers.SupplierDraft{
		Name:    c.FormValue("nombre"),
		Contact: c.FormValue("contacto"),
	}

	if err := form.Submit(c.UserContext()); err != nil {
		log.Printf("Error creating supplier: %v", err)
		return h.renderForm(c, form, "/proveedores/nuevo", displayError("Error al guardar el proveedor", err))
	}
	return c.Redirect("/proveedores", fiber.StatusSeeOther)
}

// HandleEditForm fetches the target supplier and renders the form with its
// current values.
func (h *SupplierHandler) HandleEditForm(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Redirect("/proveedores", fiber.StatusSeeOther)
	}

	form := controllers.NewSupplierForm(h.suppliers)
	var errMsg string
	if err := form.Begin(c.UserContext(), id); err != nil {
		log.Printf("Error loading supplier %d for edit: %v", id, err)
		errMsg = displayError("Error al cargar el proveedor", err)
	}

	return h.renderForm(c, form, fmt.Sprintf("/proveedores/%d/editar", id), errMsg)
}

// HandleUpdate submits a full replacement of the target supplier.
func (h *SupplierHandler) HandleUpdate(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Redirect("/proveedores", fiber.StatusSeeOther)
	}

	form := controllers.NewSupplierForm(h.suppliers)
	form.ID = id
	form.Draft = controllers.SupplierDraft{
		Name:    c.FormValue("nombre"),
		Contact: c.FormValue("contacto"),
	}

	if err := form.Submit(c.UserContext()); err != nil {
		log.Printf("Error updating supplier %d: %v", id, err)
		return h.renderForm(c, form, fmt.Sprintf("/proveedores/%d/editar", id), displayError("Error al guardar el proveedor", err))
	}
	return c.Redirect("/proveedores", fiber.StatusSeeOther)
}

// HandleDelete removes the supplier after the browser-side confirmation.
func (h *SupplierHandler) HandleDelete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Redirect("/proveedores", fiber.StatusSeeOther)
	}

	list := controllers.NewSupplierList(h.suppliers)
	if err := list.Delete(c.UserContext(), id); err != nil {
		log.Printf("Error deleting supplier %d: %v", id, err)
		msg := displayError("Error al eliminar el proveedor", err)
		return c.Redirect("/proveedores?error="+url.QueryEscape(msg), fiber.StatusSeeOther)
	}
	return c.Redirect("/proveedores", fiber.StatusSeeOther)
}

func (h *SupplierHandler) renderForm(c *fiber.Ctx, form *controllers.SupplierForm, action, errMsg string) error {
	return h.render.Render(c, "supplier_form.html", fiber.Map{
		"Form":   form,
		"Action": action,
		"Error":  errMsg,
	})
}
