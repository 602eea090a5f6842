package handlers

import (
	"fmt"
	"io"
	"log"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"catalogo/internal/api"
	"catalogo/internal/controllers"
	"catalogo/internal/web"
)

// ProductHandler serves the product list, the create/edit form and the
// delete action.
type ProductHandler struct {
	products  api.ProductAPI
	suppliers api.SupplierAPI
	render    *web.Renderer
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(products api.ProductAPI, suppliers api.SupplierAPI, render *web.Renderer) *ProductHandler {
	return &ProductHandler{products: products, suppliers: suppliers, render: render}
}

// RegisterRoutes registers the product routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/productos")
	productRoutes.Get("/", h.HandleList)
	productRoutes.Get("/nuevo", h.HandleNewForm)
	productRoutes.Post("/nuevo", h.HandleCreate)
	productRoutes.Get("/:id/editar", h.HandleEditForm)
	productRoutes.Post("/:id/editar", h.HandleUpdate)
	productRoutes.Post("/:id/eliminar", h.HandleDelete)
}

// HandleList fetches and renders the product collection.
func (h *ProductHandler) HandleList(c *fiber.Ctx) error {
	list := controllers.NewProductList(h.products)

	errMsg := c.Query("error")
	if err := list.Load(c.UserContext()); err != nil {
		log.Printf("Error loading products: %v", err)
		errMsg = displayError("Error al cargar los datos", err)
	}

	return h.render.Render(c, "product_list.html", fiber.Map{
		"List":  list,
		"Error": errMsg,
	})
}

// HandleNewForm renders an empty product form with the supplier choices.
func (h *ProductHandler) HandleNewForm(c *fiber.Ctx) error {
	form := controllers.NewProductForm(h.products, h.suppliers)

	var errMsg string
	if err := form.Begin(c.UserContext(), 0); err != nil {
		log.Printf("Error loading suppliers for product form: %v", err)
		errMsg = "Error al cargar los proveedores. Verifica que la API esté funcionando correctamente."
	}

	return h.renderForm(c, form, "/productos/nuevo", errMsg)
}

// HandleCreate submits a new product from the posted form values.
func (h *ProductHandler) HandleCreate(c *fiber.Ctx) error {
	form := controllers.NewProductForm(h.products, h.suppliers)
	h.fillDraft(c, form)

	if err := form.Submit(c.UserContext()); err != nil {
		log.Printf("Error creating product: %v", err)
		h.reloadChoices(c, form)
		return h.renderForm(c, form, "/productos/nuevo", displayError("Error al guardar el producto", err))
	}
	return c.Redirect("/productos", fiber.StatusSeeOther)
}

// HandleEditForm fetches the target product and renders the form with its
// current values.
func (h *ProductHandler) HandleEditForm(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Redirect("/productos", fiber.StatusSeeOther)
	}

	form := controllers.NewProductForm(h.products, h.suppliers)
	var errMsg string
	if err := form.Begin(c.UserContext(), id); err != nil {
		log.Printf("Error loading product %d for edit: %v", id, err)
		errMsg = displayError("Error al cargar el producto", err)
	}

	return h.renderForm(c, form, fmt.Sprintf("/productos/%d/editar", id), errMsg)
}

// HandleUpdate submits a full replacement of the target product.
func (h *ProductHandler) HandleUpdate(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Redirect("/productos", fiber.StatusSeeOther)
	}

	form := controllers.NewProductForm(h.products, h.suppliers)
	form.ID = id
	h.fillDraft(c, form)

	if err := form.Submit(c.UserContext()); err != nil {
		log.Printf("Error updating product %d: %v", id, err)
		h.reloadChoices(c, form)
		return h.renderForm(c, form, fmt.Sprintf("/productos/%d/editar", id), displayError("Error al guardar el producto", err))
	}
	return c.Redirect("/productos", fiber.StatusSeeOther)
}

// HandleDelete removes the product. The browser asked for confirmation
// before this request was ever sent.
func (h *ProductHandler) HandleDelete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Redirect("/productos", fiber.StatusSeeOther)
	}

	list := controllers.NewProductList(h.products)
	if err := list.Delete(c.UserContext(), id); err != nil {
		log.Printf("Error deleting product %d: %v", id, err)
		msg := displayError("Error al eliminar el producto", err)
		return c.Redirect("/productos?error="+url.QueryEscape(msg), fiber.StatusSeeOther)
	}
	return c.Redirect("/productos", fiber.StatusSeeOther)
}

// fillDraft copies the posted form fields into the controller's draft,
// attaching the uploaded image when one was selected.
func (h *ProductHandler) fillDraft(c *fiber.Ctx, form *controllers.ProductForm) {
	form.Draft = controllers.ProductDraft{
		Name:     c.FormValue("nombre"),
		Model:    c.FormValue("modelo"),
		Price:    c.FormValue("precio"),
		Stock:    c.FormValue("stock"),
		Supplier: c.FormValue("proveedor"),
	}

	fileHeader, err := c.FormFile("imagen")
	if err != nil || fileHeader == nil || fileHeader.Size == 0 {
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		log.Printf("Error opening uploaded image: %v", err)
		return
	}
	defer file.Close()
	content, err := io.ReadAll(file)
	if err != nil {
		log.Printf("Error reading uploaded image: %v", err)
		return
	}
	form.AttachImage(&api.Upload{Filename: fileHeader.Filename, Content: content})
}

// reloadChoices refetches the supplier selection list before re-rendering
// a failed submission.
func (h *ProductHandler) reloadChoices(c *fiber.Ctx, form *controllers.ProductForm) {
	if err := form.LoadSuppliers(c.UserContext()); err != nil {
		log.Printf("Error reloading suppliers: %v", err)
	}
}

func (h *ProductHandler) renderForm(c *fiber.Ctx, form *controllers.ProductForm, action, errMsg string) error {
	return h.render.Render(c, "product_form.html", fiber.Map{
		"Form":   form,
		"Action": action,
		"Error":  errMsg,
	})
}
