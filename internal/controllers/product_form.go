package controllers

import (
	"context"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"catalogo/internal/api"
	"catalogo/internal/models"
)

// ProductDraft holds the raw field values exactly as the admin typed them.
// Parsing happens at submit time so a failed submission can hand every
// value back unchanged.
type ProductDraft struct {
	Name     string
	Model    string
	Price    string
	Stock    string
	Supplier string
	Image    *api.Upload
}

// ProductForm drives the product create/edit form: it loads the supplier
// choices (and, in edit mode, the record under edit), validates the draft
// and submits it through the product client.
type ProductForm struct {
	products  api.ProductAPI
	suppliers api.SupplierAPI
	validate  *validator.Validate

	ID        int // zero in create mode
	Draft     ProductDraft
	Suppliers []models.Supplier
	Preview   string
	State     FormState
	Err       error
}

// NewProductForm creates a ProductForm in create mode.
func NewProductForm(products api.ProductAPI, suppliers api.SupplierAPI) *ProductForm {
	return &ProductForm{
		products:  products,
		suppliers: suppliers,
		validate:  validator.New(),
		State:     FormEditing,
	}
}

// Editing reports whether the form targets an existing record.
func (f *ProductForm) Editing() bool {
	return f.ID != 0
}

// LoadSuppliers fetches the valid supplier choices for the selection list.
func (f *ProductForm) LoadSuppliers(ctx context.Context) error {
	suppliers, err := f.suppliers.List(ctx)
	if err != nil {
		f.Err = err
		return err
	}
	f.Suppliers = suppliers
	return nil
}

// Begin prepares the form: supplier choices always, plus the target
// product's current values and image preview when id is non-zero.
func (f *ProductForm) Begin(ctx context.Context, id int) error {
	if id != 0 {
		f.State = FormLoading
	}
	if err := f.LoadSuppliers(ctx); err != nil {
		f.State = FormEditing
		return err
	}
	if id != 0 {
		product, err := f.products.Get(ctx, id)
		if err != nil {
			f.Err = err
			f.State = FormEditing
			return err
		}
		f.ID = id
		f.Draft = ProductDraft{
			Name:     product.Name,
			Model:    product.Model,
			Price:    product.Price.String(),
			Stock:    strconv.Itoa(product.Stock),
			Supplier: strconv.Itoa(product.Supplier),
		}
		// Expose the stored image without re-uploading it; it only
		// travels again if the admin picks a replacement file.
		if product.Image != "" {
			f.Preview = f.products.ImageURL(product.Image)
		}
	}
	f.State = FormEditing
	return nil
}

// AttachImage replaces any pending upload with the newly selected file.
// The previous preview is discarded; the browser renders the new one from
// the local file.
func (f *ProductForm) AttachImage(upload *api.Upload) {
	f.Draft.Image = upload
	f.Preview = ""
}

// ClearImage unsets the pending upload and removes the preview.
func (f *ProductForm) ClearImage() {
	f.Draft.Image = nil
	f.Preview = ""
}

// Submit validates the draft and, only if every rule passes, sends the
// create or update call. On any failure the draft values stay in place and
// the form returns to the editing state.
func (f *ProductForm) Submit(ctx context.Context) error {
	payload, err := f.validateDraft()
	if err != nil {
		f.Err = err
		f.State = FormEditing
		return err
	}

	f.State = FormSubmitting
	f.Err = nil

	var submitErr error
	if f.Editing() {
		_, submitErr = f.products.Update(ctx, f.ID, *payload, f.Draft.Image)
	} else {
		_, submitErr = f.products.Create(ctx, *payload, f.Draft.Image)
	}
	if submitErr != nil {
		f.Err = submitErr
		f.State = FormEditing
		return submitErr
	}

	f.State = FormSucceeded
	return nil
}

// validateDraft applies the field rules in their fixed order, stopping at
// the first failure: required texts, then price, then stock, then the
// supplier reference. The typed payload then passes the struct validator
// as the final gate before any network call.
func (f *ProductForm) validateDraft() (*models.ProductPayload, error) {
	name := strings.TrimSpace(f.Draft.Name)
	model := strings.TrimSpace(f.Draft.Model)
	if name == "" || model == "" {
		return nil, &ValidationError{Field: "nombre", Message: "El nombre y modelo son campos obligatorios"}
	}

	price, err := strconv.ParseFloat(strings.TrimSpace(f.Draft.Price), 64)
	if err != nil || price <= 0 {
		return nil, &ValidationError{Field: "precio", Message: "El precio debe ser un número válido mayor que 0"}
	}

	stock, err := strconv.Atoi(strings.TrimSpace(f.Draft.Stock))
	if err != nil || stock < 0 {
		return nil, &ValidationError{Field: "stock", Message: "El stock debe ser un número válido mayor o igual a 0"}
	}

	supplier, err := strconv.Atoi(strings.TrimSpace(f.Draft.Supplier))
	if err != nil || supplier <= 0 {
		return nil, &ValidationError{Field: "proveedor", Message: "Debe seleccionar un proveedor"}
	}

	payload := &models.ProductPayload{
		Name:     name,
		Model:    model,
		Price:    price,
		Stock:    stock,
		Supplier: supplier,
	}
	if err := f.validate.Struct(payload); err != nil {
		return nil, firstFieldError(err)
	}
	return payload, nil
}

// firstFieldError maps the first validator failure onto the same messages
// the ordered checks produce.
func firstFieldError(err error) error {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return &ValidationError{Message: "Datos del producto no válidos"}
	}
	e := validationErrors[0]
	switch e.Field() {
	case "Name", "Model":
		return &ValidationError{Field: "nombre", Message: "El nombre y modelo son campos obligatorios"}
	case "Price":
		return &ValidationError{Field: "precio", Message: "El precio debe ser un número válido mayor que 0"}
	case "Stock":
		return &ValidationError{Field: "stock", Message: "El stock debe ser un número válido mayor o igual a 0"}
	case "Supplier":
		return &ValidationError{Field: "proveedor", Message: "Debe seleccionar un proveedor"}
	}
	return &ValidationError{Field: e.Field(), Message: "Datos del producto no válidos"}
}
