package controllers

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"

	"catalogo/internal/api"
	"catalogo/internal/models"
)

// SupplierDraft holds the raw supplier form values as typed.
type SupplierDraft struct {
	Name    string
	Contact string
}

// SupplierForm drives the supplier create/edit form.
type SupplierForm struct {
	suppliers api.SupplierAPI
	validate  *validator.Validate

	ID    int // zero in create mode
	Draft SupplierDraft
	State FormState
	Err   error
}

// NewSupplierForm creates a SupplierForm in create mode.
func NewSupplierForm(suppliers api.SupplierAPI) *SupplierForm {
	return &SupplierForm{
		suppliers: suppliers,
		validate:  validator.New(),
		State:     FormEditing,
	}
}

// Editing reports whether the form targets an existing record.
func (f *SupplierForm) Editing() bool {
	return f.ID != 0
}

// Begin fetches the target supplier's current values in edit mode; create
// mode starts editing straight away.
func (f *SupplierForm) Begin(ctx context.Context, id int) error {
	if id == 0 {
		f.State = FormEditing
		return nil
	}
	f.State = FormLoading
	supplier, err := f.suppliers.Get(ctx, id)
	if err != nil {
		f.Err = err
		f.State = FormEditing
		return err
	}
	f.ID = id
	f.Draft = SupplierDraft{Name: supplier.Name, Contact: supplier.Contact}
	f.State = FormEditing
	return nil
}

// Submit validates the draft and sends the create or update call. On any
// failure the draft values stay in place.
func (f *SupplierForm) Submit(ctx context.Context) error {
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
		_, submitErr = f.suppliers.Update(ctx, f.ID, *payload)
	} else {
		_, submitErr = f.suppliers.Create(ctx, *payload)
	}
	if submitErr != nil {
		f.Err = submitErr
		f.State = FormEditing
		return submitErr
	}

	f.State = FormSucceeded
	return nil
}

func (f *SupplierForm) validateDraft() (*models.SupplierPayload, error) {
	payload := &models.SupplierPayload{
		Name:    strings.TrimSpace(f.Draft.Name),
		Contact: strings.TrimSpace(f.Draft.Contact),
	}
	if err := f.validate.Struct(payload); err != nil {
		validationErrors, ok := err.(validator.ValidationErrors)
		if !ok || len(validationErrors) == 0 {
			return nil, &ValidationError{Message: "Datos del proveedor no válidos"}
		}
		switch e := validationErrors[0]; e.Field() {
		case "Name":
			return nil, &ValidationError{Field: "nombre", Message: "El nombre es obligatorio"}
		case "Contact":
			return nil, &ValidationError{Field: "contacto", Message: "El contacto no puede superar los 15 caracteres"}
		default:
			return nil, &ValidationError{Field: e.Field(), Message: "Datos del proveedor no válidos"}
		}
	}
	return payload, nil
}
