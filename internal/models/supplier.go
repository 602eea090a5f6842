package models

// Supplier represents a supplier record as exchanged with the remote
// catalog API.
type Supplier struct {
	ID      int    `json:"id"`
	Name    string `json:"nombre"`
	Contact string `json:"contacto,omitempty"`
}

// DisplayContact returns the contact for rendering, with the placeholder
// the UI shows when no contact was recorded.
func (s Supplier) DisplayContact() string {
	if s.Contact == "" {
		return "Sin contacto"
	}
	return s.Contact
}

// SupplierPayload is the validated submission body for a supplier create or
// full update. Suppliers are submitted as a plain JSON body, unlike
// products.
type SupplierPayload struct {
	Name    string `json:"nombre" validate:"required"`
	Contact string `json:"contacto" validate:"max=15"`
}
