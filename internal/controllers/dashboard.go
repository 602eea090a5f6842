package controllers

import (
	"context"

	"catalogo/internal/api"
	"catalogo/internal/models"
)

// maxDashboardProducts caps how many products the dashboard previews; the
// rest of the collection is cut off, not paginated.
const maxDashboardProducts = 8

// Dashboard fetches the product collection once and keeps a bounded
// preview of it. It has no mutation capability.
type Dashboard struct {
	products api.ProductAPI

	Products []models.Product
	Total    int
	Err      error
}

// NewDashboard creates an unloaded Dashboard.
func NewDashboard(products api.ProductAPI) *Dashboard {
	return &Dashboard{products: products}
}

// Load fetches the products and truncates the preview to the first entries
// in server order.
func (d *Dashboard) Load(ctx context.Context) error {
	items, err := d.products.List(ctx)
	if err != nil {
		d.Err = err
		return err
	}
	d.Total = len(items)
	if len(items) > maxDashboardProducts {
		items = items[:maxDashboardProducts]
	}
	d.Products = items
	d.Err = nil
	return nil
}

// ImageURL resolves a product image for display on the preview cards.
func (d *Dashboard) ImageURL(raw string) string {
	return d.products.ImageURL(raw)
}
