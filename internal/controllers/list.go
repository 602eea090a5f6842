package controllers

import (
	"context"
	"errors"
	"strings"

	"catalogo/internal/api"
	"catalogo/internal/models"
)

// ProductList owns the in-memory product collection behind the list view.
// Only its own Load and Delete mutate the slice; nothing else writes into
// it.
type ProductList struct {
	products api.ProductAPI

	Items  []models.Product
	Loaded bool
	Err    error
}

// NewProductList creates an unloaded ProductList.
func NewProductList(products api.ProductAPI) *ProductList {
	return &ProductList{products: products}
}

// Load fetches the collection. On failure the previous items are kept and
// Err carries the banner to show; the fetch is not retried automatically.
func (l *ProductList) Load(ctx context.Context) error {
	items, err := l.products.List(ctx)
	if err != nil {
		l.Err = err
		return err
	}
	l.Items = items
	l.Loaded = true
	l.Err = nil
	return nil
}

// Delete removes the product remotely and, only after the remote call
// succeeds, drops it from the loaded list without a re-fetch. A NotFound
// answer means the record is already gone and counts as success.
func (l *ProductList) Delete(ctx context.Context, id int) error {
	if err := l.products.Delete(ctx, id); err != nil {
		var nf *api.NotFoundError
		if !errors.As(err, &nf) {
			l.Err = err
			return err
		}
	}
	items := make([]models.Product, 0, len(l.Items))
	for _, p := range l.Items {
		if p.ID != id {
			items = append(items, p)
		}
	}
	l.Items = items
	return nil
}

// SupplierList owns the in-memory supplier collection behind the list
// view, with local substring filtering on top.
type SupplierList struct {
	suppliers api.SupplierAPI

	Items  []models.Supplier
	Loaded bool
	Err    error
}

// NewSupplierList creates an unloaded SupplierList.
func NewSupplierList(suppliers api.SupplierAPI) *SupplierList {
	return &SupplierList{suppliers: suppliers}
}

// Load fetches the collection.
func (l *SupplierList) Load(ctx context.Context) error {
	items, err := l.suppliers.List(ctx)
	if err != nil {
		l.Err = err
		return err
	}
	l.Items = items
	l.Loaded = true
	l.Err = nil
	return nil
}

// Delete removes the supplier remotely and then from the loaded list, with
// the same NotFound tolerance as the product list.
func (l *SupplierList) Delete(ctx context.Context, id int) error {
	if err := l.suppliers.Delete(ctx, id); err != nil {
		var nf *api.NotFoundError
		if !errors.As(err, &nf) {
			l.Err = err
			return err
		}
	}
	items := make([]models.Supplier, 0, len(l.Items))
	for _, s := range l.Items {
		if s.ID != id {
			items = append(items, s)
		}
	}
	l.Items = items
	return nil
}

// Filter returns the suppliers whose name or contact contains term,
// computed purely against the loaded list. Name matching is
// case-insensitive; contact matching is an exact substring.
func (l *SupplierList) Filter(term string) []models.Supplier {
	if term == "" {
		return l.Items
	}
	lower := strings.ToLower(term)
	matched := make([]models.Supplier, 0, len(l.Items))
	for _, s := range l.Items {
		if strings.Contains(strings.ToLower(s.Name), lower) || strings.Contains(s.Contact, term) {
			matched = append(matched, s)
		}
	}
	return matched
}
