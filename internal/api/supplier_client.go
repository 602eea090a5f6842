package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"catalogo/internal/models"
)

const suppliersPath = "proveedor"

// SupplierAPI is the client contract for the remote supplier collection.
type SupplierAPI interface {
	List(ctx context.Context) ([]models.Supplier, error)
	Get(ctx context.Context, id int) (*models.Supplier, error)
	Create(ctx context.Context, payload models.SupplierPayload) (*models.Supplier, error)
	Update(ctx context.Context, id int, payload models.SupplierPayload) (*models.Supplier, error)
	Delete(ctx context.Context, id int) error
}

// SupplierClient talks to the remote /proveedor/ collection. Unlike
// products, supplier writes are plain JSON bodies.
type SupplierClient struct {
	c *Client
}

// NewSupplierClient creates a SupplierClient on top of the shared plumbing.
func NewSupplierClient(c *Client) *SupplierClient {
	return &SupplierClient{c: c}
}

// List fetches the full supplier collection in server order.
func (s *SupplierClient) List(ctx context.Context) ([]models.Supplier, error) {
	data, err := s.c.do(ctx, http.MethodGet, s.c.endpoint(suppliersPath), "", nil)
	if err != nil {
		return nil, err
	}
	return unwrapList[models.Supplier](data), nil
}

// Get fetches a single supplier by id.
func (s *SupplierClient) Get(ctx context.Context, id int) (*models.Supplier, error) {
	data, err := s.c.do(ctx, http.MethodGet, s.c.endpoint(suppliersPath, strconv.Itoa(id)), "", nil)
	if err != nil {
		return nil, annotateNotFound(err, "supplier", id)
	}
	var supplier models.Supplier
	if err := json.Unmarshal(data, &supplier); err != nil {
		return nil, &TransportError{Err: fmt.Errorf("decoding supplier %d: %w", id, err)}
	}
	return &supplier, nil
}

// Create submits a new supplier and returns it with the server-assigned id.
func (s *SupplierClient) Create(ctx context.Context, payload models.SupplierPayload) (*models.Supplier, error) {
	data, err := s.post(ctx, http.MethodPost, s.c.endpoint(suppliersPath), payload)
	if err != nil {
		return nil, err
	}
	var supplier models.Supplier
	if err := json.Unmarshal(data, &supplier); err != nil {
		return nil, &TransportError{Err: fmt.Errorf("decoding created supplier: %w", err)}
	}
	return &supplier, nil
}

// Update replaces the supplier's full record.
func (s *SupplierClient) Update(ctx context.Context, id int, payload models.SupplierPayload) (*models.Supplier, error) {
	data, err := s.post(ctx, http.MethodPut, s.c.endpoint(suppliersPath, strconv.Itoa(id)), payload)
	if err != nil {
		return nil, annotateNotFound(err, "supplier", id)
	}
	var supplier models.Supplier
	if err := json.Unmarshal(data, &supplier); err != nil {
		return nil, &TransportError{Err: fmt.Errorf("decoding updated supplier %d: %w", id, err)}
	}
	return &supplier, nil
}

// Delete removes the supplier by id.
func (s *SupplierClient) Delete(ctx context.Context, id int) error {
	_, err := s.c.do(ctx, http.MethodDelete, s.c.endpoint(suppliersPath, strconv.Itoa(id)), "", nil)
	return annotateNotFound(err, "supplier", id)
}

func (s *SupplierClient) post(ctx context.Context, method, rawurl string, payload models.SupplierPayload) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	return s.c.do(ctx, method, rawurl, "application/json", bytes.NewReader(body))
}
