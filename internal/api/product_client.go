package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"

	"catalogo/internal/models"
)

const productsPath = "productos"

// ProductAPI is the client contract for the remote product collection.
type ProductAPI interface {
	List(ctx context.Context) ([]models.Product, error)
	Get(ctx context.Context, id int) (*models.Product, error)
	Create(ctx context.Context, payload models.ProductPayload, image *Upload) (*models.Product, error)
	Update(ctx context.Context, id int, payload models.ProductPayload, image *Upload) (*models.Product, error)
	Delete(ctx context.Context, id int) error
	ImageURL(raw string) string
}

// ProductClient talks to the remote /productos/ collection. Product writes
// are always multipart/form-data, with or without an attached image; that
// is the collection's canonical contract.
type ProductClient struct {
	c *Client
}

// NewProductClient creates a ProductClient on top of the shared plumbing.
func NewProductClient(c *Client) *ProductClient {
	return &ProductClient{c: c}
}

// List fetches the full product collection in server order.
func (p *ProductClient) List(ctx context.Context) ([]models.Product, error) {
	data, err := p.c.do(ctx, http.MethodGet, p.c.endpoint(productsPath), "", nil)
	if err != nil {
		return nil, err
	}
	return unwrapList[models.Product](data), nil
}

// Get fetches a single product by id.
func (p *ProductClient) Get(ctx context.Context, id int) (*models.Product, error) {
	data, err := p.c.do(ctx, http.MethodGet, p.c.endpoint(productsPath, strconv.Itoa(id)), "", nil)
	if err != nil {
		return nil, annotateNotFound(err, "product", id)
	}
	var product models.Product
	if err := json.Unmarshal(data, &product); err != nil {
		return nil, &TransportError{Err: fmt.Errorf("decoding product %d: %w", id, err)}
	}
	return &product, nil
}

// Create submits a new product and returns it with the server-assigned id.
func (p *ProductClient) Create(ctx context.Context, payload models.ProductPayload, image *Upload) (*models.Product, error) {
	body, contentType, err := productForm(payload, image)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	data, err := p.c.do(ctx, http.MethodPost, p.c.endpoint(productsPath), contentType, body)
	if err != nil {
		return nil, err
	}
	var product models.Product
	if err := json.Unmarshal(data, &product); err != nil {
		return nil, &TransportError{Err: fmt.Errorf("decoding created product: %w", err)}
	}
	return &product, nil
}

// Update replaces the product's full record. Omitting the image leaves the
// server-side asset untouched.
func (p *ProductClient) Update(ctx context.Context, id int, payload models.ProductPayload, image *Upload) (*models.Product, error) {
	body, contentType, err := productForm(payload, image)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	data, err := p.c.do(ctx, http.MethodPut, p.c.endpoint(productsPath, strconv.Itoa(id)), contentType, body)
	if err != nil {
		return nil, annotateNotFound(err, "product", id)
	}
	var product models.Product
	if err := json.Unmarshal(data, &product); err != nil {
		return nil, &TransportError{Err: fmt.Errorf("decoding updated product %d: %w", id, err)}
	}
	return &product, nil
}

// Delete removes the product by id.
func (p *ProductClient) Delete(ctx context.Context, id int) error {
	_, err := p.c.do(ctx, http.MethodDelete, p.c.endpoint(productsPath, strconv.Itoa(id)), "", nil)
	return annotateNotFound(err, "product", id)
}

// ImageURL resolves a product's image value, which the API may return
// relative to its own origin, into an absolute URL for display.
func (p *ProductClient) ImageURL(raw string) string {
	return p.c.resolveURL(raw)
}

// productForm encodes the payload as the multipart body the product
// collection expects: each field an individual form value, price with
// exactly two decimals, numeric fields as plain integers.
func productForm(payload models.ProductPayload, image *Upload) (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	fields := []struct{ name, value string }{
		{"nombre", payload.Name},
		{"modelo", payload.Model},
		{"precio", strconv.FormatFloat(payload.Price, 'f', 2, 64)},
		{"stock", strconv.Itoa(payload.Stock)},
		{"proveedor", strconv.Itoa(payload.Supplier)},
	}
	for _, f := range fields {
		if err := w.WriteField(f.name, f.value); err != nil {
			return nil, "", fmt.Errorf("encoding field %s: %w", f.name, err)
		}
	}

	if image != nil {
		part, err := w.CreateFormFile("imagen", image.Filename)
		if err != nil {
			return nil, "", fmt.Errorf("encoding image part: %w", err)
		}
		if _, err := part.Write(image.Content); err != nil {
			return nil, "", fmt.Errorf("encoding image content: %w", err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf, w.FormDataContentType(), nil
}

// annotateNotFound fills in the resource and id on a bare NotFoundError so
// callers see which record the 404 was about.
func annotateNotFound(err error, resource string, id int) error {
	var nf *NotFoundError
	if errors.As(err, &nf) && nf.Resource == "" {
		return &NotFoundError{Resource: resource, ID: id}
	}
	return err
}
