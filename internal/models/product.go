package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Decimal is a price value as the remote API serializes it. Depending on the
// backend revision the same field arrives as a JSON number (12.5) or as a
// quoted decimal string ("12.50"), so decoding accepts both.
type Decimal float64

// UnmarshalJSON decodes a Decimal from either a JSON number or a quoted
// numeric string.
func (d *Decimal) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*d = 0
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("invalid decimal %q: %w", s, err)
		}
		*d = Decimal(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*d = Decimal(v)
	return nil
}

// MarshalJSON encodes the value as a plain JSON number.
func (d Decimal) MarshalJSON() ([]byte, error) {
	return []byte(d.String()), nil
}

// String renders the value with exactly two decimal places, the format the
// remote API expects on submission.
func (d Decimal) String() string {
	return strconv.FormatFloat(float64(d), 'f', 2, 64)
}

// Product represents a product record as exchanged with the remote catalog
// API. The id is assigned by the server and immutable; the client never
// holds an authoritative copy.
type Product struct {
	ID       int     `json:"id"`
	Name     string  `json:"nombre"`
	Model    string  `json:"modelo"`
	Price    Decimal `json:"precio"`
	Stock    int     `json:"stock"`
	Supplier int     `json:"proveedor"`
	Image    string  `json:"imagen,omitempty"`
}

// ProductPayload is the validated submission body for a product create or
// full update. It carries the parsed values; the wire encoding (multipart
// form fields) is the resource client's concern.
type ProductPayload struct {
	Name     string  `validate:"required"`
	Model    string  `validate:"required"`
	Price    float64 `validate:"required,gt=0"`
	Stock    int     `validate:"gte=0"`
	Supplier int     `validate:"required,gt=0"`
}
