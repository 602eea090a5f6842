package api

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// NotFoundError reports that the remote API answered 404 for a target
// record. Callers deleting an already-deleted id may treat it as success.
type NotFoundError struct {
	Resource string
	ID       int
}

func (e *NotFoundError) Error() string {
	if e.Resource == "" {
		return "resource not found"
	}
	return fmt.Sprintf("%s with ID %d not found", e.Resource, e.ID)
}

// ServerValidationError is a 4xx answer carrying the remote API's
// field-to-messages map.
type ServerValidationError struct {
	Fields map[string][]string
}

func (e *ServerValidationError) Error() string {
	return e.Flatten()
}

// Flatten joins the field messages into the single display string the UI
// shows, one "field: messages" pair per field in field-name order.
func (e *ServerValidationError) Flatten() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", name, strings.Join(e.Fields[name], ", ")))
	}
	return strings.Join(parts, ". ")
}

// TransportError covers network failures and any response status the
// taxonomy has no better name for.
type TransportError struct {
	Status int
	Err    error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("request failed: %v", e.Err)
	}
	return fmt.Sprintf("unexpected status %d", e.Status)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// errorFromResponse maps a non-2xx response into the error taxonomy.
func errorFromResponse(status int, body []byte) error {
	if status == 404 {
		return &NotFoundError{}
	}
	if status >= 400 && status < 500 {
		if fields := parseFieldErrors(body); len(fields) > 0 {
			return &ServerValidationError{Fields: fields}
		}
	}
	return &TransportError{Status: status}
}

// parseFieldErrors decodes a validation body where each field maps to one
// message or a list of messages. Anything else yields nil.
func parseFieldErrors(body []byte) map[string][]string {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil || len(raw) == 0 {
		return nil
	}

	fields := make(map[string][]string, len(raw))
	for name, value := range raw {
		var single string
		if err := json.Unmarshal(value, &single); err == nil {
			fields[name] = []string{single}
			continue
		}
		var many []string
		if err := json.Unmarshal(value, &many); err == nil && len(many) > 0 {
			fields[name] = many
		}
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}
