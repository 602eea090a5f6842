package handlers

import (
	"errors"
	"fmt"

	"catalogo/internal/api"
	"catalogo/internal/controllers"
)

// displayError turns a controller or client failure into the message shown
// in the banner. Field-level validation messages pass through as-is;
// server validation maps are flattened behind the action prefix; anything
// else gets the generic prefix.
func displayError(prefix string, err error) string {
	if err == nil {
		return ""
	}
	var ve *controllers.ValidationError
	if errors.As(err, &ve) {
		return ve.Message
	}
	var sve *api.ServerValidationError
	if errors.As(err, &sve) {
		return fmt.Sprintf("%s: %s", prefix, sve.Flatten())
	}
	var nf *api.NotFoundError
	if errors.As(err, &nf) {
		return "El registro solicitado no existe"
	}
	return prefix
}
