package controllers

// FormState tracks where a form controller is in its lifecycle. Create
// mode starts at FormEditing; edit mode passes through FormLoading while
// the record under edit is fetched.
type FormState int

const (
	FormLoading FormState = iota
	FormEditing
	FormSubmitting
	FormSucceeded
)

// ValidationError is a client-side rejection raised before any network
// call. The form stays editable and keeps every draft value.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
