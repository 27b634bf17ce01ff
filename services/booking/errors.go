package booking

// ValidationError signals malformed input or wrong cardinality of the
// records under reconciliation. Maps to HTTP 400 at the boundary.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func NewValidationError(msg string) error {
	return &ValidationError{Message: msg}
}

// NotFoundError signals a missing order, itinerary item or adjustment.
// Maps to HTTP 404.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

func NewNotFoundError(msg string) error {
	return &NotFoundError{Message: msg}
}

// AuthorizationError signals that the caller does not own the order.
// Maps to HTTP 403.
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string { return e.Message }

func NewAuthorizationError(msg string) error {
	return &AuthorizationError{Message: msg}
}
