package errors

// HTTPError is a domain error annotated with the HTTP status it should map
// to. Delivery layers build these in mapError; pkg/response reads the status
// when writing the envelope.
type HTTPError struct {
	Status  int
	Message string
}

// NewHTTPError creates a new HTTPError.
func NewHTTPError(status int, message string) *HTTPError {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	return e.Message
}

// StatusCode returns the HTTP status carried by the error.
func (e *HTTPError) StatusCode() int {
	return e.Status
}
