package servererrors

import "errors"

var (
	ErrInvalidRequestPayload = errors.New("invalid request payload")
	ErrValidationFailed      = errors.New("validation failed")
	ErrURLQueryParams        = errors.New("invalid url query params")

	ErrUnauthorized        = errors.New("unauthorized")
	ErrUnauthorizedAccess  = errors.New("unauthorized access")
	ErrNoAccessTokenCookie = errors.New("no access token cookie")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrSessionNotFound     = errors.New("session not found or expired")

	ErrProductAlreadyExists = errors.New("product already exists")
	ErrProductNotFound      = errors.New("product not found")
	ErrClientNotFound       = errors.New("client not found")
	ErrStockNotFound        = errors.New("stock item not found")
	ErrOrderNotFound        = errors.New("order not found")
	ErrProjectNotFound      = errors.New("project not found")
	ErrUserNotFound         = errors.New("user not found")
)

// ServerError is the error type handlers return for conditions that map to a
// specific http response. Anything else is treated as an internal error by
// the handler wrapper.
type ServerError struct {
	StatusCode int
	message    string
	Errors     any // optional detail, e.g. field level validation errors
}

func New(statusCode int, message string, errs any) *ServerError {
	return &ServerError{
		StatusCode: statusCode,
		message:    message,
		Errors:     errs,
	}
}

func (e *ServerError) Error() string {
	return e.message
}
