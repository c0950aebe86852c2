package handlers

const (
	ErrInvalidRequestBody  = "Invalid request body"
	ErrUnauthorized        = "Unauthorized"
	ErrInternalServerError = "Internal server error"
	ErrNoActiveGame        = "No active game"
	ErrTooManyRequests     = "Too many requests"
	ErrInvalidCSRFToken    = "Invalid CSRF token"

	// CSRFHeaderName carries the CSRF token on state-changing requests
	CSRFHeaderName = "X-CSRF-Token"
)
