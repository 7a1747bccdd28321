package errors

import (
	"net/http"

	"codeberg.org/zenfocus/server/internal/logger"
	"github.com/gin-gonic/gin"
)

// Error Handling Guidelines:
//
// For HTTP REST handlers:
//   - Use errors.InternalError(), errors.BadRequest(), etc. for terminal errors
//     These functions handle both logging and the HTTP response
//   - Never call both logger.ErrorErr() and errors.InternalError() for the same error
//
// For repositories/internal packages:
//   - Return wrapped errors with context using fmt.Errorf("context: %w", err)
//   - Let the caller (handler) decide how to log and respond
//   - Do not log errors in non-handler code (avoid double logging)

// represents a standardized error response
type ErrorResponse struct {
	Error   string `json:"error"`   // error code (e.g. "unauthorized", "not_found")
	Message string `json:"message"` // user-friendly message
}

// standard error codes
const (
	CodeUnauthorized       = "unauthorized"
	CodeInvalidCredentials = "invalid_credentials"
	CodeAlreadyExists      = "already_exists"
	CodeForbidden          = "forbidden"
	CodeNotFound           = "not_found"
	CodeValidationError    = "validation_error"
	CodeBadRequest         = "bad_request"
	CodeServerError        = "server_error"
)

// returns a 401 unauthorized error
func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = "authentication required"
	}

	c.JSON(http.StatusUnauthorized, ErrorResponse{
		Error:   CodeUnauthorized,
		Message: message,
	})
}

// returns the single 400 response used for every login failure.
// Unknown email and wrong password must be indistinguishable to the
// caller, so both paths go through here with no argument to vary.
func InvalidCredentials(c *gin.Context) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   CodeInvalidCredentials,
		Message: "invalid credentials",
	})
}

// returns a 400 error for registration against an existing identity
func AlreadyExists(c *gin.Context, message string) {
	if message == "" {
		message = "already exists"
	}

	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   CodeAlreadyExists,
		Message: message,
	})
}

// returns a 403 forbidden error
func Forbidden(c *gin.Context, message string) {
	if message == "" {
		message = "permission denied"
	}

	c.JSON(http.StatusForbidden, ErrorResponse{
		Error:   CodeForbidden,
		Message: message,
	})
}

// returns a 404 not found error
func NotFound(c *gin.Context, resource string) {
	message := "resource not found"

	if resource != "" {
		message = resource + " not found"
	}

	c.JSON(http.StatusNotFound, ErrorResponse{
		Error:   CodeNotFound,
		Message: message,
	})
}

// returns a 400 bad request error
func BadRequest(c *gin.Context, message string) {
	if message == "" {
		message = "invalid request"
	}

	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   CodeBadRequest,
		Message: message,
	})
}

// returns a 400 bad request error for binding/validation failures
func ValidationError(c *gin.Context, err error) {
	message := "request validation failed"
	if err != nil {
		logger.Debug("request validation failed",
			"path", c.Request.URL.Path,
			"error", err,
		)
	}

	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   CodeValidationError,
		Message: message,
	})
}

// returns a 500 internal server error. The underlying error is logged
// server-side with request context and never echoed to the client.
func InternalError(c *gin.Context, message string, err error) {
	if message == "" {
		message = "an error occurred"
	}

	logger.ErrorErr(err, message,
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
		"user_id", c.GetString("user_id"),
	)

	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error:   CodeServerError,
		Message: message,
	})
}
