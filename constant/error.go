package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrConflict
	ErrMethodNotAllowed
	ErrReadFailed
	ErrIncorrectPassword
	ErrEmailNotFound
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:           "success",
	ErrInternal:          "Internal server error",
	ErrNotFound:          "No data found",
	ErrInvalidRequest:    "Invalid request",
	ErrUnauthorize:       "Unauthorized",
	ErrConflict:          "Email already exists",
	ErrMethodNotAllowed:  "Method not allowed",
	ErrReadFailed:        "Query failed",
	ErrIncorrectPassword: "Incorrect password.",
	ErrEmailNotFound:     "Email does not exist.",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:           http.StatusOK,
	ErrInternal:          http.StatusInternalServerError,
	ErrNotFound:          http.StatusNotFound,
	ErrInvalidRequest:    http.StatusBadRequest,
	ErrUnauthorize:       http.StatusUnauthorized,
	ErrConflict:          http.StatusConflict,
	ErrMethodNotAllowed:  http.StatusMethodNotAllowed,
	ErrReadFailed:        http.StatusForbidden,
	ErrIncorrectPassword: http.StatusUnauthorized,
	ErrEmailNotFound:     http.StatusUnauthorized,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:           "0000",
	ErrInternal:          "0001",
	ErrNotFound:          "0002",
	ErrInvalidRequest:    "0003",
	ErrUnauthorize:       "0004",
	ErrConflict:          "0005",
	ErrMethodNotAllowed:  "0006",
	ErrReadFailed:        "0007",
	ErrIncorrectPassword: "0008",
	ErrEmailNotFound:     "0009",
}

type contextKey string

// AuthEmailKey holds the authenticated X-Auth-User email in the request context.
const AuthEmailKey contextKey = "auth_email"
