package errors

import (
	"fmt"
	"net/http"
)

// Error carries a message and the HTTP status it should be surfaced with.
type Error struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

var (
	ErrNotFound            = New("resource not found", http.StatusNotFound)
	ErrBadRequest          = New("bad request", http.StatusBadRequest)
	ErrUnauthorized        = New("unauthorized", http.StatusUnauthorized)
	ErrInternalServerError = New("internal server error", http.StatusInternalServerError)
)

func New(message string, status int) *Error {
	return &Error{
		Message: message,
		Status:  status,
	}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

// NotFound builds a 404 for a named entity, e.g. NotFound("post", "42").
func NotFound(entity, id string) *Error {
	return New(fmt.Sprintf("%s with identifier %s not found", entity, id), http.StatusNotFound)
}
