package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies application errors for the handler layer.
type Kind int

const (
	KindValidation Kind = iota + 1
	KindAuthenticity
	KindGateway
)

// AppError is a structured application error carrying the HTTP status the
// handler layer should respond with.
type AppError struct {
	Kind    Kind
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Validation signals missing or malformed caller input.
func Validation(msg string) *AppError {
	return &AppError{Kind: KindValidation, Code: http.StatusBadRequest, Message: msg}
}

// Authenticity signals a signature mismatch. Terminal, not retryable.
func Authenticity(msg string) *AppError {
	return &AppError{Kind: KindAuthenticity, Code: http.StatusBadRequest, Message: msg}
}

// Gateway signals an upstream payment-provider failure.
func Gateway(msg string, err error) *AppError {
	return &AppError{Kind: KindGateway, Code: http.StatusInternalServerError, Message: msg, Err: err}
}

// As extracts an AppError from an error chain.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
