package models

import (
	"fmt"
	"net/http"
)

// ErrorResponse is the JSON error envelope returned by every handler
type ErrorResponse struct {
	Error string `json:"error"`
}

// InvalidSizeError signals that a sizeId has no match in the catalog.
// The offending identifier is kept so callers can build the exact message.
type InvalidSizeError struct {
	SizeID string
}

func (e *InvalidSizeError) Error() string {
	return fmt.Sprintf("Invalid sizeId: %s", e.SizeID)
}

// StatusCode maps the error to an HTTP status
func (e *InvalidSizeError) StatusCode() int { return http.StatusBadRequest }

// InvalidIngredientError signals that an ingredientId has no match in the
// catalog. Carries the first offending identifier found after deduplication.
type InvalidIngredientError struct {
	IngredientID string
}

func (e *InvalidIngredientError) Error() string {
	return fmt.Sprintf("Invalid ingredientId: %s", e.IngredientID)
}

// StatusCode maps the error to an HTTP status
func (e *InvalidIngredientError) StatusCode() int { return http.StatusBadRequest }

// ValidationError is client-supplied data failing a precondition: a missing
// required field or a malformed shape. Reported as 400, never retried.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// StatusCode maps the error to an HTTP status
func (e *ValidationError) StatusCode() int { return http.StatusBadRequest }

// ErrEmptyIngredients rejects an order whose ingredient list resolves to an
// empty set.
var ErrEmptyIngredients = &ValidationError{Message: "ingredientIds must be a non-empty array of strings"}
