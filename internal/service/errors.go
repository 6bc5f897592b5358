package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// NotFoundError reports a missing entity of the given kind.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return e.Entity + " not found"
}

// InvalidArgumentError reports a request field that fails a business rule.
type InvalidArgumentError struct {
	Field  string
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	if e.Reason == "" {
		return "invalid " + e.Field
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ConflictError reports a unique field already taken by another record.
type ConflictError struct {
	Field string
	Value string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s %q already exists", e.Field, e.Value)
}

var (
	ErrProductNotFound  = &NotFoundError{Entity: "product"}
	ErrClientNotFound   = &NotFoundError{Entity: "client"}
	ErrEmployeeNotFound = &NotFoundError{Entity: "employee"}
	ErrUserNotFound     = &NotFoundError{Entity: "user"}
	ErrSaleNotFound     = &NotFoundError{Entity: "sale"}
	ErrOperatorNotFound = &NotFoundError{Entity: "operator"}

	ErrInvalidQuantity        = &InvalidArgumentError{Field: "quantity", Reason: "must be greater than 0"}
	ErrInvalidAmount          = &InvalidArgumentError{Field: "amount", Reason: "must be greater than 0"}
	ErrSearchCriteriaRequired = &InvalidArgumentError{Field: "name/older-than", Reason: "at least one search criterion is required"}

	ErrInsufficientStock = errors.New("insufficient stock")
)

// notFound translates gorm's missing-record error into the entity's NotFoundError.
func notFound(err error, nf *NotFoundError) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nf
	}
	return err
}

func validationError(field, message string) error {
	return &InvalidArgumentError{Field: field, Reason: message}
}
