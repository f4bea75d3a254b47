package validator

import (
	validators "github.com/go-playground/validator/v10"
)

// Validator interface - Struct-tag validation for the inbound HTTP DTOs
// (cart items, credentials, product, checkout and chat payloads).
type Validator interface {
	ValidateStruct(inf interface{}) error
}

type validator struct {
	validator *validators.Validate
}

// New Validator func - One instance per handler; the underlying validate
// caches struct metadata and is safe for concurrent use.
func New() Validator {
	v := validators.New()
	return &validator{
		validator: v,
	}
}

// ValidateStruct func - Checks inf against its validate tags.
func (v *validator) ValidateStruct(inf interface{}) error {
	return v.validator.Struct(inf)
}
