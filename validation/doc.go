// Package validation provides input validation for gomonzo.
//
// Struct tag validation (backed by go-playground/validator) is used for
// configuration structs and for the wire shapes decoded from API responses,
// where a missing required field must fail the decode:
//
//	type wireBalance struct {
//	    Balance *int64 `json:"balance" validate:"required"`
//	}
//	err := validation.Validate(w)
//
// Programmatic validation collects errors for command-line arguments:
//
//	v := validation.New()
//	v.Required("account", accountID)
//	err := v.Validate()
package validation
