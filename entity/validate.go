package entity

import "github.com/go-playground/validator/v10"

var fieldValidator = validator.New()

// Validate checks an entity struct against its field validation tags.
// Constructors call this before returning a new instance; a validation
// error rejects the whole property map.
func Validate(v any) error {
	return fieldValidator.Struct(v)
}
