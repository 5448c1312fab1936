package utils

import (
	"fmt"

	"github.com/AssoGestion/asso_gestion_app/internal/apperrors"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateStruct checks the `validate` tags of a request payload before it
// goes on the wire. Failures wrap apperrors.ErrValidation.
func ValidateStruct(v any) error {
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	return nil
}
