package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Validate checks field ranges and the enumerated policy names.
func (s *Settings) Validate() error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	return nil
}
