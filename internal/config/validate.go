package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/verte-zerg/onitore/internal/model"
)

var validate = validator.New()

var flagNames = map[string]string{
	"Level":           "--level",
	"DurationSeconds": "--duration",
}

// Validate checks resolved settings and reports the first bad flag.
func Validate(cfg model.Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("invalid settings: %w", err)
	}
	fe := verrs[0]
	name, ok := flagNames[fe.Field()]
	if !ok {
		name = fe.Field()
	}
	switch fe.Tag() {
	case "min":
		return fmt.Errorf("%s must be >= %s", name, fe.Param())
	case "max", "lte":
		return fmt.Errorf("%s must be <= %s", name, fe.Param())
	case "gt":
		return fmt.Errorf("%s must be > %s", name, fe.Param())
	default:
		return fmt.Errorf("%s is invalid (%s)", name, fe.Tag())
	}
}
