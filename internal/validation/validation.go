// Package validation wraps go-playground/validator for the request structs of the http handlers.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/rebld/rebldserver/internal/apperr"
	"github.com/rebld/rebldserver/internal/gymstats/sport"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// report json field names, they are what the clients send
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})

	_ = v.RegisterValidation("sport", func(fl validator.FieldLevel) bool {
		return sport.Sport(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("placement", func(fl validator.FieldLevel) bool {
		return sport.Placement(fl.Field().String()).IsValid()
	})

	return v
}

// Struct validates s, violations are returned wrapped in apperr.ErrValidation.
func Struct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return fmt.Errorf("%w: %s", apperr.ErrValidation, err)
	}

	msgs := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		if fieldErr.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s: failed on %s=%s", fieldErr.Field(), fieldErr.Tag(), fieldErr.Param()))
		} else {
			msgs = append(msgs, fmt.Sprintf("%s: failed on %s", fieldErr.Field(), fieldErr.Tag()))
		}
	}
	return apperr.Validation("%s", strings.Join(msgs, "; "))
}
