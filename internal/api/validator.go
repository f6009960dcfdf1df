package api

import (
	"fmt"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/ougirez/milkdigit/internal/pkg/constants"
)

type customValidator struct {
	validate *validator.Validate
}

func NewValidator() echo.Validator {
	return &customValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

func (v *customValidator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return fmt.Errorf("%s: %w", err.Error(), constants.ErrInvalidRequest)
	}
	return nil
}

type customBinder struct {
	echo.DefaultBinder
}

// NewBinder binds like echo does and validates the result.
func NewBinder() echo.Binder {
	return &customBinder{}
}

func (b *customBinder) Bind(i interface{}, c echo.Context) error {
	if err := b.DefaultBinder.Bind(i, c); err != nil {
		return fmt.Errorf("bind: %s: %w", err.Error(), constants.ErrInvalidRequest)
	}
	if c.Echo().Validator == nil {
		return nil
	}
	return c.Validate(i)
}
