package validator

import (
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	instance *validator.Validate
	once     sync.Once
)

// Get returns the shared validator instance.
func Get() *validator.Validate {
	once.Do(func() {
		instance = validator.New(validator.WithRequiredStructEnabled())
	})
	return instance
}

// EchoValidator plugs the shared validator into echo.Context.Validate.
type EchoValidator struct{}

func (EchoValidator) Validate(i any) error {
	return Get().Struct(i)
}
