package mm1

import (
	"math"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

const (
	// DefaultMaxWait is the last histogram bucket; longer waits are clamped into it.
	DefaultMaxWait = 60

	// DefaultWindow is how many recent waits feed the percentile estimates.
	DefaultWindow = 1000
)

// Config holds the simulation parameters.
type Config struct {
	ArrivalRate float64 `mapstructure:"arrival_rate" validate:"finite,gt=0"` // lambda
	ServiceRate float64 `mapstructure:"service_rate" validate:"finite,gt=0"` // mu
	MaxWait     int     `mapstructure:"max_wait" validate:"gte=0"`
	Window      int     `mapstructure:"window" validate:"gte=0"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
		f := fl.Field()
		if f.Kind() != reflect.Float32 && f.Kind() != reflect.Float64 {
			return true
		}
		return !math.IsInf(f.Float(), 0) && !math.IsNaN(f.Float())
	})
	return v
}

// Validate checks the rates and applies defaults to zero fields.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(ErrInvalidParameter, err.Error())
	}
	if c.MaxWait == 0 {
		c.MaxWait = DefaultMaxWait
	}
	if c.Window == 0 {
		c.Window = DefaultWindow
	}
	return nil
}

// Stable reports whether the queue has a steady state (lambda < mu).
func (c Config) Stable() bool {
	return c.ArrivalRate < c.ServiceRate
}
