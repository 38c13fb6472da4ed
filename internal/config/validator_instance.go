package config

import (
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/mnhtng/shadcn-chart/pkg/chart"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	chartIDPattern  = regexp.MustCompile(`^[a-z0-9_-]+$`)
	hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
)

// validatorInstance configures and returns the shared validator used
// across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("chart_id", func(fl validator.FieldLevel) bool {
			return chartIDPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("chart_kind", func(fl validator.FieldLevel) bool {
			_, ok := chart.ParseKind(fl.Field().String())
			return ok
		})

		_ = v.RegisterValidation("hex_color", func(fl validator.FieldLevel) bool {
			return hexColorPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}
