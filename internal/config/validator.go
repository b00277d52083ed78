package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/stackcards/internal/stackcards"
	stackerrors "github.com/alexisbeaulieu97/stackcards/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		// Report fields by their YAML names.
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return strings.ToLower(field.Name)
			}
			return name
		})

		_ = v.RegisterValidation("colour", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})

		_ = v.RegisterValidation("orientation", func(fl validator.FieldLevel) bool {
			_, err := stackcards.ParseOrientation(fl.Field().String())
			return err == nil
		})

		validateInst = v
	})

	return validateInst
}

// ValidateConfig performs schema and cross-field validation on the deck.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return stackerrors.NewValidationError("config", "configuration is nil", nil)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	s := cfg.Style
	if s.MinBrightness != nil && s.MaxBrightness != nil && *s.MinBrightness > *s.MaxBrightness {
		return stackerrors.NewValidationError("style.min_brightness",
			fmt.Sprintf("%v exceeds max_brightness %v", *s.MinBrightness, *s.MaxBrightness),
			stackerrors.ErrInvalidBrightness)
	}

	// Remaining bounds are checked against the widget defaults they merge with.
	if err := cfg.Options().Validate(); err != nil {
		return err
	}

	return nil
}

// convertValidationError normalizes validator errors into deck validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := yamlFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		if sentinel := sentinelFor(field); sentinel != nil {
			err = fmt.Errorf("%w: %w", sentinel, err)
		}
		return stackerrors.NewValidationError(field, msg, err)
	}

	return stackerrors.NewValidationError("config", err.Error(), err)
}

func sentinelFor(field string) error {
	switch field {
	case "style.gradient_steps":
		return stackerrors.ErrInvalidGradientSteps
	case "style.min_brightness", "style.max_brightness":
		return stackerrors.ErrInvalidBrightness
	}
	return nil
}

// yamlFieldName drops the root type from the namespace, leaving the YAML path.
func yamlFieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}
