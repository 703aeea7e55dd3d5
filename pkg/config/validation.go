package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validate checks the configuration against its struct tags.
//
// Validation does not normalize values; ApplyDefaults does. Every failing
// field is reported, each as "<namespace>: failed '<tag>' validation".
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}

		msgs := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			msg := fmt.Sprintf("%s: failed '%s' validation", fe.Namespace(), fe.Tag())
			if fe.Param() != "" {
				msg = fmt.Sprintf("%s: failed '%s=%s' validation (got %v)", fe.Namespace(), fe.Tag(), fe.Param(), fe.Value())
			}
			msgs = append(msgs, msg)
		}
		return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
	}

	return nil
}
