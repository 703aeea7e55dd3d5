package login

import (
	"fmt"

	"github.com/marmos91/dittologin/pkg/auth"
)

// SupportedAuthType is the one mode with an implemented provider chain.
const SupportedAuthType = auth.AuthTypeSimple

// CheckMode fails fast when mode is not the supported mode, before any
// provider is built or run.
func CheckMode(mode auth.AuthType) error {
	if mode != SupportedAuthType {
		return fmt.Errorf("login user is only supported in %s mode, got %s: %w",
			SupportedAuthType, mode, auth.ErrUnsupportedMode)
	}
	return nil
}
