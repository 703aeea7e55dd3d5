package login

import (
	"context"
	"errors"
	"fmt"

	"github.com/marmos91/dittologin/internal/logger"
	"github.com/marmos91/dittologin/pkg/auth"
	"github.com/marmos91/dittologin/pkg/auth/platform"
)

// Local provider errors.
var (
	ErrNoOSUser        = errors.New("login: cannot find a user")
	ErrMultipleOSUsers = errors.New("login: more than one OS user found")
)

// LocalProvider asserts the login auth.User.
//
// It runs after the OS-native provider. If the subject already carries a
// User nothing is done. With a fixed username that name is asserted;
// otherwise the User is derived from the single OSPrincipal of the platform's
// principal kind.
type LocalProvider struct {
	kind     platform.PrincipalKind
	username string
}

// NewLocalProvider creates a local provider converting OSPrincipals of kind.
// The "username" option sets a fixed login name.
func NewLocalProvider(kind platform.PrincipalKind, options map[string]string) *LocalProvider {
	return &LocalProvider{
		kind:     kind,
		username: options[OptionUsername],
	}
}

// Login asserts the login user on the subject.
func (p *LocalProvider) Login(ctx context.Context, subject *auth.Subject) error {
	if len(subject.Users()) > 0 {
		return nil
	}

	if p.username != "" {
		subject.Add(auth.NewUser(p.username))
		logger.DebugCtx(ctx, "Fixed login user asserted", logger.KeyUsername, p.username)
		return nil
	}

	var matches []auth.OSPrincipal
	for _, op := range subject.OSPrincipals() {
		if op.Kind == p.kind {
			matches = append(matches, op)
		}
	}

	switch len(matches) {
	case 0:
		return fmt.Errorf("%w (no %s principal)", ErrNoOSUser, p.kind)
	case 1:
		subject.Add(auth.NewUser(matches[0].Name()))
		return nil
	default:
		return fmt.Errorf("%w (%d %s principals)", ErrMultipleOSUsers, len(matches), p.kind)
	}
}

// Name returns "local".
func (p *LocalProvider) Name() string {
	return ProviderLocal
}

var _ auth.LoginProvider = (*LocalProvider)(nil)
