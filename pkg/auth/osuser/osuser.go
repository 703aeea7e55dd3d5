// Package osuser implements the OS-native login provider.
//
// The provider looks up the account the process runs as and asserts it as an
// auth.OSPrincipal of the principal kind selected for the platform. It never
// verifies credentials itself; the operating system already did.
package osuser

import (
	"context"
	"errors"
	"fmt"

	"github.com/marmos91/dittologin/internal/logger"
	"github.com/marmos91/dittologin/pkg/auth"
	"github.com/marmos91/dittologin/pkg/auth/platform"
)

// ErrEmptyAccount is returned when the platform reports an account without a name.
var ErrEmptyAccount = errors.New("osuser: current account has no name")

// LookupFunc returns the account name of the running process.
type LookupFunc func() (string, error)

// Provider is the OS-native auth.LoginProvider.
type Provider struct {
	module platform.Module
	kind   platform.PrincipalKind
	lookup LookupFunc
}

// Option configures a Provider.
type Option func(*Provider)

// WithLookup replaces the platform account lookup.
func WithLookup(fn LookupFunc) Option {
	return func(p *Provider) {
		p.lookup = fn
	}
}

// New creates the native provider selected for the given platform facts.
func New(facts platform.Facts, opts ...Option) *Provider {
	module, kind := facts.Select()
	p := &Provider{
		module: module,
		kind:   kind,
		lookup: currentAccount,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Login asserts the process account on the subject.
func (p *Provider) Login(ctx context.Context, subject *auth.Subject) error {
	name, err := p.lookup()
	if err != nil {
		return fmt.Errorf("%s login: %w", p.module, err)
	}
	if name == "" {
		return fmt.Errorf("%s login: %w", p.module, ErrEmptyAccount)
	}

	subject.Add(auth.OSPrincipal{Kind: p.kind, Username: name})
	logger.DebugCtx(ctx, "OS account asserted",
		logger.KeyProvider, p.module.String(),
		logger.KeyUsername, name,
	)
	return nil
}

// Name returns the native module name (e.g., "unix", "nt").
func (p *Provider) Name() string {
	return p.module.String()
}

// Kind returns the principal kind the provider asserts.
func (p *Provider) Kind() platform.PrincipalKind {
	return p.kind
}

var _ auth.LoginProvider = (*Provider)(nil)
