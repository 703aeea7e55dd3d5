package auth

import (
	"context"
	"fmt"

	"github.com/marmos91/dittologin/internal/telemetry"
)

// LoginProvider defines a pluggable login mechanism.
//
// Implementations inspect ambient platform credentials (or previously asserted
// principals) and add principals to the shared Subject. The Chain drives
// providers in order; every provider must succeed for the attempt to succeed.
//
// Thread safety: a provider may be shared between attempts, but each attempt
// passes its own Subject.
type LoginProvider interface {
	// Login asserts zero or more principals on the subject.
	//
	// Returns nil when the provider completed, or an error describing why
	// the provider could not log in. Any error is terminal for the attempt.
	Login(ctx context.Context, subject *Subject) error

	// Name returns the provider name for logging and diagnostics.
	// Examples: "unix", "nt", "local"
	Name() string
}

// Chain is an ordered list of LoginProviders that must all succeed.
//
// Unlike a first-match authenticator, a Chain runs every provider against the
// same Subject, so later providers can build on what earlier ones asserted.
type Chain struct {
	providers []LoginProvider
}

// NewChain creates a Chain running the given providers in order.
func NewChain(providers ...LoginProvider) *Chain {
	return &Chain{providers: providers}
}

// Run drives every provider against the subject in order.
//
// The first failing provider stops the chain; its error is returned as a
// *ProviderError. A cancelled context is reported the same way, attributed to
// the provider that was about to run.
func (c *Chain) Run(ctx context.Context, subject *Subject) error {
	if subject == nil {
		return fmt.Errorf("auth: nil subject")
	}
	for _, p := range c.providers {
		if err := ctx.Err(); err != nil {
			return &ProviderError{Provider: p.Name(), Err: err}
		}
		if err := runProvider(ctx, p, subject); err != nil {
			return &ProviderError{Provider: p.Name(), Err: err}
		}
	}
	return nil
}

func runProvider(ctx context.Context, p LoginProvider, subject *Subject) error {
	ctx, span := telemetry.StartProviderSpan(ctx, p.Name())
	defer span.End()

	err := p.Login(ctx, subject)
	telemetry.RecordError(ctx, err)
	return err
}

// Providers returns the providers of the chain in execution order.
// Useful for diagnostics and logging.
func (c *Chain) Providers() []LoginProvider {
	out := make([]LoginProvider, len(c.providers))
	copy(out, c.providers)
	return out
}

// Len returns the number of providers in the chain.
func (c *Chain) Len() int {
	return len(c.providers)
}
