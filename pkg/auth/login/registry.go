package login

import (
	"fmt"
	"sort"
	"sync"

	"github.com/marmos91/dittologin/pkg/auth"
	"github.com/marmos91/dittologin/pkg/auth/osuser"
	"github.com/marmos91/dittologin/pkg/auth/platform"
)

// Factory builds a login provider for a platform from descriptor options.
type Factory func(facts platform.Facts, options map[string]string) (auth.LoginProvider, error)

// Registry resolves provider descriptors to providers.
//
// Thread safety: safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// DefaultRegistry returns a Registry with the "os" and "local" providers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(ProviderOS, func(facts platform.Facts, _ map[string]string) (auth.LoginProvider, error) {
		return osuser.New(facts), nil
	})
	r.Register(ProviderLocal, func(facts platform.Facts, options map[string]string) (auth.LoginProvider, error) {
		return NewLocalProvider(facts.PrincipalKind(), options), nil
	})
	return r
}

// Register adds or replaces the factory for a provider name.
func (r *Registry) Register(name string, factory Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = factory
}

// Names returns the registered provider names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve builds the provider for one descriptor.
func (r *Registry) Resolve(facts platform.Facts, d Descriptor) (auth.LoginProvider, error) {
	r.mu.RLock()
	factory, ok := r.factories[d.Name]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("provider %q: %w", d.Name, auth.ErrUnknownProvider)
	}

	p, err := factory(facts, d.Options)
	if err != nil {
		return nil, fmt.Errorf("build provider %q: %w", d.Name, err)
	}
	return p, nil
}

// ResolveChain builds a chain from descriptors in order.
//
// A descriptor that cannot be resolved is reported as a *auth.ProviderError
// for that descriptor, like any other provider failure.
func (r *Registry) ResolveChain(facts platform.Facts, descriptors []Descriptor) (*auth.Chain, error) {
	providers := make([]auth.LoginProvider, 0, len(descriptors))
	for _, d := range descriptors {
		p, err := r.Resolve(facts, d)
		if err != nil {
			return nil, &auth.ProviderError{Provider: d.Name, Err: err}
		}
		providers = append(providers, p)
	}
	return auth.NewChain(providers...), nil
}
