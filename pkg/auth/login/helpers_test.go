package login

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/marmos91/dittologin/pkg/auth"
	"github.com/marmos91/dittologin/pkg/auth/osuser"
	"github.com/marmos91/dittologin/pkg/auth/platform"
)

var (
	unix64    = platform.Facts{OS: platform.OSUnix, Is64Bit: true, Runtime: platform.RuntimeStandard}
	windows32 = platform.Facts{OS: platform.OSWindows, Is64Bit: false, Runtime: platform.RuntimeStandard}
)

// countingLookup is an osuser lookup returning a fixed account and counting calls.
type countingLookup struct {
	mu    sync.Mutex
	name  string
	err   error
	calls atomic.Int64
}

func newCountingLookup(name string) *countingLookup {
	return &countingLookup{name: name}
}

func (l *countingLookup) lookup() (string, error) {
	l.calls.Add(1)
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.name, l.err
}

func (l *countingLookup) setErr(err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.err = err
}

// registryWithLookup returns the default registry with the OS provider
// backed by the given lookup.
func registryWithLookup(l *countingLookup) *Registry {
	r := DefaultRegistry()
	r.Register(ProviderOS, func(facts platform.Facts, _ map[string]string) (auth.LoginProvider, error) {
		return osuser.New(facts, osuser.WithLookup(l.lookup)), nil
	})
	return r
}

// funcProvider adapts a function to auth.LoginProvider.
type funcProvider struct {
	name string
	fn   func(ctx context.Context, subject *auth.Subject) error
}

func (p funcProvider) Login(ctx context.Context, subject *auth.Subject) error {
	return p.fn(ctx, subject)
}

func (p funcProvider) Name() string {
	return p.name
}

// registerFunc registers a provider under name that runs fn.
func registerFunc(r *Registry, name string, fn func(ctx context.Context, subject *auth.Subject) error) {
	r.Register(name, func(_ platform.Facts, _ map[string]string) (auth.LoginProvider, error) {
		return funcProvider{name: name, fn: fn}, nil
	})
}

func newTestManager(t *testing.T, l *countingLookup, opts ...Option) *Manager {
	t.Helper()
	base := []Option{
		WithPlatform(unix64),
		WithRegistry(registryWithLookup(l)),
	}
	return NewManager(append(base, opts...)...)
}

// gatedRegistry is registryWithLookup whose first OS provider construction
// closes entered and then blocks until release is closed. Later
// constructions do not block.
func gatedRegistry(l *countingLookup, entered chan<- struct{}, release <-chan struct{}) *Registry {
	r := registryWithLookup(l)
	osFactory := r.factories[ProviderOS]

	var gated atomic.Bool
	r.Register(ProviderOS, func(facts platform.Facts, options map[string]string) (auth.LoginProvider, error) {
		if gated.CompareAndSwap(false, true) {
			close(entered)
			<-release
		}
		return osFactory(facts, options)
	})
	return r
}
