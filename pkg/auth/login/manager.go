package login

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/marmos91/dittologin/internal/logger"
	"github.com/marmos91/dittologin/internal/telemetry"
	"github.com/marmos91/dittologin/pkg/auth"
	"github.com/marmos91/dittologin/pkg/auth/platform"
	"github.com/marmos91/dittologin/pkg/config"
)

// loginFlight prefixes the singleflight key shared by first-time callers.
const loginFlight = "login"

// Manager resolves and caches the login user of the process.
//
// The cache starts empty. The first successful login populates it and it is
// never replaced afterwards, except after Reset. Failed logins leave it empty
// so the next call retries.
//
// Thread safety: safe for concurrent use. Concurrent first callers share a
// single login attempt.
type Manager struct {
	authType      auth.AuthType
	facts         platform.Facts
	configuration *Configuration
	registry      *Registry
	metrics       *Metrics
	loginUsername string

	cache identityCache
	group singleflight.Group
}

// Option configures a Manager.
type Option func(*Manager)

// WithAuthType sets the authentication mode. Defaults to SIMPLE.
func WithAuthType(t auth.AuthType) Option {
	return func(m *Manager) {
		m.authType = t
	}
}

// WithPlatform overrides the detected platform facts.
func WithPlatform(facts platform.Facts) Option {
	return func(m *Manager) {
		m.facts = facts
	}
}

// WithConfiguration sets the provider configuration. By default one is built
// from the platform facts and the login username.
func WithConfiguration(c *Configuration) Option {
	return func(m *Manager) {
		m.configuration = c
	}
}

// WithRegistry sets the provider registry. Defaults to DefaultRegistry().
func WithRegistry(r *Registry) Option {
	return func(m *Manager) {
		m.registry = r
	}
}

// WithMetrics sets the metrics sink. A nil *Metrics disables metrics.
func WithMetrics(metrics *Metrics) Option {
	return func(m *Manager) {
		m.metrics = metrics
	}
}

// WithLoginUsername makes the default configuration assert a fixed login name
// instead of the OS account name. Ignored when WithConfiguration is used.
func WithLoginUsername(name string) Option {
	return func(m *Manager) {
		m.loginUsername = name
	}
}

// NewManager creates a Manager with an empty identity cache.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		authType: auth.AuthTypeSimple,
		facts:    platform.Current(),
	}
	for _, opt := range opts {
		opt(m)
	}

	if m.configuration == nil {
		var copts []ConfigurationOption
		if m.loginUsername != "" {
			copts = append(copts, WithLocalUsername(m.loginUsername))
		}
		m.configuration = NewConfiguration(m.facts, copts...)
	}
	if m.registry == nil {
		m.registry = DefaultRegistry()
	}

	return m
}

// NewManagerFromConfig creates a Manager from the security section of cfg.
//
// The authentication mode is read once here; opts are applied after the
// configured values and may override them.
func NewManagerFromConfig(cfg *config.Config, opts ...Option) (*Manager, error) {
	if cfg == nil {
		return nil, fmt.Errorf("login: nil config")
	}

	authType, err := auth.ParseAuthType(cfg.Security.AuthenticationType)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	base := []Option{WithAuthType(authType)}
	if cfg.Security.LoginUsername != "" {
		base = append(base, WithLoginUsername(cfg.Security.LoginUsername))
	}

	return NewManager(append(base, opts...)...), nil
}

// AuthType returns the active authentication mode.
func (m *Manager) AuthType() auth.AuthType {
	return m.authType
}

// Platform returns the platform facts the Manager logs in with.
func (m *Manager) Platform() platform.Facts {
	return m.facts
}

// LoginUser returns the login user, logging in first if none is cached.
//
// Once a login succeeded every call returns the same User without running any
// provider. Concurrent first callers share one login run. That run is not
// cancelled by any caller; a caller whose ctx ends stops waiting and gets a
// *auth.LoginError wrapping ctx.Err(). All errors match auth.ErrLoginFailed.
func (m *Manager) LoginUser(ctx context.Context) (auth.User, error) {
	if u, ok := m.cachedUser(); ok {
		return u, nil
	}
	if err := ctx.Err(); err != nil {
		return auth.User{}, &auth.LoginError{Mode: m.authType, Err: err}
	}

	gen := m.cache.generation()
	runCtx := context.WithoutCancel(ctx)
	ch := m.group.DoChan(flightKey(gen), func() (any, error) {
		return m.sharedLogin(runCtx, gen)
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return auth.User{}, res.Err
		}
		if res.Shared {
			logger.DebugCtx(ctx, "Shared in-flight login", logger.KeyAuth, m.authType.String())
		}
		return res.Val.(auth.User), nil
	case <-ctx.Done():
		logger.DebugCtx(ctx, "Stopped waiting for login", logger.KeyAuth, m.authType.String())
		return auth.User{}, &auth.LoginError{Mode: m.authType, Err: ctx.Err()}
	}
}

// flightKey names the shared login run of a cache generation. Callers
// after a Reset never join a run that started before it.
func flightKey(gen uint64) string {
	return loginFlight + "-" + strconv.FormatUint(gen, 10)
}

// sharedLogin is the body of a shared login run. The cache may have been
// filled since the caller last looked.
func (m *Manager) sharedLogin(ctx context.Context, gen uint64) (auth.User, error) {
	if u, ok := m.cachedUser(); ok {
		return u, nil
	}
	return m.login(ctx, gen)
}

// cachedUser reads the cache and counts hits.
func (m *Manager) cachedUser() (auth.User, bool) {
	u, ok := m.cache.load()
	if ok {
		m.metrics.ObserveCacheHit()
	}
	return u, ok
}

// Login runs one login attempt and caches its user if the cache is empty.
//
// On failure the cache is left untouched and the returned error is a
// *auth.LoginError wrapping the specific cause.
func (m *Manager) Login(ctx context.Context) error {
	_, err := m.login(ctx, m.cache.generation())
	return err
}

// Cached returns the cached login user without logging in.
func (m *Manager) Cached() (auth.User, bool) {
	return m.cache.load()
}

// Reset clears the cached login user. The next LoginUser logs in again.
func (m *Manager) Reset() {
	m.cache.reset()
	m.metrics.ObserveReset()
	logger.Debug("Login user cache cleared", logger.KeyAuth, m.authType.String())
}

// login runs one attempt. A successful user is cached only while gen is
// the current cache generation.
func (m *Manager) login(ctx context.Context, gen uint64) (auth.User, error) {
	attemptID := uuid.NewString()
	ctx, span := telemetry.StartLoginSpan(ctx, m.authType.String(), m.facts.String(), telemetry.AttemptID(attemptID))
	defer span.End()

	lc := logger.FromContext(ctx)
	if lc == nil {
		lc = logger.NewLogContext("login")
	}
	lc = lc.WithAuth(m.authType.String(), m.facts.String()).
		WithAttempt(attemptID).
		WithTrace(telemetry.TraceID(ctx), telemetry.SpanID(ctx))
	ctx = logger.WithContext(ctx, lc)

	start := time.Now()
	user, err := m.attempt(ctx)
	if err != nil {
		lerr := &auth.LoginError{Mode: m.authType, Err: err}
		m.metrics.ObserveLogin(time.Since(start), lerr)
		telemetry.RecordError(ctx, lerr)
		telemetry.SetAttributes(ctx, telemetry.Result(FailureReason(err)))
		logger.WarnCtx(ctx, "Login failed",
			logger.KeyDurationMs, logger.Duration(start),
			logger.KeyError, err)
		return auth.User{}, lerr
	}

	m.metrics.ObserveLogin(time.Since(start), nil)
	cached, stored := m.cache.storeIfEmpty(user, gen)
	if stored {
		user = cached
		m.metrics.ObserveCached()
	} else {
		logger.DebugCtx(ctx, "Login finished after a reset; not caching its user")
	}
	telemetry.SetAttributes(ctx, telemetry.Result("success"), telemetry.Username(user.Name()))
	logger.InfoCtx(ctx, "Login user resolved",
		logger.KeyUsername, user.Name(),
		logger.KeyDurationMs, logger.Duration(start))

	return user, nil
}

// attempt runs the gate, the provider chain and the identity extraction
// against a fresh subject.
func (m *Manager) attempt(ctx context.Context) (auth.User, error) {
	if err := CheckMode(m.authType); err != nil {
		return auth.User{}, err
	}

	descriptors, err := m.configuration.Lookup(m.authType)
	if err != nil {
		return auth.User{}, err
	}

	chain, err := m.registry.ResolveChain(m.facts, descriptors)
	if err != nil {
		return auth.User{}, err
	}

	names := make([]string, 0, chain.Len())
	for _, p := range chain.Providers() {
		names = append(names, p.Name())
	}
	telemetry.SetAttributes(ctx, telemetry.Providers(names))
	logger.DebugCtx(ctx, "Running login chain", logger.KeyProviders, names)

	subject := auth.NewSubject()
	if err := chain.Run(ctx, subject); err != nil {
		return auth.User{}, err
	}

	users := subject.Users()
	switch len(users) {
	case 0:
		return auth.User{}, auth.ErrNoIdentity
	case 1:
		return users[0], nil
	default:
		return auth.User{}, fmt.Errorf("%w: %d users asserted", auth.ErrAmbiguousIdentity, len(users))
	}
}
