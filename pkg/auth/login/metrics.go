package login

import (
	"errors"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/marmos91/dittologin/pkg/auth"
)

// Failure reasons used as the "reason" label of LoginFailuresTotal.
const (
	ReasonUnsupportedMode   = "unsupported_mode"
	ReasonProvider          = "provider"
	ReasonNoIdentity        = "no_identity"
	ReasonAmbiguousIdentity = "ambiguous_identity"
	ReasonOther             = "other"
)

// Metrics tracks Prometheus metrics for login operations.
//
// All metrics use the "dittologin_" prefix. Methods handle nil receiver
// gracefully, so a nil *Metrics acts as a no-op (zero overhead when
// metrics are disabled).
//
// Metrics tracked:
//   - login attempt duration (histogram)
//   - login attempts by result (success/failure)
//   - login failures by reason
//   - identity cache hits
//   - whether a login user is currently cached (gauge)
type Metrics struct {
	// LoginDuration tracks time to run one login attempt end to end.
	LoginDuration prometheus.Histogram

	// LoginAttemptsTotal counts login attempts by result.
	// Labels: result=[success, failure]
	LoginAttemptsTotal *prometheus.CounterVec

	// LoginFailuresTotal counts failed login attempts by reason.
	// Labels: reason=[unsupported_mode, provider, no_identity, ambiguous_identity, other]
	LoginFailuresTotal *prometheus.CounterVec

	// CacheHitsTotal counts login user reads served from the cache.
	CacheHitsTotal prometheus.Counter

	// Cached is 1 while a login user is cached, 0 otherwise.
	Cached prometheus.Gauge
}

var (
	defaultMetricsOnce     sync.Once
	defaultMetricsInstance *Metrics
)

// NewMetrics creates and registers login Prometheus metrics.
//
// If registerer is nil, prometheus.DefaultRegisterer is used. Registration
// on the default registerer happens exactly once, even if called multiple
// times; any other registerer gets its own set of collectors.
func NewMetrics(registerer prometheus.Registerer) *Metrics {
	if registerer == nil {
		defaultMetricsOnce.Do(func() {
			defaultMetricsInstance = newMetrics(prometheus.DefaultRegisterer)
		})
		return defaultMetricsInstance
	}
	return newMetrics(registerer)
}

func newMetrics(registerer prometheus.Registerer) *Metrics {
	m := &Metrics{
		LoginDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "dittologin_login_duration_seconds",
				Help:    "Time to run one login attempt",
				Buckets: prometheus.DefBuckets,
			},
		),
		LoginAttemptsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dittologin_login_attempts_total",
				Help: "Total login attempts by result",
			},
			[]string{"result"},
		),
		LoginFailuresTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dittologin_login_failures_total",
				Help: "Total failed login attempts by reason",
			},
			[]string{"reason"},
		),
		CacheHitsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "dittologin_identity_cache_hits_total",
				Help: "Total login user reads served from the identity cache",
			},
		),
		Cached: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "dittologin_identity_cached",
				Help: "Whether a login user is currently cached (1) or not (0)",
			},
		),
	}

	registerer.MustRegister(
		m.LoginDuration,
		m.LoginAttemptsTotal,
		m.LoginFailuresTotal,
		m.CacheHitsTotal,
		m.Cached,
	)

	return m
}

// ObserveLogin records a login attempt with its duration and outcome.
func (m *Metrics) ObserveLogin(duration time.Duration, err error) {
	if m == nil {
		return
	}
	m.LoginDuration.Observe(duration.Seconds())
	if err == nil {
		m.LoginAttemptsTotal.WithLabelValues("success").Inc()
		return
	}
	m.LoginAttemptsTotal.WithLabelValues("failure").Inc()
	m.LoginFailuresTotal.WithLabelValues(FailureReason(err)).Inc()
}

// ObserveCacheHit records a login user read served from the cache.
func (m *Metrics) ObserveCacheHit() {
	if m == nil {
		return
	}
	m.CacheHitsTotal.Inc()
}

// ObserveCached records that a login user now fills the cache.
func (m *Metrics) ObserveCached() {
	if m == nil {
		return
	}
	m.Cached.Set(1)
}

// ObserveReset records that the cached login user was cleared.
func (m *Metrics) ObserveReset() {
	if m == nil {
		return
	}
	m.Cached.Set(0)
}

// FailureReason classifies a login error for metrics and diagnostics.
func FailureReason(err error) string {
	switch {
	case errors.Is(err, auth.ErrUnsupportedMode):
		return ReasonUnsupportedMode
	case errors.Is(err, auth.ErrProviderFailed):
		return ReasonProvider
	case errors.Is(err, auth.ErrNoIdentity):
		return ReasonNoIdentity
	case errors.Is(err, auth.ErrAmbiguousIdentity):
		return ReasonAmbiguousIdentity
	default:
		return ReasonOther
	}
}
