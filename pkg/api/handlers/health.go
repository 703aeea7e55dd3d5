package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/marmos91/dittologin/internal/logger"
	"github.com/marmos91/dittologin/pkg/auth"
	"github.com/marmos91/dittologin/pkg/auth/platform"
)

var errNoIdentitySource = errors.New("login manager not initialized")

// IdentitySource resolves the login user of the process.
//
// *login.Manager satisfies it.
type IdentitySource interface {
	LoginUser(ctx context.Context) (auth.User, error)
	AuthType() auth.AuthType
	Platform() platform.Facts
}

// IdentityResponse is the payload of GET /health/identity.
type IdentityResponse struct {
	User      string `json:"user,omitempty"`
	AuthType  string `json:"auth_type"`
	Platform  string `json:"platform"`
	Module    string `json:"module"`
	Principal string `json:"principal"`
}

// HealthHandler handles health check endpoints.
//
// Health endpoints are unauthenticated and provide:
//   - Liveness probe: Is the server process running?
//   - Identity probe: Does the process have a login user?
type HealthHandler struct {
	identity IdentitySource
}

// NewHealthHandler creates a new health handler.
//
// The identity parameter may be nil, in which case the identity probe
// returns unhealthy status.
func NewHealthHandler(identity IdentitySource) *HealthHandler {
	return &HealthHandler{identity: identity}
}

// Liveness handles GET /health - simple liveness probe.
//
// Returns 200 OK if the server process is running.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, newResponse(map[string]string{"service": "dittologin"}, nil))
}

// Identity handles GET /health/identity - login user probe.
//
// Returns 200 OK with the login user, authentication mode and platform when
// the login user resolves (or is already cached). Returns 503 Service
// Unavailable with the login error otherwise.
func (h *HealthHandler) Identity(w http.ResponseWriter, r *http.Request) {
	if h.identity == nil {
		writeJSON(w, http.StatusServiceUnavailable, newResponse(nil, errNoIdentitySource))
		return
	}

	facts := h.identity.Platform()
	resp := IdentityResponse{
		AuthType:  h.identity.AuthType().String(),
		Platform:  facts.String(),
		Module:    facts.Module().String(),
		Principal: facts.PrincipalKind().String(),
	}

	user, err := h.identity.LoginUser(r.Context())
	if err != nil {
		logger.WarnCtx(r.Context(), "Identity probe failed",
			logger.KeyAuth, resp.AuthType,
			logger.KeyError, err)
		writeJSON(w, http.StatusServiceUnavailable, newResponse(resp, err))
		return
	}

	resp.User = user.Name()
	writeJSON(w, http.StatusOK, newResponse(resp, nil))
}
