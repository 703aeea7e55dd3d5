package auth

import (
	"errors"
	"fmt"
)

// Standard login errors.
var (
	// ErrLoginFailed is the single failure kind reported to callers of the
	// login user. Every login error matches it via errors.Is.
	ErrLoginFailed = errors.New("auth: fail to login")

	// ErrUnsupportedMode indicates that the active authentication mode has no
	// implemented provider chain.
	ErrUnsupportedMode = errors.New("auth: unsupported authentication mode")

	// ErrProviderFailed indicates that a provider in the chain failed.
	ErrProviderFailed = errors.New("auth: login provider failed")

	// ErrNoIdentity indicates that the chain completed without asserting a user.
	ErrNoIdentity = errors.New("auth: no login user found")

	// ErrAmbiguousIdentity indicates that the chain asserted more than one user.
	ErrAmbiguousIdentity = errors.New("auth: more than one login user found")

	// ErrUnknownProvider indicates that a provider descriptor names no
	// registered provider factory.
	ErrUnknownProvider = errors.New("auth: unknown login provider")

	// ErrRemoteUserUnsupported is returned by resolvers of remote client users,
	// which are not implemented yet.
	ErrRemoteUserUnsupported = errors.New("auth: remote users are not supported")
)

// ProviderError reports the failure of one provider in a Chain.
type ProviderError struct {
	// Provider is the name of the failing provider.
	Provider string

	// Err is the provider-specific cause.
	Err error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("auth: login provider %q failed: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrProviderFailed.
func (e *ProviderError) Is(target error) bool {
	return target == ErrProviderFailed
}

// LoginError is the error returned by every failed login.
//
// It matches ErrLoginFailed and unwraps to the specific cause
// (ErrUnsupportedMode, a *ProviderError, ErrNoIdentity or ErrAmbiguousIdentity).
type LoginError struct {
	// Mode is the authentication mode the login was attempted under.
	Mode AuthType

	// Err is the specific cause.
	Err error
}

func (e *LoginError) Error() string {
	return fmt.Sprintf("auth: fail to login (mode %s): %v", e.Mode, e.Err)
}

func (e *LoginError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrLoginFailed.
func (e *LoginError) Is(target error) bool {
	return target == ErrLoginFailed
}
