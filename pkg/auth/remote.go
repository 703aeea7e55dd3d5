package auth

import "context"

// RemoteUserResolver creates the User of a remote client from the name the
// client asserted during the transport handshake.
//
// It is kept apart from the login chain: resolving remote users never touches
// the cached login user of the process.
type RemoteUserResolver interface {
	RemoteUser(ctx context.Context, assertedName string) (User, error)
}

// UnsupportedRemoteUsers is the RemoteUserResolver used until the transport
// carries client identities. Every call fails with ErrRemoteUserUnsupported.
type UnsupportedRemoteUsers struct{}

// RemoteUser always returns ErrRemoteUserUnsupported.
func (UnsupportedRemoteUsers) RemoteUser(_ context.Context, _ string) (User, error) {
	return User{}, ErrRemoteUserUnsupported
}

var _ RemoteUserResolver = UnsupportedRemoteUsers{}
