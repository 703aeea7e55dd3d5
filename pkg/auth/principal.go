package auth

import "github.com/marmos91/dittologin/pkg/auth/platform"

// Principal is an authenticated identity value.
//
// Implementations must be comparable value types: a Subject stores principals
// in a set, so two principals are the same principal when they are ==.
type Principal interface {
	// Name returns the principal name (e.g., "alice").
	Name() string
}

// User is the login user principal of the process.
//
// It is the only principal kind the login orchestrator extracts from a
// Subject. Users are immutable and compared by value.
type User struct {
	name string
}

// NewUser creates a User with the given name.
func NewUser(name string) User {
	return User{name: name}
}

// Name returns the user name.
func (u User) Name() string {
	return u.name
}

// String implements fmt.Stringer.
func (u User) String() string {
	return u.name
}

// IsZero reports whether u is the zero User.
func (u User) IsZero() bool {
	return u.name == ""
}

// OSPrincipal is the principal asserted by an OS-native login provider.
//
// Kind identifies the platform representation the principal was produced
// with; the local provider only converts OSPrincipals of the kind selected
// for the running platform.
type OSPrincipal struct {
	Kind     platform.PrincipalKind
	Username string
}

// Name returns the OS account name.
func (p OSPrincipal) Name() string {
	return p.Username
}

// String implements fmt.Stringer.
func (p OSPrincipal) String() string {
	return p.Kind.String() + ":" + p.Username
}
