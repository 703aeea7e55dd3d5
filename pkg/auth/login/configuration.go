package login

import (
	"fmt"
	"maps"

	"github.com/marmos91/dittologin/pkg/auth"
	"github.com/marmos91/dittologin/pkg/auth/platform"
)

// Provider names understood by the default Registry.
const (
	ProviderOS    = "os"
	ProviderLocal = "local"
)

// OptionUsername is the local provider option holding a fixed login name.
const OptionUsername = "username"

// Descriptor identifies one login provider of a chain.
type Descriptor struct {
	// Name is the registered provider name (e.g., "os", "local").
	Name string

	// Options holds provider-specific settings. Empty in the base case.
	Options map[string]string
}

// clone returns a deep copy of the descriptor.
func (d Descriptor) clone() Descriptor {
	out := Descriptor{Name: d.Name}
	if d.Options != nil {
		out.Options = maps.Clone(d.Options)
	}
	return out
}

// Configuration maps each authentication mode to its provider chain.
//
// Read-only after construction; safe for concurrent use.
type Configuration struct {
	facts  platform.Facts
	chains map[auth.AuthType][]Descriptor
}

// ConfigurationOption configures a Configuration.
type ConfigurationOption func(*configurationOptions)

type configurationOptions struct {
	username string
}

// WithLocalUsername makes the local provider assert a fixed login name
// instead of deriving it from the OS account.
func WithLocalUsername(name string) ConfigurationOption {
	return func(o *configurationOptions) {
		o.username = name
	}
}

// NewConfiguration creates the provider configuration for a platform.
func NewConfiguration(facts platform.Facts, opts ...ConfigurationOption) *Configuration {
	var o configurationOptions
	for _, opt := range opts {
		opt(&o)
	}

	localOptions := map[string]string{}
	if o.username != "" {
		localOptions[OptionUsername] = o.username
	}

	return &Configuration{
		facts: facts,
		chains: map[auth.AuthType][]Descriptor{
			auth.AuthTypeSimple: {
				{Name: ProviderOS, Options: map[string]string{}},
				{Name: ProviderLocal, Options: localOptions},
			},
		},
	}
}

// Lookup returns the ordered provider chain for a mode.
//
// Modes without a chain fail with auth.ErrUnsupportedMode; an empty chain is
// never returned. The returned descriptors are copies.
func (c *Configuration) Lookup(mode auth.AuthType) ([]Descriptor, error) {
	if mode == auth.AuthTypeKerberos {
		return nil, fmt.Errorf("kerberos is not supported currently: %w", auth.ErrUnsupportedMode)
	}

	chain, ok := c.chains[mode]
	if !ok || len(chain) == 0 {
		return nil, fmt.Errorf("no login chain for mode %s: %w", mode, auth.ErrUnsupportedMode)
	}

	out := make([]Descriptor, len(chain))
	for i, d := range chain {
		out[i] = d.clone()
	}
	return out, nil
}

// Platform returns the platform facts the configuration was built for.
func (c *Configuration) Platform() platform.Facts {
	return c.facts
}
