package login

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marmos91/dittologin/pkg/auth"
)

func TestConfigurationLookup(t *testing.T) {
	t.Run("SimpleChain", func(t *testing.T) {
		c := NewConfiguration(unix64)

		chain, err := c.Lookup(auth.AuthTypeSimple)
		require.NoError(t, err)
		require.Len(t, chain, 2)
		assert.Equal(t, ProviderOS, chain[0].Name)
		assert.Equal(t, ProviderLocal, chain[1].Name)
		assert.Empty(t, chain[1].Options)
	})

	t.Run("KerberosUnsupported", func(t *testing.T) {
		c := NewConfiguration(unix64)

		chain, err := c.Lookup(auth.AuthTypeKerberos)
		require.Error(t, err)
		assert.ErrorIs(t, err, auth.ErrUnsupportedMode)
		assert.Contains(t, err.Error(), "kerberos is not supported currently")
		assert.Nil(t, chain)
	})

	t.Run("OtherModesUnsupported", func(t *testing.T) {
		c := NewConfiguration(unix64)

		for _, mode := range []auth.AuthType{auth.AuthTypeNoSASL, auth.AuthTypeCustom, auth.AuthType(42)} {
			chain, err := c.Lookup(mode)
			assert.ErrorIs(t, err, auth.ErrUnsupportedMode, "mode %s", mode)
			assert.Nil(t, chain)
		}
	})

	t.Run("LocalUsernameOption", func(t *testing.T) {
		c := NewConfiguration(unix64, WithLocalUsername("svc-ditto"))

		chain, err := c.Lookup(auth.AuthTypeSimple)
		require.NoError(t, err)
		assert.Equal(t, "svc-ditto", chain[1].Options[OptionUsername])
	})

	t.Run("ReturnsCopies", func(t *testing.T) {
		c := NewConfiguration(unix64)

		first, err := c.Lookup(auth.AuthTypeSimple)
		require.NoError(t, err)
		first[0].Name = "mutated"
		first[1].Options[OptionUsername] = "mallory"

		second, err := c.Lookup(auth.AuthTypeSimple)
		require.NoError(t, err)
		assert.Equal(t, ProviderOS, second[0].Name)
		assert.NotContains(t, second[1].Options, OptionUsername)
	})

	t.Run("Platform", func(t *testing.T) {
		c := NewConfiguration(windows32)
		assert.Equal(t, windows32, c.Platform())
	})
}

func TestCheckMode(t *testing.T) {
	assert.NoError(t, CheckMode(auth.AuthTypeSimple))

	for _, mode := range []auth.AuthType{auth.AuthTypeNoSASL, auth.AuthTypeCustom, auth.AuthTypeKerberos} {
		err := CheckMode(mode)
		require.Error(t, err, "mode %s", mode)
		assert.ErrorIs(t, err, auth.ErrUnsupportedMode)
		assert.Contains(t, err.Error(), mode.String())
	}
}
