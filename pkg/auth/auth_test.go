package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marmos91/dittologin/pkg/auth/platform"
)

// recordingProvider appends its name to a shared log and optionally fails.
type recordingProvider struct {
	name   string
	log    *[]string
	assert Principal
	err    error
}

func (p *recordingProvider) Login(_ context.Context, s *Subject) error {
	*p.log = append(*p.log, p.name)
	if p.err != nil {
		return p.err
	}
	if p.assert != nil {
		s.Add(p.assert)
	}
	return nil
}

func (p *recordingProvider) Name() string {
	return p.name
}

func TestChainRun(t *testing.T) {
	ctx := context.Background()

	t.Run("RunsAllInOrder", func(t *testing.T) {
		var log []string
		chain := NewChain(
			&recordingProvider{name: "unix", log: &log, assert: OSPrincipal{Kind: platform.PrincipalUnix, Username: "alice"}},
			&recordingProvider{name: "local", log: &log, assert: NewUser("alice")},
		)

		s := NewSubject()
		require.NoError(t, chain.Run(ctx, s))
		assert.Equal(t, []string{"unix", "local"}, log)
		assert.Equal(t, 2, s.Len())
	})

	t.Run("StopsAtFirstFailure", func(t *testing.T) {
		var log []string
		boom := errors.New("boom")
		chain := NewChain(
			&recordingProvider{name: "unix", log: &log, err: boom},
			&recordingProvider{name: "local", log: &log},
		)

		err := chain.Run(ctx, NewSubject())
		require.Error(t, err)
		assert.Equal(t, []string{"unix"}, log)
		assert.ErrorIs(t, err, ErrProviderFailed)
		assert.ErrorIs(t, err, boom)

		var perr *ProviderError
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, "unix", perr.Provider)
	})

	t.Run("CancelledContext", func(t *testing.T) {
		var log []string
		chain := NewChain(&recordingProvider{name: "unix", log: &log})

		cctx, cancel := context.WithCancel(ctx)
		cancel()

		err := chain.Run(cctx, NewSubject())
		assert.ErrorIs(t, err, ErrProviderFailed)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, log)
	})

	t.Run("NilSubject", func(t *testing.T) {
		assert.Error(t, NewChain().Run(ctx, nil))
	})

	t.Run("ProvidersIsCopy", func(t *testing.T) {
		var log []string
		chain := NewChain(&recordingProvider{name: "unix", log: &log})
		ps := chain.Providers()
		ps[0] = nil
		assert.NotNil(t, chain.Providers()[0])
		assert.Equal(t, 1, chain.Len())
	})
}

func TestSubject(t *testing.T) {
	s := NewSubject()

	assert.True(t, s.Add(NewUser("alice")))
	assert.False(t, s.Add(NewUser("alice")), "equal principals collapse")
	assert.True(t, s.Add(NewUser("bob")))
	assert.True(t, s.Add(OSPrincipal{Kind: platform.PrincipalUnix, Username: "alice"}))
	assert.True(t, s.Add(OSPrincipal{Kind: platform.PrincipalNTUser, Username: "alice"}))

	assert.Equal(t, 4, s.Len())
	assert.Equal(t, []User{NewUser("alice"), NewUser("bob")}, s.Users())
	assert.Len(t, s.OSPrincipals(), 2)

	ps := s.Principals()
	require.Len(t, ps, 4)
	assert.Equal(t, "alice", ps[0].Name())
}

func TestPrincipals(t *testing.T) {
	u := NewUser("alice")
	assert.Equal(t, "alice", u.Name())
	assert.Equal(t, "alice", u.String())
	assert.False(t, u.IsZero())
	assert.True(t, User{}.IsZero())

	op := OSPrincipal{Kind: platform.PrincipalNTUser, Username: "Administrator"}
	assert.Equal(t, "Administrator", op.Name())
	assert.Equal(t, "nt-user:Administrator", op.String())
}

func TestErrors(t *testing.T) {
	cause := &ProviderError{Provider: "nt", Err: errors.New("token")}
	err := &LoginError{Mode: AuthTypeSimple, Err: cause}

	assert.ErrorIs(t, err, ErrLoginFailed)
	assert.ErrorIs(t, err, ErrProviderFailed)
	assert.NotErrorIs(t, err, ErrNoIdentity)
	assert.Contains(t, err.Error(), "fail to login")
	assert.Contains(t, err.Error(), "SIMPLE")
	assert.Contains(t, err.Error(), `"nt"`)

	assert.ErrorIs(t, &LoginError{Err: ErrAmbiguousIdentity}, ErrAmbiguousIdentity)
}

func TestAuthType(t *testing.T) {
	tests := []struct {
		in   string
		want AuthType
	}{
		{"SIMPLE", AuthTypeSimple},
		{"simple", AuthTypeSimple},
		{" Kerberos ", AuthTypeKerberos},
		{"NOSASL", AuthTypeNoSASL},
		{"custom", AuthTypeCustom},
	}
	for _, tt := range tests {
		got, err := ParseAuthType(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseAuthType("LDAP")
	assert.Error(t, err)

	assert.Equal(t, "AuthType(9)", AuthType(9).String())

	var at AuthType
	require.NoError(t, at.UnmarshalText([]byte("kerberos")))
	assert.Equal(t, AuthTypeKerberos, at)

	text, err := AuthTypeSimple.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "SIMPLE", string(text))
}

func TestUnsupportedRemoteUsers(t *testing.T) {
	var r RemoteUserResolver = UnsupportedRemoteUsers{}
	u, err := r.RemoteUser(context.Background(), "alice")
	assert.ErrorIs(t, err, ErrRemoteUserUnsupported)
	assert.True(t, u.IsZero())
}
