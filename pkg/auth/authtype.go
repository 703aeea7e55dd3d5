package auth

import (
	"fmt"
	"strings"
)

// AuthType is the authentication mode a process runs under.
//
// Exactly one AuthType is active per process; it is read from configuration
// at startup.
type AuthType int

const (
	// AuthTypeNoSASL disables authentication entirely.
	AuthTypeNoSASL AuthType = iota

	// AuthTypeSimple logs in with the OS user of the process.
	AuthTypeSimple

	// AuthTypeCustom delegates to a user-supplied authentication provider.
	AuthTypeCustom

	// AuthTypeKerberos logs in with Kerberos credentials. Reserved.
	AuthTypeKerberos
)

// authTypeNames maps each AuthType to its canonical configuration name.
var authTypeNames = map[AuthType]string{
	AuthTypeNoSASL:   "NOSASL",
	AuthTypeSimple:   "SIMPLE",
	AuthTypeCustom:   "CUSTOM",
	AuthTypeKerberos: "KERBEROS",
}

// String returns the canonical upper-case name of the mode.
func (t AuthType) String() string {
	if name, ok := authTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("AuthType(%d)", int(t))
}

// ParseAuthType parses a mode name case-insensitively.
func ParseAuthType(s string) (AuthType, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for t, n := range authTypeNames {
		if n == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("auth: invalid authentication type %q (valid: NOSASL, SIMPLE, CUSTOM, KERBEROS)", s)
}

// MarshalText implements encoding.TextMarshaler.
func (t AuthType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *AuthType) UnmarshalText(text []byte) error {
	parsed, err := ParseAuthType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
