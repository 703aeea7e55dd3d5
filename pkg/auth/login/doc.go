// Package login resolves and caches the login user of the process.
//
// A Manager owns one cached login user. On first use it checks the active
// authentication mode, looks up the provider chain configured for that mode,
// runs every provider against a fresh auth.Subject and caches the single
// auth.User the chain asserted.
//
// Only SIMPLE mode has a provider chain:
//
//	SIMPLE:   [os-native provider, local provider]
//	KERBEROS: reserved, fails with auth.ErrUnsupportedMode
//
// Managers are independent: tests and embedding processes construct their own
// instead of sharing process-wide state.
package login
