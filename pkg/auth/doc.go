// Package auth provides the login identity abstractions for DittoLogin.
//
// This package defines the core types and interfaces used to resolve the
// identity a storage process runs as:
//
//   - Principal: An authenticated identity value (User, OSPrincipal)
//   - Subject: The credential subject a login attempt fills with principals
//   - LoginProvider: A pluggable unit that asserts principals on a Subject
//   - Chain: Drives an ordered list of LoginProviders, all of which must succeed
//   - AuthType: The authentication mode active for the process
//
// Sub-packages:
//   - platform/: Platform detection and native provider selection
//   - osuser/: OS-native LoginProvider (Unix uid, Windows process token)
//   - login/: Provider configuration, mode gate and the cached login user
package auth
