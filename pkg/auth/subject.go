package auth

import "sync"

// Subject is the credential subject filled by a login attempt.
//
// Principals are kept as a set keyed by value in insertion order. Adding a
// principal equal to one already present is a no-op.
//
// Thread safety: safe for concurrent use, although a Subject normally belongs
// to a single login attempt.
type Subject struct {
	mu         sync.RWMutex
	principals []Principal
	index      map[Principal]struct{}
}

// NewSubject creates an empty Subject.
func NewSubject() *Subject {
	return &Subject{index: make(map[Principal]struct{})}
}

// Add adds a principal to the subject.
// Returns false if an equal principal was already present.
func (s *Subject) Add(p Principal) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.index[p]; ok {
		return false
	}
	s.index[p] = struct{}{}
	s.principals = append(s.principals, p)
	return true
}

// Principals returns a snapshot of all principals in insertion order.
func (s *Subject) Principals() []Principal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Principal, len(s.principals))
	copy(out, s.principals)
	return out
}

// Len returns the number of distinct principals.
func (s *Subject) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.principals)
}

// Users returns the User principals of the subject.
func (s *Subject) Users() []User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var users []User
	for _, p := range s.principals {
		if u, ok := p.(User); ok {
			users = append(users, u)
		}
	}
	return users
}

// OSPrincipals returns the OSPrincipals of the subject.
func (s *Subject) OSPrincipals() []OSPrincipal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []OSPrincipal
	for _, p := range s.principals {
		if op, ok := p.(OSPrincipal); ok {
			out = append(out, op)
		}
	}
	return out
}
