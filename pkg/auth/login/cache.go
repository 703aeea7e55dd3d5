package login

import (
	"sync"
	"sync/atomic"

	"github.com/marmos91/dittologin/pkg/auth"
)

// identityCache is the single cached login user slot of a Manager.
//
// Readers only ever observe nil or a fully built User. Writers are
// serialized so a store and a reset never interleave. Each reset starts a
// new generation; a login started in an older generation cannot fill the
// slot.
type identityCache struct {
	slot atomic.Pointer[auth.User]

	mu  sync.Mutex
	gen uint64
}

// load returns the cached user, if any.
func (c *identityCache) load() (auth.User, bool) {
	u := c.slot.Load()
	if u == nil {
		return auth.User{}, false
	}
	return *u, true
}

// generation returns the current generation.
func (c *identityCache) generation() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gen
}

// storeIfEmpty caches u if the slot is empty and gen is still current.
//
// It returns the cached user and true when the slot holds a user afterwards,
// or u and false when u came from a generation that was reset.
func (c *identityCache) storeIfEmpty(u auth.User, gen uint64) (auth.User, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if cur := c.slot.Load(); cur != nil {
		return *cur, true
	}
	if gen != c.gen {
		return u, false
	}
	c.slot.Store(&u)
	return u, true
}

// reset empties the slot and starts a new generation.
func (c *identityCache) reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	c.slot.Store(nil)
}
