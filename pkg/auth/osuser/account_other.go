//go:build !unix && !windows

package osuser

import (
	"fmt"
	"os/user"
)

// currentAccount falls back to os/user on platforms without a uid syscall.
func currentAccount() (string, error) {
	u, err := user.Current()
	if err != nil {
		return "", fmt.Errorf("lookup current user: %w", err)
	}
	return u.Username, nil
}
