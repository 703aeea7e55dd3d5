//go:build unix

package osuser

import (
	"fmt"
	"os/user"
	"strconv"

	"golang.org/x/sys/unix"
)

// currentAccount resolves the real uid of the process to its user name.
func currentAccount() (string, error) {
	uid := unix.Getuid()
	u, err := user.LookupId(strconv.Itoa(uid))
	if err != nil {
		return "", fmt.Errorf("lookup uid %d: %w", uid, err)
	}
	return u.Username, nil
}
