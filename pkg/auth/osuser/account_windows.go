//go:build windows

package osuser

import (
	"fmt"

	"golang.org/x/sys/windows"
)

// currentAccount resolves the user SID of the process token to its account name.
func currentAccount() (string, error) {
	token := windows.GetCurrentProcessToken()
	tokenUser, err := token.GetTokenUser()
	if err != nil {
		return "", fmt.Errorf("read process token user: %w", err)
	}

	account, _, _, err := tokenUser.User.Sid.LookupAccount("")
	if err != nil {
		return "", fmt.Errorf("lookup account for SID %s: %w", tokenUser.User.Sid.String(), err)
	}
	return account, nil
}
