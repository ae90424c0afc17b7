//go:build darwin

package credentials

import (
	"fmt"
	"os/user"

	"github.com/zalando/go-keyring"

	"github.com/doeshing/smsh/internal/domain"
)

// keychainLookup queries the macOS keychain for the provider's fixed service
// name, keyed by the current OS username. A blocking system call.
func keychainLookup(provider domain.Provider) (string, error) {
	service, ok := keychainServices[provider]
	if !ok {
		return "", fmt.Errorf("no keychain service for provider %q", provider)
	}
	current, err := user.Current()
	if err != nil {
		return "", err
	}
	return keyring.Get(service, current.Username)
}
