//go:build !darwin

package credentials

import (
	"errors"

	"github.com/doeshing/smsh/internal/domain"
)

var errNoKeychain = errors.New("keychain lookup only supported on macOS")

// keychainLookup is the non-macOS stub: the platform secret store is only
// consulted on darwin.
func keychainLookup(domain.Provider) (string, error) {
	return "", errNoKeychain
}
