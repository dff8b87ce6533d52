package secrets

import (
	"errors"
	"os"
	"strings"

	"github.com/zalando/go-keyring"
)

const (
	// "Service" groups the app's secrets in the OS keychain.
	KeyringService = "skijobs"

	// Account under which the refresh endpoint's bearer token is stored.
	RefreshTokenAccount = "skijobs:refresh-token"

	refreshTokenEnv = "SKIJOBS_REFRESH_TOKEN"
)

// GetRefreshToken resolves the bearer token that guards the forced-refresh
// endpoint. Keyring first; env var as a fallback for headless deployments
// without a keychain daemon.
func GetRefreshToken() (string, error) {
	pw, err := keyring.Get(KeyringService, RefreshTokenAccount)
	if err == nil && strings.TrimSpace(pw) != "" {
		return pw, nil
	}

	if v := strings.TrimSpace(os.Getenv(refreshTokenEnv)); v != "" {
		return v, nil
	}

	return "", errors.New("refresh token not found (set it in keychain or via " + refreshTokenEnv + ")")
}

func SetRefreshToken(token string) error {
	if strings.TrimSpace(token) == "" {
		return errors.New("token is empty")
	}
	return keyring.Set(KeyringService, RefreshTokenAccount, token)
}

func DeleteRefreshToken() error {
	return keyring.Delete(KeyringService, RefreshTokenAccount)
}
