// Package auth checks Logfire authentication state: session tokens stored
// by `logfire auth` and the LOGFIRE_TOKEN environment fallback. All checks
// are read-only and degrade to a negative Status instead of failing.
package auth

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// TokenEnvVar is the environment variable consulted by the fallback check.
const TokenEnvVar = "LOGFIRE_TOKEN"

// Status is the outcome of an authentication check.
type Status struct {
	// Authenticated reports whether a usable credential was found.
	Authenticated bool

	// Message explains the outcome in user-facing terms.
	Message string

	// BaseURL is the Logfire instance the credential belongs to, when known.
	BaseURL string
}

// tokenEntry mirrors one entry of the [tokens] table in default.toml.
type tokenEntry struct {
	Token      string `toml:"token"`
	Expiration string `toml:"expiration"`
}

// credentialStore mirrors the shape of ~/.logfire/default.toml.
type credentialStore struct {
	Tokens map[string]tokenEntry `toml:"tokens"`
}

// DefaultCredentialsPath returns the session credential store location,
// ~/.logfire/default.toml.
func DefaultCredentialsPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".logfire", "default.toml"), nil
}

// CheckSession checks the default credential store for a valid session.
func CheckSession() Status {
	path, err := DefaultCredentialsPath()
	if err != nil {
		return Status{Message: "Not authenticated. Run `logfire auth` to authenticate."}
	}
	return CheckSessionAt(path)
}

// CheckSessionAt checks the credential store at path. The user is
// authenticated when at least one stored token has an expiration strictly
// in the future (UTC). Entries with malformed expirations are skipped.
func CheckSessionAt(path string) Status {
	data, err := os.ReadFile(path)
	if err != nil {
		return Status{Message: "Not authenticated. Run `logfire auth` to authenticate."}
	}

	var store credentialStore
	if err := toml.Unmarshal(data, &store); err != nil {
		return Status{Message: "Error reading authentication file: " + err.Error()}
	}

	if len(store.Tokens) == 0 {
		return Status{Message: "No authentication tokens found. Run `logfire auth` to authenticate."}
	}

	now := time.Now().UTC()
	for baseURL, entry := range store.Tokens {
		expiration, err := parseExpiration(entry.Expiration)
		if err != nil {
			continue
		}
		if now.Before(expiration) {
			return Status{
				Authenticated: true,
				Message:       "Authenticated (credentials in " + path + ")",
				BaseURL:       baseURL,
			}
		}
	}

	return Status{Message: "All authentication tokens have expired. Run `logfire auth` to re-authenticate."}
}

// parseExpiration parses an ISO-8601 timestamp with or without the Z suffix.
func parseExpiration(value string) (time.Time, error) {
	trimmed := strings.TrimSuffix(value, "Z")
	if ts, err := time.Parse(time.RFC3339, value); err == nil {
		return ts.UTC(), nil
	}
	ts, err := time.Parse("2006-01-02T15:04:05", trimmed)
	if err != nil {
		return time.Time{}, err
	}
	return ts.UTC(), nil
}

// SessionToken returns the first stored token and its base URL from the
// default credential store, for use as an API bearer token.
func SessionToken() (token, baseURL string, ok bool) {
	path, err := DefaultCredentialsPath()
	if err != nil {
		return "", "", false
	}
	return SessionTokenAt(path)
}

// SessionTokenAt returns the first stored token and base URL from the
// credential store at path.
func SessionTokenAt(path string) (token, baseURL string, ok bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", false
	}

	var store credentialStore
	if err := toml.Unmarshal(data, &store); err != nil {
		return "", "", false
	}

	for url, entry := range store.Tokens {
		if entry.Token != "" {
			return entry.Token, url, true
		}
	}

	return "", "", false
}

// CheckEnvToken checks for LOGFIRE_TOKEN in the process environment first,
// then in a .env file inside projectDir. The message reports which source
// supplied the token.
func CheckEnvToken(projectDir string) Status {
	if _, ok := os.LookupEnv(TokenEnvVar); ok {
		return Status{Authenticated: true, Message: "Token found in environment"}
	}

	data, err := os.ReadFile(filepath.Join(projectDir, ".env"))
	if err == nil {
		for _, line := range strings.Split(string(data), "\n") {
			if strings.HasPrefix(strings.TrimSpace(line), TokenEnvVar+"=") {
				return Status{Authenticated: true, Message: "Token found in .env file"}
			}
		}
	}

	return Status{Message: "No LOGFIRE_TOKEN found in the environment. Run `logfire auth` to authenticate."}
}
