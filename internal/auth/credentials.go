package auth

import (
	"crypto/subtle"

	"github.com/alexedwards/argon2id"
	"github.com/rs/zerolog/log"
)

// Credentials is the single username/password pair accepted by the gate.
// When PasswordHash holds an argon2id hash it is used instead of Password.
type Credentials struct {
	Username     string
	Password     string
	PasswordHash string
}

// Match reports whether username and password are the configured pair.
func (c Credentials) Match(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(c.Username)) == 1

	if c.PasswordHash != "" {
		match, err := argon2id.ComparePasswordAndHash(password, c.PasswordHash)
		if err != nil {
			log.Error().Err(err).Msg("can't compare password with configured hash")

			return false
		}

		return userOK && match
	}

	return userOK && subtle.ConstantTimeCompare([]byte(password), []byte(c.Password)) == 1
}

// HashPassword returns an argon2id hash suitable for Credentials.PasswordHash.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}

	return argon2id.CreateHash(password, argon2id.DefaultParams) //nolint:wrapcheck // ok
}
