package env

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// encryptedPrefix marks values encrypted with the Geneos key-file scheme.
const encryptedPrefix = "+encs+"

// ErrNotSet is returned when a requested environment variable is not set.
var ErrNotSet = errors.New("environment variable is not set")

// Var returns the value of the named environment variable, or an error
// wrapping ErrNotSet if the variable is absent.
func Var(name string) (string, error) {
	value, ok := os.LookupEnv(name)
	if !ok {
		return "", fmt.Errorf("%q: %w", name, ErrNotSet)
	}
	return value, nil
}

// VarOr returns the value of the named environment variable, or fallback if
// the variable is not set.
func VarOr(name, fallback string) string {
	if value, ok := os.LookupEnv(name); ok {
		return value
	}
	return fallback
}

// IsEncrypted reports whether value is encrypted. Encrypted values start
// with the +encs+ prefix.
func IsEncrypted(value string) bool {
	return strings.HasPrefix(value, encryptedPrefix)
}

// LoadFile loads environment variables from the given .env files without
// overriding variables that are already set. With no arguments it loads
// ".env" from the current directory.
func LoadFile(files ...string) error {
	if err := godotenv.Load(files...); err != nil {
		return fmt.Errorf("loading env file: %w", err)
	}
	return nil
}
