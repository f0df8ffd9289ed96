package utils

import (
	"strings"

	"github.com/matthewhartstonge/argon2"
)

// HashPin encodes a PIN for at-rest storage.
func HashPin(pin string) (string, error) {
	argon := argon2.DefaultConfig()
	encoded, err := argon.HashEncoded([]byte(pin))
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

// CheckPin compares a submitted PIN against a stored value, which may be
// either an argon2 encoding or the plaintext PIN itself.
func CheckPin(stored, pin string) bool {
	if IsPinHash(stored) {
		ok, _ := argon2.VerifyEncoded([]byte(pin), []byte(stored))
		return ok
	}
	return stored == pin
}

// IsPinHash reports whether a stored value is an argon2 encoding.
func IsPinHash(stored string) bool {
	return strings.HasPrefix(stored, "$argon2")
}
