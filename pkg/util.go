package pkg

import (
	"crypto/rand"
	"errors"
	"unsafe"
)

// BytesToString converts bytes slice to a string without extra allocation
func BytesToString(buf []byte) string {
	return *(*string)(unsafe.Pointer(&buf))
}

// GenerateRandomBytes returns securely generated random bytes.
// It will return an error if the system's secure random
// number generator fails to function correctly, in which
// case the caller should not continue
func GenerateRandomBytes(n int) ([]byte, error) {
	if n <= 0 {
		return nil, errors.New("n must be greater than 0")
	}

	b := make([]byte, n)
	_, err := rand.Read(b)
	// Note that err == nil only if we read len(b) bytes.
	if err != nil {
		return nil, err
	}

	return b, nil
}

// RandomStringFromAlphabet returns n securely generated characters, each picked from alphabet
// by the modulo of a random byte.
func RandomStringFromAlphabet(n int, alphabet string) (string, error) {
	if alphabet == "" {
		return "", errors.New("empty alphabet")
	}

	b, err := GenerateRandomBytes(n)
	if err != nil {
		return "", err
	}

	out := make([]byte, n)
	for i := range b {
		out[i] = alphabet[int(b[i])%len(alphabet)]
	}
	return string(out), nil
}
