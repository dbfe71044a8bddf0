package test

import (
	"math/rand/v2"

	"github.com/google/uuid"
)

const idAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// RandomASCIIString returns an alphanumeric string with a length in [minLen, maxLen].
func RandomASCIIString(minLen, maxLen int) string {
	if minLen <= 0 {
		minLen = 1
	}
	if maxLen < minLen {
		maxLen = minLen
	}
	buf := make([]byte, minLen+rand.IntN(maxLen-minLen+1))
	for i := range buf {
		buf[i] = idAlphabet[rand.IntN(len(idAlphabet))]
	}
	return string(buf)
}

// RandomUserID returns an identifier shaped like the ones the identity provider issues.
func RandomUserID() string {
	return "user_" + RandomASCIIString(16, 16)
}

// RandomProductID returns a catalog identifier.
func RandomProductID() string {
	return uuid.NewString()
}
