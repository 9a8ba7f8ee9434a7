package crypto

import "crypto/subtle"

// HashEquals reports whether a and b are equal without early exit on the
// first differing byte. Inputs of different length compare unequal; the
// lengths themselves are not secret.
func HashEquals(a, b []byte) bool {
	return subtle.ConstantTimeCompare(a, b) == 1
}
