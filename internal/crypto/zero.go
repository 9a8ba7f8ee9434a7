package crypto

// Zero overwrites b with zero bytes. Used to drop key material from memory
// as soon as an operation no longer needs it.
func Zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
