package crypto

import "errors"

var (
	// ErrBadFormat is returned when encoded input is structurally invalid:
	// odd-length or non-hex input, a wrong header, a short serialization,
	// or a checksum mismatch.
	ErrBadFormat = errors.New("invalid data format")

	// ErrWrongKeyOrModifiedCiphertext is returned when a ciphertext fails
	// to decrypt: integrity failure, wrong secret, wrong format variant,
	// or a too-short input. Decoding failures inside the decrypt path are
	// reported under this error so callers need a single check.
	ErrWrongKeyOrModifiedCiphertext = errors.New("wrong key or modified ciphertext")

	// ErrIO is returned when an underlying stream read, write, or seek
	// fails, when input ends prematurely, or when the input and output of
	// a file operation refer to the same file.
	ErrIO = errors.New("i/o error")

	// ErrEnvironmentBroken is returned when the platform cannot perform an
	// operation safely: the random source is unavailable, a primitive
	// misbehaves, an internal length invariant is violated, or the CTR
	// counter space is exhausted. Callers should not retry.
	ErrEnvironmentBroken = errors.New("cryptographic environment is broken")
)
