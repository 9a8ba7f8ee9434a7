package encrypt

import "github.com/vaultsandbox/encrypt-go/internal/crypto"

// Sentinel errors for errors.Is() checks. These alias the engine's
// sentinels so the kinds match across the package boundary.
var (
	// ErrBadFormat is returned when an encoded input is structurally
	// invalid: odd or non-hex characters, a wrong header, a short
	// serialization, or a checksum mismatch. Only the encoding layer
	// returns it; the decrypt path reports the same conditions as
	// ErrWrongKeyOrModifiedCiphertext.
	ErrBadFormat = crypto.ErrBadFormat

	// ErrWrongKeyOrModifiedCiphertext is returned when a ciphertext fails
	// to decrypt for any reason: integrity failure, wrong secret, raw
	// input passed as hex or vice versa, or a too-short input.
	ErrWrongKeyOrModifiedCiphertext = crypto.ErrWrongKeyOrModifiedCiphertext

	// ErrIO is returned when an underlying read, write, or seek fails,
	// when input ends prematurely, or when a file operation's input and
	// output refer to the same file.
	ErrIO = crypto.ErrIO

	// ErrEnvironmentBroken is returned when the platform cannot operate
	// safely: RNG failure, a misbehaving primitive, a violated internal
	// invariant, or CTR counter exhaustion. Callers should not retry.
	ErrEnvironmentBroken = crypto.ErrEnvironmentBroken
)
