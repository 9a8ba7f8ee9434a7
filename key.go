package encrypt

import (
	"fmt"

	"github.com/vaultsandbox/encrypt-go/internal/crypto"
)

// KeySize is the size of a raw key in bytes.
const KeySize = crypto.KeyByteSize

// Key is an opaque 256-bit secret key. Create one with GenerateKey or
// LoadKeyFromAsciiSafeString; the zero value is unusable.
type Key struct {
	raw []byte
}

// GenerateKey creates a new random key from the CSPRNG.
func GenerateKey() (*Key, error) {
	raw, err := crypto.RandomBytes(KeySize)
	if err != nil {
		return nil, err
	}
	return &Key{raw: raw}, nil
}

// LoadKeyFromAsciiSafeString decodes a key saved with SaveToAsciiSafeString.
// Trailing whitespace (NUL, tab, LF, CR, space) is trimmed before decoding
// unless WithoutWhitespaceTrimming is given. Any structural problem,
// including a checksum or header mismatch, is reported as ErrBadFormat.
func LoadKeyFromAsciiSafeString(saved string, opts ...LoadOption) (*Key, error) {
	cfg := applyLoadOptions(opts)

	payload, err := crypto.LoadBytesFromChecksummedAsciiSafeString(crypto.KeyCurrentVersion, saved, cfg.trim)
	if err != nil {
		return nil, err
	}

	if len(payload) != KeySize {
		return nil, fmt.Errorf("%w: key payload must be %d bytes, got %d", ErrBadFormat, KeySize, len(payload))
	}

	raw := make([]byte, KeySize)
	copy(raw, payload)
	return &Key{raw: raw}, nil
}

// SaveToAsciiSafeString serializes the key as a checksummed, header-tagged,
// lowercase hex string safe to store in text files.
func (k *Key) SaveToAsciiSafeString() (string, error) {
	if err := k.check(); err != nil {
		return "", err
	}
	return crypto.SaveBytesToChecksummedAsciiSafeString(crypto.KeyCurrentVersion, k.raw)
}

// Raw returns a copy of the key bytes. The caller owns the copy and should
// zero it when done.
func (k *Key) Raw() []byte {
	out := make([]byte, len(k.raw))
	copy(out, k.raw)
	return out
}

// Wipe zeroes the key material. The key is unusable afterwards.
func (k *Key) Wipe() {
	crypto.Zero(k.raw)
	k.raw = nil
}

// String returns a placeholder so a stray %v or %s can never print key bytes.
func (k *Key) String() string {
	return "encrypt.Key(redacted)"
}

func (k *Key) check() error {
	if k == nil || len(k.raw) != KeySize {
		return fmt.Errorf("%w: key is missing or has wrong length", ErrEnvironmentBroken)
	}
	return nil
}
