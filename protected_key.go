package encrypt

import (
	"crypto/sha256"
	"errors"
	"fmt"

	"github.com/vaultsandbox/encrypt-go/internal/crypto"
)

// KeyProtectedByPassword is a random Key wrapped under a password. It lets an
// application give each user a strong random key while the user only has to
// remember a password, and lets the password change without re-encrypting the
// data protected by the inner key.
type KeyProtectedByPassword struct {
	encryptedKey []byte
}

// CreateKeyProtectedByPassword generates a fresh random key and wraps it
// under password. The password itself never touches the wrapping cipher; a
// SHA-256 digest of it does, so the same password can later unlock the key
// without the application retaining it.
func CreateKeyProtectedByPassword(password []byte) (*KeyProtectedByPassword, error) {
	inner, err := GenerateKey()
	if err != nil {
		return nil, err
	}
	defer inner.Wipe()

	innerAscii, err := inner.SaveToAsciiSafeString()
	if err != nil {
		return nil, err
	}

	prehash := sha256.Sum256(password)
	encryptedKey, err := EncryptWithPassword([]byte(innerAscii), prehash[:], false)
	crypto.Zero(prehash[:])
	if err != nil {
		return nil, err
	}

	return &KeyProtectedByPassword{encryptedKey: encryptedKey}, nil
}

// Unlock recovers the inner key with password. A wrong password, like a
// tampered wrapping, is reported as ErrWrongKeyOrModifiedCiphertext.
func (p *KeyProtectedByPassword) Unlock(password []byte) (*Key, error) {
	if err := p.check(); err != nil {
		return nil, err
	}

	prehash := sha256.Sum256(password)
	innerAscii, err := DecryptWithPassword(p.encryptedKey, prehash[:], false)
	crypto.Zero(prehash[:])
	if err != nil {
		return nil, err
	}
	defer crypto.Zero(innerAscii)

	inner, err := LoadKeyFromAsciiSafeString(string(innerAscii))
	if err != nil {
		// The wrapping authenticated, so a malformed inner key means the
		// ciphertext was built around garbage, not that it was modified
		// in transit. Still indistinguishable from tampering to a caller.
		if errors.Is(err, ErrBadFormat) {
			return nil, fmt.Errorf("%w: invalid key after successful decryption", ErrWrongKeyOrModifiedCiphertext)
		}
		return nil, err
	}
	return inner, nil
}

// ChangePassword re-wraps the inner key under newPassword. The inner key is
// unchanged, so ciphertexts made with it stay decryptable. On any error the
// receiver keeps its previous wrapping.
func (p *KeyProtectedByPassword) ChangePassword(currentPassword, newPassword []byte) error {
	inner, err := p.Unlock(currentPassword)
	if err != nil {
		return err
	}
	defer inner.Wipe()

	innerAscii, err := inner.SaveToAsciiSafeString()
	if err != nil {
		return err
	}

	prehash := sha256.Sum256(newPassword)
	encryptedKey, err := EncryptWithPassword([]byte(innerAscii), prehash[:], false)
	crypto.Zero(prehash[:])
	if err != nil {
		return err
	}

	p.encryptedKey = encryptedKey
	return nil
}

// SaveToAsciiSafeString serializes the protected key as a checksummed,
// header-tagged hex string, same shape as Key.SaveToAsciiSafeString but with
// its own header so the two can never be confused.
func (p *KeyProtectedByPassword) SaveToAsciiSafeString() (string, error) {
	if err := p.check(); err != nil {
		return "", err
	}
	return crypto.SaveBytesToChecksummedAsciiSafeString(crypto.PasswordKeyCurrentVersion, p.encryptedKey)
}

// LoadKeyProtectedByPasswordFromAsciiSafeString decodes a protected key saved
// with SaveToAsciiSafeString. Structural problems are reported as
// ErrBadFormat; the password is not needed or checked here.
func LoadKeyProtectedByPasswordFromAsciiSafeString(saved string, opts ...LoadOption) (*KeyProtectedByPassword, error) {
	cfg := applyLoadOptions(opts)

	payload, err := crypto.LoadBytesFromChecksummedAsciiSafeString(crypto.PasswordKeyCurrentVersion, saved, cfg.trim)
	if err != nil {
		return nil, err
	}

	encryptedKey := make([]byte, len(payload))
	copy(encryptedKey, payload)
	return &KeyProtectedByPassword{encryptedKey: encryptedKey}, nil
}

// String returns a placeholder so a stray %v or %s can never print the
// wrapped key material.
func (p *KeyProtectedByPassword) String() string {
	return "encrypt.KeyProtectedByPassword(redacted)"
}

func (p *KeyProtectedByPassword) check() error {
	if p == nil || len(p.encryptedKey) == 0 {
		return fmt.Errorf("%w: protected key is missing or empty", ErrEnvironmentBroken)
	}
	return nil
}
