package crypto

import (
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
	"golang.org/x/crypto/pbkdf2"
)

// DerivedKeys holds the per-operation subkeys produced from a secret and a
// 32-byte salt. AuthKey keys the HMAC; the first 16 bytes of EncKey key
// AES-128, the remainder is reserved by the construction.
type DerivedKeys struct {
	AuthKey []byte
	EncKey  []byte
}

// Wipe zeroes both subkeys.
func (dk *DerivedKeys) Wipe() {
	Zero(dk.AuthKey)
	Zero(dk.EncKey)
}

// DeriveKeysFunc produces the per-operation subkeys for a freshly parsed or
// generated salt.
type DeriveKeysFunc func(salt []byte) (*DerivedKeys, error)

// HKDF derives length bytes from ikm using HKDF-SHA256 (RFC 5869) with the
// given salt and info string.
func HKDF(ikm, salt []byte, info string, length int) ([]byte, error) {
	out := make([]byte, length)
	if _, err := io.ReadFull(hkdf.New(sha256.New, ikm, salt, []byte(info)), out); err != nil {
		return nil, fmt.Errorf("%w: HKDF expand failed: %v", ErrEnvironmentBroken, err)
	}
	return out, nil
}

// DeriveFromKey expands a raw 32-byte key into the auth/enc subkey pair.
func DeriveFromKey(rawKey, salt []byte) (*DerivedKeys, error) {
	return expandPrekey(rawKey, salt)
}

// DeriveFromPassword stretches a password into the auth/enc subkey pair.
// The password is pre-hashed with SHA-256 before PBKDF2: the pre-hash
// normalizes variable-length passwords and domain-separates this use of the
// password from any other protocol the caller runs with it.
func DeriveFromPassword(password, salt []byte) (*DerivedKeys, error) {
	if len(salt) != SaltByteSize {
		return nil, fmt.Errorf("%w: salt must be %d bytes, got %d", ErrEnvironmentBroken, SaltByteSize, len(salt))
	}

	prehash := sha256.Sum256(password)
	prekey := pbkdf2.Key(prehash[:], salt, PBKDF2Iterations, KeyByteSize, sha256.New)
	defer Zero(prekey)
	defer Zero(prehash[:])

	return expandPrekey(prekey, salt)
}

func expandPrekey(prekey, salt []byte) (*DerivedKeys, error) {
	if len(salt) != SaltByteSize {
		return nil, fmt.Errorf("%w: salt must be %d bytes, got %d", ErrEnvironmentBroken, SaltByteSize, len(salt))
	}
	if len(prekey) != KeyByteSize {
		return nil, fmt.Errorf("%w: prekey must be %d bytes, got %d", ErrEnvironmentBroken, KeyByteSize, len(prekey))
	}

	authKey, err := HKDF(prekey, salt, AuthInfoString, KeyByteSize)
	if err != nil {
		return nil, err
	}

	encKey, err := HKDF(prekey, salt, EncryptionInfoString, KeyByteSize)
	if err != nil {
		Zero(authKey)
		return nil, err
	}

	return &DerivedKeys{AuthKey: authKey, EncKey: encKey}, nil
}
