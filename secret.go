package encrypt

import (
	"fmt"

	"github.com/vaultsandbox/encrypt-go/internal/crypto"
)

// secretKind tags the two secret variants a ciphertext can be bound to.
type secretKind int

const (
	secretKindKey      secretKind = 1
	secretKindPassword secretKind = 2
)

// keyOrPassword is the tagged union consumed by the encrypt and decrypt
// paths. It exists only to turn a secret plus a salt into the per-operation
// subkey pair.
type keyOrPassword struct {
	kind     secretKind
	key      *Key
	password []byte
}

func secretFromKey(k *Key) *keyOrPassword {
	return &keyOrPassword{kind: secretKindKey, key: k}
}

func secretFromPassword(password []byte) *keyOrPassword {
	return &keyOrPassword{kind: secretKindPassword, password: password}
}

// deriveKeys produces the authentication and encryption subkeys for salt.
// The caller wipes the returned pair when the operation completes.
func (s *keyOrPassword) deriveKeys(salt []byte) (*crypto.DerivedKeys, error) {
	switch s.kind {
	case secretKindKey:
		if err := s.key.check(); err != nil {
			return nil, err
		}
		return crypto.DeriveFromKey(s.key.raw, salt)
	case secretKindPassword:
		return crypto.DeriveFromPassword(s.password, salt)
	default:
		return nil, fmt.Errorf("%w: unknown secret kind %d", ErrEnvironmentBroken, s.kind)
	}
}
