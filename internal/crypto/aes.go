package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
)

// CTRCrypt applies the AES-128-CTR keystream for the given subkey and IV to
// in, returning a fresh slice. CTR is its own inverse, so the same call
// encrypts and decrypts. Only the first 16 bytes of encKey are consumed.
func CTRCrypt(encKey, iv, in []byte) ([]byte, error) {
	if len(encKey) < aes.BlockSize {
		return nil, fmt.Errorf("%w: encryption subkey is too short", ErrEnvironmentBroken)
	}
	if len(iv) != IVByteSize {
		return nil, fmt.Errorf("%w: IV must be %d bytes, got %d", ErrEnvironmentBroken, IVByteSize, len(iv))
	}

	block, err := aes.NewCipher(encKey[:aes.BlockSize])
	if err != nil {
		return nil, fmt.Errorf("%w: cipher init failed: %v", ErrEnvironmentBroken, err)
	}

	out := make([]byte, len(in))
	cipher.NewCTR(block, iv).XORKeyStream(out, in)

	return out, nil
}
