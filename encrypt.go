package encrypt

import "github.com/vaultsandbox/encrypt-go/internal/crypto"

// Encrypt seals plaintext under key into the versioned ciphertext format.
// When rawBinary is true the raw bytes are returned; otherwise the result
// is their lowercase hex form. Every call draws a fresh salt and IV, so
// encrypting the same plaintext twice never yields the same ciphertext.
func Encrypt(plaintext []byte, key *Key, rawBinary bool) ([]byte, error) {
	return crypto.EncryptData(plaintext, secretFromKey(key).deriveKeys, rawBinary)
}

// Decrypt verifies and opens a ciphertext produced by Encrypt with the same
// key and the same rawBinary choice. Any failure to decrypt, including a
// tampered ciphertext, a wrong key, or a raw/hex variant mismatch, is
// reported as ErrWrongKeyOrModifiedCiphertext. A nil or wiped key is
// reported as ErrEnvironmentBroken before the ciphertext is examined.
func Decrypt(ciphertext []byte, key *Key, rawBinary bool) ([]byte, error) {
	if err := key.check(); err != nil {
		return nil, err
	}
	return crypto.DecryptData(ciphertext, secretFromKey(key).deriveKeys, rawBinary)
}

// EncryptWithPassword seals plaintext under a password. The password is
// stretched with PBKDF2-HMAC-SHA256 (100,000 iterations) per call, which
// makes both encryption and decryption deliberately slow; use a Key when
// the caller can store one.
func EncryptWithPassword(plaintext, password []byte, rawBinary bool) ([]byte, error) {
	return crypto.EncryptData(plaintext, secretFromPassword(password).deriveKeys, rawBinary)
}

// DecryptWithPassword verifies and opens a ciphertext produced by
// EncryptWithPassword with the same password and rawBinary choice.
func DecryptWithPassword(ciphertext, password []byte, rawBinary bool) ([]byte, error) {
	return crypto.DecryptData(ciphertext, secretFromPassword(password).deriveKeys, rawBinary)
}
