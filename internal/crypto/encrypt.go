package crypto

import (
	"crypto/hmac"
	"crypto/sha256"
	"fmt"
)

// EncryptData seals plaintext into the versioned encrypt-then-MAC format:
//
//	VERSION(4) || SALT(32) || IV(16) || CT(len(plaintext)) || MAC(32)
//
// A fresh salt and IV are drawn per call, so two encryptions of the same
// plaintext under the same secret never match. When rawBinary is false the
// result is the lowercase hex form of the same bytes.
func EncryptData(plaintext []byte, derive DeriveKeysFunc, rawBinary bool) ([]byte, error) {
	salt, err := RandomBytes(SaltByteSize)
	if err != nil {
		return nil, err
	}

	iv, err := RandomBytes(IVByteSize)
	if err != nil {
		return nil, err
	}

	keys, err := derive(salt)
	if err != nil {
		return nil, err
	}
	defer keys.Wipe()

	ct, err := CTRCrypt(keys.EncKey, iv, plaintext)
	if err != nil {
		return nil, err
	}

	body := make([]byte, 0, HeaderVersionSize+SaltByteSize+IVByteSize+len(ct)+MACByteSize)
	body = append(body, CurrentVersion...)
	body = append(body, salt...)
	body = append(body, iv...)
	body = append(body, ct...)

	mac := hmac.New(sha256.New, keys.AuthKey)
	mac.Write(body)
	body = mac.Sum(body)

	if rawBinary {
		return body, nil
	}
	return []byte(BinToHex(body)), nil
}

// DecryptData verifies and opens a ciphertext produced by EncryptData. The
// MAC is checked in constant time before any plaintext is computed. All
// parse and decode failures, including hex decoding when rawBinary is
// false, surface as ErrWrongKeyOrModifiedCiphertext so callers have a
// single "did not decrypt" predicate.
func DecryptData(ciphertext []byte, derive DeriveKeysFunc, rawBinary bool) ([]byte, error) {
	raw := ciphertext
	if !rawBinary {
		decoded, err := HexToBin(string(ciphertext))
		if err != nil {
			return nil, fmt.Errorf("%w: ciphertext is not valid hex", ErrWrongKeyOrModifiedCiphertext)
		}
		raw = decoded
	}

	if len(raw) < MinimumCiphertextSize {
		return nil, fmt.Errorf("%w: ciphertext is too short", ErrWrongKeyOrModifiedCiphertext)
	}

	version := raw[:HeaderVersionSize]
	salt := raw[HeaderVersionSize : HeaderVersionSize+SaltByteSize]
	iv := raw[HeaderVersionSize+SaltByteSize : HeaderVersionSize+SaltByteSize+IVByteSize]
	ct := raw[HeaderVersionSize+SaltByteSize+IVByteSize : len(raw)-MACByteSize]
	storedMAC := raw[len(raw)-MACByteSize:]

	if !HashEquals(version, CurrentVersion) {
		return nil, fmt.Errorf("%w: unknown version header", ErrWrongKeyOrModifiedCiphertext)
	}

	keys, err := derive(salt)
	if err != nil {
		return nil, err
	}
	defer keys.Wipe()

	mac := hmac.New(sha256.New, keys.AuthKey)
	mac.Write(raw[:len(raw)-MACByteSize])
	if !HashEquals(mac.Sum(nil), storedMAC) {
		return nil, fmt.Errorf("%w: integrity check failed", ErrWrongKeyOrModifiedCiphertext)
	}

	return CTRCrypt(keys.EncKey, iv, ct)
}
