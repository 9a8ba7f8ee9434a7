// Package crypto implements the versioned encrypt-then-MAC engine behind
// the public encrypt API.
//
// # Ciphertext format
//
// Every ciphertext, in memory or on disk, has the fixed layout
//
//	VERSION(4) || SALT(32) || IV(16) || CT(n) || MAC(32)
//
// where VERSION is 0xDE 0xF5 0x02 0x00, SALT binds the HKDF subkey
// derivation, IV is the AES-CTR initial counter, and MAC is HMAC-SHA256
// over everything before it. The minimum valid size is 84 bytes.
//
// # Key derivation
//
// A 32-byte prekey (a raw key, or PBKDF2 of a pre-hashed password) is
// expanded per operation with HKDF-SHA256 into a 32-byte authentication
// subkey and a 32-byte encryption subkey, domain-separated by distinct
// info strings. AES-128 consumes the first 16 bytes of the encryption
// subkey.
//
// # Streaming protocol
//
// EncryptStream produces the same format chunk by chunk. DecryptStream is
// deliberately two-pass: the first pass verifies the MAC over the whole
// input and pins an incremental tag at every chunk boundary, the second
// pass rechecks each chunk against its pinned tag before decrypting, so
// storage tampered with between the passes is caught before any plaintext
// is released.
//
// # Side channels
//
// MAC, checksum, and header comparisons are constant-time. Hex conversion
// is arithmetic, with no table lookups and no branches on data bytes.
// Subkeys and stretched passwords are zeroed when an operation completes.
package crypto
