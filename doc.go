// Package encrypt provides misuse-resistant authenticated symmetric
// encryption for strings and files at rest.
//
// All ciphertexts use a single versioned format built from AES-128-CTR,
// HMAC-SHA256, and HKDF-SHA256, with PBKDF2 stretching for passwords.
// Integrity is always verified before any plaintext is returned.
//
// Basic usage with a random key:
//
//	key, err := encrypt.GenerateKey()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ciphertext, err := encrypt.Encrypt([]byte("attack at dawn"), key, false)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	plaintext, err := encrypt.Decrypt(ciphertext, key, false)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Secrets
//
// Two secret kinds are supported: a 256-bit [Key] (generate one with
// [GenerateKey], persist it with [Key.SaveToAsciiSafeString]) and a
// user-supplied password ([EncryptWithPassword] and friends). Passwords are
// stretched with PBKDF2-HMAC-SHA256 at 100,000 iterations; prefer keys
// wherever the caller can store one. [KeyProtectedByPassword] combines the
// two: a random key wrapped under a password, with password rotation that
// never changes the inner key.
//
// # Files
//
// [EncryptFile] and [DecryptFile] stream data in 1 MiB chunks, so inputs
// larger than memory are fine. Decryption makes two passes over the input
// and writes no plaintext until the whole file's MAC has been verified;
// each chunk is then rechecked during the second pass, so a file modified
// while decryption is running is detected rather than partially decrypted.
// The resource variants ([EncryptResource], [DecryptResource]) operate on
// open streams; decryption requires a seekable input.
//
// # Errors
//
// Failures surface as one of four sentinel kinds, tested with errors.Is:
// [ErrBadFormat] for structurally invalid encodings, [ErrWrongKeyOrModifiedCiphertext]
// for anything that fails to decrypt (wrong secret, tampering, wrong
// variant), [ErrIO] for stream failures, and [ErrEnvironmentBroken] for
// unrecoverable platform problems. Decryption deliberately reports all
// format and integrity problems as [ErrWrongKeyOrModifiedCiphertext] so
// callers cannot build an oracle out of the distinction.
package encrypt
