package encrypt

import (
	"fmt"
	"io"
	"os"

	"github.com/vaultsandbox/encrypt-go/internal/crypto"
)

// EncryptFile encrypts the file at inPath to outPath under key, streaming
// in 1 MiB chunks. The output file is created with mode 0600 and truncated
// if it exists. inPath and outPath must not refer to the same file.
func EncryptFile(inPath, outPath string, key *Key) error {
	return withFilePair(inPath, outPath, func(src *os.File, dst *os.File) error {
		return EncryptResource(src, dst, key)
	})
}

// DecryptFile decrypts the file at inPath to outPath under key. No
// plaintext is written until the whole input's MAC has been verified.
func DecryptFile(inPath, outPath string, key *Key) error {
	return withFilePair(inPath, outPath, func(src *os.File, dst *os.File) error {
		return DecryptResource(src, dst, key)
	})
}

// EncryptFileWithPassword is EncryptFile with a password secret. The
// password is stretched once per file, not per chunk.
func EncryptFileWithPassword(inPath, outPath string, password []byte) error {
	return withFilePair(inPath, outPath, func(src *os.File, dst *os.File) error {
		return EncryptResourceWithPassword(src, dst, password)
	})
}

// DecryptFileWithPassword is DecryptFile with a password secret.
func DecryptFileWithPassword(inPath, outPath string, password []byte) error {
	return withFilePair(inPath, outPath, func(src *os.File, dst *os.File) error {
		return DecryptResourceWithPassword(src, dst, password)
	})
}

// EncryptResource encrypts src to dst under key. src is read to EOF; dst
// receives the versioned ciphertext format.
func EncryptResource(src io.Reader, dst io.Writer, key *Key) error {
	return crypto.EncryptStream(src, dst, secretFromKey(key).deriveKeys)
}

// DecryptResource verifies and decrypts src to dst under key. The two-pass
// protocol needs to seek src; non-seekable inputs are unsupported.
func DecryptResource(src io.ReadSeeker, dst io.Writer, key *Key) error {
	return crypto.DecryptStream(src, dst, secretFromKey(key).deriveKeys)
}

// EncryptResourceWithPassword is EncryptResource with a password secret.
func EncryptResourceWithPassword(src io.Reader, dst io.Writer, password []byte) error {
	return crypto.EncryptStream(src, dst, secretFromPassword(password).deriveKeys)
}

// DecryptResourceWithPassword is DecryptResource with a password secret.
func DecryptResourceWithPassword(src io.ReadSeeker, dst io.Writer, password []byte) error {
	return crypto.DecryptStream(src, dst, secretFromPassword(password).deriveKeys)
}

// withFilePair opens inPath for reading and outPath for writing, rejects
// the pair if they alias the same file, runs op, and releases both handles
// on every exit path. The aliasing check runs before outPath is truncated.
func withFilePair(inPath, outPath string, op func(*os.File, *os.File) error) error {
	src, err := os.Open(inPath)
	if err != nil {
		return fmt.Errorf("%w: open input: %v", ErrIO, err)
	}
	defer src.Close()

	srcInfo, err := src.Stat()
	if err != nil {
		return fmt.Errorf("%w: stat input: %v", ErrIO, err)
	}

	// os.Stat follows symlinks, so a link from outPath to inPath is
	// caught here too.
	if outInfo, err := os.Stat(outPath); err == nil && os.SameFile(srcInfo, outInfo) {
		return fmt.Errorf("%w: input and output refer to the same file", ErrIO)
	}

	dst, err := os.OpenFile(outPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("%w: open output: %v", ErrIO, err)
	}

	if err := op(src, dst); err != nil {
		dst.Close()
		return err
	}

	if err := dst.Close(); err != nil {
		return fmt.Errorf("%w: close output: %v", ErrIO, err)
	}

	return nil
}
