package crypto

import (
	"crypto/hmac"
	"crypto/sha256"
	"fmt"
	"hash"
	"io"
)

const headerSize = HeaderVersionSize + SaltByteSize + IVByteSize

// blocksPerChunk is the CTR counter advance between full chunks.
const blocksPerChunk = BufferByteSize / 16

// EncryptStream encrypts src to dst in BufferByteSize chunks, producing the
// same format as EncryptData. The header is written and MACed first, then
// each ciphertext chunk is written and fed to the running HMAC, and the
// final tag is appended. The CTR counter is advanced by blocksPerChunk
// between chunks, failing closed if the counter space would be exhausted.
func EncryptStream(src io.Reader, dst io.Writer, derive DeriveKeysFunc) error {
	salt, err := RandomBytes(SaltByteSize)
	if err != nil {
		return err
	}

	iv, err := RandomBytes(IVByteSize)
	if err != nil {
		return err
	}

	keys, err := derive(salt)
	if err != nil {
		return err
	}
	defer keys.Wipe()

	header := make([]byte, 0, headerSize)
	header = append(header, CurrentVersion...)
	header = append(header, salt...)
	header = append(header, iv...)

	if err := writeAll(dst, header); err != nil {
		return err
	}

	mac := hmac.New(sha256.New, keys.AuthKey)
	mac.Write(header)

	ctr := make([]byte, IVByteSize)
	copy(ctr, iv)

	buf := make([]byte, BufferByteSize)
	for {
		n, rerr := io.ReadFull(src, buf)
		if rerr != nil && rerr != io.EOF && rerr != io.ErrUnexpectedEOF {
			return fmt.Errorf("%w: read input: %v", ErrIO, rerr)
		}

		if n > 0 {
			ct, cerr := CTRCrypt(keys.EncKey, ctr, buf[:n])
			if cerr != nil {
				return cerr
			}
			if err := writeAll(dst, ct); err != nil {
				return err
			}
			mac.Write(ct)
		}

		if rerr != nil {
			// EOF; the counter is left one advance behind, which is
			// harmless because no further block is encrypted.
			break
		}

		if err := AddToCounter(ctr, blocksPerChunk); err != nil {
			return err
		}
	}

	return writeAll(dst, mac.Sum(nil))
}

// DecryptStream verifies and decrypts src to dst using two passes over the
// input. Pass 1 MACs the whole file and records an incremental tag at every
// chunk boundary; no plaintext is produced unless the final tag matches the
// stored one. Pass 2 re-reads the same chunks, recomputes each incremental
// tag, and compares it against the pass-1 record before decrypting, so a
// file mutated between the passes is detected before any tampered plaintext
// is written.
func DecryptStream(src io.ReadSeeker, dst io.Writer, derive DeriveKeysFunc) error {
	end, err := src.Seek(0, io.SeekEnd)
	if err != nil {
		return fmt.Errorf("%w: seek input: %v", ErrIO, err)
	}

	if end < MinimumCiphertextSize {
		return fmt.Errorf("%w: ciphertext is too short", ErrWrongKeyOrModifiedCiphertext)
	}

	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("%w: seek input: %v", ErrIO, err)
	}

	header := make([]byte, headerSize)
	if _, err := io.ReadFull(src, header); err != nil {
		return fmt.Errorf("%w: read header: %v", ErrIO, err)
	}

	if !HashEquals(header[:HeaderVersionSize], CurrentVersion) {
		return fmt.Errorf("%w: unknown version header", ErrWrongKeyOrModifiedCiphertext)
	}

	salt := header[HeaderVersionSize : HeaderVersionSize+SaltByteSize]
	iv := header[HeaderVersionSize+SaltByteSize:]

	keys, err := derive(salt)
	if err != nil {
		return err
	}
	defer keys.Wipe()

	storedMAC := make([]byte, MACByteSize)
	if _, err := src.Seek(end-MACByteSize, io.SeekStart); err != nil {
		return fmt.Errorf("%w: seek input: %v", ErrIO, err)
	}
	if _, err := io.ReadFull(src, storedMAC); err != nil {
		return fmt.Errorf("%w: read MAC: %v", ErrIO, err)
	}

	cipherLen := end - MACByteSize - headerSize

	// Both HMAC contexts start from the same header prefix; the second one
	// stands in for a clone of the pass-1 state.
	mac1 := hmac.New(sha256.New, keys.AuthKey)
	mac1.Write(header)
	mac2 := hmac.New(sha256.New, keys.AuthKey)
	mac2.Write(header)

	// Pass 1: verify the whole file, pinning an incremental tag per chunk.
	// hash.Hash.Sum leaves the running state untouched, so each pinned tag
	// is a snapshot of the bytes observed so far.
	if _, err := src.Seek(headerSize, io.SeekStart); err != nil {
		return fmt.Errorf("%w: seek input: %v", ErrIO, err)
	}
	chunkMACs, err := macPass(src, cipherLen, mac1, nil)
	if err != nil {
		return err
	}

	if !HashEquals(mac1.Sum(nil), storedMAC) {
		return fmt.Errorf("%w: integrity check failed", ErrWrongKeyOrModifiedCiphertext)
	}

	// Pass 2: decrypt, rechecking each chunk against the pinned tags.
	if _, err := src.Seek(headerSize, io.SeekStart); err != nil {
		return fmt.Errorf("%w: seek input: %v", ErrIO, err)
	}

	ctr := make([]byte, IVByteSize)
	copy(ctr, iv)

	writeChunk := func(chunk []byte, tag []byte) error {
		if len(chunkMACs) == 0 || !HashEquals(tag, chunkMACs[0]) {
			return fmt.Errorf("%w: file was modified after MAC verification", ErrWrongKeyOrModifiedCiphertext)
		}
		chunkMACs = chunkMACs[1:]

		pt, cerr := CTRCrypt(keys.EncKey, ctr, chunk)
		if cerr != nil {
			return cerr
		}
		if werr := writeAll(dst, pt); werr != nil {
			return werr
		}
		Zero(pt)

		if int64(len(chunk)) == BufferByteSize {
			return AddToCounter(ctr, blocksPerChunk)
		}
		return nil
	}

	if _, err := macPass(src, cipherLen, mac2, writeChunk); err != nil {
		return err
	}

	return nil
}

// macPass reads exactly length ciphertext bytes from src in BufferByteSize
// chunks, feeding each chunk to mac. The incremental tag after each chunk
// is either collected and returned (visit == nil) or handed to visit along
// with the chunk.
func macPass(src io.Reader, length int64, mac hash.Hash, visit func(chunk, tag []byte) error) ([][]byte, error) {
	var tags [][]byte

	buf := make([]byte, BufferByteSize)
	remaining := length
	for remaining > 0 {
		n := int64(BufferByteSize)
		if remaining < n {
			n = remaining
		}

		if _, err := io.ReadFull(src, buf[:n]); err != nil {
			return nil, fmt.Errorf("%w: read ciphertext: %v", ErrIO, err)
		}

		mac.Write(buf[:n])
		tag := mac.Sum(nil)

		if visit == nil {
			tags = append(tags, tag)
		} else if err := visit(buf[:n], tag); err != nil {
			return nil, err
		}

		remaining -= n
	}

	return tags, nil
}

func writeAll(dst io.Writer, b []byte) error {
	if _, err := dst.Write(b); err != nil {
		return fmt.Errorf("%w: write output: %v", ErrIO, err)
	}
	return nil
}
