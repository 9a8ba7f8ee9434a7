package crypto

import (
	"crypto/sha256"
	"fmt"
)

// TrimTrailingWhitespace removes trailing NUL, tab, LF, CR, and space bytes.
// Keys loaded from files often carry an editor-appended newline; nothing is
// ever trimmed from the front or middle.
func TrimTrailingWhitespace(b []byte) []byte {
	end := len(b)
	for end > 0 {
		switch b[end-1] {
		case 0x00, 0x09, 0x0a, 0x0d, 0x20:
			end--
		default:
			return b[:end]
		}
	}
	return b[:end]
}

// SaveBytesToChecksummedAsciiSafeString serializes payload under a 4-byte
// header as hex(header || payload || SHA256(header || payload)).
func SaveBytesToChecksummedAsciiSafeString(header, payload []byte) (string, error) {
	if len(header) != HeaderVersionSize {
		return "", fmt.Errorf("%w: header must be %d bytes, got %d", ErrEnvironmentBroken, HeaderVersionSize, len(header))
	}

	msg := make([]byte, 0, len(header)+len(payload)+ChecksumByteSize)
	msg = append(msg, header...)
	msg = append(msg, payload...)
	checksum := sha256.Sum256(msg)
	msg = append(msg, checksum[:]...)

	return BinToHex(msg), nil
}

// LoadBytesFromChecksummedAsciiSafeString decodes a string produced by
// SaveBytesToChecksummedAsciiSafeString and returns the payload. The header
// must equal expectedHeader and the checksum must verify; both comparisons
// are constant-time. When trim is true, trailing whitespace is removed
// before decoding.
func LoadBytesFromChecksummedAsciiSafeString(expectedHeader []byte, s string, trim bool) ([]byte, error) {
	if len(expectedHeader) != HeaderVersionSize {
		return nil, fmt.Errorf("%w: expected header must be %d bytes, got %d", ErrEnvironmentBroken, HeaderVersionSize, len(expectedHeader))
	}

	encoded := []byte(s)
	if trim {
		encoded = TrimTrailingWhitespace(encoded)
	}

	decoded, err := HexToBin(string(encoded))
	if err != nil {
		return nil, err
	}

	if len(decoded) < HeaderVersionSize+ChecksumByteSize {
		return nil, fmt.Errorf("%w: encoded data is too short", ErrBadFormat)
	}

	header := decoded[:HeaderVersionSize]
	payload := decoded[HeaderVersionSize : len(decoded)-ChecksumByteSize]
	checksum := decoded[len(decoded)-ChecksumByteSize:]

	expected := sha256.Sum256(decoded[:len(decoded)-ChecksumByteSize])
	if !HashEquals(checksum, expected[:]) {
		return nil, fmt.Errorf("%w: checksum mismatch", ErrBadFormat)
	}

	if !HashEquals(header, expectedHeader) {
		return nil, fmt.Errorf("%w: unexpected header", ErrBadFormat)
	}

	return payload, nil
}
