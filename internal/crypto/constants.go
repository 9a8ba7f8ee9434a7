package crypto

const (
	// HeaderVersionSize is the size of a format header in bytes.
	HeaderVersionSize = 4
	// SaltByteSize is the size of the per-ciphertext KDF salt in bytes.
	SaltByteSize = 32
	// IVByteSize is the size of the AES-CTR initial counter value in bytes.
	IVByteSize = 16
	// MACByteSize is the size of an HMAC-SHA256 tag in bytes.
	MACByteSize = 32
	// KeyByteSize is the size of a raw key in bytes.
	KeyByteSize = 32
	// ChecksumByteSize is the size of the SHA-256 checksum appended to
	// ASCII-safe serializations. The digest is never truncated.
	ChecksumByteSize = 32

	// MinimumCiphertextSize is the smallest valid ciphertext:
	// header + salt + IV + empty ciphertext + MAC.
	MinimumCiphertextSize = HeaderVersionSize + SaltByteSize + IVByteSize + MACByteSize

	// BufferByteSize is the chunk size used by the streaming protocol.
	// Must be a multiple of the AES block size.
	BufferByteSize = 1 << 20

	// PBKDF2Iterations is the iteration count for password stretching.
	PBKDF2Iterations = 100000

	// AuthInfoString is the HKDF info string for the authentication subkey.
	AuthInfoString = "DefusePHP|V2|KeyForAuthentication"
	// EncryptionInfoString is the HKDF info string for the encryption subkey.
	EncryptionInfoString = "DefusePHP|V2|KeyForEncryption"
)

// Format headers. Every serialized object starts with a fixed 4-byte header
// so one kind can never be parsed as another.
var (
	// CurrentVersion is the ciphertext format header.
	CurrentVersion = []byte{0xDE, 0xF5, 0x02, 0x00}
	// KeyCurrentVersion is the ASCII-safe key serialization header.
	KeyCurrentVersion = []byte{0xDE, 0xF0, 0x00, 0x00}
	// PasswordKeyCurrentVersion is the password-protected key serialization header.
	PasswordKeyCurrentVersion = []byte{0xDE, 0xF1, 0x00, 0x00}
)
