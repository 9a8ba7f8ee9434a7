package crypto

import "fmt"

// AddToCounter adds inc to the 16-byte CTR counter ctr, interpreted as a
// big-endian integer, propagating carries from the least significant byte.
// A carry out of the most significant byte means the counter space under
// this IV is exhausted; encrypting further blocks would reuse keystream,
// so the operation fails instead of wrapping.
func AddToCounter(ctr []byte, inc uint64) error {
	if len(ctr) != IVByteSize {
		return fmt.Errorf("%w: counter must be %d bytes, got %d", ErrEnvironmentBroken, IVByteSize, len(ctr))
	}

	carry := inc
	for i := IVByteSize - 1; i >= 0 && carry > 0; i-- {
		sum := uint64(ctr[i]) + (carry & 0xff)
		ctr[i] = byte(sum)
		carry = (carry >> 8) + (sum >> 8)
	}

	if carry != 0 {
		return fmt.Errorf("%w: CTR counter overflow", ErrEnvironmentBroken)
	}

	return nil
}
