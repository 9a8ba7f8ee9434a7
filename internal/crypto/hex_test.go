package crypto

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"
)

func TestBinToHex(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want string
	}{
		{"empty", nil, ""},
		{"zero byte", []byte{0x00}, "00"},
		{"all nibble values", []byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef}, "0123456789abcdef"},
		{"high bytes", []byte{0xff, 0xfe, 0xde}, "fffede"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BinToHex(tt.in)
			if got != tt.want {
				t.Errorf("BinToHex() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestBinToHexMatchesStdlib(t *testing.T) {
	buf := make([]byte, 256)
	for i := range buf {
		buf[i] = byte(i)
	}
	got := BinToHex(buf)
	want := hex.EncodeToString(buf)
	if got != want {
		t.Errorf("BinToHex() diverges from encoding/hex:\n got %s\nwant %s", got, want)
	}
}

func TestHexToBin(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []byte
	}{
		{"empty", "", []byte{}},
		{"lowercase", "0123456789abcdef", []byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef}},
		{"uppercase", "0123456789ABCDEF", []byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef}},
		{"mixed case", "DeAdBeEf", []byte{0xde, 0xad, 0xbe, 0xef}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := HexToBin(tt.in)
			if err != nil {
				t.Fatalf("HexToBin() error = %v", err)
			}
			if !bytes.Equal(got, tt.want) {
				t.Errorf("HexToBin() = %x, want %x", got, tt.want)
			}
		})
	}
}

func TestHexToBinRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"odd length", "abc"},
		{"single char", "f"},
		{"non-hex letter", "zz"},
		{"space", "ab c"},
		{"char below digits", "a/"},
		{"char between digits and uppercase", "a:"},
		{"char between uppercase and lowercase", "a`"},
		{"char above lowercase", "ag"},
		{"high byte", "a\x80"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := HexToBin(tt.in); !errors.Is(err, ErrBadFormat) {
				t.Errorf("HexToBin(%q) error = %v, want ErrBadFormat", tt.in, err)
			}
		})
	}
}

func TestHexRoundTrip(t *testing.T) {
	buf := make([]byte, 512)
	for i := range buf {
		buf[i] = byte(i * 7)
	}
	back, err := HexToBin(BinToHex(buf))
	if err != nil {
		t.Fatalf("HexToBin() error = %v", err)
	}
	if !bytes.Equal(back, buf) {
		t.Error("round trip did not recover the input")
	}
}
