package crypto

import "testing"

func TestHashEquals(t *testing.T) {
	tests := []struct {
		name string
		a, b []byte
		want bool
	}{
		{"equal", []byte("abcdef"), []byte("abcdef"), true},
		{"both empty", []byte{}, []byte{}, true},
		{"different content", []byte("abcdef"), []byte("abcdeg"), false},
		{"different length", []byte("abc"), []byte("abcd"), false},
		{"empty vs nonempty", []byte{}, []byte("a"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HashEquals(tt.a, tt.b); got != tt.want {
				t.Errorf("HashEquals() = %v, want %v", got, tt.want)
			}
		})
	}
}
