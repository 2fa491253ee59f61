package chunk

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidateSignature(t *testing.T) {
	sig := Signature[:]

	t.Run("exact", func(t *testing.T) {
		if err := ValidateSignature(sig); err != nil {
			t.Errorf("ValidateSignature() returned error: %v", err)
		}
	})

	t.Run("followed by data", func(t *testing.T) {
		buf := append(append([]byte{}, sig...), buildChunk("IEND", nil)...)
		if err := ValidateSignature(buf); err != nil {
			t.Errorf("ValidateSignature() returned error: %v", err)
		}
	})

	for n := 0; n < SignatureLen; n++ {
		t.Run(fmt.Sprintf("truncated_%d", n), func(t *testing.T) {
			err := ValidateSignature(sig[:n])
			if !errors.Is(err, ErrTruncated) {
				t.Errorf("ValidateSignature() error = %v, want ErrTruncated", err)
			}
		})
	}

	for i := 0; i < SignatureLen; i++ {
		t.Run(fmt.Sprintf("corrupt_byte_%d", i), func(t *testing.T) {
			buf := append([]byte{}, sig...)
			buf[i] ^= 0x20
			if err := ValidateSignature(buf); !errors.Is(err, ErrBadSignature) {
				t.Errorf("ValidateSignature() error = %v, want ErrBadSignature", err)
			}
		})
	}

	t.Run("text mode CRLF to LF", func(t *testing.T) {
		buf := []byte{0x89, 'P', 'N', 'G', 0x0A, 0x1A, 0x0A, 0x00}
		if err := ValidateSignature(buf); !errors.Is(err, ErrBadSignature) {
			t.Errorf("ValidateSignature() error = %v, want ErrBadSignature", err)
		}
	})
}

func TestFromString(t *testing.T) {
	cases := []struct {
		tag      string
		want     ChunkType
		critical bool
	}{
		{"IHDR", ChunkIHDR, true},
		{"PLTE", ChunkPLTE, true},
		{"IDAT", ChunkIDAT, true},
		{"IEND", ChunkIEND, true},
		{"iCCP", ChunkiCCP, false},
	}
	for _, tc := range cases {
		t.Run(tc.tag, func(t *testing.T) {
			got, err := FromString(tc.tag)
			if err != nil {
				t.Fatalf("FromString(%q) returned error: %v", tc.tag, err)
			}
			if got != tc.want {
				t.Errorf("FromString(%q) = %s, want %s", tc.tag, got, tc.want)
			}
			if got.String() != tc.tag {
				t.Errorf("String() = %q, want %q", got.String(), tc.tag)
			}
			if got.IsCritical() != tc.critical {
				t.Errorf("IsCritical() = %v, want %v", got.IsCritical(), tc.critical)
			}
		})
	}

	got, err := FromString("gAMA")
	if !errors.Is(err, ErrUnknownChunkType) {
		t.Errorf("FromString(gAMA) error = %v, want ErrUnknownChunkType", err)
	}
	if got != Unknown || got.IsCritical() {
		t.Errorf("FromString(gAMA) = %q, critical %v", got, got.IsCritical())
	}
}
