package chunk

import "bytes"

// SignatureLen is the number of bytes every PNG datastream starts with.
const SignatureLen = 8

// Signature is the PNG magic: 137 80 78 71 13 10 26 10.
// The high bit byte catches 7-bit transports, CR LF and LF catch newline
// conversion, and 0x1A stops a DOS "type" command.
var Signature = [SignatureLen]byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}

// ValidateSignature checks that buf begins with the PNG signature.
func ValidateSignature(buf []byte) error {
	if len(buf) < SignatureLen {
		return &TruncatedError{Field: "signature", Need: SignatureLen, Have: uint64(len(buf))}
	}
	if !bytes.Equal(buf[:SignatureLen], Signature[:]) {
		return ErrBadSignature
	}
	return nil
}

type ChunkType struct {
	slug string
}

func (c ChunkType) String() string {
	return c.slug
}

// IsCritical reports whether the chunk is critical (upper-case first letter)
// rather than ancillary.
func (c ChunkType) IsCritical() bool {
	return c.slug != "" && c.slug[0] >= 'A' && c.slug[0] <= 'Z'
}

// FromString maps a 4-byte tag to one of the recognized chunk types.
func FromString(s string) (ChunkType, error) {
	switch s {
	case ChunkIHDR.slug:
		return ChunkIHDR, nil
	case ChunkPLTE.slug:
		return ChunkPLTE, nil
	case ChunkIDAT.slug:
		return ChunkIDAT, nil
	case ChunkIEND.slug:
		return ChunkIEND, nil
	case ChunkiCCP.slug:
		return ChunkiCCP, nil
	}

	return Unknown, &UnknownChunkTypeError{Tag: s}
}

var (
	Unknown = ChunkType{""}

	// NOTE: Critical chunks
	ChunkIHDR = ChunkType{"IHDR"}
	ChunkPLTE = ChunkType{"PLTE"}
	ChunkIDAT = ChunkType{"IDAT"}
	ChunkIEND = ChunkType{"IEND"}

	// NOTE: Ancillary chunks
	ChunkiCCP = ChunkType{"iCCP"}
)
