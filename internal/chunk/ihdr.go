package chunk

import (
	"encoding/binary"
	"fmt"
)

// IHDRLength is the fixed size of an IHDR data field.
const IHDRLength = 13

type ColorType uint8

const (
	GreyScale          ColorType = 0
	TrueColor          ColorType = 2
	Indexed            ColorType = 3
	GreyScaleWithAlpha ColorType = 4
	TrueColorWithAlpha ColorType = 6
)

// ParseColorType maps an IHDR color type byte to its ColorType.
func ParseColorType(b uint8) (ColorType, error) {
	switch ct := ColorType(b); ct {
	case GreyScale, TrueColor, Indexed, GreyScaleWithAlpha, TrueColorWithAlpha:
		return ct, nil
	}
	return 0, &InvalidEnumValueError{Field: "color type", Value: b}
}

func (c ColorType) String() string {
	switch c {
	case GreyScale:
		return "GreyScale"
	case TrueColor:
		return "TrueColor"
	case Indexed:
		return "Indexed"
	case GreyScaleWithAlpha:
		return "GreyScaleWithAlpha"
	case TrueColorWithAlpha:
		return "TrueColorWithAlpha"
	}
	return fmt.Sprintf("ColorType(%d)", uint8(c))
}

// allowedBitDepths lists the bit depths permitted per color type.
// See https://www.w3.org/TR/png/#table111
var allowedBitDepths = map[ColorType][]uint8{
	GreyScale:          {1, 2, 4, 8, 16},
	TrueColor:          {8, 16},
	Indexed:            {1, 2, 4, 8},
	GreyScaleWithAlpha: {8, 16},
	TrueColorWithAlpha: {8, 16},
}

// AllowsBitDepth reports whether d is a legal bit depth for c.
func (c ColorType) AllowsBitDepth(d uint8) bool {
	for _, v := range allowedBitDepths[c] {
		if v == d {
			return true
		}
	}
	return false
}

type CompressionMethod uint8

// CompressionDeflate is zlib deflate with a sliding window of at most 32768 bytes.
const CompressionDeflate CompressionMethod = 0

func ParseCompressionMethod(b uint8) (CompressionMethod, error) {
	if m := CompressionMethod(b); m == CompressionDeflate {
		return m, nil
	}
	return 0, &InvalidEnumValueError{Field: "compression method", Value: b}
}

func (m CompressionMethod) String() string {
	if m == CompressionDeflate {
		return "Deflate"
	}
	return fmt.Sprintf("CompressionMethod(%d)", uint8(m))
}

type FilterMethod uint8

// FilterAdaptive is adaptive filtering with the five basic filter types.
const FilterAdaptive FilterMethod = 0

func ParseFilterMethod(b uint8) (FilterMethod, error) {
	if m := FilterMethod(b); m == FilterAdaptive {
		return m, nil
	}
	return 0, &InvalidEnumValueError{Field: "filter method", Value: b}
}

func (m FilterMethod) String() string {
	if m == FilterAdaptive {
		return "Adaptive"
	}
	return fmt.Sprintf("FilterMethod(%d)", uint8(m))
}

type InterlaceMethod uint8

const (
	InterlaceNone  InterlaceMethod = 0
	InterlaceAdam7 InterlaceMethod = 1
)

func ParseInterlaceMethod(b uint8) (InterlaceMethod, error) {
	switch m := InterlaceMethod(b); m {
	case InterlaceNone, InterlaceAdam7:
		return m, nil
	}
	return 0, &InvalidEnumValueError{Field: "interlace method", Value: b}
}

func (m InterlaceMethod) String() string {
	switch m {
	case InterlaceNone:
		return "None"
	case InterlaceAdam7:
		return "Adam7"
	}
	return fmt.Sprintf("InterlaceMethod(%d)", uint8(m))
}

// IHDR is the decoded image header. Raw points back at the chunk it was
// decoded from; it is never copied.
type IHDR struct {
	Raw *Chunk

	Width             uint32
	Height            uint32
	BitDepth          uint8
	ColorType         ColorType
	CompressionMethod CompressionMethod
	FilterMethod      FilterMethod
	InterlaceMethod   InterlaceMethod
}

// HandleIHDR decodes the data field of an IHDR chunk.
func HandleIHDR(chunkStream *Chunk) (*IHDR, error) {
	if chunkStream.Type != ChunkIHDR {
		return nil, fmt.Errorf("%w: got %s", ErrNotIHDR, chunkStream.Type)
	}
	if len(chunkStream.Data) != IHDRLength {
		return nil, &UnexpectedChunkLengthError{
			Type:     ChunkIHDR,
			Expected: IHDRLength,
			Actual:   uint32(len(chunkStream.Data)),
		}
	}
	data := chunkStream.Data

	colorType, err := ParseColorType(data[9])
	if err != nil {
		return nil, err
	}
	compression, err := ParseCompressionMethod(data[10])
	if err != nil {
		return nil, err
	}
	filter, err := ParseFilterMethod(data[11])
	if err != nil {
		return nil, err
	}
	interlace, err := ParseInterlaceMethod(data[12])
	if err != nil {
		return nil, err
	}

	ihdr := &IHDR{
		Raw:               chunkStream,
		Width:             binary.BigEndian.Uint32(data[0:4]),
		Height:            binary.BigEndian.Uint32(data[4:8]),
		BitDepth:          data[8],
		ColorType:         colorType,
		CompressionMethod: compression,
		FilterMethod:      filter,
		InterlaceMethod:   interlace,
	}
	if err := ihdr.Validate(); err != nil {
		return nil, err
	}
	return ihdr, nil
}

// Validate checks the rules that hold across IHDR fields: non-zero
// dimensions and a bit depth allowed for the color type.
func (h *IHDR) Validate() error {
	if h.Width == 0 {
		return &InvalidDimensionError{Field: "width"}
	}
	if h.Height == 0 {
		return &InvalidDimensionError{Field: "height"}
	}
	if !h.ColorType.AllowsBitDepth(h.BitDepth) {
		return &InvalidBitDepthError{ColorType: h.ColorType, BitDepth: h.BitDepth}
	}
	return nil
}

// Bytes returns the 13-byte IHDR data field for h.
func (h *IHDR) Bytes() []byte {
	b := make([]byte, IHDRLength)
	binary.BigEndian.PutUint32(b[0:4], h.Width)
	binary.BigEndian.PutUint32(b[4:8], h.Height)
	b[8] = h.BitDepth
	b[9] = uint8(h.ColorType)
	b[10] = uint8(h.CompressionMethod)
	b[11] = uint8(h.FilterMethod)
	b[12] = uint8(h.InterlaceMethod)
	return b
}
