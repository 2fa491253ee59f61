package chunk

import "encoding/binary"

// Size in bytes of the length, type and CRC fields that frame every chunk.
const (
	lengthSize = 4
	typeSize   = 4
	crcSize    = 4

	// Overhead is the number of framing bytes around a chunk's data.
	Overhead = lengthSize + typeSize + crcSize
)

// Chunk defines the chunk layout as specified by PNG datastream structure.
// Data aliases the buffer passed to ReadChunk and is only valid as long as
// that buffer is.
type Chunk struct {
	Length uint32    // A four-byte unsigned integer giving the number of bytes in the chunk's data field.
	Type   ChunkType // A sequence of four bytes defining the chunk type.
	Data   []byte    // The data bytes of the relevant chunk type; can be zero length.
	Crc    uint32    // The stored CRC over type and data. Not verified.
	Size   int       // Total bytes taken by the record, Overhead + Length.
}

// ReadChunk parses the single chunk that starts at buf[0].
// The caller advances its cursor by Size to reach the next chunk.
func ReadChunk(buf []byte) (*Chunk, error) {
	// Below is visually what a chunk in the PNG datastream looks like.
	//  +------------+ +------------+ +------------+ +-------+
	//  |   LENGTH   | | CHUNK TYPE | | CHUNK DATA | |  CRC  |
	//  +------------+ +------------+ +------------+ +-------+
	have := uint64(len(buf))

	// Step 1: 4 bytes, big endian, the length of the data field.
	if have < lengthSize {
		return nil, &TruncatedError{Field: "length", Need: lengthSize, Have: have}
	}
	length := binary.BigEndian.Uint32(buf[0:lengthSize])

	// Step 2: 4 ASCII bytes of chunk type.
	if have < lengthSize+typeSize {
		return nil, &TruncatedError{Field: "type", Need: lengthSize + typeSize, Have: have}
	}
	chunkType, err := FromString(string(buf[lengthSize : lengthSize+typeSize]))
	if err != nil {
		return nil, err
	}

	// Step 3: the data field. 64-bit math so a bogus length can't wrap.
	dataStart := uint64(lengthSize + typeSize)
	dataEnd := dataStart + uint64(length)
	if have < dataEnd {
		return nil, &TruncatedError{Field: "data", Need: dataEnd, Have: have}
	}
	data := buf[dataStart:dataEnd:dataEnd]

	// Step 4: the stored CRC.
	if have < dataEnd+crcSize {
		return nil, &TruncatedError{Field: "crc", Need: dataEnd + crcSize, Have: have}
	}
	crc := binary.BigEndian.Uint32(buf[dataEnd : dataEnd+crcSize])

	return &Chunk{
		Length: length,
		Type:   chunkType,
		Data:   data,
		Crc:    crc,
		Size:   int(dataEnd + crcSize),
	}, nil
}
