package chunk

import (
	"errors"
	"fmt"
)

// Error kinds. Use errors.Is against these; the typed errors below carry the
// offending detail and match their kind through Is.
var (
	ErrBadSignature          = errors.New("chunk: not a PNG file")
	ErrTruncated             = errors.New("chunk: unexpected end of data")
	ErrUnknownChunkType      = errors.New("chunk: unknown chunk type")
	ErrUnexpectedChunkLength = errors.New("chunk: unexpected chunk length")
	ErrInvalidEnumValue      = errors.New("chunk: invalid enum value")
	ErrInvalidDimension      = errors.New("chunk: invalid image dimension")
	ErrInvalidBitDepth       = errors.New("chunk: invalid bit depth")
	ErrNotIHDR               = errors.New("chunk: not an IHDR chunk")
)

// TruncatedError reports a field that runs past the end of the buffer.
type TruncatedError struct {
	Field string
	Need  uint64
	Have  uint64
}

func (e *TruncatedError) Error() string {
	return fmt.Sprintf("chunk: truncated %s: need %d bytes, have %d", e.Field, e.Need, e.Have)
}

func (e *TruncatedError) Is(target error) bool { return target == ErrTruncated }

type UnknownChunkTypeError struct {
	Tag string
}

func (e *UnknownChunkTypeError) Error() string {
	return fmt.Sprintf("chunk: unknown chunk type %q", e.Tag)
}

func (e *UnknownChunkTypeError) Is(target error) bool { return target == ErrUnknownChunkType }

// UnexpectedChunkLengthError is returned for a chunk whose type fixes its
// payload size but whose declared length differs.
type UnexpectedChunkLengthError struct {
	Type     ChunkType
	Expected uint32
	Actual   uint32
}

func (e *UnexpectedChunkLengthError) Error() string {
	return fmt.Sprintf("chunk: invalid length for %s: expected %d, got %d", e.Type, e.Expected, e.Actual)
}

func (e *UnexpectedChunkLengthError) Is(target error) bool { return target == ErrUnexpectedChunkLength }

type InvalidEnumValueError struct {
	Field string
	Value uint8
}

func (e *InvalidEnumValueError) Error() string {
	return fmt.Sprintf("chunk: invalid %s: %d", e.Field, e.Value)
}

func (e *InvalidEnumValueError) Is(target error) bool { return target == ErrInvalidEnumValue }

type InvalidDimensionError struct {
	Field string
}

func (e *InvalidDimensionError) Error() string {
	return fmt.Sprintf("chunk: %s must be greater than zero", e.Field)
}

func (e *InvalidDimensionError) Is(target error) bool { return target == ErrInvalidDimension }

type InvalidBitDepthError struct {
	ColorType ColorType
	BitDepth  uint8
}

func (e *InvalidBitDepthError) Error() string {
	return fmt.Sprintf("chunk: bit depth %d not allowed for color type %s", e.BitDepth, e.ColorType)
}

func (e *InvalidBitDepthError) Is(target error) bool { return target == ErrInvalidBitDepth }
