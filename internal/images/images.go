package images

import (
	"fmt"
	"image/color"

	"pngheader.adpollak.net/internal/chunk"
)

// Layout describes how pixels of an image are laid out in its scanlines,
// as implied by the IHDR alone.
type Layout struct {
	Channels     int         // Samples per pixel.
	BitsPerPixel int         // Channels * bit depth.
	RowBytes     uint64      // Bytes in one scanline, excluding the filter type byte.
	FilterBytes  int         // Distance in bytes to the corresponding byte of the previous pixel.
	Model        color.Model // Go color model for the pixels; nil for indexed images.
}

// NewLayout derives the scanline layout from an image header.
func NewLayout(ihdr *chunk.IHDR) (Layout, error) {
	// Switch on the 5 color types as specified in the PNG specification.
	var (
		channels int
		model    color.Model
	)
	deep := ihdr.BitDepth == 16
	switch ihdr.ColorType {
	case chunk.GreyScale:
		channels = 1
		model = pick(deep, color.Gray16Model, color.GrayModel)
	case chunk.TrueColor:
		channels = 3
		model = pick(deep, color.RGBA64Model, color.RGBAModel)
	case chunk.Indexed:
		// The palette lives in PLTE.
		channels = 1
	case chunk.GreyScaleWithAlpha:
		channels = 2
		model = pick(deep, color.NRGBA64Model, color.NRGBAModel)
	case chunk.TrueColorWithAlpha:
		channels = 4
		model = pick(deep, color.NRGBA64Model, color.NRGBAModel)
	default:
		return Layout{}, fmt.Errorf("invalid ColorType: %v", ihdr.ColorType)
	}

	bpp := channels * int(ihdr.BitDepth)
	filterBytes := bpp / 8
	if filterBytes < 1 {
		filterBytes = 1
	}

	return Layout{
		Channels:     channels,
		BitsPerPixel: bpp,
		RowBytes:     (uint64(ihdr.Width)*uint64(bpp) + 7) / 8,
		FilterBytes:  filterBytes,
		Model:        model,
	}, nil
}

func pick(deep bool, m16, m8 color.Model) color.Model {
	if deep {
		return m16
	}
	return m8
}

// ColorTypeName returns the name the PNG specification uses for a color type.
func ColorTypeName(ct chunk.ColorType) string {
	switch ct {
	case chunk.GreyScale:
		return "Greyscale"
	case chunk.TrueColor:
		return "Truecolor"
	case chunk.Indexed:
		return "Indexed-color"
	case chunk.GreyScaleWithAlpha:
		return "Greyscale with alpha"
	case chunk.TrueColorWithAlpha:
		return "Truecolor with alpha"
	}
	return "Unknown"
}
