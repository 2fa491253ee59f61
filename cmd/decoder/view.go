package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"pngheader.adpollak.net/internal/chunk"
	"pngheader.adpollak.net/internal/images"
)

var (
	headerColor = color.New(color.FgCyan, color.Bold)
	keyColor    = color.New(color.FgHiBlack)
	valueColor  = color.New(color.FgGreen)
)

func printChunk(w io.Writer, c *chunk.Chunk) {
	kind := "ancillary"
	if c.Type.IsCritical() {
		kind = "critical"
	}
	headerColor.Fprintf(w, "chunk %s (%s)\n", c.Type, kind)
	printField(w, "length", c.Length)
	printField(w, "size", c.Size)
	printField(w, "crc", fmt.Sprintf("%08x", c.Crc))
}

func printHeader(w io.Writer, ihdr *chunk.IHDR, layout images.Layout) {
	headerColor.Fprintln(w, "image header")
	printField(w, "width", ihdr.Width)
	printField(w, "height", ihdr.Height)
	printField(w, "bit depth", ihdr.BitDepth)
	printField(w, "color type", fmt.Sprintf("%s (%s)", ihdr.ColorType, images.ColorTypeName(ihdr.ColorType)))
	printField(w, "compression", ihdr.CompressionMethod)
	printField(w, "filter", ihdr.FilterMethod)
	printField(w, "interlace", ihdr.InterlaceMethod)
	printField(w, "channels", layout.Channels)
	printField(w, "bits/pixel", layout.BitsPerPixel)
	printField(w, "row bytes", layout.RowBytes)
}

func printField(w io.Writer, key string, value any) {
	keyColor.Fprintf(w, "  %-12s", key)
	valueColor.Fprintf(w, "%v\n", value)
}
