package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"pngheader.adpollak.net/internal/chunk"
	"pngheader.adpollak.net/internal/config"
	"pngheader.adpollak.net/internal/images"
	"pngheader.adpollak.net/internal/logging"
)

func main() {
	// Used for default file in cmd line args.
	home, err := os.UserHomeDir()
	if err != nil {
		log.Fatal(err)
	}
	defaultFilePath := filepath.Join(home, "Pictures", "smiley.png")

	var pngCLI, configCLI string
	flag.StringVar(&pngCLI, "png", defaultFilePath, "png file to supply")
	flag.StringVar(&configCLI, "config", "", "optional TOML config file")
	flag.Parse()

	cfg, err := config.LoadConfig(configCLI)
	if err != nil {
		log.Fatalf("failed to load config %q: %v", configCLI, err)
	}
	if !cfg.Display.Color {
		color.NoColor = true
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	if err := run(pngCLI, os.Stdout, logger); err != nil {
		logger.Error("failed to decode PNG", append(errorFields(err), zap.String("path", pngCLI))...)
		_ = logger.Sync()
		os.Exit(1)
	}
}

// run loads the whole file, decodes the signature and first chunk, and
// writes the debug view to w.
func run(path string, w io.Writer, logger *zap.Logger) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	logger.Debug("read file", zap.String("path", path), zap.Int("bytes", len(file)))

	if err := chunk.ValidateSignature(file); err != nil {
		return err
	}
	logger.Debug("validated PNG signature")

	cursor := chunk.SignatureLen
	c, err := chunk.ReadChunk(file[cursor:])
	if err != nil {
		return fmt.Errorf("reading chunk at offset %d: %w", cursor, err)
	}
	logger.Debug("read chunk",
		zap.Stringer("type", c.Type),
		zap.Uint32("length", c.Length),
		zap.Int("offset", cursor),
		zap.Int("size", c.Size),
	)
	printChunk(w, c)

	ihdr, err := chunk.HandleIHDR(c)
	if err != nil {
		return err
	}
	layout, err := images.NewLayout(ihdr)
	if err != nil {
		return err
	}
	printHeader(w, ihdr, layout)

	cursor += c.Size
	logger.Info("PNG header decoded",
		zap.Uint32("width", ihdr.Width),
		zap.Uint32("height", ihdr.Height),
		zap.Stringer("color_type", ihdr.ColorType),
		zap.Int("next_chunk_offset", cursor),
	)
	return nil
}

// errorFields extracts the offending tag or value from typed chunk errors.
func errorFields(err error) []zap.Field {
	fields := []zap.Field{zap.Error(err)}

	var (
		te *chunk.TruncatedError
		ue *chunk.UnknownChunkTypeError
		le *chunk.UnexpectedChunkLengthError
		ee *chunk.InvalidEnumValueError
	)
	switch {
	case errors.As(err, &te):
		fields = append(fields, zap.String("field", te.Field), zap.Uint64("need", te.Need), zap.Uint64("have", te.Have))
	case errors.As(err, &ue):
		fields = append(fields, zap.String("tag", fmt.Sprintf("%q", ue.Tag)))
	case errors.As(err, &le):
		fields = append(fields, zap.Uint32("expected", le.Expected), zap.Uint32("actual", le.Actual))
	case errors.As(err, &ee):
		fields = append(fields, zap.String("field", ee.Field), zap.Uint8("value", ee.Value))
	}
	return fields
}
