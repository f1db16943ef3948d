package catalog

import (
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Loader defines the interface for loading a menu from a named source.
type Loader interface {
	// Load reads the whole source and returns the parsed catalog.
	Load(ctx context.Context, source string) (*Catalog, error)
}

// fileLoader implements Loader for menu files on the local file system.
type fileLoader struct {
	logger zerolog.Logger
}

// NewFileLoader creates a new file-based menu loader.
func NewFileLoader(logger zerolog.Logger) Loader {
	return &fileLoader{
		logger: logger.With().Str("component", "menu-file-loader").Logger(),
	}
}

// Load reads a CSV menu file. Paths ending in .gz are decompressed first.
func (l *fileLoader) Load(ctx context.Context, filePath string) (*Catalog, error) {
	l.logger.Info().Str("file", filePath).Msg("loading menu file")

	file, err := os.Open(filePath)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to open menu file")
		return nil, &SourceError{Source: filePath, Err: err}
	}
	defer file.Close()

	c, err := decode(ctx, file, filePath, l.logger)
	if err != nil {
		return nil, err
	}

	l.logger.Info().
		Str("file", filePath).
		Int("categories", len(c.categories)).
		Int("items", c.Len()).
		Int("skipped_rows", len(c.skipped)).
		Msg("menu file loaded successfully")

	return c, nil
}

// decode parses r as a menu, unwrapping gzip when the source name says so.
func decode(ctx context.Context, r io.Reader, source string, logger zerolog.Logger) (*Catalog, error) {
	if strings.HasSuffix(source, ".gz") {
		gzipReader, err := gzip.NewReader(r)
		if err != nil {
			logger.Error().Err(err).Str("source", source).Msg("failed to create gzip reader")
			return nil, &SourceError{Source: source, Err: fmt.Errorf("failed to create gzip reader: %w", err)}
		}
		defer gzipReader.Close()
		r = gzipReader
	}

	c, err := Parse(ctx, r, logger.With().Str("source", source).Logger())
	if err != nil {
		logger.Error().Err(err).Str("source", source).Msg("failed to parse menu")
		return nil, fmt.Errorf("failed to parse menu %s: %w", source, err)
	}
	return c, nil
}

// LoadOrEmpty loads the menu and falls back to an empty catalog when the source
// cannot be used, so the register still starts with nothing to sell.
func LoadOrEmpty(ctx context.Context, loader Loader, source string, logger zerolog.Logger) *Catalog {
	c, err := loader.Load(ctx, source)
	if err != nil {
		logger.Error().
			Err(err).
			Str("source", source).
			Msg("menu unavailable, starting with an empty menu")
		return New()
	}
	return c
}

// unavailableLoader stands in for a source that could not be set up.
type unavailableLoader struct {
	source string
	err    error
}

// NewUnavailableLoader returns a loader whose Load always fails with a
// SourceError for source wrapping err.
func NewUnavailableLoader(source string, err error) Loader {
	return &unavailableLoader{source: source, err: err}
}

func (l *unavailableLoader) Load(ctx context.Context, _ string) (*Catalog, error) {
	return nil, &SourceError{Source: l.source, Err: l.err}
}
