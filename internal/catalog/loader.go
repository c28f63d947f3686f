package catalog

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

// Loader loads a catalogue from some backing source. The ref argument is
// source-specific: a file path for the file loader, an object key for S3.
type Loader interface {
	Load(ctx context.Context, ref string) (*Catalog, error)
}

// fileLoader implements Loader for reading the catalogue JSON from the
// local file system.
type fileLoader struct {
	logger zerolog.Logger
}

// NewFileLoader creates a new file-based catalogue loader.
func NewFileLoader(logger zerolog.Logger) Loader {
	return &fileLoader{
		logger: logger.With().Str("component", "catalog-loader").Logger(),
	}
}

// Load reads a JSON catalogue file and returns a Catalog.
func (l *fileLoader) Load(ctx context.Context, filePath string) (*Catalog, error) {
	l.logger.Info().Str("file", filePath).Msg("loading catalogue file")

	file, err := os.Open(filePath)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to open catalogue file")
		return nil, fmt.Errorf("failed to open catalogue file %s: %w", filePath, err)
	}
	defer file.Close()

	products, err := Parse(file)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to parse catalogue file")
		return nil, fmt.Errorf("failed to parse catalogue file %s: %w", filePath, err)
	}

	cat, err := New(products)
	if err != nil {
		return nil, fmt.Errorf("invalid catalogue in %s: %w", filePath, err)
	}

	l.logger.Info().
		Str("file", filePath).
		Int("products_loaded", cat.Len()).
		Msg("catalogue file loaded successfully")

	return cat, nil
}
