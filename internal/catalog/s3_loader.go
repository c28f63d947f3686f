package catalog

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"
)

// s3Loader implements Loader for reading the catalogue JSON from AWS S3.
type s3Loader struct {
	client *s3.Client
	bucket string
	logger zerolog.Logger
}

// NewS3Loader creates a new S3-based catalogue loader.
func NewS3Loader(ctx context.Context, bucket, region string, logger zerolog.Logger) (Loader, error) {
	logger = logger.With().Str("component", "s3-catalog-loader").Logger()

	// Load AWS configuration
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		logger.Error().Err(err).Msg("failed to load AWS configuration")
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	client := s3.NewFromConfig(cfg)

	logger.Info().
		Str("bucket", bucket).
		Str("region", region).
		Msg("S3 loader initialised")

	return &s3Loader{
		client: client,
		bucket: bucket,
		logger: logger,
	}, nil
}

// Load reads the catalogue JSON object from S3 and returns a Catalog.
func (l *s3Loader) Load(ctx context.Context, key string) (*Catalog, error) {
	l.logger.Info().
		Str("bucket", l.bucket).
		Str("key", key).
		Msg("loading catalogue from S3")

	result, err := l.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(l.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		l.logger.Error().
			Err(err).
			Str("bucket", l.bucket).
			Str("key", key).
			Msg("failed to get object from S3")
		return nil, fmt.Errorf("failed to get object from S3 (bucket=%s, key=%s): %w", l.bucket, key, err)
	}
	defer result.Body.Close()

	products, err := Parse(result.Body)
	if err != nil {
		l.logger.Error().
			Err(err).
			Str("bucket", l.bucket).
			Str("key", key).
			Msg("failed to parse catalogue from S3")
		return nil, fmt.Errorf("failed to parse catalogue from S3 object %s: %w", key, err)
	}

	cat, err := New(products)
	if err != nil {
		return nil, fmt.Errorf("invalid catalogue in S3 object %s: %w", key, err)
	}

	l.logger.Info().
		Str("bucket", l.bucket).
		Str("key", key).
		Int("products_loaded", cat.Len()).
		Msg("catalogue loaded successfully from S3")

	return cat, nil
}

// fallbackLoader tries S3 first, then falls back to the local file system.
type fallbackLoader struct {
	s3Loader   Loader
	fileLoader Loader
	s3Key      string
	logger     zerolog.Logger
}

// NewFallbackLoader creates a loader that tries S3 first, then falls back to
// the local file system. If s3Loader is nil, only the file loader is used.
func NewFallbackLoader(s3Loader, fileLoader Loader, s3Key string, logger zerolog.Logger) Loader {
	return &fallbackLoader{
		s3Loader:   s3Loader,
		fileLoader: fileLoader,
		s3Key:      s3Key,
		logger:     logger.With().Str("component", "fallback-loader").Logger(),
	}
}

// Load attempts to load from S3 first, then falls back to the local file.
// The ref argument is the local file path; the S3 key is fixed at
// construction time.
func (l *fallbackLoader) Load(ctx context.Context, filePath string) (*Catalog, error) {
	if l.s3Loader != nil {
		l.logger.Info().
			Str("s3_key", l.s3Key).
			Str("local_fallback", filePath).
			Msg("attempting to load catalogue from S3")

		cat, err := l.s3Loader.Load(ctx, l.s3Key)
		if err == nil {
			return cat, nil
		}

		l.logger.Warn().
			Err(err).
			Str("s3_key", l.s3Key).
			Msg("S3 load failed, falling back to local file")
	}

	return l.fileLoader.Load(ctx, filePath)
}
