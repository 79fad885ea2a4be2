package service

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/ebelikov/lotus/internal/config"
	"github.com/ebelikov/lotus/internal/logger"
	"github.com/ebelikov/lotus/models"
)

// s3AvatarStorage stores avatar images in an S3-compatible bucket (MinIO in
// the default deployment) and derives public URLs from the configured base.
type s3AvatarStorage struct {
	client        *s3.Client
	bucket        string
	publicBaseURL string

	logger *logger.Logger
}

// NewAvatarStorage builds an [AvatarStorage] from blob configuration.
// Returns (nil, nil) when no bucket is configured, leaving avatar uploads
// disabled without failing server startup.
func NewAvatarStorage(ctx context.Context, cfg config.Blob, log *logger.Logger) (AvatarStorage, error) {
	if cfg.Bucket == "" {
		log.Warn().Msg("no blob bucket configured, avatar uploads disabled")
		return nil, nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		)))
	if err != nil {
		log.Err(err).Str("func", "NewAvatarStorage").Msg("error loading blob storage configuration")
		return nil, fmt.Errorf("error loading blob storage configuration: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		// MinIO serves buckets by path, not by subdomain.
		o.UsePathStyle = true
	})

	publicBaseURL := cfg.PublicBaseURL
	if publicBaseURL == "" {
		publicBaseURL = cfg.Endpoint
	}

	return &s3AvatarStorage{
		client:        client,
		bucket:        cfg.Bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		logger:        log,
	}, nil
}

// Upload stores the avatar image under a key derived from the owner's
// username and the upload instant, and returns the public URL of the stored
// object. Repeated uploads by the same user produce distinct keys, so stale
// URLs keep resolving until the bucket is cleaned up.
func (s *s3AvatarStorage) Upload(ctx context.Context, username string, upload models.AvatarUpload) (string, error) {
	log := logger.FromContext(ctx)

	key := avatarKey(username, upload.Filename)

	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(upload.Data),
	}
	if upload.ContentType != "" {
		input.ContentType = aws.String(upload.ContentType)
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		log.Err(err).
			Str("func", "s3AvatarStorage.Upload").
			Str("key", key).
			Msg("failed to store avatar object")
		return "", fmt.Errorf("failed to store avatar object: %w", err)
	}

	return s.publicBaseURL + "/" + s.bucket + "/" + key, nil
}

// avatarKey builds the object key as <username>-<unix millis><ext>.
func avatarKey(username, filename string) string {
	return fmt.Sprintf("%s-%d%s", username, time.Now().UnixMilli(), filepath.Ext(filename))
}
