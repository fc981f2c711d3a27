package storage

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"strings"

	// Registered decoders for image sniffing. WebP has no stdlib decoder.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Upload limits for avatar images.
const (
	MaxAvatarBytes     = 2 << 20 // 2 MiB
	MaxAvatarDimension = 4096
)

var formatContentTypes = map[string]string{
	"jpeg": "image/jpeg",
	"png":  "image/png",
	"gif":  "image/gif",
	"webp": "image/webp",
}

// SniffAvatar decodes the image header and enforces format and dimension
// limits. It returns the detected content type. Decoding the header (not
// trusting the client's filename or Content-Type) is what prevents file
// spoofing.
func SniffAvatar(data []byte) (contentType string, err error) {
	if len(data) == 0 {
		return "", fmt.Errorf("empty upload")
	}
	if len(data) > MaxAvatarBytes {
		return "", fmt.Errorf("avatar exceeds %d bytes", MaxAvatarBytes)
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("unrecognized image data: %w", err)
	}

	ct, ok := formatContentTypes[format]
	if !ok {
		return "", fmt.Errorf("image format not allowed: %s", format)
	}
	if cfg.Width > MaxAvatarDimension || cfg.Height > MaxAvatarDimension {
		return "", fmt.Errorf("image dimensions %dx%d exceed %dpx limit", cfg.Width, cfg.Height, MaxAvatarDimension)
	}

	return ct, nil
}

// AvatarStoreConfig points at an S3-compatible bucket. Supabase Storage
// exposes one at <project>/storage/v1/s3 with path-style addressing.
type AvatarStoreConfig struct {
	Endpoint        string // e.g. https://xyz.supabase.co/storage/v1/s3
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
	PublicBaseURL   string // base for returned avatar URLs
}

// AvatarStore uploads avatar images and hands back their public URL.
type AvatarStore struct {
	client *s3.Client
	cfg    AvatarStoreConfig
}

func NewAvatarStore(ctx context.Context, cfg AvatarStoreConfig) (*AvatarStore, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load S3 config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true // Supabase Storage requires path-style
		}
	})

	return &AvatarStore{client: client, cfg: cfg}, nil
}

// IsConfigured reports whether uploads can work at all.
func (s *AvatarStore) IsConfigured() bool {
	return s != nil && s.cfg.Bucket != "" && s.cfg.AccessKeyID != ""
}

// Upload sniffs, stores and returns the public URL for a user's avatar.
// The object key is stable per user so re-uploads replace the old avatar.
func (s *AvatarStore) Upload(ctx context.Context, userID string, data []byte) (string, error) {
	contentType, err := SniffAvatar(data)
	if err != nil {
		return "", err
	}

	ext := strings.TrimPrefix(contentType, "image/")
	key := fmt.Sprintf("avatars/%s.%s", userID, ext)

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.cfg.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload avatar: %w", err)
	}

	base := strings.TrimRight(s.cfg.PublicBaseURL, "/")
	return base + "/" + key, nil
}
