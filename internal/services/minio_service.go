package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"path"
	"path/filepath"
	"strings"
	"time"

	"film-backend/internal/config"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
)

// PosterStorage hands out upload URLs for film posters and removes posters
// that are no longer referenced.
type PosterStorage interface {
	GeneratePresignedURL(ctx context.Context, filename string) (uploadURL, publicURL string, err error)
	// ObjectName extracts the object key from a public poster URL. ok is false
	// for URLs that point outside the managed bucket.
	ObjectName(posterURL string) (name string, ok bool)
	DeleteFile(ctx context.Context, objectName string) error
}

type MinIOService struct {
	client    *minio.Client
	bucket    string
	publicURL string
	expiry    time.Duration
	logger    *logrus.Logger
}

// ErrUnsupportedPoster rejects uploads that are not images.
var ErrUnsupportedPoster = errors.New("unsupported poster extension")

var posterExtensions = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".webp": true, ".gif": true,
}

func NewMinIOService(cfg *config.MinIOConfig, logger *logrus.Logger) (*MinIOService, error) {
	endpoint := cfg.Endpoint
	endpoint = strings.TrimPrefix(endpoint, "https://")
	endpoint = strings.TrimPrefix(endpoint, "http://")

	minioClient, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	logger.WithFields(logrus.Fields{
		"endpoint": endpoint,
		"bucket":   cfg.BucketName,
		"useSSL":   cfg.UseSSL,
	}).Info("MinIO client initialized successfully")

	service := &MinIOService{
		client:    minioClient,
		bucket:    cfg.BucketName,
		publicURL: strings.TrimSuffix(cfg.PublicURL, "/"),
		expiry:    cfg.PresignExpiry,
		logger:    logger,
	}
	if service.expiry <= 0 {
		service.expiry = 15 * time.Minute
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := service.ensureBucket(ctx, cfg.Region); err != nil {
		logger.WithError(err).Warn("Failed to configure poster bucket, but continuing...")
	}

	return service, nil
}

func (s *MinIOService) ensureBucket(ctx context.Context, region string) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}

	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{Region: region}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
		s.logger.WithField("bucket", s.bucket).Info("Bucket created successfully")
	}

	policy := fmt.Sprintf(`{
		"Version": "2012-10-17",
		"Statement": [
			{
				"Effect": "Allow",
				"Principal": {"AWS": ["*"]},
				"Action": ["s3:GetObject"],
				"Resource": ["arn:aws:s3:::%s/*"]
			}
		]
	}`, s.bucket)

	if err := s.client.SetBucketPolicy(ctx, s.bucket, policy); err != nil {
		return fmt.Errorf("failed to set bucket policy: %w", err)
	}

	s.logger.WithField("bucket", s.bucket).Info("Bucket policy set to public read")
	return nil
}

// posterObjectName builds a unique object key that keeps the original
// extension. Only image extensions are accepted.
func posterObjectName(filename string) (string, error) {
	base := filepath.Base(strings.TrimSpace(filename))
	ext := strings.ToLower(filepath.Ext(base))
	if !posterExtensions[ext] {
		return "", fmt.Errorf("%w %q", ErrUnsupportedPoster, ext)
	}
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	stem = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		}
		return '-'
	}, stem)
	if stem == "" {
		stem = "poster"
	}
	return fmt.Sprintf("%s_%s%s", stem, uuid.New().String()[:8], ext), nil
}

func (s *MinIOService) GeneratePresignedURL(ctx context.Context, filename string) (string, string, error) {
	objectName, err := posterObjectName(filename)
	if err != nil {
		return "", "", err
	}

	presignedURL, err := s.client.PresignedPutObject(ctx, s.bucket, objectName, s.expiry)
	if err != nil {
		s.logger.WithError(err).Error("Failed to generate presigned URL")
		return "", "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}

	publicURL := s.publicURL + "/" + objectName

	s.logger.WithFields(logrus.Fields{
		"filename":   filename,
		"objectName": objectName,
		"expiry":     s.expiry,
	}).Info("Generated presigned URL")

	return presignedURL.String(), publicURL, nil
}

func (s *MinIOService) ObjectName(posterURL string) (string, bool) {
	return objectNameUnder(s.publicURL, posterURL)
}

func objectNameUnder(publicURL, posterURL string) (string, bool) {
	if publicURL == "" || !strings.HasPrefix(posterURL, publicURL+"/") {
		return "", false
	}
	u, err := url.Parse(posterURL)
	if err != nil {
		return "", false
	}
	name := path.Base(u.Path)
	if name == "" || name == "." || name == "/" {
		return "", false
	}
	return name, true
}

func (s *MinIOService) DeleteFile(ctx context.Context, objectName string) error {
	err := s.client.RemoveObject(ctx, s.bucket, objectName, minio.RemoveObjectOptions{})
	if err != nil {
		s.logger.WithError(err).WithField("objectName", objectName).Error("Failed to delete file")
		return fmt.Errorf("failed to delete file: %w", err)
	}

	s.logger.WithField("objectName", objectName).Info("File deleted successfully from MinIO")
	return nil
}
