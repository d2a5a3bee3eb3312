// Package r2 wraps the S3-compatible Cloudflare R2 API used as the audio
// CDN origin. Keys follow the audio/<bitrate>/<videoID>.<ext> layout.
package r2

import (
	"fmt"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
)

// Config carries the R2 account settings.
type Config struct {
	AccountID string
	AccessKey string
	SecretKey string
	Bucket    string
	PublicURL string
}

// Store is the R2-backed object store.
type Store struct {
	s3        s3iface.S3API
	bucket    string
	publicURL string
}

// New dials R2. The endpoint is derived from the account id; R2 ignores the
// region but the SDK requires one.
func New(cfg Config) (*Store, error) {
	if cfg.AccountID == "" || cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, fmt.Errorf("r2: missing account credentials")
	}
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("r2: missing bucket")
	}
	sess, err := session.NewSession(&aws.Config{
		Endpoint:    aws.String(fmt.Sprintf("https://%s.r2.cloudflarestorage.com", cfg.AccountID)),
		Region:      aws.String("auto"),
		Credentials: credentials.NewStaticCredentials(cfg.AccessKey, cfg.SecretKey, ""),
	})
	if err != nil {
		return nil, fmt.Errorf("r2: create session: %w", err)
	}
	return &Store{
		s3:        s3.New(sess),
		bucket:    cfg.Bucket,
		publicURL: strings.TrimRight(cfg.PublicURL, "/"),
	}, nil
}

// Exists reports whether an object is already in the bucket.
func (s *Store) Exists(key string) (bool, error) {
	_, err := s.s3.HeadObject(&s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if aerr, ok := err.(awserr.RequestFailure); ok && aerr.StatusCode() == 404 {
			return false, nil
		}
		return false, fmt.Errorf("r2: head %s: %w", key, err)
	}
	return true, nil
}

// Upload pushes a local file to the bucket with aggressive edge caching.
func (s *Store) Upload(path, key, contentType string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("r2: open %s: %w", path, err)
	}
	defer f.Close()

	_, err = s.s3.PutObject(&s3.PutObjectInput{
		Bucket:       aws.String(s.bucket),
		Key:          aws.String(key),
		Body:         f,
		ContentType:  aws.String(contentType),
		CacheControl: aws.String("public, max-age=31536000"),
	})
	if err != nil {
		return fmt.Errorf("r2: upload %s: %w", key, err)
	}
	return nil
}

// PublicURL returns the CDN URL for a key, or "" when no public host is
// configured.
func (s *Store) PublicURL(key string) string {
	if s.publicURL == "" {
		return ""
	}
	return s.publicURL + "/" + key
}
