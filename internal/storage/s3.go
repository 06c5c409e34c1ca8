package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

const s3Scheme = "s3://"

// IsS3URL reports whether raw points at an S3 object.
func IsS3URL(raw string) bool {
	return strings.HasPrefix(raw, s3Scheme)
}

// SplitS3URL splits s3://bucket/key into bucket and key.
func SplitS3URL(raw string) (bucket, key string, err error) {
	trimmed := strings.TrimPrefix(raw, s3Scheme)
	bucket, key, ok := strings.Cut(trimmed, "/")
	if !ok || bucket == "" || key == "" {
		return "", "", fmt.Errorf("invalid s3 url %q", raw)
	}
	return bucket, key, nil
}

// FetchS3 downloads an s3://bucket/key object into destDir and returns the
// local file path. Credentials and region come from the default AWS chain.
func FetchS3(raw, destDir string) (string, error) {
	bucket, key, err := SplitS3URL(raw)
	if err != nil {
		return "", err
	}

	sess, err := session.NewSession()
	if err != nil {
		return "", fmt.Errorf("create aws session: %w", err)
	}

	localPath := filepath.Join(destDir, filepath.Base(key))
	f, err := os.Create(localPath)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", localPath, err)
	}

	downloader := s3manager.NewDownloader(sess)
	if _, err := downloader.Download(f, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	}); err != nil {
		f.Close()
		os.Remove(localPath)
		return "", fmt.Errorf("download %s: %w", raw, err)
	}

	if err := f.Close(); err != nil {
		return "", err
	}
	return localPath, nil
}
