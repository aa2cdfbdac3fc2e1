package checks

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"follow-checker/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// ErrBucketMissing is returned by CheckStructure when the bucket does not exist.
var ErrBucketMissing = errors.New("bucket does not exist")

// RequiredFolders returns the folders the bucket must contain for the
// given storage configuration.
func RequiredFolders(cfg storage.Config) []string {
	var folders []string
	for _, prefix := range []string{cfg.ExportsPrefix, cfg.ResultsPrefix} {
		prefix = strings.Trim(prefix, "/")
		if prefix != "" {
			folders = append(folders, prefix)
		}
	}
	return folders
}

// CheckStructure returns the folders missing from the bucket.
func CheckStructure(ctx context.Context, client storage.Client, bucket string, folders []string) ([]string, error) {
	missing := []string{}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%s: %w", bucket, ErrBucketMissing)
	}

	for _, folder := range folders {
		opts := minio.ListObjectsOptions{
			Prefix:    folderKey(folder),
			Recursive: false,
			MaxKeys:   1,
		}

		found := false
		for obj := range client.ListObjects(ctx, bucket, opts) {
			if obj.Err != nil {
				return nil, fmt.Errorf("failed to list %s: %w", folder, obj.Err)
			}
			found = true
			break
		}

		if !found {
			missing = append(missing, folder)
		}
	}

	return missing, nil
}

// EnsureBucket creates the bucket when it does not exist and reports
// whether it did.
func EnsureBucket(ctx context.Context, client storage.Client, bucket, region string, logger *zap.Logger) (bool, error) {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return false, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if exists {
		return false, nil
	}
	if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{Region: region}); err != nil {
		return false, fmt.Errorf("failed to create bucket %s: %w", bucket, err)
	}
	logger.Info("Created missing bucket", zap.String("bucket", bucket))
	return true, nil
}

// FixStructure creates the missing folders as empty marker objects.
func FixStructure(ctx context.Context, client storage.Client, bucket string, logger *zap.Logger, missing []string) error {
	for _, folder := range missing {
		_, err := client.PutObject(ctx, bucket, folderKey(folder), bytes.NewReader([]byte{}), 0, minio.PutObjectOptions{})
		if err != nil {
			logger.Error("Failed to create folder", zap.String("folder", folder), zap.Error(err))
			return fmt.Errorf("failed to create folder %s: %w", folder, err)
		}
		logger.Info("Created missing folder", zap.String("folder", folder))
	}
	return nil
}

func folderKey(folder string) string {
	if strings.HasSuffix(folder, "/") {
		return folder
	}
	return folder + "/"
}
