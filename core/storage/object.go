package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/minio/minio-go/v7"
)

// MaxObjectSize bounds how much of an object ReadObject will buffer.
const MaxObjectSize = 64 << 20

// ReadObject downloads an object fully into memory.
func ReadObject(ctx context.Context, client Client, bucket, objectName string) ([]byte, error) {
	reader, err := client.GetObject(ctx, bucket, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get object %s: %w", objectName, err)
	}
	defer reader.Close()

	data, err := io.ReadAll(io.LimitReader(reader, MaxObjectSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read object %s: %w", objectName, err)
	}
	if len(data) > MaxObjectSize {
		return nil, fmt.Errorf("object %s exceeds %d bytes", objectName, MaxObjectSize)
	}
	return data, nil
}

// PutText uploads text as a plain-text object and returns the object name.
func PutText(ctx context.Context, client Client, bucket, objectName, text string) (string, error) {
	body := []byte(text)
	_, err := client.PutObject(ctx, bucket, objectName, bytes.NewReader(body), int64(len(body)), minio.PutObjectOptions{
		ContentType: "text/plain; charset=utf-8",
	})
	if err != nil {
		return "", fmt.Errorf("failed to put object %s: %w", objectName, err)
	}
	return objectName, nil
}

// ObjectPath joins a folder prefix and an object name.
func ObjectPath(prefix, name string) string {
	prefix = strings.Trim(prefix, "/")
	if prefix == "" {
		return name
	}
	return path.Join(prefix, name)
}
