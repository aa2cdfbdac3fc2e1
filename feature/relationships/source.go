package relationships

import (
	"context"
	"fmt"
	"os"

	"follow-checker/core/storage"

	"golang.org/x/sync/errgroup"
)

// Source supplies the raw bytes of one export.
type Source interface {
	// Name identifies the source in logs and errors.
	Name() string
	// Read returns the full export payload.
	Read(ctx context.Context) ([]byte, error)
}

// BytesSource is an export already held in memory, e.g. an upload.
type BytesSource struct {
	Label string
	Data  []byte
}

func (b BytesSource) Name() string { return b.Label }

func (b BytesSource) Read(ctx context.Context) ([]byte, error) {
	return b.Data, nil
}

// FileSource reads an export from the local filesystem.
type FileSource struct {
	Path string
}

func (f FileSource) Name() string { return f.Path }

func (f FileSource) Read(ctx context.Context) ([]byte, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", f.Path, err)
	}
	return data, nil
}

// ObjectSource reads an export from the storage bucket.
type ObjectSource struct {
	Client storage.Client
	Bucket string
	Object string
}

func (o ObjectSource) Name() string { return o.Bucket + "/" + o.Object }

func (o ObjectSource) Read(ctx context.Context) ([]byte, error) {
	return storage.ReadObject(ctx, o.Client, o.Bucket, o.Object)
}

// ReadPair reads both exports concurrently.
func ReadPair(ctx context.Context, followers, following Source) (followersData, followingData []byte, err error) {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		data, err := followers.Read(ctx)
		if err != nil {
			return fmt.Errorf("followers export %s: %w", followers.Name(), err)
		}
		followersData = data
		return nil
	})
	g.Go(func() error {
		data, err := following.Read(ctx)
		if err != nil {
			return fmt.Errorf("following export %s: %w", following.Name(), err)
		}
		followingData = data
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return followersData, followingData, nil
}
