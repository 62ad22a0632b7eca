// Package sink stores generated images, on the local disk or in Google Cloud
// Storage.
package sink

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/cockroachdb/errors"
)

// Sink stores named blobs and returns where each one was written.
type Sink interface {
	Put(ctx context.Context, name string, data []byte) (string, error)
}

// Dir writes files under a local directory, created on first write.
type Dir struct {
	path string
}

func NewDir(path string) *Dir {
	return &Dir{path: path}
}

func (d *Dir) Put(_ context.Context, name string, data []byte) (string, error) {
	rel := filepath.Clean(filepath.FromSlash(name))

	if rel == "." || filepath.IsAbs(rel) || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", errors.Newf("invalid file name '%s'", name)
	}

	target := filepath.Join(d.path, rel)

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return "", errors.Wrapf(err, "could not create directory for '%s'", target)
	}
	if err := os.WriteFile(target, data, 0o644); err != nil {
		return "", errors.Wrapf(err, "could not write '%s'", target)
	}

	return target, nil
}

// Bucket writes objects to a Google Cloud Storage bucket, under an optional
// prefix.
type Bucket struct {
	client *storage.Client
	bucket string
	prefix string
}

func NewBucket(client *storage.Client, bucket, prefix string) *Bucket {
	return &Bucket{
		client: client,
		bucket: bucket,
		prefix: prefix,
	}
}

func (b *Bucket) Put(ctx context.Context, name string, data []byte) (string, error) {
	if name == "" {
		return "", errors.New("object name cannot be empty")
	}

	filename := path.Join(b.prefix, name)

	wr := b.client.Bucket(b.bucket).Object(filename).NewWriter(ctx)
	wr.ContentType = http.DetectContentType(data)

	if _, err := wr.Write(data); err != nil {
		_ = wr.Close()

		return "", errors.Wrapf(err, "could not upload '%s'", filename)
	}
	if err := wr.Close(); err != nil {
		return "", errors.Wrapf(err, "could not upload '%s'", filename)
	}

	return fmt.Sprintf("gs://%s/%s", b.bucket, filename), nil
}
