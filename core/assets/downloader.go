package assets

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"garden-assets/core/scene"
	"garden-assets/core/storage"

	"github.com/minio/minio-go/v7"
)

// Decoder turns raw model bytes into an object graph.
type Decoder interface {
	Decode(r io.Reader) (*scene.Node, error)
}

// StorageDownloader downloads models from object storage and decodes them.
type StorageDownloader struct {
	client  storage.Client
	bucket  string
	decoder Decoder
}

// NewStorageDownloader creates a downloader reading from bucket.
// A nil decoder defaults to GLTFDecoder.
func NewStorageDownloader(client storage.Client, bucket string, decoder Decoder) *StorageDownloader {
	if decoder == nil {
		decoder = GLTFDecoder{}
	}
	return &StorageDownloader{
		client:  client,
		bucket:  bucket,
		decoder: decoder,
	}
}

// Download fetches location from the bucket, reporting the fraction of bytes read,
// then decodes it.
func (d *StorageDownloader) Download(ctx context.Context, location string, progress ProgressFunc) (*scene.Node, error) {
	info, err := d.client.StatObject(ctx, d.bucket, location, minio.StatObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", location, err)
	}

	obj, err := d.client.GetObject(ctx, d.bucket, location, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", location, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(&progressReader{r: obj, total: info.Size, progress: progress})
	if err != nil {
		return nil, fmt.Errorf("failed to download %s: %w", location, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	node, err := d.decoder.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", location, err)
	}
	return node, nil
}

// progressReader reports read/total after every read when the size is known.
type progressReader struct {
	r        io.Reader
	total    int64
	read     int64
	progress ProgressFunc
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	if n > 0 && p.total > 0 && p.progress != nil {
		p.read += int64(n)
		p.progress(float64(p.read) / float64(p.total))
	}
	return n, err
}
