// Package archive keeps the raw match files that were ingested, zstd
// compressed, in Azure Blob Storage.
package archive

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/bloberror"
	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"
)

var ErrNotFound = errors.New("archived match not found")

// EncodeAll and DecodeAll may be used concurrently.
var (
	encoder = mustNewEncoder()
	decoder = mustNewDecoder()
)

func mustNewEncoder() *zstd.Encoder {
	enc, err := zstd.NewWriter(
		nil,
		zstd.WithEncoderLevel(zstd.SpeedBetterCompression),
		zstd.WithLowerEncoderMem(true),
	)
	if err != nil {
		panic(err)
	}
	return enc
}

func mustNewDecoder() *zstd.Decoder {
	dec, err := zstd.NewReader(
		nil,
		zstd.WithDecoderLowmem(true),
	)
	if err != nil {
		panic(err)
	}
	return dec
}

func compress(data []byte) []byte {
	return encoder.EncodeAll(data, nil)
}

func decompress(data []byte) ([]byte, error) {
	return decoder.DecodeAll(data, nil)
}

// BlobName is the name a match is archived under.
func BlobName(id uuid.UUID) string {
	return id.String() + ".json.zst"
}

type Archive struct {
	client    *azblob.Client
	container string
}

func New(client *azblob.Client, container string) *Archive {
	return &Archive{
		client:    client,
		container: container,
	}
}

// EnsureContainer creates the archive container if it does not exist yet.
func (a *Archive) EnsureContainer(ctx context.Context) error {
	_, err := a.client.CreateContainer(ctx, a.container, nil)
	if err != nil && !bloberror.HasCode(err, bloberror.ContainerAlreadyExists) {
		return fmt.Errorf("creating container %s: %w", a.container, err)
	}
	return nil
}

func (a *Archive) Put(ctx context.Context, name string, raw []byte) error {
	_, err := a.client.UploadBuffer(ctx, a.container, name, compress(raw), &azblob.UploadBufferOptions{})
	if err != nil {
		return fmt.Errorf("uploading %s: %w", name, err)
	}
	return nil
}

func (a *Archive) Get(ctx context.Context, name string) ([]byte, error) {
	response, err := a.client.DownloadStream(ctx, a.container, name, nil)
	if err != nil {
		if bloberror.HasCode(err, bloberror.BlobNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("downloading %s: %w", name, err)
	}
	defer response.Body.Close()

	compressed, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}

	raw, err := decompress(compressed)
	if err != nil {
		return nil, fmt.Errorf("decompressing %s: %w", name, err)
	}
	return raw, nil
}
