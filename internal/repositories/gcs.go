package repositories

import (
	"context"
	"errors"
	"fmt"
	"io"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"

	"github.com/trustbooks/go-trust-ledger/internal/config"
	"github.com/trustbooks/go-trust-ledger/internal/models"
)

// CloudStorageRepository stores exported artifacts, such as check run print files, in the
// configured bucket.
type CloudStorageRepository interface {
	// WriteStream copies every chunk of data into the object; the result resolves once the object is closed.
	WriteStream(ctx context.Context, payload *models.CloudStoragePayload, contentType string, data <-chan []byte) models.WriteStreamResult
	GetURL(payload *models.CloudStoragePayload) (url string)
	IsObjectExist(ctx context.Context, payload *models.CloudStoragePayload) (isExist bool, url string)
	Close() error
}

type cloudStorageClient struct {
	config *config.CloudStorageConfig
	client *storage.Client
}

func NewCloudStorageRepository(cfg *config.Config, opts ...option.ClientOption) (CloudStorageRepository, error) {
	if cfg.CloudStorageConfig.BucketName == "" {
		return nil, fmt.Errorf("failed to init cloud storage bucket name not set")
	}

	client, err := storage.NewClient(context.Background(), opts...)
	if err != nil {
		return nil, err
	}

	return &cloudStorageClient{client: client, config: &cfg.CloudStorageConfig}, nil
}

func (cs *cloudStorageClient) object(payload *models.CloudStoragePayload) *storage.ObjectHandle {
	return cs.client.Bucket(cs.config.BucketName).Object(payload.GetFilePath())
}

func (cs *cloudStorageClient) GetURL(payload *models.CloudStoragePayload) (url string) {
	return fmt.Sprintf("%s/%s/%s", cs.config.BaseURL, cs.config.BucketName, payload.GetFilePath())
}

func (cs *cloudStorageClient) newWriter(ctx context.Context, payload *models.CloudStoragePayload, contentType string) io.WriteCloser {
	writer := cs.object(payload).NewWriter(ctx)
	writer.ContentType = contentType
	writer.ContentDisposition = fmt.Sprintf("attachment; filename=%s", payload.Filename)
	return writer
}

func (cs *cloudStorageClient) WriteStream(ctx context.Context, payload *models.CloudStoragePayload, contentType string, data <-chan []byte) models.WriteStreamResult {
	ch := make(chan error, 1)
	r := models.NewWriteStreamResult(ch, cs.GetURL(payload))

	go func() {
		defer close(ch)

		writer := cs.newWriter(ctx, payload, contentType)
		var writeErr error
		for v := range data {
			if writeErr != nil {
				// keep draining so the producer never blocks
				continue
			}
			if _, err := writer.Write(v); err != nil {
				writeErr = err
			}
		}

		closeErr := writer.Close()
		if err := errors.Join(writeErr, closeErr); err != nil {
			ch <- err
		}
	}()

	return r
}

func (cs *cloudStorageClient) Close() error {
	return cs.client.Close()
}

func (cs *cloudStorageClient) IsObjectExist(ctx context.Context, payload *models.CloudStoragePayload) (isExist bool, url string) {
	if _, err := cs.object(payload).Attrs(ctx); err == nil {
		isExist = true
		url = cs.GetURL(payload)
	}

	return
}
