package storage

import (
	"context"
	"errors"
	"net/http"
	"time"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"

	apperrors "imagevault/pkg/errors"
)

type CloudStorageClient struct {
	client     *storage.Client
	bucketName string
}

func NewCloudStorageClient(ctx context.Context, bucketName, credentialsPath string) (*CloudStorageClient, error) {
	var opts []option.ClientOption
	if credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, err
	}

	return &CloudStorageClient{
		client:     client,
		bucketName: bucketName,
	}, nil
}

func (c *CloudStorageClient) PutBytes(ctx context.Context, key string, data []byte, contentType string) error {
	wc := c.client.Bucket(c.bucketName).Object(key).NewWriter(ctx)
	wc.ContentType = contentType

	if _, err := wc.Write(data); err != nil {
		wc.Close()
		return apperrors.Storage("Failed to write blob", err)
	}
	if err := wc.Close(); err != nil {
		return apperrors.Storage("Failed to finalize blob write", err)
	}

	return nil
}

func (c *CloudStorageClient) Delete(ctx context.Context, key string) error {
	err := c.client.Bucket(c.bucketName).Object(key).Delete(ctx)
	if err != nil {
		// Deleting an absent object is not an error.
		if errors.Is(err, storage.ErrObjectNotExist) {
			return nil
		}
		return apperrors.Storage("Failed to delete blob", err)
	}
	return nil
}

func (c *CloudStorageClient) PresignGet(ctx context.Context, key string, expiresIn time.Duration) (string, error) {
	url, err := c.client.Bucket(c.bucketName).SignedURL(key, &storage.SignedURLOptions{
		Method:  http.MethodGet,
		Expires: time.Now().Add(expiresIn),
	})
	if err != nil {
		return "", apperrors.Storage("Failed to generate signed URL", err)
	}
	return url, nil
}

func (c *CloudStorageClient) Close() error {
	return c.client.Close()
}
