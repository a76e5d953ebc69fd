package usecase

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/google/uuid"

	"imagevault/internal/domain/entity"
	"imagevault/internal/domain/repository"
	"imagevault/internal/domain/service"
	"imagevault/pkg/errors"
)

// createdAtLayout is the record timestamp format. It is second precision
// and sorts lexicographically in chronological order.
const createdAtLayout = "2006-01-02T15:04:05Z"

const (
	defaultContentType = "application/octet-stream"
	downloadURLExpiry  = 600 * time.Second
)

type ImageUseCase struct {
	imageRepo   repository.ImageRepository
	blobStorage service.BlobStorage
}

func NewImageUseCase(imageRepo repository.ImageRepository, blobStorage service.BlobStorage) *ImageUseCase {
	return &ImageUseCase{
		imageRepo:   imageRepo,
		blobStorage: blobStorage,
	}
}

type UploadInput struct {
	Filename    string
	ContentType string
	ImageBase64 string
	UserID      string
	Tags        []string
	Metadata    map[string]string
}

type UploadResult struct {
	ImageID    string `json:"image_id"`
	CreatedAt  string `json:"created_at"`
	StorageKey string `json:"storage_key"`
}

type ViewResult struct {
	ImageID          string `json:"image_id"`
	DownloadURL      string `json:"download_url"`
	ExpiresInSeconds int    `json:"expires_in_seconds"`
}

type DeleteResult struct {
	Deleted bool   `json:"deleted"`
	ImageID string `json:"image_id"`
}

// Upload decodes the payload, writes the blob, then writes the metadata
// record. The record is only written after the blob write succeeds; a
// record failure after that leaves an orphan blob, which is this layer's
// accepted partial-failure boundary.
func (uc *ImageUseCase) Upload(ctx context.Context, input UploadInput) (*UploadResult, error) {
	data, err := base64.StdEncoding.DecodeString(input.ImageBase64)
	if err != nil {
		return nil, errors.BadRequest("Invalid base64 image payload", err)
	}

	contentType := input.ContentType
	if contentType == "" {
		contentType = defaultContentType
	}
	tags := input.Tags
	if tags == nil {
		tags = []string{}
	}
	metadata := input.Metadata
	if metadata == nil {
		metadata = map[string]string{}
	}

	imageID := uuid.New().String()
	createdAt := time.Now().UTC().Format(createdAtLayout)
	storageKey := fmt.Sprintf("%s/%s/%s", input.UserID, imageID, input.Filename)

	if err := uc.blobStorage.PutBytes(ctx, storageKey, data, contentType); err != nil {
		return nil, err
	}

	image := &entity.Image{
		ID:          imageID,
		UserID:      input.UserID,
		CreatedAt:   createdAt,
		Filename:    input.Filename,
		ContentType: contentType,
		StorageKey:  storageKey,
		Tags:        tags,
		Metadata:    metadata,
	}
	if err := uc.imageRepo.Put(ctx, image); err != nil {
		return nil, err
	}

	return &UploadResult{
		ImageID:    imageID,
		CreatedAt:  createdAt,
		StorageKey: storageKey,
	}, nil
}

func (uc *ImageUseCase) List(ctx context.Context, userID, tag string, limit int) ([]*entity.Image, error) {
	return uc.imageRepo.List(ctx, userID, tag, limit)
}

// View resolves the record and returns a time-limited download URL. It
// does not verify the blob still exists; a record whose blob was removed
// out-of-band yields a URL that fails when used.
func (uc *ImageUseCase) View(ctx context.Context, imageID string) (*ViewResult, error) {
	image, err := uc.imageRepo.GetByID(ctx, imageID)
	if err != nil {
		return nil, err
	}

	url, err := uc.blobStorage.PresignGet(ctx, image.StorageKey, downloadURLExpiry)
	if err != nil {
		return nil, err
	}

	return &ViewResult{
		ImageID:          imageID,
		DownloadURL:      url,
		ExpiresInSeconds: int(downloadURLExpiry.Seconds()),
	}, nil
}

// Delete removes the blob first, then the record. A blob-delete failure
// leaves the record intact; there is no rollback or retry at this layer.
func (uc *ImageUseCase) Delete(ctx context.Context, imageID string) (*DeleteResult, error) {
	image, err := uc.imageRepo.GetByID(ctx, imageID)
	if err != nil {
		return nil, err
	}

	if err := uc.blobStorage.Delete(ctx, image.StorageKey); err != nil {
		return nil, err
	}
	if err := uc.imageRepo.Delete(ctx, imageID); err != nil {
		return nil, err
	}

	return &DeleteResult{
		Deleted: true,
		ImageID: imageID,
	}, nil
}
