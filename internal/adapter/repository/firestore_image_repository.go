package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"imagevault/internal/domain/entity"
	"imagevault/internal/domain/repository"
	"imagevault/pkg/errors"
	"imagevault/pkg/logger"
)

const imagesCollection = "images"

type firestoreImageRepository struct {
	client *firestore.Client
}

func NewFirestoreImageRepository(client *firestore.Client) repository.ImageRepository {
	return &firestoreImageRepository{
		client: client,
	}
}

func (r *firestoreImageRepository) Put(ctx context.Context, image *entity.Image) error {
	_, err := r.client.Collection(imagesCollection).Doc(image.ID).Set(ctx, image)
	if err != nil {
		return errors.Storage("Failed to write image record", err)
	}
	return nil
}

func (r *firestoreImageRepository) GetByID(ctx context.Context, imageID string) (*entity.Image, error) {
	doc, err := r.client.Collection(imagesCollection).Doc(imageID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Image", err)
		}
		return nil, errors.Storage("Failed to get image record", err)
	}

	var image entity.Image
	if err := doc.DataTo(&image); err != nil {
		return nil, errors.Storage("Failed to parse image record", err)
	}

	return &image, nil
}

func (r *firestoreImageRepository) Delete(ctx context.Context, imageID string) error {
	// Doc deletes succeed on absent documents, which gives us idempotency.
	_, err := r.client.Collection(imagesCollection).Doc(imageID).Delete(ctx)
	if err != nil {
		return errors.Storage("Failed to delete image record", err)
	}
	return nil
}

// List with an owner queries the (userId, createdAt) access path newest
// first. Without an owner it falls back to a capped, unordered collection
// scan; that path has no ordering guarantee and is kept only because this
// service runs at low volume.
func (r *firestoreImageRepository) List(ctx context.Context, userID, tag string, limit int) ([]*entity.Image, error) {
	query := r.client.Collection(imagesCollection).Query

	if userID != "" {
		query = query.Where("userId", "==", userID).
			OrderBy("createdAt", firestore.Desc)
	}
	if tag != "" {
		query = query.Where("tags", "array-contains", tag)
	}
	query = query.Limit(limit)

	iter := query.Documents(ctx)
	defer iter.Stop()

	images := make([]*entity.Image, 0, limit)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Storage("Failed to iterate image records", err)
		}

		var image entity.Image
		if err := doc.DataTo(&image); err != nil {
			logger.Warn("Skipping unparseable image record %s: %v", doc.Ref.ID, err)
			continue
		}
		images = append(images, &image)
	}

	return images, nil
}
