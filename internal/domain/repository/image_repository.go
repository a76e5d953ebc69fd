package repository

import (
	"context"

	"imagevault/internal/domain/entity"
)

type ImageRepository interface {
	// Put inserts or fully overwrites the record keyed by its image ID.
	Put(ctx context.Context, image *entity.Image) error
	// GetByID returns a typed not-found error when no record exists.
	GetByID(ctx context.Context, imageID string) (*entity.Image, error)
	// Delete is idempotent; deleting an absent record is not an error.
	Delete(ctx context.Context, imageID string) error
	// List returns records for one owner (newest first, capped at limit)
	// or, when userID is empty, an unordered capped scan of all records.
	// A non-empty tag restricts results to records whose tag list
	// contains it exactly.
	List(ctx context.Context, userID, tag string, limit int) ([]*entity.Image, error)
}
