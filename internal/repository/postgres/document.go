package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jmfontan/docchat-server/internal/model"
)

var _ model.DocumentStore = (*DocumentRepository)(nil)

type DocumentRepository struct {
	db DB
}

func NewDocumentRepository(db DB) *DocumentRepository {
	return &DocumentRepository{
		db: db,
	}
}

func (r *DocumentRepository) GetByDisplayID(ctx context.Context, displayID string) (model.Document, error) {
	var doc model.Document
	// Display ids are not guaranteed unique; newest wins, matching listing order.
	query := `SELECT id, display_id, name, s3_key, created_at, updated_at, deleted_at
			  FROM documents WHERE display_id = $1 AND deleted_at IS NULL
			  ORDER BY created_at DESC LIMIT 1`

	err := r.db.QueryRow(ctx, query, displayID).Scan(
		&doc.ID, &doc.DisplayID, &doc.Name, &doc.S3Key,
		&doc.CreatedAt, &doc.UpdatedAt, &doc.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Document{}, model.ErrNotFound
		}
		return model.Document{}, fmt.Errorf("failed to get document by display id: %w", err)
	}

	return doc, nil
}

func (r *DocumentRepository) GetByID(ctx context.Context, id int64) (model.Document, error) {
	var doc model.Document
	query := `SELECT id, display_id, name, s3_key, created_at, updated_at, deleted_at
			  FROM documents WHERE id = $1 AND deleted_at IS NULL`

	err := r.db.QueryRow(ctx, query, id).Scan(
		&doc.ID, &doc.DisplayID, &doc.Name, &doc.S3Key,
		&doc.CreatedAt, &doc.UpdatedAt, &doc.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Document{}, model.ErrNotFound
		}
		return model.Document{}, fmt.Errorf("failed to get document by id: %w", err)
	}

	return doc, nil
}
