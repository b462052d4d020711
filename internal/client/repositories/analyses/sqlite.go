package analyses

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/eyeglaze/eyeglaze-cli/internal/client/models"
	"github.com/eyeglaze/eyeglaze-cli/internal/dbx"
)

// SQLiteRepository implements Repository using a DBTX
// (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Upsert(ctx context.Context, a *models.Analysis) error {
	query := `INSERT INTO analyses (id, username, has_stress, image_url, confidence, created_at)
			VALUES (?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET has_stress = excluded.has_stress,
				image_url = excluded.image_url,
				confidence = excluded.confidence,
				created_at = excluded.created_at
	`
	var confidence sql.NullFloat64
	if a.ConfidenceLevel != nil {
		confidence = sql.NullFloat64{Float64: *a.ConfidenceLevel, Valid: true}
	}
	_, err := r.db.ExecContext(ctx, query,
		a.ID, a.Username, a.HasStress, a.ImageURL, confidence, a.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert analysis: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) ListByUser(ctx context.Context, username string) ([]models.Analysis, error) {
	query := `SELECT id, username, has_stress, image_url, confidence, created_at
			FROM analyses WHERE username = ? ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, username)
	if err != nil {
		return nil, fmt.Errorf("failed to select analyses: %w", err)
	}
	defer rows.Close()

	var result []models.Analysis
	for rows.Next() {
		var item models.Analysis
		var imageURL sql.NullString
		var confidence sql.NullFloat64
		if err := rows.Scan(&item.ID, &item.Username, &item.HasStress, &imageURL, &confidence, &item.CreatedAt); err != nil {
			return nil, err
		}
		item.ImageURL = imageURL.String
		if confidence.Valid {
			c := confidence.Float64
			item.ConfidenceLevel = &c
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLiteRepository) DeleteByUser(ctx context.Context, username string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM analyses WHERE username = ?`, username)
	if err != nil {
		return fmt.Errorf("failed to delete analyses: %w", err)
	}
	return nil
}
