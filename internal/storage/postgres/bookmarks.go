package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pribylovaa/go-tour-aggregator/internal/models"
	"github.com/pribylovaa/go-tour-aggregator/internal/storage"
)

// uniqueViolation — код ошибки PostgreSQL для нарушения уникальности.
const uniqueViolation = "23505"

// SaveBookmark сохраняет закладку.
// Уникальность обеспечивает индекс (user_id, content_id);
// его нарушение маппится в storage.ErrAlreadyExists.
func (s *Storage) SaveBookmark(ctx context.Context, b models.Bookmark) error {
	const op = "storage.postgres.SaveBookmark"

	_, err := s.db.Exec(ctx, `
	INSERT INTO bookmarks (id, user_id, content_id, content_type_id, title, created_at)
	VALUES ($1, $2, $3, $4, $5, $6)
	`, b.ID, b.UserID, b.ContentID, b.ContentTypeID, b.Title, b.CreatedAt.UTC())

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// DeleteBookmark удаляет закладку пользователя на контент.
func (s *Storage) DeleteBookmark(ctx context.Context, userID, contentID string) error {
	const op = "storage.postgres.DeleteBookmark"

	tag, err := s.db.Exec(ctx, `
	DELETE FROM bookmarks
	WHERE user_id = $1 AND content_id = $2
	`, userID, contentID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// ListBookmarks возвращает закладки пользователя (created_at DESC).
func (s *Storage) ListBookmarks(ctx context.Context, userID string, limit int) ([]models.Bookmark, error) {
	const op = "storage.postgres.ListBookmarks"

	if limit <= 0 {
		// Защита от нуля/отрицательного значения.
		limit = 1
	}

	rows, err := s.db.Query(ctx, `
	SELECT id, user_id, content_id, content_type_id, title, created_at
	FROM bookmarks
	WHERE user_id = $1
	ORDER BY created_at DESC, id DESC
	LIMIT $2
	`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var out []models.Bookmark
	for rows.Next() {
		var b models.Bookmark
		if scanErr := rows.Scan(
			&b.ID,
			&b.UserID,
			&b.ContentID,
			&b.ContentTypeID,
			&b.Title,
			&b.CreatedAt,
		); scanErr != nil {
			return nil, fmt.Errorf("%s: %w", op, scanErr)
		}
		out = append(out, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}
