// storage описывает контракт хранилища закладок.
// Реализация — тонкая обёртка над управляемым PostgreSQL
// (internal/storage/postgres).
package storage

import (
	"context"
	"errors"

	"github.com/pribylovaa/go-tour-aggregator/internal/models"
)

var (
	// ErrNotFound — закладка отсутствует.
	ErrNotFound = errors.New("bookmark not found")
	// ErrAlreadyExists — у пользователя уже есть закладка на этот контент.
	ErrAlreadyExists = errors.New("bookmark already exists")
)

// Bookmarks — операции над закладками пользователя.
type Bookmarks interface {
	// SaveBookmark сохраняет закладку.
	// Дубликат (user_id, content_id) -> ErrAlreadyExists.
	SaveBookmark(ctx context.Context, b models.Bookmark) error

	// DeleteBookmark удаляет закладку пользователя на контент.
	// Отсутствующая закладка -> ErrNotFound.
	DeleteBookmark(ctx context.Context, userID, contentID string) error

	// ListBookmarks возвращает закладки пользователя,
	// отсортированные по created_at DESC, не более limit штук.
	ListBookmarks(ctx context.Context, userID string, limit int) ([]models.Bookmark, error)
}
