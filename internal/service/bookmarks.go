package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pribylovaa/go-tour-aggregator/internal/models"
	"github.com/pribylovaa/go-tour-aggregator/internal/storage"
	"github.com/pribylovaa/go-tour-aggregator/pkg/log"
)

// SaveBookmark сохраняет закладку пользователя.
//
// Ошибки:
// - ErrInvalidArgument — пустой userID либо contentID;
// - ErrAlreadyExists — дубликат (маппинг storage.ErrAlreadyExists);
// - прочие ошибки стораджа — обёрнутые и прокинуты наверх.
func (s *Service) SaveBookmark(ctx context.Context, userID, contentID, contentTypeID, title string) (*models.Bookmark, error) {
	const op = "service.bookmarks.SaveBookmark"

	lg := log.From(ctx)

	userID = strings.TrimSpace(userID)
	contentID = strings.TrimSpace(contentID)
	if userID == "" || contentID == "" {
		lg.Warn("save_bookmark_invalid_args", slog.String("op", op))

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	b := models.Bookmark{
		ID:            uuid.New(),
		UserID:        userID,
		ContentID:     contentID,
		ContentTypeID: strings.TrimSpace(contentTypeID),
		Title:         strings.TrimSpace(title),
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.bookmarks.SaveBookmark(ctx, b); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			lg.Warn("save_bookmark_duplicate",
				slog.String("op", op),
				slog.String("content_id", contentID),
			)

			return nil, fmt.Errorf("%s: %w", op, ErrAlreadyExists)
		}

		lg.Error("save_bookmark_storage_error",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	lg.Info("save_bookmark_ok",
		slog.String("op", op),
		slog.String("content_id", contentID),
	)

	return &b, nil
}

// DeleteBookmark удаляет закладку пользователя на контент.
//
// Ошибки:
// - ErrInvalidArgument — пустой userID либо contentID;
// - ErrNotFound — закладки нет (маппинг storage.ErrNotFound).
func (s *Service) DeleteBookmark(ctx context.Context, userID, contentID string) error {
	const op = "service.bookmarks.DeleteBookmark"

	lg := log.From(ctx)

	userID = strings.TrimSpace(userID)
	contentID = strings.TrimSpace(contentID)
	if userID == "" || contentID == "" {
		return fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if err := s.bookmarks.DeleteBookmark(ctx, userID, contentID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			lg.Warn("delete_bookmark_not_found",
				slog.String("op", op),
				slog.String("content_id", contentID),
			)

			return fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		lg.Error("delete_bookmark_storage_error",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)

		return fmt.Errorf("%s: %w", op, err)
	}

	lg.Info("delete_bookmark_ok",
		slog.String("op", op),
		slog.String("content_id", contentID),
	)

	return nil
}

// Bookmarks возвращает закладки пользователя, дотягивая актуальные
// карточки из апстрима по одной на закладку параллельно.
//
// Недоступность карточки отдельной закладки (запись удалена апстримом,
// транзиентный сбой) логируется, Detail остаётся nil — список целиком
// из-за одной протухшей закладки не падает.
func (s *Service) Bookmarks(ctx context.Context, userID string, limit int) ([]models.BookmarkView, error) {
	const op = "service.bookmarks.Bookmarks"

	lg := log.From(ctx)

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	limit = s.normalizeLimit(limit)

	items, err := s.bookmarks.ListBookmarks(ctx, userID, limit)
	if err != nil {
		lg.Error("bookmarks_storage_error",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	views := make([]models.BookmarkView, len(items))

	var wg sync.WaitGroup
	for i, b := range items {
		views[i].Bookmark = b

		wg.Add(1)
		go func(i int, contentID string) {
			defer wg.Done()

			detail, err := s.api.Detail(ctx, contentID)
			if err != nil {
				lg.Warn("bookmarks_rehydrate_skipped",
					slog.String("op", op),
					slog.String("content_id", contentID),
					slog.String("err", err.Error()),
				)
				return
			}

			views[i].Detail = detail
		}(i, b.ContentID)
	}
	wg.Wait()

	lg.Info("bookmarks_ok",
		slog.String("op", op),
		slog.Int("items", len(views)),
	)

	return views, nil
}
