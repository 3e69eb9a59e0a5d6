package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pribylovaa/go-tour-aggregator/internal/models"
	"github.com/pribylovaa/go-tour-aggregator/internal/tourapi"
	"github.com/pribylovaa/go-tour-aggregator/pkg/log"
)

// ListOptions — параметры списковых запросов.
type ListOptions struct {
	AreaCode      string
	ContentTypeID string
	PageSize      int
	PageNo        int
}

func (o ListOptions) toParams() tourapi.ListParams {
	return tourapi.ListParams{
		AreaCode:      o.AreaCode,
		ContentTypeID: o.ContentTypeID,
		PageSize:      o.PageSize,
		PageNo:        o.PageNo,
	}
}

// Areas возвращает справочник регионов.
//
// Ошибки клиента TourAPI прокидываются наверх без переинтерпретации —
// HTTP-слой ветвится по их Kind.
func (s *Service) Areas(ctx context.Context) ([]models.AreaCode, error) {
	const op = "service.queries.Areas"

	lg := log.From(ctx)

	areas, err := s.api.AreaCodes(ctx, 0, 0)
	if err != nil {
		lg.Error("areas_upstream_error",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	lg.Info("areas_ok",
		slog.String("op", op),
		slog.Int("count", len(areas)),
	)

	return areas, nil
}

// Tours возвращает страницу записей с нормализацией размера страницы
// по конфигу (page_size <= 0 -> default; page_size > max -> max).
func (s *Service) Tours(ctx context.Context, opts ListOptions) (*models.TourListResult, error) {
	const op = "service.queries.Tours"

	lg := log.From(ctx)
	lg.Info("tours_request",
		slog.String("op", op),
		slog.String("area_code", opts.AreaCode),
		slog.String("content_type_id", opts.ContentTypeID),
		slog.Int("page_size", opts.PageSize),
		slog.Int("page_no", opts.PageNo),
	)

	opts.PageSize = s.normalizeLimit(opts.PageSize)

	res, err := s.api.ListByArea(ctx, opts.toParams())
	if err != nil {
		lg.Error("tours_upstream_error",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	lg.Info("tours_ok",
		slog.String("op", op),
		slog.Int("items", len(res.Items)),
		slog.Int("total_count", res.TotalCount),
	)

	return res, nil
}

// Search возвращает страницу записей по ключевому слову.
//
// Ошибки:
// - ErrInvalidArgument — пустое (после TrimSpace) ключевое слово;
// - прочие ошибки клиента — прокинуты наверх без переинтерпретации.
func (s *Service) Search(ctx context.Context, keyword string, opts ListOptions) (*models.TourListResult, error) {
	const op = "service.queries.Search"

	lg := log.From(ctx)

	if strings.TrimSpace(keyword) == "" {
		lg.Warn("search_empty_keyword", slog.String("op", op))

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	opts.PageSize = s.normalizeLimit(opts.PageSize)

	res, err := s.api.SearchByKeyword(ctx, keyword, opts.toParams())
	if err != nil {
		lg.Error("search_upstream_error",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	lg.Info("search_ok",
		slog.String("op", op),
		slog.Int("items", len(res.Items)),
		slog.Int("total_count", res.TotalCount),
	)

	return res, nil
}

// TourByID возвращает общую карточку записи.
func (s *Service) TourByID(ctx context.Context, contentID string) (*models.TourDetail, error) {
	const op = "service.queries.TourByID"

	lg := log.From(ctx)
	lg.Info("tour_by_id_request",
		slog.String("op", op),
		slog.String("content_id", contentID),
	)

	detail, err := s.api.Detail(ctx, contentID)
	if err != nil {
		lg.Warn("tour_by_id_error",
			slog.String("op", op),
			slog.String("content_id", contentID),
			slog.String("err", err.Error()),
		)

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return detail, nil
}

// TourIntro возвращает интро-блок записи.
func (s *Service) TourIntro(ctx context.Context, contentID, contentTypeID string) (*models.TourIntro, error) {
	const op = "service.queries.TourIntro"

	intro, err := s.api.Intro(ctx, contentID, contentTypeID)
	if err != nil {
		log.From(ctx).Warn("tour_intro_error",
			slog.String("op", op),
			slog.String("content_id", contentID),
			slog.String("err", err.Error()),
		)

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return intro, nil
}

// TourImages возвращает страницу изображений записи.
func (s *Service) TourImages(ctx context.Context, contentID string, pageSize, pageNo int) (*models.TourImageResult, error) {
	const op = "service.queries.TourImages"

	images, err := s.api.Images(ctx, contentID, s.normalizeLimit(pageSize), pageNo)
	if err != nil {
		log.From(ctx).Warn("tour_images_error",
			slog.String("op", op),
			slog.String("content_id", contentID),
			slog.String("err", err.Error()),
		)

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return images, nil
}

// PetInfo возвращает информацию о посещении записи с питомцами.
func (s *Service) PetInfo(ctx context.Context, contentID string) (*models.PetTourInfo, error) {
	const op = "service.queries.PetInfo"

	info, err := s.api.PetInfo(ctx, contentID)
	if err != nil {
		log.From(ctx).Warn("pet_info_error",
			slog.String("op", op),
			slog.String("content_id", contentID),
			slog.String("err", err.Error()),
		)

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return info, nil
}
