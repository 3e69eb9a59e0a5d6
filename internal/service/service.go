// service содержит бизнес-логику tour-сервиса: проксирование операций
// клиента TourAPI с нормализацией лимитов, агрегацию статистики и
// работу с закладками.
package service

import (
	"context"
	"errors"

	"github.com/pribylovaa/go-tour-aggregator/internal/config"
	"github.com/pribylovaa/go-tour-aggregator/internal/models"
	"github.com/pribylovaa/go-tour-aggregator/internal/storage"
	"github.com/pribylovaa/go-tour-aggregator/internal/tourapi"
)

var (
	// ErrNotFound — сущность отсутствует.
	// Транспорт: 404.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists — дубликат закладки.
	// Транспорт: 409.
	ErrAlreadyExists = errors.New("already exists")
	// ErrInvalidArgument — некорректные входные аргументы.
	// Транспорт: 400.
	ErrInvalidArgument = errors.New("invalid argument")
)

// TourAPI — контракт клиента TourAPI, который использует сервис.
// Выделен в интерфейс ради мок-тестов; реализация — *tourapi.Client.
type TourAPI interface {
	AreaCodes(ctx context.Context, pageSize, pageNo int) ([]models.AreaCode, error)
	ListByArea(ctx context.Context, params tourapi.ListParams) (*models.TourListResult, error)
	SearchByKeyword(ctx context.Context, keyword string, params tourapi.ListParams) (*models.TourListResult, error)
	Detail(ctx context.Context, contentID string) (*models.TourDetail, error)
	Intro(ctx context.Context, contentID, contentTypeID string) (*models.TourIntro, error)
	Images(ctx context.Context, contentID string, pageSize, pageNo int) (*models.TourImageResult, error)
	PetInfo(ctx context.Context, contentID string) (*models.PetTourInfo, error)
}

// Проверка соответствия реализации контракту.
var _ TourAPI = (*tourapi.Client)(nil)

// Service — описывает бизнес-логику tour-сервиса.
type Service struct {
	api       TourAPI
	bookmarks storage.Bookmarks
	cfg       config.Config
}

// New создает новый экземпляр Service.
func New(api TourAPI, bookmarks storage.Bookmarks, cfg config.Config) *Service {
	return &Service{
		api:       api,
		bookmarks: bookmarks,
		cfg:       cfg,
	}
}

// normalizeLimit — нормализация размера страницы по конфигу:
// limit <= 0 -> Limits.Default; limit > Limits.Max -> Limits.Max.
func (s *Service) normalizeLimit(limit int) int {
	if limit <= 0 {
		return s.cfg.Limits.Default
	}
	if s.cfg.Limits.Max > 0 && limit > s.cfg.Limits.Max {
		return s.cfg.Limits.Max
	}
	return limit
}
