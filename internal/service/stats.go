package service

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/pribylovaa/go-tour-aggregator/internal/models"
	"github.com/pribylovaa/go-tour-aggregator/internal/tourapi"
	"github.com/pribylovaa/go-tour-aggregator/pkg/log"
)

// statsAreaPageSize — размер страницы для справочника регионов:
// регионов первого уровня порядка двух десятков, одной страницы хватает.
const statsAreaPageSize = 100

// topStatsCount — размер топ-списков в сводке.
const topStatsCount = 3

// RegionStats возвращает количество записей по каждому региону.
//
// Схема: один запрос справочника регионов, затем по одному
// ListByArea(pageSize=1) на регион параллельно — из ответа используется
// только totalCount. Падение отдельного региона логируется, регион
// опускается из результата; операция целиком падает только если не
// удалось получить сам справочник.
func (s *Service) RegionStats(ctx context.Context) ([]models.RegionStat, error) {
	const op = "service.stats.RegionStats"

	lg := log.From(ctx)

	areas, err := s.api.AreaCodes(ctx, statsAreaPageSize, 1)
	if err != nil {
		lg.Error("region_stats_areas_error",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	// Фан-аут в заранее выделенные слоты: одна горутина — один слот,
	// падение соседа никого не отменяет.
	results := make([]*models.RegionStat, len(areas))

	var wg sync.WaitGroup
	for i, area := range areas {
		wg.Add(1)
		go func(i int, area models.AreaCode) {
			defer wg.Done()

			res, err := s.api.ListByArea(ctx, tourapi.ListParams{
				AreaCode: area.Code,
				PageSize: 1,
			})
			if err != nil {
				lg.Warn("region_stats_region_skipped",
					slog.String("op", op),
					slog.String("area_code", area.Code),
					slog.String("err", err.Error()),
				)
				return
			}

			results[i] = &models.RegionStat{
				AreaCode: area.Code,
				Name:     area.Name,
				Count:    res.TotalCount,
			}
		}(i, area)
	}
	wg.Wait()

	stats := make([]models.RegionStat, 0, len(results))
	for _, r := range results {
		if r != nil {
			stats = append(stats, *r)
		}
	}

	lg.Info("region_stats_ok",
		slog.String("op", op),
		slog.Int("regions", len(stats)),
		slog.Int("skipped", len(areas)-len(stats)),
	)

	return stats, nil
}

// TypeStats возвращает количество записей по каждому из 8 фиксированных
// типов контента и долю каждого типа в сумме.
//
// Доли считаются по успешно полученному подмножеству; при нулевой сумме
// остаются 0.00 (без деления на ноль). Округление до 2 знаков — по
// каждому типу независимо, сумма долей не обязана давать ровно 100.00.
func (s *Service) TypeStats(ctx context.Context) ([]models.TypeStat, error) {
	const op = "service.stats.TypeStats"

	lg := log.From(ctx)

	results := make([]*models.TypeStat, len(models.ContentTypes))

	var wg sync.WaitGroup
	for i, ct := range models.ContentTypes {
		wg.Add(1)
		go func(i int, id, name string) {
			defer wg.Done()

			res, err := s.api.ListByArea(ctx, tourapi.ListParams{
				ContentTypeID: id,
				PageSize:      1,
			})
			if err != nil {
				lg.Warn("type_stats_type_skipped",
					slog.String("op", op),
					slog.String("content_type_id", id),
					slog.String("err", err.Error()),
				)
				return
			}

			results[i] = &models.TypeStat{
				ContentTypeID: id,
				Name:          name,
				Count:         res.TotalCount,
			}
		}(i, ct.ID, ct.Name)
	}
	wg.Wait()

	stats := make([]models.TypeStat, 0, len(results))
	total := 0
	for _, r := range results {
		if r != nil {
			stats = append(stats, *r)
			total += r.Count
		}
	}

	if total > 0 {
		for i := range stats {
			stats[i].Percentage = round2(float64(stats[i].Count) / float64(total) * 100)
		}
	}

	lg.Info("type_stats_ok",
		slog.String("op", op),
		slog.Int("types", len(stats)),
		slog.Int("total", total),
	)

	return stats, nil
}

// StatsSummary возвращает сводку: общий счётчик, топ-3 регионов и
// топ-3 типов контента.
//
// Особенности:
//   - региональная и типовая агрегации идут конкурентно и независимо;
//   - TotalCount — сумма счётчиков по типам; региональная сумма может
//     с ней расходиться при несогласованных выборках апстрима,
//     расхождение не сверяется;
//   - LastUpdated — время самой агрегации (UTC).
func (s *Service) StatsSummary(ctx context.Context) (*models.StatsSummary, error) {
	const op = "service.stats.StatsSummary"

	var (
		wg        sync.WaitGroup
		regions   []models.RegionStat
		types     []models.TypeStat
		regionErr error
		typeErr   error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		regions, regionErr = s.RegionStats(ctx)
	}()
	go func() {
		defer wg.Done()
		types, typeErr = s.TypeStats(ctx)
	}()
	wg.Wait()

	if regionErr != nil {
		return nil, fmt.Errorf("%s: %w", op, regionErr)
	}
	if typeErr != nil {
		return nil, fmt.Errorf("%s: %w", op, typeErr)
	}

	total := 0
	for _, t := range types {
		total += t.Count
	}

	topRegions := append([]models.RegionStat(nil), regions...)
	sort.SliceStable(topRegions, func(i, j int) bool {
		return topRegions[i].Count > topRegions[j].Count
	})
	if len(topRegions) > topStatsCount {
		topRegions = topRegions[:topStatsCount]
	}

	topTypes := append([]models.TypeStat(nil), types...)
	sort.SliceStable(topTypes, func(i, j int) bool {
		return topTypes[i].Count > topTypes[j].Count
	})
	if len(topTypes) > topStatsCount {
		topTypes = topTypes[:topStatsCount]
	}

	return &models.StatsSummary{
		TotalCount:  total,
		TopRegions:  topRegions,
		TopTypes:    topTypes,
		LastUpdated: time.Now().UTC(),
	}, nil
}

// round2 — округление до 2 знаков после запятой.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
