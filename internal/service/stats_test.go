package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/go-tour-aggregator/internal/config"
	"github.com/pribylovaa/go-tour-aggregator/internal/models"
	"github.com/pribylovaa/go-tour-aggregator/internal/tourapi"
	"github.com/pribylovaa/go-tour-aggregator/mocks"
)

// Файл unit-тестов агрегатора статистики (stats.go).
//
// Покрываем ключевую бизнес-логику:
//  - RegionStats:
//      * один вызов справочника + по одному запросу на регион (pageSize=1);
//      * падение отдельного региона — регион опущен, операция не падает;
//      * падение справочника — операция падает целиком;
//  - TypeStats:
//      * доли по успешному подмножеству, округление до 2 знаков;
//      * падение отдельного типа — тип опущен, доли пересчитаны по остальным;
//      * нулевая сумма — доли остаются 0 (нет деления на ноль);
//  - StatsSummary:
//      * топ-списки по убыванию Count, длина min(3, доступно);
//      * TotalCount — сумма по типам;
//      * LastUpdated — время агрегации.

// newSvcForTest — фабрика Service с контролируемым cfg и мок-зависимостями.
func newSvcForTest(t *testing.T, api TourAPI) *Service {
	t.Helper()

	cfg := config.Config{
		Limits: config.LimitsConfig{
			Default: 12,
			Max:     100,
		},
	}

	return New(api, nil, cfg)
}

// seventeenAreas — справочник из 17 регионов, как у апстрима.
func seventeenAreas() []models.AreaCode {
	areas := make([]models.AreaCode, 0, 17)
	for i := 1; i <= 17; i++ {
		areas = append(areas, models.AreaCode{
			Code: fmt.Sprintf("%d", i),
			Name: fmt.Sprintf("region-%d", i),
		})
	}
	return areas
}

func TestRegionStats_AllRegionsCounted(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := mocks.NewMockTourAPI(ctrl)
	api.EXPECT().
		AreaCodes(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(seventeenAreas(), nil)
	api.EXPECT().
		ListByArea(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p tourapi.ListParams) (*models.TourListResult, error) {
			require.Equal(t, 1, p.PageSize, "count queries must request a single row")
			return &models.TourListResult{TotalCount: 150, PageSize: 1, PageNo: 1}, nil
		}).
		Times(17)

	svc := newSvcForTest(t, api)

	stats, err := svc.RegionStats(context.Background())
	require.NoError(t, err)
	require.Len(t, stats, 17)

	for _, st := range stats {
		require.Equal(t, 150, st.Count)
	}
}

func TestRegionStats_PartialFailureOmitsRegion(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	areas := []models.AreaCode{
		{Code: "1", Name: "서울"},
		{Code: "2", Name: "인천"},
		{Code: "39", Name: "제주도"},
	}

	api := mocks.NewMockTourAPI(ctrl)
	api.EXPECT().
		AreaCodes(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(areas, nil)
	api.EXPECT().
		ListByArea(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p tourapi.ListParams) (*models.TourListResult, error) {
			if p.AreaCode == "2" {
				return nil, errors.New("upstream hiccup")
			}
			return &models.TourListResult{TotalCount: 42}, nil
		}).
		Times(3)

	svc := newSvcForTest(t, api)

	stats, err := svc.RegionStats(context.Background())
	require.NoError(t, err, "one bad region must not fail the aggregate")
	require.Len(t, stats, 2)

	for _, st := range stats {
		require.NotEqual(t, "2", st.AreaCode)
		require.Equal(t, 42, st.Count)
	}
}

func TestRegionStats_AreaLookupFailure(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := mocks.NewMockTourAPI(ctrl)
	api.EXPECT().
		AreaCodes(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("upstream down"))

	svc := newSvcForTest(t, api)

	_, err := svc.RegionStats(context.Background())
	require.Error(t, err)
}

func TestTypeStats_Percentages(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Ресторан — 500, остальные 7 типов — по 100. Сумма 1200.
	api := mocks.NewMockTourAPI(ctrl)
	api.EXPECT().
		ListByArea(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p tourapi.ListParams) (*models.TourListResult, error) {
			if p.ContentTypeID == models.ContentTypeRestaurant {
				return &models.TourListResult{TotalCount: 500}, nil
			}
			return &models.TourListResult{TotalCount: 100}, nil
		}).
		Times(len(models.ContentTypes))

	svc := newSvcForTest(t, api)

	stats, err := svc.TypeStats(context.Background())
	require.NoError(t, err)
	require.Len(t, stats, 8)

	for _, st := range stats {
		if st.ContentTypeID == models.ContentTypeRestaurant {
			require.InDelta(t, 41.67, st.Percentage, 0.001, "500/1200*100 rounded to 2 decimals")
			continue
		}
		require.InDelta(t, 8.33, st.Percentage, 0.001, "100/1200*100 rounded to 2 decimals")
	}
}

func TestTypeStats_OneTypeFails(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := mocks.NewMockTourAPI(ctrl)
	api.EXPECT().
		ListByArea(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p tourapi.ListParams) (*models.TourListResult, error) {
			if p.ContentTypeID == models.ContentTypeFestival {
				return nil, errors.New("injected failure")
			}
			return &models.TourListResult{TotalCount: 100}, nil
		}).
		Times(len(models.ContentTypes))

	svc := newSvcForTest(t, api)

	stats, err := svc.TypeStats(context.Background())
	require.NoError(t, err, "one bad type must not fail the aggregate")
	require.Len(t, stats, 7)

	// Доли пересчитаны по успешному подмножеству: 100/700.
	for _, st := range stats {
		require.NotEqual(t, models.ContentTypeFestival, st.ContentTypeID)
		require.InDelta(t, 14.29, st.Percentage, 0.001)
	}
}

func TestTypeStats_ZeroTotal(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := mocks.NewMockTourAPI(ctrl)
	api.EXPECT().
		ListByArea(gomock.Any(), gomock.Any()).
		Return(&models.TourListResult{TotalCount: 0}, nil).
		Times(len(models.ContentTypes))

	svc := newSvcForTest(t, api)

	stats, err := svc.TypeStats(context.Background())
	require.NoError(t, err)
	require.Len(t, stats, 8)

	for _, st := range stats {
		require.Zero(t, st.Percentage, "zero sum must not divide")
	}
}

func TestStatsSummary_TopListsAndTotal(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	areas := []models.AreaCode{
		{Code: "1", Name: "서울"},
		{Code: "2", Name: "인천"},
		{Code: "6", Name: "부산"},
		{Code: "39", Name: "제주도"},
	}

	regionCounts := map[string]int{"1": 400, "2": 50, "6": 300, "39": 200}
	typeCounts := map[string]int{
		models.ContentTypeAttraction:    900,
		models.ContentTypeCulture:       100,
		models.ContentTypeFestival:      200,
		models.ContentTypeCourse:        50,
		models.ContentTypeLeisure:       25,
		models.ContentTypeAccommodation: 300,
		models.ContentTypeShopping:      75,
		models.ContentTypeRestaurant:    350,
	}

	api := mocks.NewMockTourAPI(ctrl)
	api.EXPECT().
		AreaCodes(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(areas, nil)
	api.EXPECT().
		ListByArea(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p tourapi.ListParams) (*models.TourListResult, error) {
			if p.AreaCode != "" {
				return &models.TourListResult{TotalCount: regionCounts[p.AreaCode]}, nil
			}
			return &models.TourListResult{TotalCount: typeCounts[p.ContentTypeID]}, nil
		}).
		Times(len(areas) + len(models.ContentTypes))

	svc := newSvcForTest(t, api)

	before := time.Now().UTC()
	sum, err := svc.StatsSummary(context.Background())
	require.NoError(t, err)

	// TotalCount — сумма по типам (2000), не по регионам (950).
	require.Equal(t, 2000, sum.TotalCount)

	require.Len(t, sum.TopRegions, 3)
	require.Equal(t, []string{"1", "6", "39"}, []string{
		sum.TopRegions[0].AreaCode,
		sum.TopRegions[1].AreaCode,
		sum.TopRegions[2].AreaCode,
	})

	require.Len(t, sum.TopTypes, 3)
	require.GreaterOrEqual(t, sum.TopTypes[0].Count, sum.TopTypes[1].Count)
	require.GreaterOrEqual(t, sum.TopTypes[1].Count, sum.TopTypes[2].Count)
	require.Equal(t, models.ContentTypeAttraction, sum.TopTypes[0].ContentTypeID)

	require.False(t, sum.LastUpdated.Before(before))
	require.False(t, sum.LastUpdated.After(time.Now().UTC()))
}

func TestStatsSummary_FewerThanThreeRegions(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := mocks.NewMockTourAPI(ctrl)
	api.EXPECT().
		AreaCodes(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]models.AreaCode{{Code: "1", Name: "서울"}}, nil)
	api.EXPECT().
		ListByArea(gomock.Any(), gomock.Any()).
		Return(&models.TourListResult{TotalCount: 10}, nil).
		AnyTimes()

	svc := newSvcForTest(t, api)

	sum, err := svc.StatsSummary(context.Background())
	require.NoError(t, err)
	require.Len(t, sum.TopRegions, 1, "top list length is min(3, available)")
	require.Len(t, sum.TopTypes, 3)
}
