package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/go-tour-aggregator/internal/config"
	"github.com/pribylovaa/go-tour-aggregator/internal/models"
	"github.com/pribylovaa/go-tour-aggregator/internal/service"
	"github.com/pribylovaa/go-tour-aggregator/internal/storage"
	"github.com/pribylovaa/go-tour-aggregator/internal/tourapi"
	"github.com/pribylovaa/go-tour-aggregator/mocks"
)

// Сквозные тесты роутера: мидлвары + хендлеры + маппинг ошибок,
// сервис собирается на мок-зависимостях.

func newTestRouter(t *testing.T, api service.TourAPI, st storage.Bookmarks) http.Handler {
	t.Helper()

	cfg := config.Config{
		Limits: config.LimitsConfig{Default: 12, Max: 100},
	}

	return NewRouter(service.New(api, st, cfg), Options{})
}

type errEnvelope struct {
	Error struct {
		Code      string `json:"code"`
		Message   string `json:"message"`
		RequestID string `json:"request_id,omitempty"`
	} `json:"error"`
}

func decodeErr(t *testing.T, rr *httptest.ResponseRecorder) errEnvelope {
	t.Helper()
	var env errEnvelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	return env
}

func TestRouter_ListAreas_OK(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := mocks.NewMockTourAPI(ctrl)
	api.EXPECT().
		AreaCodes(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]models.AreaCode{{Code: "1", Name: "서울"}}, nil)

	r := newTestRouter(t, api, nil)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/areas", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	require.Contains(t, rr.Body.String(), `"서울"`)
	require.NotEmpty(t, rr.Header().Get("X-Request-Id"))
}

func TestRouter_GetTour_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := mocks.NewMockTourAPI(ctrl)
	api.EXPECT().
		Detail(gomock.Any(), "999").
		Return(nil, &tourapi.Error{Kind: tourapi.KindAPI, Err: tourapi.ErrNoResults})

	r := newTestRouter(t, api, nil)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/tours/999", nil))

	require.Equal(t, http.StatusNotFound, rr.Code)
	require.Equal(t, "not_found", decodeErr(t, rr).Error.Code)
}

func TestRouter_Search_EmptyKeyword_BadRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Запроса к апстриму быть не должно.
	api := mocks.NewMockTourAPI(ctrl)

	r := newTestRouter(t, api, nil)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/search?keyword=", nil))

	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Equal(t, "invalid_argument", decodeErr(t, rr).Error.Code)
}

func TestRouter_ListTours_BadPageSize(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := mocks.NewMockTourAPI(ctrl)

	r := newTestRouter(t, api, nil)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/tours?page_size=abc", nil))

	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestRouter_UpstreamTimeout_MapsTo504(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := mocks.NewMockTourAPI(ctrl)
	api.EXPECT().
		ListByArea(gomock.Any(), gomock.Any()).
		Return(nil, &tourapi.Error{Kind: tourapi.KindTimeout, Message: "attempts exhausted"})

	r := newTestRouter(t, api, nil)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/tours", nil))

	require.Equal(t, http.StatusGatewayTimeout, rr.Code)
	require.Equal(t, "upstream_timeout", decodeErr(t, rr).Error.Code)
}

func TestRouter_CreateBookmark_OKAndMissingUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mocks.NewMockBookmarks(ctrl)
	st.EXPECT().
		SaveBookmark(gomock.Any(), gomock.Any()).
		Return(nil)

	r := newTestRouter(t, nil, st)

	body := `{"content_id":"101","content_type_id":"12","title":"경복궁"}`

	req := httptest.NewRequest(http.MethodPost, "/bookmarks", strings.NewReader(body))
	req.Header.Set("X-User-Id", "user-1")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)
	require.Contains(t, rr.Body.String(), `"content_id":"101"`)

	// Без X-User-Id — 400, сторадж не трогаем.
	req = httptest.NewRequest(http.MethodPost, "/bookmarks", strings.NewReader(body))
	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestRouter_DeleteBookmark_NoContent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mocks.NewMockBookmarks(ctrl)
	st.EXPECT().
		DeleteBookmark(gomock.Any(), "user-1", "101").
		Return(nil)

	r := newTestRouter(t, nil, st)

	req := httptest.NewRequest(http.MethodDelete, "/bookmarks/101", nil)
	req.Header.Set("X-User-Id", "user-1")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusNoContent, rr.Code)
}

func TestRouter_BasePathMount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := mocks.NewMockTourAPI(ctrl)
	api.EXPECT().
		AreaCodes(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]models.AreaCode{}, nil)

	cfg := config.Config{Limits: config.LimitsConfig{Default: 12, Max: 100}}
	r := NewRouter(service.New(api, nil, cfg), Options{BasePath: "/api"})

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/areas", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/areas", nil))
	require.Equal(t, http.StatusNotFound, rr.Code)
}
