package tourapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// Unit-тесты клиента (client.go):
//  - валидация обязательных аргументов до любого I/O
//    (мок-транспорт подтверждает ноль обращений);
//  - отсутствие ключа -> KindAPIKeyMissing до любого I/O;
//  - инъекция общих параметров в query и пропуск пустых опциональных;
//  - ListByArea: len(Items) <= pageSize, totalCount — из конверта;
//  - Detail: идемпотентность и маппинг пустой выдачи в ErrNoResults;
//  - финальный 403 транспорта -> KindAPIKeyInvalid.

// newTestClient — клиент поверх httptest.Server с быстрыми ретраями.
func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c, err := NewClient(Options{
		HTTPClient:  srv.Client(),
		Credentials: StaticCredentials("test-key"),
		BaseURL:     srv.URL,
		AppName:     "tour-test",
	})
	require.NoError(t, err)

	// В тестах паузы ретраев не нужны.
	c.transport.sleep = func(context.Context, time.Duration) error { return nil }

	return c
}

// silentDoer — Doer, который не должен быть вызван.
type silentDoer struct {
	calls int32
}

func (d *silentDoer) Do(*http.Request) (*http.Response, error) {
	atomic.AddInt32(&d.calls, 1)
	return nil, errors.New("unexpected transport invocation")
}

func newOfflineClient(t *testing.T, creds CredentialSource) (*Client, *silentDoer) {
	t.Helper()

	doer := &silentDoer{}
	c, err := NewClient(Options{
		HTTPClient:  doer,
		Credentials: creds,
		BaseURL:     "http://upstream.test",
	})
	require.NoError(t, err)

	return c, doer
}

const listOK = `{
	"response": {
		"header": {"resultCode": "0000", "resultMsg": "OK"},
		"body": {
			"items": {"item": [
				{"contentid": "101", "contenttypeid": "12", "title": "경복궁", "areacode": "1", "mapx": "126.97", "mapy": "37.57", "modifiedtime": "20240101000000"},
				{"contentid": "102", "contenttypeid": "39", "title": "광장시장", "areacode": "1", "mapx": "126.99", "mapy": "37.57", "modifiedtime": "20240102000000"}
			]},
			"totalCount": 240, "numOfRows": 5, "pageNo": 1
		}
	}
}`

func TestSearchByKeyword_EmptyKeyword_NoNetwork(t *testing.T) {
	t.Parallel()

	c, doer := newOfflineClient(t, StaticCredentials("test-key"))

	for _, keyword := range []string{"", "   ", "\t\n"} {
		_, err := c.SearchByKeyword(context.Background(), keyword, ListParams{})
		require.Error(t, err)

		var te *Error
		require.ErrorAs(t, err, &te)
		require.Equal(t, KindValidation, te.Kind)
	}

	require.EqualValues(t, 0, doer.calls, "validation must short-circuit before I/O")
}

func TestRequiredIDs_Validation_NoNetwork(t *testing.T) {
	t.Parallel()

	c, doer := newOfflineClient(t, StaticCredentials("test-key"))
	ctx := context.Background()

	_, err := c.Detail(ctx, "  ")
	require.Equal(t, KindValidation, KindOf(err))

	_, err = c.Intro(ctx, "", "12")
	require.Equal(t, KindValidation, KindOf(err))

	_, err = c.Intro(ctx, "101", " ")
	require.Equal(t, KindValidation, KindOf(err))

	_, err = c.Images(ctx, "", 10, 1)
	require.Equal(t, KindValidation, KindOf(err))

	_, err = c.PetInfo(ctx, "")
	require.Equal(t, KindValidation, KindOf(err))

	require.EqualValues(t, 0, doer.calls)
}

func TestMissingServiceKey_NoNetwork(t *testing.T) {
	t.Parallel()

	// Переменные окружения с такими именами не заданы.
	creds := EnvCredentials{
		Primary:  "TOUR_TEST_KEY_PRIMARY_UNSET",
		Fallback: "TOUR_TEST_KEY_FALLBACK_UNSET",
	}

	c, doer := newOfflineClient(t, creds)

	_, err := c.ListByArea(context.Background(), ListParams{})
	require.Equal(t, KindAPIKeyMissing, KindOf(err))
	require.EqualValues(t, 0, doer.calls)
}

func TestEnvCredentials_FallbackUsed(t *testing.T) {
	t.Setenv("TOUR_TEST_KEY_FALLBACK", "fallback-key")

	creds := EnvCredentials{
		Primary:  "TOUR_TEST_KEY_PRIMARY_UNSET",
		Fallback: "TOUR_TEST_KEY_FALLBACK",
	}

	key, err := creds.ServiceKey()
	require.NoError(t, err)
	require.Equal(t, "fallback-key", key)
}

func TestListByArea_CommonParamsAndPageSize(t *testing.T) {
	t.Parallel()

	var gotQuery map[string][]string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(listOK))
	})

	res, err := c.ListByArea(context.Background(), ListParams{AreaCode: "1", PageSize: 5})
	require.NoError(t, err)

	require.LessOrEqual(t, len(res.Items), 5)
	require.Equal(t, 240, res.TotalCount)
	require.Equal(t, 5, res.PageSize)
	require.Equal(t, 1, res.PageNo)
	require.Equal(t, "경복궁", res.Items[0].Title)

	// Общие параметры.
	require.Equal(t, []string{"test-key"}, gotQuery["serviceKey"])
	require.Equal(t, []string{"ETC"}, gotQuery["MobileOS"])
	require.Equal(t, []string{"tour-test"}, gotQuery["MobileApp"])
	require.Equal(t, []string{"json"}, gotQuery["_type"])
	require.Equal(t, []string{"5"}, gotQuery["numOfRows"])
	require.Equal(t, []string{"1"}, gotQuery["areaCode"])

	// Пустой опциональный параметр не попадает в query.
	_, ok := gotQuery["contentTypeId"]
	require.False(t, ok)
}

func TestDetail_Idempotent(t *testing.T) {
	t.Parallel()

	const detailOK = `{
		"response": {
			"header": {"resultCode": "0000", "resultMsg": "OK"},
			"body": {
				"items": {"item": {"contentid": "101", "contenttypeid": "12", "title": "경복궁", "overview": "조선의 법궁", "areacode": "1"}},
				"totalCount": 1, "numOfRows": 1, "pageNo": 1
			}
		}
	}`

	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(detailOK))
	})

	first, err := c.Detail(context.Background(), "101")
	require.NoError(t, err)

	second, err := c.Detail(context.Background(), "101")
	require.NoError(t, err)

	require.Equal(t, first, second, "stable upstream must yield structurally identical results")
	require.Equal(t, "경복궁", first.Title)
}

func TestDetail_EmptyResult_NoResults(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"response":{"header":{"resultCode":"0000","resultMsg":"OK"},"body":{"items":"","totalCount":0,"numOfRows":1,"pageNo":1}}}`))
	})

	_, err := c.Detail(context.Background(), "does-not-exist")
	require.Error(t, err)
	require.ErrorIs(t, err, ErrNoResults)
	require.Equal(t, KindAPI, KindOf(err))
}

func TestForbiddenStatus_KeyInvalid(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	_, err := c.AreaCodes(context.Background(), 0, 0)
	require.Error(t, err)
	require.Equal(t, KindAPIKeyInvalid, KindOf(err))
}
