package tourapi

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// Unit-тесты разбора конверта (envelope.go):
//  - успешный конверт: массив item и одиночный item нормализуются к слайсу;
//  - resultCode == "0000" и отсутствующие/пустые items -> пустой слайс, не ошибка;
//  - resultCode != "0000" -> KindAPI с resultCode/resultMsg;
//  - известные ключевые коды и "SERVICE KEY" в сообщении -> KindAPIKeyInvalid;
//  - ответ вне конверта (XML про незарегистрированный ключ) -> KindAPIKeyInvalid;
//  - прочий мусор -> KindAPI.

func TestParsePage_ItemArray(t *testing.T) {
	t.Parallel()

	data := []byte(`{
		"response": {
			"header": {"resultCode": "0000", "resultMsg": "OK"},
			"body": {
				"items": {"item": [
					{"code": "1", "name": "서울"},
					{"code": "39", "name": "제주도"}
				]},
				"totalCount": 17, "numOfRows": 2, "pageNo": 1
			}
		}
	}`)

	pg, err := parsePage[areaCodeItem](data)
	require.NoError(t, err)
	require.Len(t, pg.Items, 2)
	require.Equal(t, "서울", pg.Items[0].Name)
	require.Equal(t, 17, pg.TotalCount)
	require.Equal(t, 2, pg.NumOfRows)
	require.Equal(t, 1, pg.PageNo)
}

func TestParsePage_SingleItemObject(t *testing.T) {
	t.Parallel()

	data := []byte(`{
		"response": {
			"header": {"resultCode": "0000", "resultMsg": "OK"},
			"body": {
				"items": {"item": {"code": "1", "name": "서울"}},
				"totalCount": 1, "numOfRows": 1, "pageNo": 1
			}
		}
	}`)

	pg, err := parsePage[areaCodeItem](data)
	require.NoError(t, err)
	require.Len(t, pg.Items, 1)
	require.Equal(t, "1", pg.Items[0].Code)
}

func TestParsePage_EmptyItems(t *testing.T) {
	t.Parallel()

	// Пустую выдачу апстрим кодирует пустой строкой в items.
	cases := map[string][]byte{
		"empty_string": []byte(`{"response":{"header":{"resultCode":"0000","resultMsg":"OK"},"body":{"items":"","totalCount":0,"numOfRows":10,"pageNo":1}}}`),
		"absent_items": []byte(`{"response":{"header":{"resultCode":"0000","resultMsg":"OK"},"body":{"totalCount":0,"numOfRows":10,"pageNo":1}}}`),
		"null_item":    []byte(`{"response":{"header":{"resultCode":"0000","resultMsg":"OK"},"body":{"items":{"item":null},"totalCount":0,"numOfRows":10,"pageNo":1}}}`),
	}

	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			pg, err := parsePage[listItem](data)
			require.NoError(t, err)
			require.Empty(t, pg.Items)
			require.Equal(t, 0, pg.TotalCount)
		})
	}
}

func TestParsePage_ErrorResultCode(t *testing.T) {
	t.Parallel()

	data := []byte(`{"response":{"header":{"resultCode":"99","resultMsg":"UNKNOWN ERROR"},"body":{}}}`)

	pg, err := parsePage[listItem](data)
	require.Nil(t, pg)
	require.Error(t, err)

	var te *Error
	require.ErrorAs(t, err, &te)
	require.Equal(t, KindAPI, te.Kind)
	require.Equal(t, "99", te.ResultCode)
	require.Equal(t, "UNKNOWN ERROR", te.ResultMsg)
}

func TestParsePage_KeyErrorCodes(t *testing.T) {
	t.Parallel()

	for _, code := range []string{"20", "30", "31", "32"} {
		t.Run(code, func(t *testing.T) {
			t.Parallel()

			data := []byte(`{"response":{"header":{"resultCode":"` + code + `","resultMsg":"SERVICE ERROR"},"body":{}}}`)

			_, err := parsePage[listItem](data)

			var te *Error
			require.ErrorAs(t, err, &te)
			require.Equal(t, KindAPIKeyInvalid, te.Kind)
			require.Equal(t, code, te.ResultCode)
		})
	}
}

func TestParsePage_KeyErrorByMessage(t *testing.T) {
	t.Parallel()

	data := []byte(`{"response":{"header":{"resultCode":"33","resultMsg":"SERVICE_KEY_IS_NOT_REGISTERED_ERROR"},"body":{}}}`)

	_, err := parsePage[listItem](data)

	var te *Error
	require.ErrorAs(t, err, &te)
	require.Equal(t, KindAPIKeyInvalid, te.Kind)
}

func TestParsePage_NonJSONKeyError(t *testing.T) {
	t.Parallel()

	data := []byte(`<OpenAPI_ServiceResponse><cmmMsgHeader><returnAuthMsg>SERVICE_KEY_IS_NOT_REGISTERED_ERROR</returnAuthMsg></cmmMsgHeader></OpenAPI_ServiceResponse>`)

	_, err := parsePage[listItem](data)

	var te *Error
	require.ErrorAs(t, err, &te)
	require.Equal(t, KindAPIKeyInvalid, te.Kind)
}

func TestParsePage_Garbage(t *testing.T) {
	t.Parallel()

	_, err := parsePage[listItem]([]byte(`not json at all`))

	var te *Error
	require.ErrorAs(t, err, &te)
	require.Equal(t, KindAPI, te.Kind)
	require.False(t, errors.Is(err, ErrNoResults))
}
