package tourapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// resultCodeOK — сентинел успешного ответа в заголовке конверта.
const resultCodeOK = "0000"

// keyErrorCodes — коды конверта, означающие проблему с сервисным ключом
// (не зарегистрирован, просрочен, запрос с незарегистрированного IP,
// доступ запрещён). Маппятся в KindAPIKeyInvalid, чтобы вызывающий код
// мог отличить «почини ключ» от временного сбоя.
var keyErrorCodes = map[string]struct{}{
	"20": {},
	"30": {},
	"31": {},
	"32": {},
}

// envelope — фиксированная обёртка каждого ответа TourAPI.
type envelope struct {
	Response struct {
		Header envelopeHeader `json:"header"`
		Body   envelopeBody   `json:"body"`
	} `json:"response"`
}

type envelopeHeader struct {
	ResultCode string `json:"resultCode"`
	ResultMsg  string `json:"resultMsg"`
}

// envelopeBody — тело конверта. Items оставляем сырыми: поле бывает
// пустой строкой (нет результатов), а item внутри — объектом либо
// массивом в зависимости от кардинальности.
type envelopeBody struct {
	Items      json.RawMessage `json:"items"`
	TotalCount int             `json:"totalCount"`
	NumOfRows  int             `json:"numOfRows"`
	PageNo     int             `json:"pageNo"`
}

// page — распакованная страница результата.
type page[T any] struct {
	Items      []T
	TotalCount int
	NumOfRows  int
	PageNo     int
}

// parsePage валидирует конверт и нормализует items к слайсу.
//
// Поведение:
//   - resultCode != "0000" — *Error с KindAPI (или KindAPIKeyInvalid для
//     известных ключевых кодов), несёт resultCode/resultMsg;
//   - отсутствующее/пустое body.items — валидный случай «нет результатов»,
//     возвращается пустая страница, а не ошибка;
//   - одиночный item и массив item нормализуются одинаково.
func parsePage[T any](data []byte) (*page[T], error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		// При проблемах с ключом апстрим отвечает вне штатного конверта
		// (XML-страница OpenAPI_ServiceResponse).
		if bytes.Contains(data, []byte("SERVICE_KEY_IS_NOT_REGISTERED")) ||
			bytes.Contains(data, []byte("SERVICE KEY IS NOT REGISTERED")) {
			return nil, newError(KindAPIKeyInvalid, "service key rejected by upstream", err)
		}
		return nil, newError(KindAPI, "malformed response envelope", err)
	}

	if err := checkHeader(env.Response.Header); err != nil {
		return nil, err
	}

	items, err := decodeItems[T](env.Response.Body.Items)
	if err != nil {
		return nil, err
	}

	return &page[T]{
		Items:      items,
		TotalCount: env.Response.Body.TotalCount,
		NumOfRows:  env.Response.Body.NumOfRows,
		PageNo:     env.Response.Body.PageNo,
	}, nil
}

// checkHeader — валидация заголовка конверта.
func checkHeader(h envelopeHeader) error {
	if h.ResultCode == resultCodeOK {
		return nil
	}

	kind := KindAPI
	if _, ok := keyErrorCodes[h.ResultCode]; ok {
		kind = KindAPIKeyInvalid
	} else if strings.Contains(strings.ToUpper(h.ResultMsg), "SERVICE_KEY") ||
		strings.Contains(strings.ToUpper(h.ResultMsg), "SERVICE KEY") {
		kind = KindAPIKeyInvalid
	}

	return &Error{
		Kind:       kind,
		Message:    fmt.Sprintf("upstream result %s: %s", h.ResultCode, h.ResultMsg),
		ResultCode: h.ResultCode,
		ResultMsg:  h.ResultMsg,
	}
}

// decodeItems нормализует body.items к []T.
// Принимает: отсутствующее поле, "" (так апстрим кодирует пустую выдачу),
// {"item": {...}} и {"item": [...]}.
func decodeItems[T any](raw json.RawMessage) ([]T, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte(`""`)) || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}

	var wrap struct {
		Item json.RawMessage `json:"item"`
	}
	if err := json.Unmarshal(trimmed, &wrap); err != nil {
		return nil, newError(KindAPI, "malformed items field", err)
	}

	inner := bytes.TrimSpace(wrap.Item)
	if len(inner) == 0 || bytes.Equal(inner, []byte("null")) {
		return nil, nil
	}

	if inner[0] == '[' {
		var items []T
		if err := json.Unmarshal(inner, &items); err != nil {
			return nil, newError(KindAPI, "malformed item array", err)
		}
		return items, nil
	}

	var one T
	if err := json.Unmarshal(inner, &one); err != nil {
		return nil, newError(KindAPI, "malformed item object", err)
	}
	return []T{one}, nil
}
