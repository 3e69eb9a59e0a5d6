// errors стандартизирует ответы об ошибках HTTP-слоя tour-сервиса.
// На вход он принимает ошибку (обычно из сервисного слоя: сентинелы
// service.* либо *tourapi.Error от клиента апстрима), а на выход даёт:
//   - корректный HTTP-статус;
//   - краткое безопасное message без утечки деталей.
//
// Источник истинности по маппингу: таксономия ошибок tourapi (Kind)
// и сентинелы сервисного слоя.
package errors

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/pribylovaa/go-tour-aggregator/internal/service"
	"github.com/pribylovaa/go-tour-aggregator/internal/tourapi"
)

// APIError — единый формат для фронта.
// Code — короткий стабильный код для машиночитаемой обработки на FE.
// Message — безопасное человекочитаемое описание.
// RequestID — прокидывается из X-Request-Id, если есть (для трассировки).
type APIError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// ErrorResponse — корневой объект в ответе.
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// ToHTTP конвертирует входную ошибку в HTTP-статус и унифицированный
// ответ для фронта.
//
// Поведение:
//   - err == nil - это программная ошибка вызова: возвращаем 500/internal,
//     чтобы не послать "200 OK" с телом ошибки и не маскировать баг;
//   - сентинелы сервисного слоя маппятся первыми (ErrInvalidArgument -> 400,
//     ErrNotFound -> 404, ErrAlreadyExists -> 409);
//   - далее — Kind из tourapi через baseFromKind();
//   - прочее -> 500/internal (без утечки деталей).
func ToHTTP(err error) (int, ErrorResponse) {
	if err == nil {
		return http.StatusInternalServerError, ErrorResponse{
			Error: APIError{
				Code:    "internal",
				Message: "internal error",
			},
		}
	}

	switch {
	case stderrors.Is(err, service.ErrInvalidArgument):
		return http.StatusBadRequest, response("invalid_argument", "invalid argument")
	case stderrors.Is(err, service.ErrNotFound), stderrors.Is(err, tourapi.ErrNoResults):
		return http.StatusNotFound, response("not_found", "requested item not found")
	case stderrors.Is(err, service.ErrAlreadyExists):
		return http.StatusConflict, response("already_exists", "already exists")
	}

	if kind := tourapi.KindOf(err); kind != 0 {
		httpStatus, code, msg := baseFromKind(kind)
		return httpStatus, response(code, msg)
	}

	return http.StatusInternalServerError, response("internal", "internal error")
}

// WriteError — хелпер для HTTP-хендлеров.
// Пишет корректный статус/тело, добавляет request_id из заголовка, если он есть.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status, resp := ToHTTP(err)

	// Прокидываем request_id для фронта, чтобы он мог репортить баги с привязкой.
	if rid := r.Header.Get("X-Request-Id"); rid != "" {
		resp.Error.RequestID = rid
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

func response(code, msg string) ErrorResponse {
	return ErrorResponse{Error: APIError{Code: code, Message: msg}}
}

// baseFromKind — базовый маппинг tourapi.Kind -> HTTP/FE-код/сообщение.
// Таблица учитывает реальные виды ошибок клиента апстрима:
//   - KindValidation (битые входные до I/O) -> 400
//   - KindTimeout (исчерпаны попытки по таймауту) -> 504
//   - KindNetwork (сетевой сбой после ретраев) -> 503
//   - KindHTTP (не-2xx статус апстрима) -> 502
//   - KindAPI (ошибка в конверте ответа) -> 502
//   - KindAPIKeyInvalid (ключ отвергнут апстримом) -> 502
//   - KindAPIKeyMissing (сервис не сконфигурирован) -> 500
//   - прочее -> 500/internal
func baseFromKind(k tourapi.Kind) (int, string, string) {
	switch k {
	case tourapi.KindValidation:
		return http.StatusBadRequest, "invalid_argument", "invalid argument"
	case tourapi.KindTimeout:
		return http.StatusGatewayTimeout, "upstream_timeout", "upstream timed out"
	case tourapi.KindNetwork:
		return http.StatusServiceUnavailable, "upstream_unavailable", "upstream unavailable"
	case tourapi.KindHTTP:
		return http.StatusBadGateway, "upstream_error", "upstream returned an error"
	case tourapi.KindAPI:
		return http.StatusBadGateway, "upstream_error", "upstream returned an error"
	case tourapi.KindAPIKeyInvalid:
		return http.StatusBadGateway, "upstream_auth", "upstream rejected service credentials"
	case tourapi.KindAPIKeyMissing:
		return http.StatusInternalServerError, "not_configured", "service is not configured"
	default:
		return http.StatusInternalServerError, "internal", "internal error"
	}
}
