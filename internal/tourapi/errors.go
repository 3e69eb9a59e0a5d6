// tourapi — клиент публичного TourAPI (KorService2): ретрай-транспорт,
// разбор конверта ответа и типизированные операции по эндпойнтам.
package tourapi

import (
	"errors"
	"fmt"
)

// Kind — дискриминант единого семейства ошибок клиента.
// Вызывающий код ветвится по Kind (или по сентинелам ниже),
// а не по иерархии типов.
type Kind int

const (
	// KindAPIKeyMissing — ключ не сконфигурирован; запрос не выполнялся.
	KindAPIKeyMissing Kind = iota + 1
	// KindAPIKeyInvalid — ключ отклонён апстримом (401/403 или код конверта).
	KindAPIKeyInvalid
	// KindNetwork — сетевая ошибка после исчерпания ретраев (DNS, connect и т.п.).
	KindNetwork
	// KindTimeout — попытка не уложилась в таймаут и была прервана.
	KindTimeout
	// KindHTTP — не-2xx ответ после исчерпания ретраев; несёт финальный статус.
	KindHTTP
	// KindAPI — конверт сигнализировал логическую ошибку либо точечная
	// выборка вернула ноль записей.
	KindAPI
	// KindValidation — некорректный обязательный аргумент; запрос не выполнялся.
	KindValidation
)

// String — стабильное машиночитаемое имя вида ошибки.
func (k Kind) String() string {
	switch k {
	case KindAPIKeyMissing:
		return "api_key_missing"
	case KindAPIKeyInvalid:
		return "api_key_invalid"
	case KindNetwork:
		return "network"
	case KindTimeout:
		return "timeout"
	case KindHTTP:
		return "http"
	case KindAPI:
		return "api"
	case KindValidation:
		return "validation"
	default:
		return "unknown"
	}
}

// ErrNoResults — точечная выборка (detail/intro/pet) не нашла записей.
// Оборачивается в *Error с KindAPI; проверяется через errors.Is.
var ErrNoResults = errors.New("no matching records")

// Error — единая ошибка клиента TourAPI.
//
// Особенности:
//   - Kind — всегда заполнен;
//   - HTTPStatus — только для KindHTTP (финальный статус после ретраев);
//   - ResultCode/ResultMsg — только для ошибок уровня конверта;
//   - Err — исходная причина, доступна через errors.Unwrap.
type Error struct {
	Kind       Kind
	Message    string
	HTTPStatus int
	ResultCode string
	ResultMsg  string
	Err        error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("tourapi: %s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("tourapi: %s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// newError — конструктор для внутренних нужд пакета.
func newError(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Message: msg, Err: err}
}

// KindOf возвращает Kind ошибки, если err принадлежит семейству tourapi,
// и 0 в противном случае.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
