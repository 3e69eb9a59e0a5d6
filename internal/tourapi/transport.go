package tourapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/pribylovaa/go-tour-aggregator/pkg/log"
)

const (
	// attemptTimeout — таймаут одной попытки.
	attemptTimeout = 30 * time.Second
	// maxResponseBody — ограничение на чтение тела ответа.
	maxResponseBody = 4 << 20
)

// retryDelays — фиксированное расписание пауз между попытками.
// Всего попыток len(retryDelays)+1. Без джиттера: расписание — часть
// контракта и проверяется тестами.
var retryDelays = []time.Duration{time.Second, 2 * time.Second, 4 * time.Second}

// Doer — минимальный контракт HTTP-клиента (реализуется *http.Client).
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Transport выполняет GET-запрос с пер-попыточным таймаутом и ретраями.
//
// Ретраю подлежат таймауты, сетевые ошибки и не-2xx статусы.
// Разделяемого изменяемого состояния нет: каждый вызов независим
// и безопасен при конкурентном использовании.
type Transport struct {
	client  Doer
	timeout time.Duration
	delays  []time.Duration

	// sleep подменяется в тестах, чтобы наблюдать расписание пауз
	// без реального ожидания.
	sleep func(ctx context.Context, d time.Duration) error
}

// NewTransport создаёт транспорт поверх переданного клиента.
// client == nil — используется http.Client без собственного таймаута
// (таймаут навешивается на каждую попытку через контекст).
func NewTransport(client Doer) *Transport {
	if client == nil {
		client = &http.Client{}
	}
	return &Transport{
		client:  client,
		timeout: attemptTimeout,
		delays:  retryDelays,
		sleep:   sleepCtx,
	}
}

// Get выполняет запрос с ретраями и возвращает тело 2xx-ответа.
//
// Ошибки:
//   - KindTimeout — последняя попытка прервана по таймауту;
//   - KindNetwork — последняя попытка упала на сетевом уровне;
//   - KindHTTP — последняя попытка вернула не-2xx (несёт статус);
//   - отмена родительского контекста прекращает ретраи и возвращает
//     ctx.Err() как есть.
func (t *Transport) Get(ctx context.Context, rawURL string) ([]byte, error) {
	const op = "tourapi.transport.Get"

	lg := log.From(ctx)

	var lastErr error
	attempts := len(t.delays) + 1

	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			if err := t.sleep(ctx, t.delays[attempt-1]); err != nil {
				return nil, err
			}
		}

		body, err := t.attempt(ctx, rawURL)
		if err == nil {
			return body, nil
		}

		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		lastErr = err

		lg.Warn("tourapi_retry",
			slog.String("op", op),
			slog.Int("attempt", attempt+1),
			slog.Int("max_attempts", attempts),
			slog.String("err", err.Error()),
		)
	}

	return nil, lastErr
}

// attempt — одна попытка с собственным таймаутом.
func (t *Transport) attempt(ctx context.Context, rawURL string) ([]byte, error) {
	actx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(actx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, newError(KindNetwork, "build request", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, classify(actx, ctx, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode > 299 {
		// Дочитываем тело, чтобы соединение вернулось в пул.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 32<<10))
		return nil, &Error{
			Kind:       KindHTTP,
			Message:    fmt.Sprintf("unexpected status %d", resp.StatusCode),
			HTTPStatus: resp.StatusCode,
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return nil, classify(actx, ctx, err)
	}

	return body, nil
}

// classify разделяет таймаут попытки и сетевую ошибку.
// Дедлайн попытки при живом родительском контексте — KindTimeout,
// всё остальное — KindNetwork.
func classify(attemptCtx, parentCtx context.Context, err error) *Error {
	if errors.Is(attemptCtx.Err(), context.DeadlineExceeded) && parentCtx.Err() == nil {
		return newError(KindTimeout, "attempt timed out", err)
	}
	return newError(KindNetwork, "request failed", err)
}

// sleepCtx — ожидание с уважением контекста.
func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
