package tourapi

import (
	"os"
	"strings"
)

// CredentialSource выдаёт сервисный ключ TourAPI.
// Ключ запрашивается на каждый вызов клиента (не кэшируется при старте):
// ненастроенное окружение единообразно валит каждый запрос с
// KindAPIKeyMissing вместо падения при инициализации.
type CredentialSource interface {
	ServiceKey() (string, error)
}

// EnvCredentials читает ключ из переменных окружения:
// сначала Primary, затем Fallback.
type EnvCredentials struct {
	Primary  string
	Fallback string
}

// ServiceKey возвращает ключ либо *Error с KindAPIKeyMissing.
func (c EnvCredentials) ServiceKey() (string, error) {
	if key := strings.TrimSpace(os.Getenv(c.Primary)); key != "" {
		return key, nil
	}
	if c.Fallback != "" {
		if key := strings.TrimSpace(os.Getenv(c.Fallback)); key != "" {
			return key, nil
		}
	}
	return "", newError(KindAPIKeyMissing, "service key is not configured", nil)
}

// StaticCredentials — фиксированный ключ; используется в тестах
// и при передаче ключа напрямую через конфиг.
type StaticCredentials string

func (c StaticCredentials) ServiceKey() (string, error) {
	if strings.TrimSpace(string(c)) == "" {
		return "", newError(KindAPIKeyMissing, "service key is not configured", nil)
	}
	return string(c), nil
}
