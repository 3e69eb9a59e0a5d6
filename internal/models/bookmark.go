package models

import (
	"time"

	"github.com/google/uuid"
)

// Bookmark — сохранённая пользователем запись TourAPI.
// Хранится только идентификатор контента и минимум отображаемых полей;
// полная карточка дотягивается из апстрима при выдаче списка.
type Bookmark struct {
	// ID — уникальный идентификатор закладки (UUIDv4).
	ID uuid.UUID `json:"id"`
	// UserID — внешний идентификатор пользователя (выдаёт auth-прокси).
	UserID string `json:"user_id"`
	// ContentID — идентификатор записи в TourAPI.
	ContentID string `json:"content_id"`
	// ContentTypeID — тип контента на момент сохранения.
	ContentTypeID string `json:"content_type_id"`
	// Title — название на момент сохранения (фолбэк, если апстрим недоступен).
	Title string `json:"title"`
	// CreatedAt — время сохранения (UTC).
	CreatedAt time.Time `json:"created_at"`
}

// BookmarkView — закладка вместе с актуальной карточкой записи.
// Detail == nil, если дотянуть карточку из апстрима не удалось —
// список при этом не считается ошибочным.
type BookmarkView struct {
	Bookmark Bookmark    `json:"bookmark"`
	Detail   *TourDetail `json:"detail,omitempty"`
}
