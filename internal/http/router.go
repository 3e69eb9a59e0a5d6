package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pribylovaa/go-tour-aggregator/internal/http/handlers"
	"github.com/pribylovaa/go-tour-aggregator/internal/http/middleware"
	"github.com/pribylovaa/go-tour-aggregator/internal/service"
)

// Options — параметры сборки HTTP-роутера.
type Options struct {
	Logger   *slog.Logger
	Timeout  time.Duration
	BasePath string // например, "/api"; если пустой — роуты регистрируются на корне.
}

// NewRouter собирает http.Handler с chi и подключёнными middleware/роутами.
func NewRouter(svc *service.Service, opts Options) http.Handler {
	root := chi.NewRouter()

	// Middleware (внешний -> внутренний).
	root.Use(
		middleware.Recover(),            // безопасно ловим паники
		middleware.RequestID(),          // формируем/прокидываем X-Request-Id (до логирования!)
		middleware.Logging(opts.Logger), // кладём request-scoped логгер в контекст и логируем
	)
	if opts.Timeout > 0 {
		root.Use(middleware.Timeout(opts.Timeout)) // общий дедлайн запроса
	}

	// Зависимости хендлеров.
	h := handlers.New(svc)

	// Регистрация маршрутов.
	if opts.BasePath != "" {
		sub := chi.NewRouter()
		registerRoutes(sub, h)
		root.Mount(opts.BasePath, sub)
		return root
	}

	registerRoutes(root, h)
	return root
}

// registerRoutes — единая точка регистрации всех REST-эндпойнтов.
func registerRoutes(r chi.Router, h *handlers.Handlers) {
	// справочники и списки
	r.Get("/areas", h.ListAreas)
	r.Get("/tours", h.ListTours)
	r.Get("/search", h.SearchTours)

	// карточка записи
	r.Get("/tours/{id}", h.GetTour)
	r.Get("/tours/{id}/intro", h.GetTourIntro)
	r.Get("/tours/{id}/images", h.GetTourImages)
	r.Get("/tours/{id}/pet", h.GetPetInfo)

	// статистика
	r.Get("/stats/regions", h.RegionStats)
	r.Get("/stats/types", h.TypeStats)
	r.Get("/stats/summary", h.StatsSummary)

	// закладки
	r.Post("/bookmarks", h.CreateBookmark)
	r.Delete("/bookmarks/{content_id}", h.DeleteBookmark)
	r.Get("/bookmarks", h.ListBookmarks)
}
