package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	apierrors "github.com/pribylovaa/go-tour-aggregator/internal/errors"
)

// userIDHeader — идентификатор пользователя; сервис работает за
// внешним шлюзом аутентификации, который и заполняет заголовок.
const userIDHeader = "X-User-Id"

// bookmarkCreateRequest — тело POST /bookmarks.
type bookmarkCreateRequest struct {
	ContentID     string `json:"content_id"`
	ContentTypeID string `json:"content_type_id"`
	Title         string `json:"title"`
}

// CreateBookmark — POST /bookmarks.
func (h *Handlers) CreateBookmark(w http.ResponseWriter, r *http.Request) {
	userID := r.Header.Get(userIDHeader)
	if userID == "" {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	var req bookmarkCreateRequest
	if err := decodeStrict(r, &req); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	b, err := h.Service.SaveBookmark(r.Context(), userID, req.ContentID, req.ContentTypeID, req.Title)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, b)
}

// DeleteBookmark — DELETE /bookmarks/{content_id}.
func (h *Handlers) DeleteBookmark(w http.ResponseWriter, r *http.Request) {
	userID := r.Header.Get(userIDHeader)
	contentID := chi.URLParam(r, "content_id")
	if userID == "" || contentID == "" {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	if err := h.Service.DeleteBookmark(r.Context(), userID, contentID); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListBookmarks — GET /bookmarks?limit=.
func (h *Handlers) ListBookmarks(w http.ResponseWriter, r *http.Request) {
	userID := r.Header.Get(userIDHeader)
	if userID == "" {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	limit, err := queryInt(r, "limit")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	views, err := h.Service.Bookmarks(r.Context(), userID, limit)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, views)
}
