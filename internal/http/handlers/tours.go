package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	apierrors "github.com/pribylovaa/go-tour-aggregator/internal/errors"
	"github.com/pribylovaa/go-tour-aggregator/internal/service"
)

// ListAreas — GET /areas: справочник регионов.
func (h *Handlers) ListAreas(w http.ResponseWriter, r *http.Request) {
	areas, err := h.Service.Areas(r.Context())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, areas)
}

// ListTours — GET /tours?area_code=&content_type_id=&page_size=&page_no=.
func (h *Handlers) ListTours(w http.ResponseWriter, r *http.Request) {
	opts, err := listOptionsFromQuery(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	res, err := h.Service.Tours(r.Context(), opts)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, res)
}

// SearchTours — GET /search?keyword=&page_size=&page_no=.
func (h *Handlers) SearchTours(w http.ResponseWriter, r *http.Request) {
	opts, err := listOptionsFromQuery(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	res, err := h.Service.Search(r.Context(), r.URL.Query().Get("keyword"), opts)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, res)
}

// GetTour — GET /tours/{id}: общая карточка.
func (h *Handlers) GetTour(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	detail, err := h.Service.TourByID(r.Context(), id)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, detail)
}

// GetTourIntro — GET /tours/{id}/intro?content_type_id=.
func (h *Handlers) GetTourIntro(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	contentTypeID := r.URL.Query().Get("content_type_id")
	if id == "" || contentTypeID == "" {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	intro, err := h.Service.TourIntro(r.Context(), id, contentTypeID)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, intro)
}

// GetTourImages — GET /tours/{id}/images?page_size=&page_no=.
func (h *Handlers) GetTourImages(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	pageSize, err := queryInt(r, "page_size")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}
	pageNo, err := queryInt(r, "page_no")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	images, err := h.Service.TourImages(r.Context(), id, pageSize, pageNo)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, images)
}

// GetPetInfo — GET /tours/{id}/pet: условия посещения с питомцами.
func (h *Handlers) GetPetInfo(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	info, err := h.Service.PetInfo(r.Context(), id)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, info)
}

// listOptionsFromQuery — разбор общих query-параметров списковых запросов.
func listOptionsFromQuery(r *http.Request) (service.ListOptions, error) {
	var opts service.ListOptions

	opts.AreaCode = r.URL.Query().Get("area_code")
	opts.ContentTypeID = r.URL.Query().Get("content_type_id")

	pageSize, err := queryInt(r, "page_size")
	if err != nil {
		return opts, err
	}
	pageNo, err := queryInt(r, "page_no")
	if err != nil {
		return opts, err
	}

	opts.PageSize = pageSize
	opts.PageNo = pageNo
	return opts, nil
}
