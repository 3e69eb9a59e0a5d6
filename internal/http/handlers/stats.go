package handlers

import (
	"net/http"

	apierrors "github.com/pribylovaa/go-tour-aggregator/internal/errors"
)

// RegionStats — GET /stats/regions: количество записей по регионам.
func (h *Handlers) RegionStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Service.RegionStats(r.Context())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

// TypeStats — GET /stats/types: распределение записей по типам контента.
func (h *Handlers) TypeStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Service.TypeStats(r.Context())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

// StatsSummary — GET /stats/summary: сводка с топ-списками.
func (h *Handlers) StatsSummary(w http.ResponseWriter, r *http.Request) {
	sum, err := h.Service.StatsSummary(r.Context())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, sum)
}
