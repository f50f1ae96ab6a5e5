package handler

import (
	"net/http"

	"github.com/yusufkecer/obesity-advisor/internal/domain"
	"github.com/yusufkecer/obesity-advisor/internal/service"
)

type MetricHandler struct {
	metrics *service.MetricService
}

func NewMetricHandler(metrics *service.MetricService) *MetricHandler {
	return &MetricHandler{metrics: metrics}
}

func (h *MetricHandler) Create(w http.ResponseWriter, r *http.Request) {
	accountID, userID, ok := accountAndUser(w, r)
	if !ok {
		return
	}

	var req domain.MetricRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	metric, err := h.metrics.Record(accountID, userID, req)
	if err != nil {
		writeServiceError(w, err, "failed to create metric")
		return
	}
	writeJSON(w, http.StatusCreated, metric)
}

func (h *MetricHandler) GetByUserID(w http.ResponseWriter, r *http.Request) {
	accountID, userID, ok := accountAndUser(w, r)
	if !ok {
		return
	}

	metrics, err := h.metrics.List(accountID, userID)
	if err != nil {
		writeServiceError(w, err, "failed to list metrics")
		return
	}
	writeJSON(w, http.StatusOK, metrics)
}
