package handler

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/yusufkecer/obesity-advisor/internal/domain"
	"github.com/yusufkecer/obesity-advisor/internal/scale"
	"github.com/yusufkecer/obesity-advisor/internal/service"
)

type AssessmentHandler struct {
	assessments *service.AssessmentService
}

func NewAssessmentHandler(assessments *service.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{assessments: assessments}
}

// Assess runs a one-off assessment without storing it.
func (h *AssessmentHandler) Assess(w http.ResponseWriter, r *http.Request) {
	var in domain.InputRecord
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	a, err := h.assessments.Assess(r.Context(), in)
	if err != nil {
		writeServiceError(w, err, "failed to assess")
		return
	}
	writeJSON(w, http.StatusOK, a)
}

func (h *AssessmentHandler) CreateForUser(w http.ResponseWriter, r *http.Request) {
	accountID, userID, ok := accountAndUser(w, r)
	if !ok {
		return
	}

	var in domain.InputRecord
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	a, err := h.assessments.AssessForUser(r.Context(), accountID, userID, in)
	if err != nil {
		writeServiceError(w, err, "failed to assess")
		return
	}
	writeJSON(w, http.StatusCreated, a)
}

func (h *AssessmentHandler) ListForUser(w http.ResponseWriter, r *http.Request) {
	accountID, userID, ok := accountAndUser(w, r)
	if !ok {
		return
	}

	list, err := h.assessments.History(accountID, userID)
	if err != nil {
		writeServiceError(w, err, "failed to list assessments")
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *AssessmentHandler) Stats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.assessments.Stats())
}

type explanationResponse struct {
	Param       string `json:"param"`
	Value       int    `json:"value"`
	Explanation string `json:"explanation"`
}

// Explain answers unknown parameters with the Unknown sentinel rather than 404.
func (h *AssessmentHandler) Explain(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	value, err := strconv.Atoi(vars["value"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "value must be an integer")
		return
	}
	writeJSON(w, http.StatusOK, explanationResponse{
		Param:       vars["param"],
		Value:       value,
		Explanation: scale.Explain(vars["param"], value),
	})
}
