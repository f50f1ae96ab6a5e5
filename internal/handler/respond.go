package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/yusufkecer/obesity-advisor/internal/classifier"
	"github.com/yusufkecer/obesity-advisor/internal/middleware"
	"github.com/yusufkecer/obesity-advisor/internal/service"
)

type errorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[handler] failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// writeServiceError maps service errors onto status codes. Unexpected errors
// are logged and reported with the generic message.
func writeServiceError(w http.ResponseWriter, err error, message string) {
	var verr *service.ValidationError
	var derr *classifier.DomainError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid input", Fields: verr.Fields})
	case errors.Is(err, service.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &derr):
		writeError(w, http.StatusUnprocessableEntity, derr.Error())
	case errors.Is(err, service.ErrHeightRequired):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrUserNotFound):
		writeError(w, http.StatusNotFound, "user not found")
	default:
		log.Printf("[handler] %s: %v", message, err)
		writeError(w, http.StatusInternalServerError, message)
	}
}

func decodeJSON(r *http.Request, v interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// accountAndUser extracts the authenticated account and the {id} path value.
func accountAndUser(w http.ResponseWriter, r *http.Request) (int64, int64, bool) {
	accountID, ok := middleware.AccountIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthenticated")
		return 0, 0, false
	}
	userID, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return 0, 0, false
	}
	return accountID, userID, true
}
