package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/yusufkecer/obesity-advisor/internal/domain"
	"github.com/yusufkecer/obesity-advisor/internal/middleware"
	"github.com/yusufkecer/obesity-advisor/internal/service"
)

type UserStore interface {
	Create(accountID int64, u *domain.User) (int64, error)
	GetByID(accountID, id int64) (*domain.User, error)
	GetAll(accountID int64) ([]domain.User, error)
	Update(accountID, id int64, fields map[string]interface{}) (bool, error)
}

type UserHandler struct {
	users    UserStore
	validate *validator.Validate
}

func NewUserHandler(users UserStore) *UserHandler {
	return &UserHandler{users: users, validate: service.NewValidator()}
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	accountID, ok := middleware.AccountIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	var user domain.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := service.Check(h.validate, user); err != nil {
		writeServiceError(w, err, "invalid user")
		return
	}

	id, err := h.users.Create(accountID, &user)
	if err != nil {
		writeServiceError(w, err, "failed to create user")
		return
	}

	created, err := h.users.GetByID(accountID, id)
	if err != nil {
		writeServiceError(w, err, "failed to get created user")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *UserHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	accountID, id, ok := accountAndUser(w, r)
	if !ok {
		return
	}

	user, err := h.users.GetByID(accountID, id)
	if err != nil {
		writeServiceError(w, err, "failed to get user")
		return
	}
	if user == nil {
		writeError(w, http.StatusNotFound, "user not found")
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *UserHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	accountID, ok := middleware.AccountIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	users, err := h.users.GetAll(accountID)
	if err != nil {
		writeServiceError(w, err, "failed to list users")
		return
	}
	if users == nil {
		users = []domain.User{}
	}
	writeJSON(w, http.StatusOK, users)
}

// Update applies a partial profile. The body is checked against the same
// rules as Create before any field reaches the store.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	accountID, id, ok := accountAndUser(w, r)
	if !ok {
		return
	}

	var raw json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	var patch domain.User
	var fields map[string]interface{}
	if json.Unmarshal(raw, &patch) != nil || json.Unmarshal(raw, &fields) != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := service.Check(h.validate, patch); err != nil {
		writeServiceError(w, err, "invalid user")
		return
	}

	if _, err := h.users.Update(accountID, id, fields); err != nil {
		writeServiceError(w, err, "failed to update user")
		return
	}

	user, err := h.users.GetByID(accountID, id)
	if err != nil {
		writeServiceError(w, err, "failed to get updated user")
		return
	}
	if user == nil {
		writeError(w, http.StatusNotFound, "user not found")
		return
	}
	writeJSON(w, http.StatusOK, user)
}
