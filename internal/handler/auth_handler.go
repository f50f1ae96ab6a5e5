package handler

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/go-sql-driver/mysql"
	"golang.org/x/crypto/bcrypt"

	"github.com/yusufkecer/obesity-advisor/internal/domain"
	"github.com/yusufkecer/obesity-advisor/internal/middleware"
	"github.com/yusufkecer/obesity-advisor/internal/repository"
	"github.com/yusufkecer/obesity-advisor/internal/service"
)

const mysqlDuplicateEntry = 1062

type AccountStore interface {
	Create(email, passwordHash string) (int64, error)
	GetByEmail(email string) (*repository.Account, error)
}

type AuthHandler struct {
	jwtSecret string
	accounts  AccountStore
	validate  *validator.Validate
}

func NewAuthHandler(jwtSecret string, accounts AccountStore) *AuthHandler {
	return &AuthHandler{
		jwtSecret: jwtSecret,
		accounts:  accounts,
		validate:  service.NewValidator(),
	}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	creds, ok := h.credentials(w, r)
	if !ok {
		return
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to hash password")
		return
	}

	accountID, err := h.accounts.Create(creds.Email, string(passwordHash))
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
			writeError(w, http.StatusConflict, "email already exists")
			return
		}
		writeServiceError(w, err, "failed to create account")
		return
	}

	h.issueToken(w, http.StatusCreated, accountID, creds.Email)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	creds, ok := h.credentials(w, r)
	if !ok {
		return
	}

	account, err := h.accounts.GetByEmail(creds.Email)
	if err != nil {
		writeServiceError(w, err, "failed to login")
		return
	}
	if account == nil {
		writeError(w, http.StatusUnauthorized, "invalid email or password")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(creds.Password)); err != nil {
		writeError(w, http.StatusUnauthorized, "invalid email or password")
		return
	}

	h.issueToken(w, http.StatusOK, account.ID, account.Email)
}

func (h *AuthHandler) credentials(w http.ResponseWriter, r *http.Request) (domain.Credentials, bool) {
	var creds domain.Credentials
	if err := decodeJSON(r, &creds); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return creds, false
	}
	if err := service.Check(h.validate, creds); err != nil {
		writeServiceError(w, err, "invalid credentials")
		return creds, false
	}
	return creds, true
}

func (h *AuthHandler) issueToken(w http.ResponseWriter, status int, accountID int64, email string) {
	token, expiresAt, err := middleware.GenerateToken(accountID, email, h.jwtSecret)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to generate token")
		return
	}
	writeJSON(w, status, domain.TokenResponse{Token: token, ExpiresAt: expiresAt})
}
