package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const accountIDKey contextKey = "account_id"

const tokenTTL = 30 * 24 * time.Hour

type Claims struct {
	AccountID int64  `json:"account_id"`
	Email     string `json:"email"`
	jwt.RegisteredClaims
}

func GenerateToken(accountID int64, email, secret string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(tokenTTL)
	claims := Claims{
		AccountID: accountID,
		Email:     email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// AccountIDFromContext returns the account authenticated by AuthMiddleware.
func AccountIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(accountIDKey).(int64)
	return id, ok
}

// WithAccountID is used by tests and by handlers invoked outside the middleware chain.
func WithAccountID(ctx context.Context, accountID int64) context.Context {
	return context.WithValue(ctx, accountIDKey, accountID)
}

func AuthMiddleware(secret string) func(http.Handler) http.Handler {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				deny(w, http.StatusUnauthorized, "missing authorization header")
				return
			}

			tokenStr, found := strings.CutPrefix(header, "Bearer ")
			if !found {
				deny(w, http.StatusUnauthorized, "invalid authorization format")
				return
			}

			var claims Claims
			token, err := parser.ParseWithClaims(tokenStr, &claims, func(*jwt.Token) (interface{}, error) {
				return []byte(secret), nil
			})
			if err != nil || !token.Valid {
				deny(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}
			if claims.AccountID <= 0 {
				deny(w, http.StatusUnauthorized, "invalid account id in token")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithAccountID(r.Context(), claims.AccountID)))
		})
	}
}
