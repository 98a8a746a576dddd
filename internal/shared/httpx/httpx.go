package httpx

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"board-service/internal/errs"
	"board-service/internal/shared/jwt"
)

type HandlerFunc func(http.ResponseWriter, *http.Request) error

// Wrap turns an error-returning handler into an http.Handler, mapping the
// error taxonomy to status codes. Validation and not-found errors never
// reach here with state already mutated.
func Wrap(fn HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		err := fn(w, r)
		if err == nil {
			return
		}
		WriteJSON(w, map[string]any{"error": err.Error()}, statusFor(err))
	})
}

func statusFor(err error) int {
	switch {
	case errs.IsValidation(err):
		return http.StatusBadRequest
	case errs.IsNotFound(err):
		return http.StatusNotFound
	case errs.IsModerationRejection(err):
		return http.StatusUnprocessableEntity
	case errs.IsTransport(err):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func WriteJSON(w http.ResponseWriter, v any, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

type ctxKey string

const userKey ctxKey = "user_key"

func BearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(h[7:])
	}
	return ""
}

// IdentifyMiddleware extracts the caller's user key from a bearer token when
// one is present. Unauthenticated requests pass through: they get a fresh
// anonymous identity downstream instead of a stable pseudonym.
func IdentifyMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if tok := BearerToken(r); tok != "" {
			if uid, err := jwt.Parse(tok); err == nil && uid != "" {
				r = r.WithContext(context.WithValue(r.Context(), userKey, uid))
			}
		}
		next.ServeHTTP(w, r)
	})
}

// UserFromCtx returns the authenticated user key, or "" for anonymous callers.
func UserFromCtx(r *http.Request) string {
	uid, _ := r.Context().Value(userKey).(string)
	return uid
}
