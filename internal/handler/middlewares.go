package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/deskops-tools/shift-planner/backend/internal/session"
	"github.com/deskops-tools/shift-planner/backend/internal/utils"
)

type ResponseWriter struct {
	http.ResponseWriter
	StatusCode int
}

func (rw *ResponseWriter) WriteHeader(statusCode int) {
	rw.StatusCode = statusCode
	rw.ResponseWriter.WriteHeader(statusCode)
}

func (h *Handler) logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &ResponseWriter{ResponseWriter: w}
		next.ServeHTTP(rw, r)
		duration := time.Since(start)
		slog.Info("request handled", "status", rw.StatusCode, "ip", r.RemoteAddr, "method", r.Method, "path", r.URL.Path, "duration", duration)
	})
}

func (h *Handler) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				h.internalServerError(w, r, fmt.Errorf("panic: %v", err))
				stackTrace := string(debug.Stack())
				fmt.Print(stackTrace) // slog would mangle the multi-line trace
			}
		}()
		next.ServeHTTP(w, r)
	})
}

type SessionClaims struct {
	jwt.RegisteredClaims
}

// session resolves the caller's session id from the signed cookie, issuing a
// fresh session when the cookie is absent, expired or tampered with. The
// session id is identity only; there is no authentication in this service.
func (h *Handler) session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID := h.sessionIDFromCookie(r)

		if sessionID == "" {
			newID, err := utils.GenerateSessionID(16)
			if err != nil {
				h.internalServerError(w, r, err)
				return
			}
			sessionID = newID

			if err := h.setSessionCookie(w, sessionID); err != nil {
				h.internalServerError(w, r, err)
				return
			}
		}

		ctx := context.WithValue(r.Context(), SessionIDCtx, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) sessionIDFromCookie(r *http.Request) string {
	cookie, err := r.Cookie(h.config.Session.CookieName)
	if err != nil {
		return ""
	}

	claims := &SessionClaims{}
	_, err = jwt.ParseWithClaims(cookie.Value, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(h.config.Session.Secret), nil
	})
	if err != nil {
		return ""
	}

	return claims.Subject
}

func (h *Handler) setSessionCookie(w http.ResponseWriter, sessionID string) error {
	expiration := time.Now().Add(time.Duration(h.config.Session.TTL) * time.Second)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiration),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Subject:   sessionID,
		},
	})
	ss, err := token.SignedString([]byte(h.config.Session.Secret))
	if err != nil {
		return err
	}

	cookie := &http.Cookie{
		Name:     h.config.Session.CookieName,
		Value:    ss,
		Expires:  expiration,
		Path:     "/",
		HttpOnly: true,
		Secure:   false,
	}

	if h.config.Environment == "production" {
		cookie.Secure = true
		cookie.SameSite = http.SameSiteStrictMode
	}

	http.SetCookie(w, cookie)
	return nil
}

// currentSchedule loads the session's schedule table into the request
// context for the /schedules/current subtree.
func (h *Handler) currentSchedule(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID := r.Context().Value(SessionIDCtx).(string)

		table, err := h.store.Get(r.Context(), sessionID)
		if err != nil {
			switch {
			case errors.Is(err, session.ErrNotFound):
				h.errorResponse(w, r, "no schedule has been generated yet")
			default:
				h.internalServerError(w, r, err)
			}
			return
		}

		ctx := context.WithValue(r.Context(), ScheduleTableCtx, table)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
