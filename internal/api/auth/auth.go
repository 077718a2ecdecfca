package auth

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	dto "silverdollar/internal/api/dto/auth"
	"silverdollar/internal/converter"
	"silverdollar/internal/model"
	"silverdollar/internal/service"
	"silverdollar/pkg/req"
	"silverdollar/pkg/resp"
)

const (
	sessionIDCookie    = "session_id"
	refreshTokenCookie = "refresh_token"
)

type HandlerDeps struct {
	Serv       service.AuthService
	Log        *slog.Logger
	SessionTTL time.Duration
}

type Handler struct {
	serv       service.AuthService
	log        *slog.Logger
	sessionTTL time.Duration
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv, log: deps.Log, sessionTTL: deps.SessionTTL}
}

// Register создаёт пользователя, открывает сессию
// и возвращает access_token, а session_id и refresh_token через cookies
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[dto.RegisterRequest](r.Body)
	if err != nil {
		resp.WriteJSONError(w, http.StatusBadRequest, "invalid request")
		return
	}

	data, err := h.serv.Register(r.Context(), converter.RegisterRequestToUserModel(&requestBody))
	switch {
	case errors.Is(err, service.ErrUserExists):
		resp.WriteJSONError(w, http.StatusConflict, "user already exists")
		return
	case errors.Is(err, service.ErrInvalidCredential):
		resp.WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		h.log.ErrorContext(r.Context(), "register failed", "error", err)
		resp.WriteJSONError(w, http.StatusInternalServerError, "register failed")
		return
	}

	h.writeSession(w, http.StatusCreated, data)
}

// Login создаёт сессию
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[dto.LoginRequest](r.Body)
	if err != nil {
		resp.WriteJSONError(w, http.StatusBadRequest, "invalid request")
		return
	}

	data, err := h.serv.Login(r.Context(), converter.LoginRequestToUserModel(&requestBody))
	switch {
	case errors.Is(err, service.ErrInvalidCredential):
		resp.WriteJSONError(w, http.StatusUnauthorized, "login failed")
		return
	case err != nil:
		h.log.ErrorContext(r.Context(), "login failed", "error", err)
		resp.WriteJSONError(w, http.StatusInternalServerError, "login failed")
		return
	}

	h.writeSession(w, http.StatusOK, data)
}

// Refresh выдает новый access_token по session_id и refresh_token
func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	session, err := r.Cookie(sessionIDCookie)
	if err != nil {
		resp.WriteJSONError(w, http.StatusUnauthorized, "no session_id cookie")
		return
	}
	refresh, err := r.Cookie(refreshTokenCookie)
	if err != nil {
		resp.WriteJSONError(w, http.StatusUnauthorized, "no refresh_token cookie")
		return
	}

	accessToken, err := h.serv.Refresh(r.Context(), &model.AuthData{
		SessionID:    session.Value,
		RefreshToken: refresh.Value,
	})
	switch {
	case errors.Is(err, service.ErrInvalidSession):
		resp.WriteJSONError(w, http.StatusUnauthorized, "refresh failed")
		return
	case err != nil:
		h.log.ErrorContext(r.Context(), "refresh failed", "error", err)
		resp.WriteJSONError(w, http.StatusInternalServerError, "refresh failed")
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.TokenResponse{AccessToken: accessToken})
}

// Logout закрывает сессию по session_id
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	c, err := r.Cookie(sessionIDCookie)
	if err != nil {
		resp.WriteJSONError(w, http.StatusUnauthorized, "no session_id cookie")
		return
	}

	err = h.serv.Logout(r.Context(), c.Value)
	if err != nil && !errors.Is(err, service.ErrInvalidSession) {
		h.log.ErrorContext(r.Context(), "logout failed", "error", err)
		resp.WriteJSONError(w, http.StatusInternalServerError, "logout failed")
		return
	}

	deleteCookie(w, sessionIDCookie, "/")
	deleteCookie(w, refreshTokenCookie, "/auth")

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) writeSession(w http.ResponseWriter, status int, data *model.AuthData) {
	maxAge := int(h.sessionTTL.Seconds())
	setCookie(w, sessionIDCookie, data.SessionID, "/", maxAge)
	setCookie(w, refreshTokenCookie, data.RefreshToken, "/auth", maxAge)

	resp.WriteJSONResponse(w, status, dto.TokenResponse{AccessToken: data.AccessToken})
}

func setCookie(w http.ResponseWriter, name, value, path string, maxAge int) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     path,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   maxAge,
	})
}

func deleteCookie(w http.ResponseWriter, name, path string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     path,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   -1,
	})
}
