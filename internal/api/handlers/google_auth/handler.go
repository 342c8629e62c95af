package google_auth

import (
	"errors"
	"net/http"

	"github.com/Zero-Index-Tech/ZeroBook/internal/api/handlers"
	"github.com/Zero-Index-Tech/ZeroBook/internal/api/middleware"
	"github.com/Zero-Index-Tech/ZeroBook/internal/domain"
	"github.com/Zero-Index-Tech/ZeroBook/internal/integrations/authservice"
)

// calendarScopes OAuth scopes для вставки событий в календарь
const calendarScopes = "https://www.googleapis.com/auth/calendar.events"

const (
	msgAccessDenied     = "управление календарем доступно только владельцу"
	msgDisconnectFailed = "не удалось отключить календарь"
)

type Handler struct {
	auth       AuthServiceClient
	redirectTo string
	logger     Logger
}

// NewHandler создает handler управления подключением календаря
// redirectTo - URL возврата после OAuth авторизации
func NewHandler(auth AuthServiceClient, redirectTo string, logger Logger) *Handler {
	return &Handler{
		auth:       auth,
		redirectTo: redirectTo,
		logger:     logger,
	}
}

// HandleStatus GET /api/v1/calendar/status
// Календарь считается подключенным при активной сессии с provider token
func (h *Handler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	if !h.requireOwner(w, r, "GET /calendar/status") {
		return
	}

	session, err := h.auth.GetSession(r.Context())
	if err != nil {
		if errors.Is(err, authservice.ErrNoSession) {
			handlers.RespondJSON(w, http.StatusOK, StatusResponse{Connected: false})
			return
		}
		h.logger.Error("GET /calendar/status - Failed to get session: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	resp := StatusResponse{Connected: session.ProviderToken != ""}
	if resp.Connected && session.User.Email != "" {
		email := session.User.Email
		resp.Email = &email
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}

// HandleConnect POST /api/v1/calendar/connect
// Возвращает URL авторизации провайдера; сам OAuth-обмен выполняется
// auth-сервисом, хранение токенов на нашей стороне не требуется
func (h *Handler) HandleConnect(w http.ResponseWriter, r *http.Request) {
	if !h.requireOwner(w, r, "POST /calendar/connect") {
		return
	}

	authURL := h.auth.SignInWithProvider("google", calendarScopes, h.redirectTo)

	h.logger.Info("POST /calendar/connect - Authorization URL issued")
	handlers.RespondJSON(w, http.StatusOK, ConnectResponse{AuthURL: authURL})
}

// HandleDisconnect DELETE /api/v1/calendar/disconnect
func (h *Handler) HandleDisconnect(w http.ResponseWriter, r *http.Request) {
	if !h.requireOwner(w, r, "DELETE /calendar/disconnect") {
		return
	}

	if err := h.auth.SignOut(r.Context()); err != nil {
		h.logger.Error("DELETE /calendar/disconnect - Failed to sign out: %v", err)
		handlers.RespondError(w, http.StatusBadGateway, msgDisconnectFailed)
		return
	}

	h.logger.Info("DELETE /calendar/disconnect - Calendar disconnected")
	handlers.RespondJSON(w, http.StatusOK, DisconnectResponse{Disconnected: true})
}

func (h *Handler) requireOwner(w http.ResponseWriter, r *http.Request, op string) bool {
	role := middleware.RoleFromContext(r.Context())
	if role != domain.RoleOwner {
		h.logger.Warn("%s - Access denied: role=%s", op, role)
		handlers.RespondForbidden(w, msgAccessDenied)
		return false
	}
	return true
}
