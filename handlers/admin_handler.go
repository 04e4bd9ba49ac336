package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/Dosada05/esports-admin/services"
)

const healthTimeout = 2 * time.Second

// AdminHandler serves the home page and the database-wide operations.
type AdminHandler struct {
	adminService services.AdminService
	renderer     Renderer
	logger       *slog.Logger
}

func NewAdminHandler(s services.AdminService, renderer Renderer, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		adminService: s,
		renderer:     renderer,
		logger:       logger,
	}
}

func (h *AdminHandler) Home(w http.ResponseWriter, r *http.Request) {
	renderPage(w, r, h.renderer, h.logger, "index", nil)
}

// ResetDatabase restores the seed dataset. Нет подтверждения на сервере: его спрашивает форма.
func (h *AdminHandler) ResetDatabase(w http.ResponseWriter, r *http.Request) {
	if err := h.adminService.ResetDatabase(r.Context()); err != nil {
		serverErrorResponse(w, r, h.logger, err, "Error resetting database")
		return
	}
	redirect(w, r, "/")
}

func (h *AdminHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	if err := h.adminService.Ping(ctx); err != nil {
		h.logger.WarnContext(ctx, "health check failed", slog.Any("error", err))
		textResponse(w, http.StatusServiceUnavailable, "database unavailable")
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok\n"))
}
