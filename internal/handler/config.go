package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/BuzzLyutic/settings-loader/internal/dbconfig"
	"github.com/BuzzLyutic/settings-loader/internal/model"
	"github.com/BuzzLyutic/settings-loader/internal/settings"
	"github.com/BuzzLyutic/settings-loader/pkg/respond"
)

// ConfigHandler exposes the resolved settings for inspection. Credentials
// are always redacted on the way out.
type ConfigHandler struct {
	base    settings.Settings
	manager *dbconfig.Manager
	aliases map[string]string
	logger  *zap.Logger
}

func NewConfigHandler(base settings.Settings, manager *dbconfig.Manager, aliases map[string]string, logger *zap.Logger) *ConfigHandler {
	return &ConfigHandler{
		base:    base,
		manager: manager,
		aliases: aliases,
		logger:  logger,
	}
}

func (h *ConfigHandler) Routes(r chi.Router) {
	r.Get("/health", h.Health)
	r.Get("/settings", h.Settings)
	r.Get("/databases", h.Databases)
}

func (h *ConfigHandler) Health(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *ConfigHandler) Settings(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, r, http.StatusOK, h.base)
}

func (h *ConfigHandler) Databases(w http.ResponseWriter, r *http.Request) {
	databases := h.manager.Databases(h.aliases)
	h.logger.Debug("databases resolved", zap.Int("aliases", len(databases)))

	redacted := make(map[string]model.DatabaseSettings, len(databases))
	for alias, s := range databases {
		redacted[alias] = s.Redacted()
	}
	respond.JSON(w, r, http.StatusOK, redacted)
}
