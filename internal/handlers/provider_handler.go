package handlers

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"prepmate/server/internal/llm"
	"prepmate/server/internal/middleware"
	"prepmate/server/internal/models"
	"prepmate/server/internal/utils"
)

const probeTimeout = 10 * time.Second

// ProviderHandler manages the AI provider credential at runtime.
type ProviderHandler struct {
	Provider llm.Provider
	Logger   *zap.Logger
}

func NewProviderHandler(provider llm.Provider, logger *zap.Logger) *ProviderHandler {
	return &ProviderHandler{Provider: provider, Logger: logger}
}

// UpdateKeyHandler rotates the provider credential. Format validation
// happened in the request middleware; rotation failures map to 502 since the
// provider, not the caller, is at fault.
func (h *ProviderHandler) UpdateKeyHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.UpdateAPIKeyRequest](r)

	if err := h.Provider.RotateCredential(req.APIKey); err != nil {
		h.Logger.Error("credential rotation failed", zap.Error(err))
		utils.JSONError(w, http.StatusBadGateway, "provider_error", "Failed to apply new API key")
		return
	}
	h.Logger.Info("provider credential rotated", zap.String("provider", h.Provider.GetProviderName()))
	utils.JSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

// KeyStatusHandler runs a cheap probe call and reports whether the current
// credential works. Never mutates state.
func (h *ProviderHandler) KeyStatusHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
	defer cancel()

	if err := h.Provider.Probe(ctx); err != nil {
		utils.JSON(w, http.StatusOK, models.KeyStatusResponse{Valid: false, Message: err.Error()})
		return
	}
	utils.JSON(w, http.StatusOK, models.KeyStatusResponse{Valid: true})
}
