package http

import (
	"net/http"

	"github.com/ebelikov/lotus/internal/logger"
)

// getServerVersion reports the running server's build version as plain text.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	version := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(version)); err != nil {
		log.Err(err).Msg("failed to write version response")
	}
}
