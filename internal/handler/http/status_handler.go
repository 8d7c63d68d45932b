package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	usecasecontract "github.com/cowryhub/cowry-backend/internal/usecase/contract"
)

type StatusHandler struct {
	config usecasecontract.IConfigProvider
}

func NewStatusHandler(config usecasecontract.IConfigProvider) *StatusHandler {
	return &StatusHandler{config: config}
}

// GetStatus handles GET /api/status.
func (h *StatusHandler) GetStatus(c *gin.Context) {
	SuccessHandler(c, http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"version":   h.config.GetAppVersion(),
	})
}
