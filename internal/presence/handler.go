package presence

import (
	"net/http"

	appErrors "github.com/crewhq/crewhq-backend/internal/errors"
	"github.com/crewhq/crewhq-backend/internal/middleware"
	"github.com/crewhq/crewhq-backend/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Handler handles HTTP requests for presence.
type Handler struct {
	service *Service
	logger  *logrus.Logger
}

// NewHandler creates a new presence Handler.
func NewHandler(service *Service, logger *logrus.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers presence routes on the protected router group.
func RegisterRoutes(handler *Handler, routerGroup *gin.RouterGroup) {
	presenceGroup := routerGroup.Group("/presence")
	presenceGroup.POST("/ping", handler.Ping)
	presenceGroup.GET("/online", handler.ListOnline)
}

// Ping handles POST /presence/ping
func (h *Handler) Ping(c *gin.Context) {
	profile := middleware.CurrentProfile(c)
	var req PingRequest
	// An empty body is a valid ping without page context.
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			apiErr := appErrors.ErrInvalidBody
			utils.RespondError(c, apiErr.Status, apiErr.Code, apiErr.Message)
			return
		}
	}
	h.service.Ping(c.Request.Context(), profile, req)
	utils.RespondSuccess(c, http.StatusOK, gin.H{"message": "pong"})
}

// ListOnline handles GET /presence/online
func (h *Handler) ListOnline(c *gin.Context) {
	entries, err := h.service.ListOnline(c.Request.Context())
	if err != nil {
		h.logger.Error("ListOnline error: ", err)
		apiErr := appErrors.From(err)
		utils.RespondError(c, apiErr.Status, apiErr.Code, apiErr.Message)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, entries)
}
