package feed

import (
	"net/http"
	"strconv"

	appErrors "github.com/crewhq/crewhq-backend/internal/errors"
	"github.com/crewhq/crewhq-backend/internal/middleware"
	"github.com/crewhq/crewhq-backend/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Handler handles HTTP requests for the team feed.
type Handler struct {
	service *Service
	logger  *logrus.Logger
}

// NewHandler creates a new feed Handler.
func NewHandler(service *Service, logger *logrus.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers feed routes on the protected router group.
func RegisterRoutes(handler *Handler, routerGroup *gin.RouterGroup) {
	feedGroup := routerGroup.Group("/feed")
	feedGroup.POST("", handler.SendMessage)
	feedGroup.GET("", handler.ListMessages)
}

// SendMessage handles POST /feed
func (h *Handler) SendMessage(c *gin.Context) {
	author := middleware.CurrentProfile(c)
	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apiErr := appErrors.ErrInvalidBody
		utils.RespondError(c, apiErr.Status, apiErr.Code, apiErr.Message)
		return
	}
	msg, err := h.service.Send(c.Request.Context(), author, req)
	if err != nil {
		h.logger.Error("SendMessage error: ", err)
		apiErr := appErrors.From(err)
		utils.RespondError(c, apiErr.Status, apiErr.Code, apiErr.Message)
		return
	}
	utils.RespondSuccess(c, http.StatusCreated, msg)
}

// ListMessages handles GET /feed
func (h *Handler) ListMessages(c *gin.Context) {
	limit, _ := strconv.ParseInt(c.Query("limit"), 10, 32)
	resp, err := h.service.List(c.Request.Context(), c.Query("cursor"), int32(limit))
	if err != nil {
		h.logger.Error("ListMessages error: ", err)
		apiErr := appErrors.From(err)
		utils.RespondError(c, apiErr.Status, apiErr.Code, apiErr.Message)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, resp)
}
