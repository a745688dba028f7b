package checklist

import (
	"net/http"

	appErrors "github.com/crewhq/crewhq-backend/internal/errors"
	"github.com/crewhq/crewhq-backend/internal/middleware"
	"github.com/crewhq/crewhq-backend/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Handler handles HTTP requests for checklists.
type Handler struct {
	service *Service
	logger  *logrus.Logger
}

// NewHandler creates a new checklist Handler.
func NewHandler(service *Service, logger *logrus.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers checklist routes on the protected router group.
func RegisterRoutes(handler *Handler, routerGroup *gin.RouterGroup) {
	group := routerGroup.Group("/checklists")
	group.POST("", handler.Create)
	group.GET("", handler.List)
	group.GET(":checklistID", handler.Get)
	group.PUT(":checklistID", handler.Update)
	group.DELETE(":checklistID", handler.Delete)
}

// Create handles POST /checklists
func (h *Handler) Create(c *gin.Context) {
	subject := middleware.CurrentProfile(c).Subject
	var req CreateChecklistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apiErr := appErrors.ErrInvalidBody
		utils.RespondError(c, apiErr.Status, apiErr.Code, apiErr.Message)
		return
	}
	cl, err := h.service.Create(c.Request.Context(), subject, req)
	if err != nil {
		h.logger.Error("CreateChecklist error: ", err)
		apiErr := appErrors.From(err)
		utils.RespondError(c, apiErr.Status, apiErr.Code, apiErr.Message)
		return
	}
	utils.RespondSuccess(c, http.StatusCreated, cl)
}

// List handles GET /checklists
func (h *Handler) List(c *gin.Context) {
	subject := middleware.CurrentProfile(c).Subject
	checklists, err := h.service.List(c.Request.Context(), subject)
	if err != nil {
		h.logger.Error("ListChecklists error: ", err)
		apiErr := appErrors.From(err)
		utils.RespondError(c, apiErr.Status, apiErr.Code, apiErr.Message)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, checklists)
}

// Get handles GET /checklists/:checklistID
func (h *Handler) Get(c *gin.Context) {
	subject := middleware.CurrentProfile(c).Subject
	cl, err := h.service.Get(c.Request.Context(), subject, c.Param("checklistID"))
	if err != nil {
		h.logger.Error("GetChecklist error: ", err)
		apiErr := appErrors.From(err)
		utils.RespondError(c, apiErr.Status, apiErr.Code, apiErr.Message)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, cl)
}

// Update handles PUT /checklists/:checklistID
func (h *Handler) Update(c *gin.Context) {
	subject := middleware.CurrentProfile(c).Subject
	var req UpdateChecklistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apiErr := appErrors.ErrInvalidBody
		utils.RespondError(c, apiErr.Status, apiErr.Code, apiErr.Message)
		return
	}
	cl, err := h.service.Update(c.Request.Context(), subject, c.Param("checklistID"), req)
	if err != nil {
		h.logger.Error("UpdateChecklist error: ", err)
		apiErr := appErrors.From(err)
		utils.RespondError(c, apiErr.Status, apiErr.Code, apiErr.Message)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, cl)
}

// Delete handles DELETE /checklists/:checklistID
func (h *Handler) Delete(c *gin.Context) {
	subject := middleware.CurrentProfile(c).Subject
	if err := h.service.Delete(c.Request.Context(), subject, c.Param("checklistID")); err != nil {
		h.logger.Error("DeleteChecklist error: ", err)
		apiErr := appErrors.From(err)
		utils.RespondError(c, apiErr.Status, apiErr.Code, apiErr.Message)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, gin.H{"message": "checklist deleted"})
}
