package incident

import (
	"net/http"

	appErrors "github.com/crewhq/crewhq-backend/internal/errors"
	"github.com/crewhq/crewhq-backend/internal/middleware"
	"github.com/crewhq/crewhq-backend/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Handler handles HTTP requests for incidents.
type Handler struct {
	service *Service
	logger  *logrus.Logger
}

// NewHandler creates a new incident Handler.
func NewHandler(service *Service, logger *logrus.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers incident routes on the protected router group.
func RegisterRoutes(handler *Handler, routerGroup *gin.RouterGroup) {
	group := routerGroup.Group("/incidents")
	group.POST("", handler.Create)
	group.GET("", handler.List)
	group.GET(":incidentID", handler.Get)
	group.PUT(":incidentID", handler.Update)
	group.DELETE(":incidentID", handler.Delete)
}

// Create handles POST /incidents
func (h *Handler) Create(c *gin.Context) {
	subject := middleware.CurrentProfile(c).Subject
	var req CreateIncidentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apiErr := appErrors.ErrInvalidBody
		utils.RespondError(c, apiErr.Status, apiErr.Code, apiErr.Message)
		return
	}
	in, err := h.service.Create(c.Request.Context(), subject, req)
	if err != nil {
		h.logger.Error("CreateIncident error: ", err)
		apiErr := appErrors.From(err)
		utils.RespondError(c, apiErr.Status, apiErr.Code, apiErr.Message)
		return
	}
	utils.RespondSuccess(c, http.StatusCreated, in)
}

// List handles GET /incidents
func (h *Handler) List(c *gin.Context) {
	subject := middleware.CurrentProfile(c).Subject
	incidents, err := h.service.List(c.Request.Context(), subject)
	if err != nil {
		h.logger.Error("ListIncidents error: ", err)
		apiErr := appErrors.From(err)
		utils.RespondError(c, apiErr.Status, apiErr.Code, apiErr.Message)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, incidents)
}

// Get handles GET /incidents/:incidentID
func (h *Handler) Get(c *gin.Context) {
	subject := middleware.CurrentProfile(c).Subject
	in, err := h.service.Get(c.Request.Context(), subject, c.Param("incidentID"))
	if err != nil {
		h.logger.Error("GetIncident error: ", err)
		apiErr := appErrors.From(err)
		utils.RespondError(c, apiErr.Status, apiErr.Code, apiErr.Message)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, in)
}

// Update handles PUT /incidents/:incidentID
func (h *Handler) Update(c *gin.Context) {
	subject := middleware.CurrentProfile(c).Subject
	var req UpdateIncidentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apiErr := appErrors.ErrInvalidBody
		utils.RespondError(c, apiErr.Status, apiErr.Code, apiErr.Message)
		return
	}
	in, err := h.service.Update(c.Request.Context(), subject, c.Param("incidentID"), req)
	if err != nil {
		h.logger.Error("UpdateIncident error: ", err)
		apiErr := appErrors.From(err)
		utils.RespondError(c, apiErr.Status, apiErr.Code, apiErr.Message)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, in)
}

// Delete handles DELETE /incidents/:incidentID
func (h *Handler) Delete(c *gin.Context) {
	subject := middleware.CurrentProfile(c).Subject
	if err := h.service.Delete(c.Request.Context(), subject, c.Param("incidentID")); err != nil {
		h.logger.Error("DeleteIncident error: ", err)
		apiErr := appErrors.From(err)
		utils.RespondError(c, apiErr.Status, apiErr.Code, apiErr.Message)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, gin.H{"message": "incident deleted"})
}
