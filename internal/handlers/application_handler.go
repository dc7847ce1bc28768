package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"talentbridge_backend/internal/auth"
	"talentbridge_backend/internal/middleware"
	"talentbridge_backend/internal/models"
	"talentbridge_backend/internal/services"
	"talentbridge_backend/internal/services/dto"
)

type ApplicationHandler struct {
	*BaseHandler
	applicationService services.ApplicationService
	tokens             *auth.TokenManager
}

func NewApplicationHandler(base *BaseHandler, applicationService services.ApplicationService, tokens *auth.TokenManager) *ApplicationHandler {
	return &ApplicationHandler{
		BaseHandler:        base,
		applicationService: applicationService,
		tokens:             tokens,
	}
}

func (h *ApplicationHandler) RegisterRoutes(r *gin.RouterGroup) {
	applications := r.Group("/applications")
	applications.Use(middleware.AuthMiddleware(h.tokens))
	{
		applications.GET("/my", h.GetMyApplications)
		applications.GET("/:applicationId", h.GetApplication)
	}

	review := r.Group("/applications")
	review.Use(middleware.AuthMiddleware(h.tokens), middleware.RequireRoles(models.UserRoleProvider, models.UserRoleAdmin))
	{
		review.PUT("/:applicationId/status", h.TransitionApplication)
	}

	talent := r.Group("/applications")
	talent.Use(middleware.AuthMiddleware(h.tokens), middleware.RequireRoles(models.UserRoleTalent))
	{
		talent.POST("/:applicationId/withdraw", h.WithdrawApplication)
	}
}

func (h *ApplicationHandler) GetMyApplications(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}

	resp, err := h.applicationService.ListByApplicant(actor.ID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *ApplicationHandler) GetApplication(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}

	application, err := h.applicationService.GetApplication(c.Param("applicationId"), actor)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"application": application})
}

func (h *ApplicationHandler) TransitionApplication(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}

	var req dto.TransitionApplicationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	application, err := h.applicationService.Transition(c.Param("applicationId"), actor, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"application": application})
}

func (h *ApplicationHandler) WithdrawApplication(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}

	var req dto.WithdrawApplicationRequest
	if c.Request.ContentLength > 0 {
		if !h.BindAndValidateJSON(c, &req) {
			return
		}
	}

	if err := h.applicationService.Withdraw(c.Param("applicationId"), actor.ID, &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Application withdrawn"})
}
