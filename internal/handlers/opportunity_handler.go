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

type OpportunityHandler struct {
	*BaseHandler
	opportunityService services.OpportunityService
	applicationService services.ApplicationService
	tokens             *auth.TokenManager
}

func NewOpportunityHandler(
	base *BaseHandler,
	opportunityService services.OpportunityService,
	applicationService services.ApplicationService,
	tokens *auth.TokenManager,
) *OpportunityHandler {
	return &OpportunityHandler{
		BaseHandler:        base,
		opportunityService: opportunityService,
		applicationService: applicationService,
		tokens:             tokens,
	}
}

func (h *OpportunityHandler) RegisterRoutes(r *gin.RouterGroup) {
	// Public routes
	public := r.Group("/opportunities")
	{
		public.GET("", h.ListOpportunities)
		public.GET("/:opportunityId", h.GetOpportunity)
	}

	// Provider routes
	opportunities := r.Group("/opportunities")
	opportunities.Use(middleware.AuthMiddleware(h.tokens), middleware.RequireRoles(models.UserRoleProvider, models.UserRoleAdmin))
	{
		opportunities.POST("", h.CreateOpportunity)
		opportunities.GET("/my", h.GetMyOpportunities)
		opportunities.PUT("/:opportunityId", h.UpdateOpportunity)
		opportunities.POST("/:opportunityId/publish", h.PublishOpportunity)
		opportunities.DELETE("/:opportunityId", h.DeleteOpportunity)
		opportunities.GET("/:opportunityId/applications", h.GetOpportunityApplications)
	}

	// Talent routes
	talent := r.Group("/opportunities")
	talent.Use(middleware.AuthMiddleware(h.tokens), middleware.RequireRoles(models.UserRoleTalent))
	{
		talent.POST("/:opportunityId/applications", h.SubmitApplication)
	}
}

// --- Public handlers ---

func (h *OpportunityHandler) ListOpportunities(c *gin.Context) {
	var criteria dto.ListOpportunitiesRequest
	if !h.BindAndValidateQuery(c, &criteria) {
		return
	}
	criteria.Page, criteria.Size = ParsePagination(c)

	resp, err := h.opportunityService.ListPublic(criteria)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *OpportunityHandler) GetOpportunity(c *gin.Context) {
	opportunity, err := h.opportunityService.Get(c.Param("opportunityId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"opportunity": opportunity})
}

// --- Provider handlers ---

func (h *OpportunityHandler) CreateOpportunity(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}

	var req dto.CreateOpportunityRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	opportunity, err := h.opportunityService.Create(actor.ID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"opportunity": opportunity})
}

func (h *OpportunityHandler) GetMyOpportunities(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}

	resp, err := h.opportunityService.ListByProvider(actor.ID, actor)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *OpportunityHandler) UpdateOpportunity(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}

	var req dto.UpdateOpportunityRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	opportunity, err := h.opportunityService.Update(c.Param("opportunityId"), actor, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"opportunity": opportunity})
}

func (h *OpportunityHandler) PublishOpportunity(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}

	opportunity, err := h.opportunityService.Publish(c.Param("opportunityId"), actor)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"opportunity": opportunity})
}

func (h *OpportunityHandler) DeleteOpportunity(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}

	if err := h.opportunityService.Delete(c.Param("opportunityId"), actor); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Opportunity deleted"})
}

func (h *OpportunityHandler) GetOpportunityApplications(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}

	resp, err := h.applicationService.ListByOpportunity(c.Param("opportunityId"), actor)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// --- Talent handlers ---

func (h *OpportunityHandler) SubmitApplication(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}

	var req dto.SubmitApplicationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	application, err := h.applicationService.Submit(c.Param("opportunityId"), actor.ID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"application": application})
}
