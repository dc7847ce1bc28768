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

type UserHandler struct {
	*BaseHandler
	userService services.UserService
	tokens      *auth.TokenManager
}

func NewUserHandler(base *BaseHandler, userService services.UserService, tokens *auth.TokenManager) *UserHandler {
	return &UserHandler{
		BaseHandler: base,
		userService: userService,
		tokens:      tokens,
	}
}

func (h *UserHandler) RegisterRoutes(r *gin.RouterGroup) {
	users := r.Group("/users")
	users.Use(middleware.AuthMiddleware(h.tokens))
	{
		users.GET("/me", h.GetMe)
		users.DELETE("/me", h.DeactivateMe)
	}

	admin := r.Group("/admin/users")
	admin.Use(middleware.AuthMiddleware(h.tokens), middleware.RequireRoles(models.UserRoleAdmin))
	{
		admin.GET("", h.ListUsers)
		admin.PUT("/:userId/status", h.UpdateUserStatus)
		admin.DELETE("/:userId", h.DeactivateUser)
	}
}

func (h *UserHandler) GetMe(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}

	user, err := h.userService.GetUser(actor.ID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (h *UserHandler) DeactivateMe(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}

	if err := h.userService.Deactivate(actor, actor.ID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Account deactivated"})
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}

	var criteria dto.ListUsersRequest
	if !h.BindAndValidateQuery(c, &criteria) {
		return
	}
	criteria.Page, criteria.Size = ParsePagination(c)

	resp, err := h.userService.ListUsers(actor, criteria)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *UserHandler) UpdateUserStatus(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}

	var req dto.UpdateUserStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	user, err := h.userService.UpdateStatus(actor, c.Param("userId"), req.Status)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (h *UserHandler) DeactivateUser(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}

	if err := h.userService.Deactivate(actor, c.Param("userId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deactivated"})
}
