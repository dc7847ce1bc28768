package apperrors

import (
	"github.com/gin-gonic/gin"

	"talentbridge_backend/internal/logger"
)

type ErrorResponse struct {
	Error *AppError `json:"error"`
}

// HandleError writes a typed failure as the JSON error response. Unknown
// errors are wrapped as internal and their details kept out of the body.
func HandleError(c *gin.Context, err error) {
	var appErr *AppError
	if !As(err, &appErr) {
		appErr = InternalError(err)
	}

	if appErr.HTTPCode >= 500 {
		logger.Error("server error", "error", appErr.Error(), "path", c.Request.URL.Path)
	}

	c.JSON(appErr.HTTPCode, ErrorResponse{Error: appErr})
}
