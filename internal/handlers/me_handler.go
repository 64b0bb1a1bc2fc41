package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/atelierserenite/wellness-api/internal/httperr"
	"github.com/atelierserenite/wellness-api/internal/httpresp"
	"github.com/atelierserenite/wellness-api/internal/middleware"
	"github.com/atelierserenite/wellness-api/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	userIDVal, exists := c.Get(middleware.ContextUserID)
	if !exists {
		httperr.Unauthorized(c, "user_not_in_context")
		return
	}

	userID, ok := userIDVal.(uint)
	if !ok {
		httperr.Unauthorized(c, "invalid_user_id_type")
		return
	}

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		// A valid token whose user row is gone (deleted account) is a
		// missing resource, not a server fault.
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "user_not_found")
			return
		}
		httperr.Internal(c, "failed_to_get_user")
		return
	}

	httpresp.OK(c, publicUser(&user))
}
