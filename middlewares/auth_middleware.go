package middlewares

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/food-review-app/models"
	"github.com/yeremiapane/food-review-app/utils"
	"gorm.io/gorm"
)

// AuthMiddleware memvalidasi bearer token opaque terhadap tabel auth_tokens.
// User, user_id, dan is_admin diset ke context untuk dipakai controller.
func AuthMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		key, err := utils.ParseBearerToken(c.GetHeader("Authorization"))
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, err)
			c.Abort()
			return
		}

		var token models.AuthToken
		if err := db.Preload("User").Where("`key` = ?", key).First(&token).Error; err != nil {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("token tidak valid"))
			c.Abort()
			return
		}

		if !token.User.IsActive {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("akun tidak aktif"))
			c.Abort()
			return
		}

		c.Set("user_id", token.UserID)
		c.Set("is_admin", token.User.IsAdmin)
		c.Next()
	}
}
