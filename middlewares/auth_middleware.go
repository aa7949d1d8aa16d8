package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"github.com/BijinVijayan/food-store/utils"
	"github.com/gin-gonic/gin"
)

// AuthMiddleware accepts the session token from the HTTP-only cookie (the
// dashboard) or a bearer Authorization header (API clients) and stamps the
// identity onto the context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(utils.SessionCookie)
		if err != nil || tokenString == "" {
			header := c.GetHeader("Authorization")
			tokenString = strings.TrimPrefix(header, "Bearer ")
		}

		if tokenString == "" {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("missing session"))
			c.Abort()
			return
		}

		claims, err := utils.ParseToken(tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, err)
			c.Abort()
			return
		}
		if claims.UserID == 0 {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid user id in token"))
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("email", claims.Email)
		c.Set("role", claims.Role)
		if claims.StoreID != nil {
			c.Set("store_id", *claims.StoreID)
		}
		c.Next()
	}
}
