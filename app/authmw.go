package app

import (
	"Gin_postgres_rental_backoffice/db"
	"Gin_postgres_rental_backoffice/session"
	"net/http"

	"github.com/gin-gonic/gin"
)

const SessionCookie = "session"

// AuthRequired validates the signed session cookie and confirms the user
// still exists before letting the request through.
func AuthRequired(signer *session.TokenSigner, repo *db.Repo) gin.HandlerFunc {
	return func(c *gin.Context) {
		ck, err := c.Request.Cookie(SessionCookie)
		if err != nil || ck.Value == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, H{"result": "error", "message": "Unauthorized."})
			return
		}
		claims, err := signer.Parse(ck.Value)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, H{"result": "error", "message": "Unauthorized."})
			return
		}

		// 这里确认用户仍存在
		u, err := repo.FindUserByID(c.Request.Context(), claims.UserID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, H{"result": "error", "message": "Unauthorized."})
			return
		}

		// 把 userID 放进上下文，后续 handler 可用
		c.Set("userID", u.ID)
		c.Set("username", u.Username)
		c.Next()
	}
}
