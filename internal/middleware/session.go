package middleware

import (
	"time"

	"sat_prep_backend/internal/service"
	"sat_prep_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// SessionMiddleware refreshes the per-user session context behind the
// JWT claims. The refresh is throttled inside the context, so most
// requests skip the database entirely. Disabled or deleted accounts are
// cut off here even while their token is still valid.
func SessionMiddleware(sessions *service.SessionContextService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := util.GetUserFromContext(c)
		if claims == nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		user, err := sessions.For(claims.UserID).Refresh(time.Now())
		if err != nil || user == nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		c.Next()
	}
}
