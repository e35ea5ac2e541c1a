package middlewares

import (
	"errors"
	"net/http"

	"dmfengineering.com/timesheet/core"
	"dmfengineering.com/timesheet/core/models"
	"dmfengineering.com/timesheet/web/common"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

const sessionKey = "session"

// RequireEmployee resolves the token's subject to an active employee record
// and stores a core.Session on the context. Tokens without a matching
// employee are rejected: authentication alone does not grant access.
func RequireEmployee(dm *core.DatabaseManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, ok := c.Get("claims")
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, common.NewErrorResponse("missing claims"))
			return
		}
		claims, ok := value.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, common.NewErrorResponse("malformed claims"))
			return
		}
		userID, _ := claims["nameid"].(string)
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, common.NewErrorResponse("token has no subject"))
			return
		}

		var emp models.Employee
		err := dm.GetDB(c.Request.Context()).
			Where("user_id = ? AND active = ?", userID, true).
			Take(&emp).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, common.NewErrorResponse("no active employee for this identity"))
			return
		}
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
			return
		}

		c.Set(sessionKey, core.Session{Employee: emp})
		c.Next()
	}
}

// RequireAdmin gates admin-only routes. Must run after RequireEmployee.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := GetSession(c)
		if !sess.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, common.NewErrorResponse("admin role required"))
			return
		}
		c.Next()
	}
}

// GetSession returns the session placed by RequireEmployee.
func GetSession(c *gin.Context) core.Session {
	value, _ := c.Get(sessionKey)
	sess, _ := value.(core.Session)
	return sess
}
