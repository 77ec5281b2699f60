package middleware

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/gymdesk/backend/internal/domain/identity"
)

func newRoleTestEngine(role identity.Role) *gin.Engine {
	engine := gin.New()
	engine.Use(func(c *gin.Context) {
		c.Set(JWTRoleKey, string(role))
	})
	engine.GET("/admin-only", RequireAdmin(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	engine.GET("/staff", RequireRole(identity.RoleStaff), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return engine
}

func TestRequireAdmin(t *testing.T) {
	t.Run("admin passes", func(t *testing.T) {
		w := doRequest(newRoleTestEngine(identity.RoleAdmin), "/admin-only", "")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("staff is forbidden", func(t *testing.T) {
		w := doRequest(newRoleTestEngine(identity.RoleStaff), "/admin-only", "")
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, "ERR_FORBIDDEN", errorCode(t, w))
	})
}

func TestRequireRole(t *testing.T) {
	t.Run("matching role passes", func(t *testing.T) {
		w := doRequest(newRoleTestEngine(identity.RoleStaff), "/staff", "")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("admin passes every gate", func(t *testing.T) {
		w := doRequest(newRoleTestEngine(identity.RoleAdmin), "/staff", "")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing role claim is forbidden", func(t *testing.T) {
		engine := gin.New()
		engine.GET("/staff", RequireRole(identity.RoleStaff), func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"ok": true})
		})
		w := doRequest(engine, "/staff", "")
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
