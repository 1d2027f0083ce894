package handlers

import (
	"studyvibe/internal/middleware"
	"studyvibe/internal/models"

	"github.com/gin-gonic/gin"
)

// CurrentUser 取出 LoadUser 中间件写入的当前用户，未登录返回 nil
func CurrentUser(c *gin.Context) *models.User {
	if u, exists := c.Get(middleware.CheckUserKey); exists {
		return u.(*models.User)
	}
	return nil
}

// MustUser 受保护路由中取当前用户（AuthRequired 保证存在）
func MustUser(c *gin.Context) *models.User {
	return c.MustGet(middleware.CheckUserKey).(*models.User)
}

// Fail JSON 错误响应
func Fail(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}
