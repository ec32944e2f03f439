package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/SiGNAL-Team/server/internal/api/middleware"
	"github.com/SiGNAL-Team/server/pkg/jwt"
	"github.com/SiGNAL-Team/server/pkg/response"
)

// MustGetClaims 从 Gin 上下文中安全提取 JWT 中间件注入的 Claims。
// 如果中间件未正确注入，返回 false 并写入 401 响应。
// 调用方应在 ok=false 时直接 return。
func MustGetClaims(c *gin.Context) (*jwt.Claims, bool) {
	v, exists := c.Get(middleware.ClaimsKey)
	if !exists {
		response.Unauthorized(c, 10002, "未认证")
		return nil, false
	}
	claims, ok := v.(*jwt.Claims)
	if !ok || claims == nil {
		response.Unauthorized(c, 10002, "未认证")
		return nil, false
	}
	return claims, true
}
