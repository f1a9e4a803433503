package middleware

import (
	"net/http"
	"strings"

	"Chirp/pkg/context"
	"Chirp/pkg/jwt"
	"Chirp/pkg/log"
	"Chirp/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Auth 校验 Bearer 令牌，把当前登录用户写入上下文
func Auth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Abort(c, http.StatusUnauthorized, "缺少 Authorization")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Abort(c, http.StatusUnauthorized, "Authorization 格式错误")
			return
		}

		claims, err := jwt.ParseToken(secret, jwt.TokenAccess, parts[1])
		if err != nil {
			log.L.Debug("token rejected", zap.String("request_id", c.GetString(context.CtxRequestID)), zap.Error(err))
			response.Abort(c, http.StatusUnauthorized, "令牌无效")
			return
		}
		c.Set(context.CtxUserID, claims.UserID)

		c.Next()
	}
}
