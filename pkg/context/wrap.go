package context

import (
	"Chirp/pkg/log"
	"Chirp/pkg/response"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	CtxUserID    = "user_id"
	CtxRequestID = "request_id"
)

type HandlerFunc func(*gin.Context) error

func Wrap(h HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h(c); err != nil {

			// 如果已经写过响应，直接返回
			if c.Writer.Written() {
				return
			}
			be := response.FromError(err)
			if be.Code >= http.StatusInternalServerError {
				log.L.Error("request failed",
					zap.String("request_id", c.GetString(CtxRequestID)),
					zap.String("path", c.FullPath()),
					zap.Error(err),
				)
			}
			response.Fail(c, be.Code, be.Msg)
		}
	}
}

func GetUserID(c *gin.Context) (uint64, error) {
	v, ok := c.Get(CtxUserID)
	if !ok {
		return 0, errors.New("user_id 不存在")
	}

	uid, ok := v.(uint64)
	if !ok {
		return 0, errors.New("user_id 类型错误")
	}

	return uid, nil
}
