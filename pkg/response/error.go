package response

import (
	"Chirp/pkg/errs"
	"Chirp/pkg/log"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BizError Code 即 HTTP 状态码
type BizError struct {
	Code int
	Msg  string
}

func (e *BizError) Error() string {
	return e.Msg
}

func NewError(code int, msg string) *BizError {
	return &BizError{
		Code: code,
		Msg:  msg,
	}
}

// FromError 按错误类别映射 HTTP 状态码，存储层错误不向外暴露细节
func FromError(err error) *BizError {
	var be *BizError
	if errors.As(err, &be) {
		return be
	}
	switch errs.KindOf(err) {
	case errs.KindNotFound:
		return NewError(http.StatusNotFound, errMsg(err))
	case errs.KindValidation:
		return NewError(http.StatusBadRequest, errMsg(err))
	default:
		return NewError(http.StatusInternalServerError, "系统异常")
	}
}

func errMsg(err error) string {
	var e *errs.Error
	if errors.As(err, &e) && e.Msg != "" {
		return e.Msg
	}
	return err.Error()
}

func ErrorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.L.Error("panic recovered", zap.Any("panic", r), zap.String("path", c.Request.URL.Path))
				Abort(c, http.StatusInternalServerError, "系统异常")
			}
		}()

		c.Next()

		if len(c.Errors) > 0 && !c.Writer.Written() {
			be := FromError(c.Errors.Last().Err)
			Fail(c, be.Code, be.Msg)
			c.Abort()
		}
	}
}

func Abort(c *gin.Context, httpStatus int, msg string) {
	c.AbortWithStatusJSON(httpStatus, Response{
		Status:  StatusError,
		Message: msg,
	})
}
