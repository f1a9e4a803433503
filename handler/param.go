package handler

import (
	"Chirp/pkg/errs"
	"strconv"

	"github.com/gin-gonic/gin"
)

// paramID 解析路径上的ID，非法值按参数错误处理
func paramID(c *gin.Context, name string) (uint64, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, errs.Validationf("handler.paramID", "invalid %s: %q", name, raw)
	}
	return id, nil
}
