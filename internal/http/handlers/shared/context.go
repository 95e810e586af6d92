package shared

import (
	"strconv"
	"strings"

	"github.com/stocklens/internal/http/response"

	"github.com/gin-gonic/gin"
)

// ParseIDParam 解析路径中的正整数 ID，失败时写入 400 响应。
func ParseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := parsePositiveUint(c.Param(name))
	if err != nil {
		RespondError(c, response.CodeBadRequest, "Invalid "+name, nil)
		return 0, false
	}
	return id, true
}

// ParseOptionalIDQuery 解析可选的正整数查询参数，缺省返回 0。
func ParseOptionalIDQuery(c *gin.Context, name string) (uint, bool) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return 0, true
	}
	id, err := parsePositiveUint(raw)
	if err != nil {
		RespondError(c, response.CodeBadRequest, name+" must be a positive integer", nil)
		return 0, false
	}
	return id, true
}

func parsePositiveUint(raw string) (uint, error) {
	value, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, err
	}
	if value == 0 {
		return 0, strconv.ErrRange
	}
	return uint(value), nil
}
