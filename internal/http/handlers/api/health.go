package api

import (
	"github.com/stocklens/internal/http/response"

	"github.com/gin-gonic/gin"
)

// Health 健康检查，数据库不可用时返回 503
func (h *Handler) Health(c *gin.Context) {
	sqlDB, err := h.DB.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request.Context())
	}
	if err != nil {
		requestLog(c).Warnw("health_check_failed", "error", err)
		response.Error(c, response.CodeServiceUnavailable, "database unavailable")
		return
	}
	response.OK(c, gin.H{"status": "ok"})
}
