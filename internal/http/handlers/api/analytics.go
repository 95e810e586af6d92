package api

import (
	"fmt"
	"time"

	"github.com/stocklens/internal/http/response"
	"github.com/stocklens/internal/service"

	handlershared "github.com/stocklens/internal/http/handlers/shared"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func parseAnalyticsQuery(c *gin.Context) (service.AnalyticsQuery, bool) {
	productID, ok := handlershared.ParseOptionalIDQuery(c, "product_id")
	if !ok {
		return service.AnalyticsQuery{}, false
	}
	return service.AnalyticsQuery{ProductID: productID, Month: c.Query("month")}, true
}

// GetProductAnalytics 商品维度分析
func (h *Handler) GetProductAnalytics(c *gin.Context) {
	query, ok := parseAnalyticsQuery(c)
	if !ok {
		return
	}
	result, err := h.AnalyticsService.ProductAnalytics(c.Request.Context(), query)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.OK(c, result)
}

// GetOverallAnalytics 全量汇总分析
func (h *Handler) GetOverallAnalytics(c *gin.Context) {
	result, err := h.AnalyticsService.OverallAnalytics(c.Request.Context(), c.Query("month"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.OK(c, result)
}

// GetAnalyticsMonths 可选月份列表
func (h *Handler) GetAnalyticsMonths(c *gin.Context) {
	months, err := h.AnalyticsService.Months(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.OK(c, months)
}

// ExportProductAnalytics 导出商品分析 XLSX
func (h *Handler) ExportProductAnalytics(c *gin.Context) {
	query, ok := parseAnalyticsQuery(c)
	if !ok {
		return
	}
	data, err := h.AnalyticsService.ExportProductAnalytics(c.Request.Context(), query)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	suffix := query.Month
	if suffix == "" {
		suffix = time.Now().Format("20060102")
	}
	response.Attachment(c, fmt.Sprintf("product-analytics-%s.xlsx", suffix), xlsxContentType, data)
}
