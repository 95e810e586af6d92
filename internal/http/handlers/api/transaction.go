package api

import (
	"github.com/stocklens/internal/http/response"
	"github.com/stocklens/internal/service"

	handlershared "github.com/stocklens/internal/http/handlers/shared"

	"github.com/gin-gonic/gin"
)

func parseTransactionQuery(c *gin.Context) (service.TransactionQuery, bool) {
	productID, ok := handlershared.ParseOptionalIDQuery(c, "product_id")
	if !ok {
		return service.TransactionQuery{}, false
	}
	return service.TransactionQuery{ProductID: productID, Month: c.Query("month")}, true
}

// ListSellIns 查询入库流水
func (h *Handler) ListSellIns(c *gin.Context) {
	query, ok := parseTransactionQuery(c)
	if !ok {
		return
	}
	rows, err := h.SellInService.List(c.Request.Context(), query)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.OK(c, rows)
}

// CreateSellIn 创建入库流水
func (h *Handler) CreateSellIn(c *gin.Context) {
	var req service.SellInInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	row, err := h.SellInService.Create(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Created(c, row)
}

// ListSellThroughs 查询销售流水
func (h *Handler) ListSellThroughs(c *gin.Context) {
	query, ok := parseTransactionQuery(c)
	if !ok {
		return
	}
	rows, err := h.SellThroughService.List(c.Request.Context(), query)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.OK(c, rows)
}

// CreateSellThrough 创建销售流水
func (h *Handler) CreateSellThrough(c *gin.Context) {
	var req service.SellThroughInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	row, err := h.SellThroughService.Create(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Created(c, row)
}
