package api

import (
	"strconv"

	"github.com/stocklens/internal/http/response"
	"github.com/stocklens/internal/service"

	handlershared "github.com/stocklens/internal/http/handlers/shared"

	"github.com/gin-gonic/gin"
)

// ListProducts 获取商品列表，支持可选的 page/page_size 分页，总数写入 X-Total-Count
func (h *Handler) ListProducts(c *gin.Context) {
	page, ok := handlershared.ParseOptionalIDQuery(c, "page")
	if !ok {
		return
	}
	pageSize, ok := handlershared.ParseOptionalIDQuery(c, "page_size")
	if !ok {
		return
	}
	products, total, err := h.ProductService.List(c.Request.Context(), service.ProductListQuery{
		Page:     int(page),
		PageSize: int(pageSize),
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.Header("X-Total-Count", strconv.FormatInt(total, 10))
	response.OK(c, products)
}

// SearchProducts 搜索商品
func (h *Handler) SearchProducts(c *gin.Context) {
	products, err := h.ProductService.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.OK(c, products)
}

// GetProduct 获取商品详情
func (h *Handler) GetProduct(c *gin.Context) {
	id, ok := handlershared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	product, err := h.ProductService.Get(c.Request.Context(), id)
	if err != nil {
		respondProductError(c, err)
		return
	}
	response.OK(c, product)
}

// CreateProduct 创建商品
func (h *Handler) CreateProduct(c *gin.Context) {
	var req service.ProductInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	product, err := h.ProductService.Create(c.Request.Context(), req)
	if err != nil {
		respondProductError(c, err)
		return
	}
	response.Created(c, product)
}

// UpdateProduct 部分更新商品
func (h *Handler) UpdateProduct(c *gin.Context) {
	id, ok := handlershared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	var patch service.ProductPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondBindError(c, err)
		return
	}
	product, err := h.ProductService.Update(c.Request.Context(), id, patch)
	if err != nil {
		respondProductError(c, err)
		return
	}
	response.OK(c, product)
}

// DeleteProduct 删除商品
func (h *Handler) DeleteProduct(c *gin.Context) {
	id, ok := handlershared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.ProductService.Delete(c.Request.Context(), id); err != nil {
		respondProductError(c, err)
		return
	}
	response.NoContent(c)
}
