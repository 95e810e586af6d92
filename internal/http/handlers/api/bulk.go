package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/stocklens/internal/constants"
	"github.com/stocklens/internal/http/response"

	"github.com/gin-gonic/gin"
)

// BulkCreateProducts 批量创建商品（JSON 数组）
func (h *Handler) BulkCreateProducts(c *gin.Context) {
	var items []json.RawMessage
	if err := c.ShouldBindJSON(&items); err != nil {
		respondError(c, response.CodeBadRequest, "Expected array of products", nil)
		return
	}
	result, err := h.BulkService.BulkCreate(c.Request.Context(), items)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	requestLog(c).Infow("bulk_completed",
		"success", result.Success,
		"errors", result.Errors,
		"skipped", len(result.Skipped),
	)
	response.OK(c, result)
}

// UploadProducts 上传 CSV/XLSX 批量创建商品
func (h *Handler) UploadProducts(c *gin.Context) {
	maxBytes := h.ProductImportService.MaxUploadBytes()
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes+1<<20)

	fileHeader, err := c.FormFile(constants.BulkUploadFormField)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			respondError(c, response.CodeRequestTooLarge, "Upload too large", nil)
			return
		}
		respondError(c, response.CodeBadRequest, "Missing upload file field \""+constants.BulkUploadFormField+"\"", nil)
		return
	}
	if fileHeader.Size > maxBytes {
		respondError(c, response.CodeRequestTooLarge, "Upload too large", nil)
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, response.CodeInternal, response.MessageInternal, err)
		return
	}
	defer file.Close()

	result, err := h.ProductImportService.Import(c.Request.Context(), fileHeader.Filename, file)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	requestLog(c).Infow("bulk_upload_completed",
		"filename", fileHeader.Filename,
		"success", result.Success,
		"errors", result.Errors,
		"skipped", len(result.Skipped),
	)
	response.OK(c, result)
}

// DownloadProductTemplate 下载批量导入模板
func (h *Handler) DownloadProductTemplate(c *gin.Context) {
	data, err := h.ProductImportService.Template()
	if err != nil {
		respondError(c, response.CodeInternal, response.MessageInternal, err)
		return
	}
	response.Attachment(c, "product-template.csv", "text/csv; charset=utf-8", data)
}
