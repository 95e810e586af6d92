package api

import (
	"github.com/stocklens/internal/http/response"
	"github.com/stocklens/internal/service"

	handlershared "github.com/stocklens/internal/http/handlers/shared"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var productErrorRules = []handlershared.MappedError{
	{Target: service.ErrNotFound, Code: response.CodeNotFound, Message: "Product not found"},
}

func requestLog(c *gin.Context) *zap.SugaredLogger {
	return handlershared.RequestLog(c)
}

func respondError(c *gin.Context, code int, msg string, err error) {
	handlershared.RespondError(c, code, msg, err)
}

func respondServiceError(c *gin.Context, err error) {
	handlershared.RespondServiceError(c, err)
}

func respondProductError(c *gin.Context, err error) {
	handlershared.RespondMappedError(c, err, productErrorRules, handlershared.CommonErrorRules)
}

func respondBindError(c *gin.Context, err error) {
	respondError(c, response.CodeBadRequest, "Invalid request body: "+err.Error(), nil)
}
