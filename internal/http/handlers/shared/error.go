package shared

import (
	"errors"

	"github.com/stocklens/internal/constants"
	"github.com/stocklens/internal/http/response"
	"github.com/stocklens/internal/logger"
	"github.com/stocklens/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MappedError 定义业务错误到接口错误响应的映射关系。
// Message 为空时使用错误本身的描述。
type MappedError struct {
	Target  error
	Code    int
	Message string
}

// CommonErrorRules 通用业务错误映射
var CommonErrorRules = []MappedError{
	{Target: service.ErrProductCodeExists, Code: response.CodeBadRequest, Message: "Product code already exists"},
	{Target: service.ErrProductInUse, Code: response.CodeConflict, Message: "Product has sell-in or sell-through records"},
	{Target: service.ErrValidation, Code: response.CodeUnprocessableEntity},
	{Target: service.ErrUnsupportedFile, Code: response.CodeBadRequest},
	{Target: service.ErrBadRequest, Code: response.CodeBadRequest},
}

// RequestLog 提供携带 request_id 的日志实例。
func RequestLog(c *gin.Context) *zap.SugaredLogger {
	if c == nil {
		return logger.S()
	}
	if requestID, ok := c.Get(constants.ContextKeyRequestID); ok {
		if id, ok := requestID.(string); ok && id != "" {
			return logger.SW("request_id", id)
		}
	}
	return logger.S()
}

// RespondError 返回错误响应；5xx 只对外返回统一提示，原始错误写入日志。
func RespondError(c *gin.Context, code int, msg string, err error) {
	appErr := response.WrapError(code, msg, err)
	if appErr.Internal() {
		RequestLog(c).Errorw("handler_error",
			"code", appErr.Code,
			"message", appErr.Message,
			"error", err,
		)
		response.Error(c, appErr.Code, response.MessageInternal)
		return
	}
	response.Error(c, appErr.Code, appErr.Message)
}

// RespondMappedError 按规则映射业务错误，未命中时按 500 处理。
func RespondMappedError(c *gin.Context, err error, rules ...[]MappedError) {
	for _, group := range rules {
		for _, rule := range group {
			if !errors.Is(err, rule.Target) {
				continue
			}
			msg := rule.Message
			if msg == "" {
				msg = err.Error()
			}
			RespondError(c, rule.Code, msg, nil)
			return
		}
	}
	RespondError(c, response.CodeInternal, response.MessageInternal, err)
}

// RespondServiceError 使用通用规则映射业务错误
func RespondServiceError(c *gin.Context, err error) {
	RespondMappedError(c, err, CommonErrorRules)
}
