package response

import "net/http"

const (
	CodeBadRequest          = http.StatusBadRequest
	CodeUnauthorized        = http.StatusUnauthorized
	CodeForbidden           = http.StatusForbidden
	CodeNotFound            = http.StatusNotFound
	CodeConflict            = http.StatusConflict
	CodeRequestTooLarge     = http.StatusRequestEntityTooLarge
	CodeUnprocessableEntity = http.StatusUnprocessableEntity
	CodeTooManyRequests     = http.StatusTooManyRequests
	CodeInternal            = http.StatusInternalServerError
	CodeServiceUnavailable  = http.StatusServiceUnavailable
)

// MessageInternal 500 对外统一提示，错误细节只写日志
const MessageInternal = "Internal Server Error"
