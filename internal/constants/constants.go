package constants

// 商品默认值
const (
	ProductAvailabilityInStock = "In Stock"
	ProductStatusActive        = "Active"
	ProductDefaultPackSize     = 1
)

// 月份分区
const (
	MonthPartitionLength  = 7
	MonthPartitionLayout  = "2006-01"
	TransactionDateLayout = "2006-01-02"
)

// 搜索与分页
const (
	ProductSearchMinLength = 2
	ProductDefaultPageSize = 50
)

// 批量导入
const (
	BulkDefaultMaxItems       = 5000
	BulkDefaultMaxUploadBytes = 10 << 20
	BulkUploadFormField       = "file"
)

// 请求上下文键
const (
	ContextKeyRequestID = "request_id"
	ContextKeySubject   = "auth_subject"
)
