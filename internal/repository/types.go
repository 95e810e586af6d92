package repository

// ProductListFilter 查询商品列表的分页条件，PageSize 为 0 表示不分页
type ProductListFilter struct {
	Page     int
	PageSize int
}

// TransactionFilter 入库/销售流水过滤条件，两个条件同时给出时取交集
type TransactionFilter struct {
	ProductID uint
	Month     string
}
