package models

import (
	"time"
)

// SellIn 入库流水（从经销商进货）
type SellIn struct {
	ID              uint      `gorm:"primarykey" json:"id"`                                                                                                 // 主键
	ProductID       uint      `gorm:"not null;index:idx_sell_ins_product_month,priority:1" json:"product_id"`                                               // 商品ID
	Quantity        int       `gorm:"not null" json:"quantity"`                                                                                             // 数量
	UnitCost        Money     `gorm:"type:decimal(10,2);not null" json:"unit_cost"`                                                                         // 单位成本
	TotalCost       Money     `gorm:"type:decimal(10,2);not null" json:"total_cost"`                                                                        // 总成本
	TransactionDate Date      `gorm:"type:date;not null" json:"transaction_date"`                                                                           // 交易日期
	MonthPartition  string    `gorm:"type:varchar(7);not null;index:idx_sell_ins_product_month,priority:2;index:idx_sell_ins_month" json:"month_partition"` // 月份分区 YYYY-MM
	Notes           *string   `gorm:"type:text" json:"notes"`                                                                                               // 备注
	CreatedAt       time.Time `json:"created_at"`                                                                                                           // 创建时间
}

// TableName 指定表名
func (SellIn) TableName() string {
	return "sell_ins"
}

// SellThrough 销售流水（售出给终端客户）
type SellThrough struct {
	ID              uint      `gorm:"primarykey" json:"id"`                                                                                                           // 主键
	ProductID       uint      `gorm:"not null;index:idx_sell_throughs_product_month,priority:1" json:"product_id"`                                                    // 商品ID
	Quantity        int       `gorm:"not null" json:"quantity"`                                                                                                       // 数量
	UnitPrice       Money     `gorm:"type:decimal(10,2);not null" json:"unit_price"`                                                                                  // 单价
	TotalRevenue    Money     `gorm:"type:decimal(10,2);not null" json:"total_revenue"`                                                                               // 销售额
	TransactionDate Date      `gorm:"type:date;not null" json:"transaction_date"`                                                                                     // 交易日期
	MonthPartition  string    `gorm:"type:varchar(7);not null;index:idx_sell_throughs_product_month,priority:2;index:idx_sell_throughs_month" json:"month_partition"` // 月份分区 YYYY-MM
	CustomerInfo    *string   `gorm:"type:text" json:"customer_info"`                                                                                                 // 客户信息
	CreatedAt       time.Time `json:"created_at"`                                                                                                                     // 创建时间
}

// TableName 指定表名
func (SellThrough) TableName() string {
	return "sell_throughs"
}
