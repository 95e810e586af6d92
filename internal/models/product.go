package models

import (
	"time"
)

// Product 商品表
type Product struct {
	ID                       uint      `gorm:"primarykey" json:"id"`                                // 主键
	DistributorName          string    `gorm:"type:text;not null" json:"distributor_name"`          // 经销商
	BrandName                string    `gorm:"type:text;not null;index" json:"brand_name"`          // 品牌
	ProductCode              string    `gorm:"type:text;not null;uniqueIndex" json:"product_code"`  // 商品编码（全局唯一）
	ProductSecondaryCode     *string   `gorm:"type:text" json:"product_secondary_code"`             // 副编码
	ProductName              string    `gorm:"type:text;not null" json:"product_name"`              // 商品名称
	Description              *string   `gorm:"type:text" json:"description"`                        // 描述
	Summary                  *string   `gorm:"type:text" json:"summary"`                            // 摘要
	ShippingClass            *string   `gorm:"type:text" json:"shipping_class"`                     // 运输类别
	CategoryName             string    `gorm:"type:text;not null;index" json:"category_name"`       // 分类名称
	ProductAvailability      string    `gorm:"type:text;not null" json:"product_availability"`      // 供货状态
	Status                   string    `gorm:"type:text;not null" json:"status"`                    // 生命周期状态
	Online                   bool      `gorm:"not null" json:"online"`                              // 是否在线
	SupercededBy             *string   `gorm:"column:superceded_by;type:text" json:"superceded_by"` // 替代商品编码
	EAN                      *string   `gorm:"column:ean;type:text" json:"ean"`                     // EAN 条码
	PackSize                 int       `gorm:"not null" json:"pack_size"`                           // 包装数量
	MWP                      *Money    `gorm:"column:mwp;type:decimal(10,2)" json:"mwp"`            // 最低广告价
	Trade                    Money     `gorm:"type:decimal(10,2);not null" json:"trade"`            // 批发价
	Go                       *Money    `gorm:"column:go;type:decimal(10,2)" json:"go"`              // 促销价
	RRP                      Money     `gorm:"column:rrp;type:decimal(10,2);not null" json:"rrp"`   // 建议零售价
	CoreGroup                *string   `gorm:"type:text" json:"core_group"`                         // 核心分组
	TaxExmt                  bool      `gorm:"column:tax_exmt;not null" json:"tax_exmt"`            // 是否免税
	Hyperlink                *string   `gorm:"type:text" json:"hyperlink"`                          // 链接
	WebTitle                 *string   `gorm:"type:text" json:"web_title"`                          // 网页标题
	FeaturesAndBenefitsCodes *string   `gorm:"type:text" json:"features_and_benefits_codes"`        // 卖点编码（分隔文本）
	BadgesCodes              *string   `gorm:"type:text" json:"badges_codes"`                       // 徽章编码（分隔文本）
	StockUnmanaged           bool      `gorm:"not null" json:"stock_unmanaged"`                     // 不管理库存
	CreatedAt                time.Time `gorm:"index" json:"created_at"`                             // 创建时间
	UpdatedAt                time.Time `json:"updated_at"`                                          // 更新时间
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}
