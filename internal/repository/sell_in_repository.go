package repository

import (
	"context"
	"strings"

	"github.com/stocklens/internal/models"

	"gorm.io/gorm"
)

// SellInRepository 入库流水数据访问接口
type SellInRepository interface {
	List(ctx context.Context, filter TransactionFilter) ([]models.SellIn, error)
	Create(ctx context.Context, sellIn *models.SellIn) error
	WithTx(tx *gorm.DB) SellInRepository
}

// GormSellInRepository GORM 实现
type GormSellInRepository struct {
	db *gorm.DB
}

// NewSellInRepository 创建入库流水仓库
func NewSellInRepository(db *gorm.DB) *GormSellInRepository {
	return &GormSellInRepository{db: db}
}

// WithTx 绑定事务
func (r *GormSellInRepository) WithTx(tx *gorm.DB) SellInRepository {
	if tx == nil {
		return r
	}
	return &GormSellInRepository{db: tx}
}

// List 按商品/月份过滤入库流水，按 ID 升序
func (r *GormSellInRepository) List(ctx context.Context, filter TransactionFilter) ([]models.SellIn, error) {
	var rows []models.SellIn
	query := applyTransactionFilter(r.db.WithContext(ctx).Model(&models.SellIn{}), filter)
	if err := query.Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Create 创建入库流水
func (r *GormSellInRepository) Create(ctx context.Context, sellIn *models.SellIn) error {
	return r.db.WithContext(ctx).Create(sellIn).Error
}

func applyTransactionFilter(query *gorm.DB, filter TransactionFilter) *gorm.DB {
	if filter.ProductID != 0 {
		query = query.Where("product_id = ?", filter.ProductID)
	}
	if month := strings.TrimSpace(filter.Month); month != "" {
		query = query.Where("month_partition = ?", month)
	}
	return query
}
