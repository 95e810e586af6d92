package repository

import (
	"context"

	"github.com/stocklens/internal/models"

	"gorm.io/gorm"
)

// SellThroughRepository 销售流水数据访问接口
type SellThroughRepository interface {
	List(ctx context.Context, filter TransactionFilter) ([]models.SellThrough, error)
	Create(ctx context.Context, sellThrough *models.SellThrough) error
	WithTx(tx *gorm.DB) SellThroughRepository
}

// GormSellThroughRepository GORM 实现
type GormSellThroughRepository struct {
	db *gorm.DB
}

// NewSellThroughRepository 创建销售流水仓库
func NewSellThroughRepository(db *gorm.DB) *GormSellThroughRepository {
	return &GormSellThroughRepository{db: db}
}

// WithTx 绑定事务
func (r *GormSellThroughRepository) WithTx(tx *gorm.DB) SellThroughRepository {
	if tx == nil {
		return r
	}
	return &GormSellThroughRepository{db: tx}
}

// List 按商品/月份过滤销售流水，按 ID 升序
func (r *GormSellThroughRepository) List(ctx context.Context, filter TransactionFilter) ([]models.SellThrough, error) {
	var rows []models.SellThrough
	query := applyTransactionFilter(r.db.WithContext(ctx).Model(&models.SellThrough{}), filter)
	if err := query.Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Create 创建销售流水
func (r *GormSellThroughRepository) Create(ctx context.Context, sellThrough *models.SellThrough) error {
	return r.db.WithContext(ctx).Create(sellThrough).Error
}
