package repository

import (
	"context"

	"gorm.io/gorm"
)

// AnalyticsRepository 分析辅助查询接口
// 说明：只读查询，不承载指标计算规则。
type AnalyticsRepository interface {
	ListMonthPartitions(ctx context.Context) ([]string, error)
}

// GormAnalyticsRepository GORM 实现
type GormAnalyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository 创建分析仓库
func NewAnalyticsRepository(db *gorm.DB) *GormAnalyticsRepository {
	return &GormAnalyticsRepository{db: db}
}

// ListMonthPartitions 返回入库与销售流水中出现过的月份分区，倒序
func (r *GormAnalyticsRepository) ListMonthPartitions(ctx context.Context) ([]string, error) {
	months := make([]string, 0)
	err := r.db.WithContext(ctx).Raw(
		"SELECT month_partition FROM sell_ins UNION SELECT month_partition FROM sell_throughs ORDER BY month_partition DESC",
	).Scan(&months).Error
	if err != nil {
		return nil, err
	}
	return months, nil
}
