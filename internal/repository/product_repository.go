package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/stocklens/internal/models"

	"gorm.io/gorm"
)

// ProductRepository 商品数据访问接口
type ProductRepository interface {
	List(ctx context.Context, filter ProductListFilter) ([]models.Product, error)
	Count(ctx context.Context) (int64, error)
	GetByID(ctx context.Context, id uint) (*models.Product, error)
	GetByCode(ctx context.Context, code string) (*models.Product, error)
	Search(ctx context.Context, query string) ([]models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id uint) (bool, error)
	CountByCode(ctx context.Context, code string, excludeID uint) (int64, error)
	CountReferences(ctx context.Context, id uint) (int64, error)
	Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error
	WithTx(tx *gorm.DB) ProductRepository
}

// GormProductRepository GORM 实现
type GormProductRepository struct {
	db *gorm.DB
}

// NewProductRepository 创建商品仓库
func NewProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// WithTx 绑定事务
func (r *GormProductRepository) WithTx(tx *gorm.DB) ProductRepository {
	if tx == nil {
		return r
	}
	return &GormProductRepository{db: tx}
}

// Transaction 执行事务
func (r *GormProductRepository) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	if fn == nil {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(fn)
}

// List 商品列表，按 ID 升序；PageSize 为 0 时返回全部
func (r *GormProductRepository) List(ctx context.Context, filter ProductListFilter) ([]models.Product, error) {
	var products []models.Product
	err := r.db.WithContext(ctx).Model(&models.Product{}).
		Scopes(paginate(filter.Page, filter.PageSize)).
		Order("id ASC").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

// Count 商品总数
func (r *GormProductRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Product{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// GetByID 根据 ID 获取商品，不存在时返回 nil
func (r *GormProductRepository) GetByID(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

// GetByCode 根据商品编码获取商品，不存在时返回 nil
func (r *GormProductRepository) GetByCode(ctx context.Context, code string) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).Where("product_code = ?", code).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

// Search 按名称/编码/品牌/分类模糊搜索（不区分大小写），返回全部匹配项
func (r *GormProductRepository) Search(ctx context.Context, query string) ([]models.Product, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []models.Product{}, nil
	}
	like := "%" + escapeLike(strings.ToLower(query)) + "%"
	condition, argCount := buildLikeCondition(r.db, []string{"product_name", "product_code", "brand_name", "category_name"})

	var products []models.Product
	tx := r.db.WithContext(ctx).Model(&models.Product{}).Where(condition, repeatLikeArgs(like, argCount)...)
	if err := tx.Order("id ASC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// Create 创建商品
func (r *GormProductRepository) Create(ctx context.Context, product *models.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

// Update 更新商品（全字段保存）
func (r *GormProductRepository) Update(ctx context.Context, product *models.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

// Delete 删除商品，返回是否删除了记录
func (r *GormProductRepository) Delete(ctx context.Context, id uint) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&models.Product{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// CountByCode 统计商品编码数量，excludeID 非 0 时排除自身
func (r *GormProductRepository) CountByCode(ctx context.Context, code string, excludeID uint) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.Product{}).Where("product_code = ?", code)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountReferences 统计引用该商品的入库与销售流水数量
func (r *GormProductRepository) CountReferences(ctx context.Context, id uint) (int64, error) {
	var sellIns, sellThroughs int64
	if err := r.db.WithContext(ctx).Model(&models.SellIn{}).Where("product_id = ?", id).Count(&sellIns).Error; err != nil {
		return 0, err
	}
	if err := r.db.WithContext(ctx).Model(&models.SellThrough{}).Where("product_id = ?", id).Count(&sellThroughs).Error; err != nil {
		return 0, err
	}
	return sellIns + sellThroughs, nil
}
