package service

import (
	"context"
	"unicode/utf8"

	"github.com/stocklens/internal/constants"
	"github.com/stocklens/internal/models"
	"github.com/stocklens/internal/repository"

	"gorm.io/gorm"
)

// ProductService 商品业务服务
type ProductService struct {
	repo repository.ProductRepository
}

// NewProductService 创建商品服务
func NewProductService(repo repository.ProductRepository) *ProductService {
	return &ProductService{repo: repo}
}

// ProductListQuery 商品列表分页参数，Page 与 PageSize 均为 0 时返回全部商品
type ProductListQuery struct {
	Page     int
	PageSize int
}

// List 获取商品列表，同时返回商品总数
func (s *ProductService) List(ctx context.Context, q ProductListQuery) ([]models.Product, int64, error) {
	if q.Page < 0 || q.PageSize < 0 {
		return nil, 0, ErrBadRequest
	}
	if q.Page > 0 && q.PageSize == 0 {
		q.PageSize = constants.ProductDefaultPageSize
	}
	products, err := s.repo.List(ctx, repository.ProductListFilter{Page: q.Page, PageSize: q.PageSize})
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

// Get 获取商品详情
func (s *ProductService) Get(ctx context.Context, id uint) (*models.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}
	return product, nil
}

// Search 搜索商品并返回全部匹配项，关键字少于 2 个字符时直接返回空列表，不访问存储
func (s *ProductService) Search(ctx context.Context, query string) ([]models.Product, error) {
	if utf8.RuneCountInString(query) < constants.ProductSearchMinLength {
		return []models.Product{}, nil
	}
	return s.repo.Search(ctx, query)
}

// Create 创建商品，编码重复时返回 ErrProductCodeExists 且不写入
func (s *ProductService) Create(ctx context.Context, input ProductInput) (*models.Product, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	product := input.ToModel()
	err := s.repo.Transaction(ctx, func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)
		count, err := txRepo.CountByCode(ctx, product.ProductCode, 0)
		if err != nil {
			return err
		}
		if count > 0 {
			return ErrProductCodeExists
		}
		return txRepo.Create(ctx, product)
	})
	if err != nil {
		return nil, err
	}
	return product, nil
}

// Update 部分更新商品
func (s *ProductService) Update(ctx context.Context, id uint, patch ProductPatch) (*models.Product, error) {
	var updated *models.Product
	err := s.repo.Transaction(ctx, func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)
		product, err := txRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if product == nil {
			return ErrNotFound
		}
		previousCode := product.ProductCode
		if err := patch.Apply(product); err != nil {
			return err
		}
		if previousCode != product.ProductCode {
			count, err := txRepo.CountByCode(ctx, product.ProductCode, product.ID)
			if err != nil {
				return err
			}
			if count > 0 {
				return ErrProductCodeExists
			}
		}
		if err := txRepo.Update(ctx, product); err != nil {
			return err
		}
		updated = product
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete 删除商品；仍有入库或销售流水时拒绝删除
func (s *ProductService) Delete(ctx context.Context, id uint) error {
	return s.repo.Transaction(ctx, func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)
		product, err := txRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if product == nil {
			return ErrNotFound
		}
		refs, err := txRepo.CountReferences(ctx, id)
		if err != nil {
			return err
		}
		if refs > 0 {
			return ErrProductInUse
		}
		deleted, err := txRepo.Delete(ctx, id)
		if err != nil {
			return err
		}
		if !deleted {
			return ErrNotFound
		}
		return nil
	})
}

// Exists 判断商品是否存在
func (s *ProductService) Exists(ctx context.Context, id uint) (bool, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	return product != nil, nil
}
