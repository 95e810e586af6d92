package service

import (
	"context"
	"strings"

	"github.com/stocklens/internal/models"
	"github.com/stocklens/internal/repository"

	"gorm.io/gorm"
)

// SellInInput 创建入库流水输入
type SellInInput struct {
	ProductID       uint          `json:"product_id" validate:"required"`
	Quantity        *int          `json:"quantity" validate:"required,min=0"`
	UnitCost        *models.Money `json:"unit_cost" validate:"required"`
	TotalCost       *models.Money `json:"total_cost" validate:"required"`
	TransactionDate *models.Date  `json:"transaction_date" validate:"required"`
	MonthPartition  string        `json:"month_partition" validate:"omitempty,month_partition"`
	Notes           *string       `json:"notes"`
}

// SellThroughInput 创建销售流水输入
type SellThroughInput struct {
	ProductID       uint          `json:"product_id" validate:"required"`
	Quantity        *int          `json:"quantity" validate:"required,min=0"`
	UnitPrice       *models.Money `json:"unit_price" validate:"required"`
	TotalRevenue    *models.Money `json:"total_revenue" validate:"required"`
	TransactionDate *models.Date  `json:"transaction_date" validate:"required"`
	MonthPartition  string        `json:"month_partition" validate:"omitempty,month_partition"`
	CustomerInfo    *string       `json:"customer_info"`
}

// TransactionQuery 流水查询条件
type TransactionQuery struct {
	ProductID uint
	Month     string
}

// resolveMonthPartition 未提供月份分区时按交易日期推导
func resolveMonthPartition(month string, date *models.Date) string {
	month = strings.TrimSpace(month)
	if month == "" && date != nil {
		return date.MonthPartition()
	}
	return month
}

func (q TransactionQuery) toFilter() (repository.TransactionFilter, error) {
	month, err := ValidateMonthFilter(q.Month)
	if err != nil {
		return repository.TransactionFilter{}, err
	}
	return repository.TransactionFilter{ProductID: q.ProductID, Month: month}, nil
}

// ensureProductExists 在事务内确认商品存在
func ensureProductExists(ctx context.Context, productRepo repository.ProductRepository, id uint) error {
	product, err := productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return newValidationError("product_id", "product %d not found", id)
	}
	return nil
}

// SellInService 入库流水服务
type SellInService struct {
	repo        repository.SellInRepository
	productRepo repository.ProductRepository
}

// NewSellInService 创建入库流水服务
func NewSellInService(repo repository.SellInRepository, productRepo repository.ProductRepository) *SellInService {
	return &SellInService{repo: repo, productRepo: productRepo}
}

// List 按商品/月份查询入库流水
func (s *SellInService) List(ctx context.Context, query TransactionQuery) ([]models.SellIn, error) {
	filter, err := query.toFilter()
	if err != nil {
		return nil, err
	}
	return s.repo.List(ctx, filter)
}

// Create 创建入库流水
func (s *SellInService) Create(ctx context.Context, input SellInInput) (*models.SellIn, error) {
	input.MonthPartition = resolveMonthPartition(input.MonthPartition, input.TransactionDate)
	if err := validateStruct(&input); err != nil {
		return nil, err
	}
	row := &models.SellIn{
		ProductID:       input.ProductID,
		Quantity:        *input.Quantity,
		UnitCost:        *input.UnitCost,
		TotalCost:       *input.TotalCost,
		TransactionDate: *input.TransactionDate,
		MonthPartition:  input.MonthPartition,
		Notes:           input.Notes,
	}
	err := s.productRepo.Transaction(ctx, func(tx *gorm.DB) error {
		if err := ensureProductExists(ctx, s.productRepo.WithTx(tx), row.ProductID); err != nil {
			return err
		}
		return s.repo.WithTx(tx).Create(ctx, row)
	})
	if err != nil {
		return nil, err
	}
	return row, nil
}

// SellThroughService 销售流水服务
type SellThroughService struct {
	repo        repository.SellThroughRepository
	productRepo repository.ProductRepository
}

// NewSellThroughService 创建销售流水服务
func NewSellThroughService(repo repository.SellThroughRepository, productRepo repository.ProductRepository) *SellThroughService {
	return &SellThroughService{repo: repo, productRepo: productRepo}
}

// List 按商品/月份查询销售流水
func (s *SellThroughService) List(ctx context.Context, query TransactionQuery) ([]models.SellThrough, error) {
	filter, err := query.toFilter()
	if err != nil {
		return nil, err
	}
	return s.repo.List(ctx, filter)
}

// Create 创建销售流水
func (s *SellThroughService) Create(ctx context.Context, input SellThroughInput) (*models.SellThrough, error) {
	input.MonthPartition = resolveMonthPartition(input.MonthPartition, input.TransactionDate)
	if err := validateStruct(&input); err != nil {
		return nil, err
	}
	row := &models.SellThrough{
		ProductID:       input.ProductID,
		Quantity:        *input.Quantity,
		UnitPrice:       *input.UnitPrice,
		TotalRevenue:    *input.TotalRevenue,
		TransactionDate: *input.TransactionDate,
		MonthPartition:  input.MonthPartition,
		CustomerInfo:    input.CustomerInfo,
	}
	err := s.productRepo.Transaction(ctx, func(tx *gorm.DB) error {
		if err := ensureProductExists(ctx, s.productRepo.WithTx(tx), row.ProductID); err != nil {
			return err
		}
		return s.repo.WithTx(tx).Create(ctx, row)
	})
	if err != nil {
		return nil, err
	}
	return row, nil
}
