package service

import (
	"context"
	"math"
	"sort"

	"github.com/stocklens/internal/logger"
	"github.com/stocklens/internal/models"
	"github.com/stocklens/internal/repository"

	"golang.org/x/sync/errgroup"
)

// AnalyticsQuery 分析查询条件，ProductID 为 0 表示全部商品
type AnalyticsQuery struct {
	ProductID uint
	Month     string
}

// AnalyticsService 库存周转分析服务（每次请求实时计算）
type AnalyticsService struct {
	productRepo     repository.ProductRepository
	sellInRepo      repository.SellInRepository
	sellThroughRepo repository.SellThroughRepository
	analyticsRepo   repository.AnalyticsRepository
}

// NewAnalyticsService 创建分析服务
func NewAnalyticsService(
	productRepo repository.ProductRepository,
	sellInRepo repository.SellInRepository,
	sellThroughRepo repository.SellThroughRepository,
	analyticsRepo repository.AnalyticsRepository,
) *AnalyticsService {
	return &AnalyticsService{
		productRepo:     productRepo,
		sellInRepo:      sellInRepo,
		sellThroughRepo: sellThroughRepo,
		analyticsRepo:   analyticsRepo,
	}
}

// ProductAnalytics 计算商品维度分析，按收入倒序
func (s *AnalyticsService) ProductAnalytics(ctx context.Context, query AnalyticsQuery) ([]models.ProductAnalytics, error) {
	month, err := ValidateMonthFilter(query.Month)
	if err != nil {
		return nil, err
	}
	filter := repository.TransactionFilter{ProductID: query.ProductID, Month: month}

	var (
		products     []models.Product
		sellIns      []models.SellIn
		sellThroughs []models.SellThrough
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		products, err = s.candidateProducts(gctx, query.ProductID)
		return err
	})
	g.Go(func() error {
		var err error
		sellIns, err = s.sellInRepo.List(gctx, filter)
		return err
	})
	g.Go(func() error {
		var err error
		sellThroughs, err = s.sellThroughRepo.List(gctx, filter)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := BuildProductAnalytics(products, sellIns, sellThroughs)
	logger.Debugw("analytics_computed",
		"scope", "products",
		"product_id", query.ProductID,
		"month", month,
		"products", len(result),
		"sell_ins", len(sellIns),
		"sell_throughs", len(sellThroughs),
	)
	return result, nil
}

// OverallAnalytics 计算全量汇总分析（不按商品过滤）
func (s *AnalyticsService) OverallAnalytics(ctx context.Context, monthFilter string) (*models.OverallAnalytics, error) {
	month, err := ValidateMonthFilter(monthFilter)
	if err != nil {
		return nil, err
	}
	filter := repository.TransactionFilter{Month: month}

	var (
		sellIns      []models.SellIn
		sellThroughs []models.SellThrough
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		sellIns, err = s.sellInRepo.List(gctx, filter)
		return err
	})
	g.Go(func() error {
		var err error
		sellThroughs, err = s.sellThroughRepo.List(gctx, filter)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	overall := BuildOverallAnalytics(sellIns, sellThroughs)
	logger.Debugw("analytics_computed",
		"scope", "overall",
		"month", month,
		"sell_ins", len(sellIns),
		"sell_throughs", len(sellThroughs),
	)
	return &overall, nil
}

// Months 返回出现过的月份分区，最新在前
func (s *AnalyticsService) Months(ctx context.Context) ([]string, error) {
	return s.analyticsRepo.ListMonthPartitions(ctx)
}

func (s *AnalyticsService) candidateProducts(ctx context.Context, productID uint) ([]models.Product, error) {
	if productID == 0 {
		return s.productRepo.List(ctx, repository.ProductListFilter{})
	}
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return []models.Product{}, nil
	}
	return []models.Product{*product}, nil
}

type productTotals struct {
	sellIn      int64
	sellThrough int64
	revenue     float64
}

// BuildProductAnalytics 按商品聚合流水，每个候选商品输出一条记录（无流水时全部为 0）
// 结果按总收入倒序，收入相同保持候选商品原有顺序。
func BuildProductAnalytics(products []models.Product, sellIns []models.SellIn, sellThroughs []models.SellThrough) []models.ProductAnalytics {
	totals := make(map[uint]*productTotals, len(products))
	for i := range products {
		totals[products[i].ID] = &productTotals{}
	}
	for i := range sellIns {
		if t, ok := totals[sellIns[i].ProductID]; ok {
			t.sellIn += int64(sellIns[i].Quantity)
		}
	}
	for i := range sellThroughs {
		if t, ok := totals[sellThroughs[i].ProductID]; ok {
			t.sellThrough += int64(sellThroughs[i].Quantity)
			t.revenue += sellThroughs[i].TotalRevenue.Float64()
		}
	}

	result := make([]models.ProductAnalytics, 0, len(products))
	for i := range products {
		product := &products[i]
		t := totals[product.ID]
		result = append(result, models.ProductAnalytics{
			ProductID:           product.ID,
			ProductName:         product.ProductName,
			ProductCode:         product.ProductCode,
			BrandName:           product.BrandName,
			SellInQuantity:      t.sellIn,
			SellThroughQuantity: t.sellThrough,
			TurnoverRate:        TurnoverRate(t.sellIn, t.sellThrough),
			TotalRevenue:        t.revenue,
			CurrentStock:        t.sellIn - t.sellThrough,
		})
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].TotalRevenue > result[j].TotalRevenue
	})
	return result
}

// BuildOverallAnalytics 汇总全部流水
func BuildOverallAnalytics(sellIns []models.SellIn, sellThroughs []models.SellThrough) models.OverallAnalytics {
	var overall models.OverallAnalytics
	for i := range sellIns {
		overall.TotalSellIn += int64(sellIns[i].Quantity)
	}
	for i := range sellThroughs {
		overall.TotalSellThrough += int64(sellThroughs[i].Quantity)
		overall.TotalRevenue += sellThroughs[i].TotalRevenue.Float64()
	}
	overall.AverageTurnoverRate = TurnoverRate(overall.TotalSellIn, overall.TotalSellThrough)
	return overall
}

// TurnoverRate 周转率（百分比，保留 1 位小数），入库为 0 时返回 0
func TurnoverRate(sellIn, sellThrough int64) float64 {
	if sellIn == 0 {
		return 0
	}
	return roundOneDecimal(float64(sellThrough) / float64(sellIn) * 100)
}

func roundOneDecimal(value float64) float64 {
	return math.Round(value*10) / 10
}
