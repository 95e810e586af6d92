package provider

import (
	"github.com/stocklens/internal/cache"
	"github.com/stocklens/internal/config"
	"github.com/stocklens/internal/repository"
	"github.com/stocklens/internal/service"

	"gorm.io/gorm"
)

// Container 依赖注入容器
type Container struct {
	Config *config.Config
	DB     *gorm.DB
	Redis  *cache.Redis

	// Repositories
	ProductRepo     repository.ProductRepository
	SellInRepo      repository.SellInRepository
	SellThroughRepo repository.SellThroughRepository
	AnalyticsRepo   repository.AnalyticsRepository

	// Services
	ProductService       *service.ProductService
	SellInService        *service.SellInService
	SellThroughService   *service.SellThroughService
	AnalyticsService     *service.AnalyticsService
	BulkService          *service.BulkService
	ProductImportService *service.ProductImportService
}

// NewContainer 初始化容器；redis 为 nil 时批量接口不限流
func NewContainer(cfg *config.Config, db *gorm.DB, redis *cache.Redis) *Container {
	c := &Container{
		Config: cfg,
		DB:     db,
		Redis:  redis,
	}

	// 1. 初始化 Repositories
	c.initRepositories()

	// 2. 初始化 Services
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	c.ProductRepo = repository.NewProductRepository(c.DB)
	c.SellInRepo = repository.NewSellInRepository(c.DB)
	c.SellThroughRepo = repository.NewSellThroughRepository(c.DB)
	c.AnalyticsRepo = repository.NewAnalyticsRepository(c.DB)
}

func (c *Container) initServices() {
	c.ProductService = service.NewProductService(c.ProductRepo)
	c.SellInService = service.NewSellInService(c.SellInRepo, c.ProductRepo)
	c.SellThroughService = service.NewSellThroughService(c.SellThroughRepo, c.ProductRepo)
	c.AnalyticsService = service.NewAnalyticsService(c.ProductRepo, c.SellInRepo, c.SellThroughRepo, c.AnalyticsRepo)
	c.BulkService = service.NewBulkService(c.ProductService, c.ProductRepo, c.Config.Bulk.MaxItems)
	c.ProductImportService = service.NewProductImportService(c.BulkService, c.Config.Bulk.MaxUploadBytes)
}
