package main

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/stocklens/internal/config"
	"github.com/stocklens/internal/logger"
	"github.com/stocklens/internal/models"
	"github.com/stocklens/internal/provider"
	"github.com/stocklens/internal/service"
)

type seedProduct struct {
	code     string
	name     string
	brand    string
	category string
	trade    float64
	rrp      float64
}

// 演示数据：每个商品按月写入一笔入库和一笔销售
var seedProducts = []seedProduct{
	{code: "ACME-001", name: "Cordless Drill 18V", brand: "Acme", category: "Power Tools", trade: 89.5, rrp: 129},
	{code: "ACME-002", name: "Impact Driver 18V", brand: "Acme", category: "Power Tools", trade: 99, rrp: 149},
	{code: "BOLT-010", name: "Hex Bolt M8 (100)", brand: "Boltworks", category: "Fasteners", trade: 7.2, rrp: 11.5},
	{code: "GRIP-200", name: "Work Gloves L", brand: "Grip", category: "Safety", trade: 4.8, rrp: 9.95},
}

var seedMonths = []string{"2024-03-05", "2024-04-05", "2024-05-05"}

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Errorw("config_load_failed", "error", err)
		os.Exit(1)
	}
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	defer logger.Sync()

	db, err := models.OpenDB(models.DBOptions{
		Driver: models.NormalizeDriver(cfg.Database.Driver),
		DSN:    cfg.Database.DSN,
		Pool: models.DBPoolConfig{
			MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
			MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
			ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
			ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
		},
		Logger: logger.Z(),
	})
	if err != nil {
		logger.Errorw("database_open_failed", "error", err)
		os.Exit(1)
	}
	if err := models.AutoMigrate(db); err != nil {
		logger.Errorw("database_migrate_failed", "error", err)
		os.Exit(1)
	}

	container := provider.NewContainer(cfg, db, nil)
	if err := seed(context.Background(), container); err != nil {
		logger.Errorw("seed_failed", "error", err)
		os.Exit(1)
	}
	logger.Infow("seed_completed", "products", len(seedProducts), "months", len(seedMonths))
}

func seed(ctx context.Context, c *provider.Container) error {
	for i, item := range seedProducts {
		product, err := c.ProductService.Create(ctx, seedProductInput(item))
		if errors.Is(err, service.ErrProductCodeExists) {
			logger.Infow("seed_product_exists", "product_code", item.code)
			continue
		}
		if err != nil {
			return err
		}

		for m, day := range seedMonths {
			date, err := models.ParseDate(day)
			if err != nil {
				return err
			}
			inQty := 20 + 5*i
			outQty := 8 + 3*m + i
			unitCost := models.NewMoneyFromFloat(item.trade)
			totalCost := models.NewMoneyFromFloat(item.trade * float64(inQty))
			if _, err := c.SellInService.Create(ctx, service.SellInInput{
				ProductID:       product.ID,
				Quantity:        &inQty,
				UnitCost:        &unitCost,
				TotalCost:       &totalCost,
				TransactionDate: &date,
			}); err != nil {
				return err
			}

			sellDate := models.NewDate(date.Time.Add(10 * 24 * time.Hour))
			unitPrice := models.NewMoneyFromFloat(item.rrp)
			revenue := models.NewMoneyFromFloat(item.rrp * float64(outQty))
			if _, err := c.SellThroughService.Create(ctx, service.SellThroughInput{
				ProductID:       product.ID,
				Quantity:        &outQty,
				UnitPrice:       &unitPrice,
				TotalRevenue:    &revenue,
				TransactionDate: &sellDate,
			}); err != nil {
				return err
			}
		}
	}
	return nil
}

func seedProductInput(item seedProduct) service.ProductInput {
	trade := models.NewMoneyFromFloat(item.trade)
	rrp := models.NewMoneyFromFloat(item.rrp)
	return service.ProductInput{
		DistributorName: "Northwind Supply",
		BrandName:       item.brand,
		ProductCode:     item.code,
		ProductName:     item.name,
		CategoryName:    item.category,
		Trade:           &trade,
		RRP:             &rrp,
	}
}
