package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stocklens/internal/models"
	"github.com/stocklens/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

type testServices struct {
	db           *gorm.DB
	products     *ProductService
	sellIns      *SellInService
	sellThroughs *SellThroughService
	analytics    *AnalyticsService
	bulk         *BulkService
	imports      *ProductImportService
}

func setupServiceTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db failed: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	return db
}

func newTestServices(t *testing.T) *testServices {
	t.Helper()
	db := setupServiceTestDB(t)
	productRepo := repository.NewProductRepository(db)
	sellInRepo := repository.NewSellInRepository(db)
	sellThroughRepo := repository.NewSellThroughRepository(db)
	products := NewProductService(productRepo)
	bulk := NewBulkService(products, productRepo, 10)
	return &testServices{
		db:           db,
		products:     products,
		sellIns:      NewSellInService(sellInRepo, productRepo),
		sellThroughs: NewSellThroughService(sellThroughRepo, productRepo),
		analytics:    NewAnalyticsService(productRepo, sellInRepo, sellThroughRepo, repository.NewAnalyticsRepository(db)),
		bulk:         bulk,
		imports:      NewProductImportService(bulk, 1<<20),
	}
}

func moneyPtr(v float64) *models.Money {
	m := models.NewMoneyFromFloat(v)
	return &m
}

func intPtr(v int) *int {
	return &v
}

func datePtr(t *testing.T, raw string) *models.Date {
	t.Helper()
	d, err := models.ParseDate(raw)
	if err != nil {
		t.Fatalf("parse date failed: %v", err)
	}
	return &d
}

func validProductInput(code string) ProductInput {
	return ProductInput{
		DistributorName: "Acme Distribution",
		BrandName:       "Acme",
		ProductCode:     code,
		ProductName:     "Widget " + code,
		CategoryName:    "Widgets",
		Trade:           moneyPtr(10),
		RRP:             moneyPtr(12),
	}
}

func mustCreateProduct(t *testing.T, svc *testServices, code string) *models.Product {
	t.Helper()
	product, err := svc.products.Create(context.Background(), validProductInput(code))
	if err != nil {
		t.Fatalf("create product %s failed: %v", code, err)
	}
	return product
}

func mustSellIn(t *testing.T, svc *testServices, productID uint, qty int, date string) {
	t.Helper()
	_, err := svc.sellIns.Create(context.Background(), SellInInput{
		ProductID:       productID,
		Quantity:        intPtr(qty),
		UnitCost:        moneyPtr(5),
		TotalCost:       moneyPtr(float64(qty) * 5),
		TransactionDate: datePtr(t, date),
	})
	if err != nil {
		t.Fatalf("create sell-in failed: %v", err)
	}
}

func mustSellThrough(t *testing.T, svc *testServices, productID uint, qty int, revenue float64, date string) {
	t.Helper()
	_, err := svc.sellThroughs.Create(context.Background(), SellThroughInput{
		ProductID:       productID,
		Quantity:        intPtr(qty),
		UnitPrice:       moneyPtr(2),
		TotalRevenue:    moneyPtr(revenue),
		TransactionDate: datePtr(t, date),
	})
	if err != nil {
		t.Fatalf("create sell-through failed: %v", err)
	}
}
