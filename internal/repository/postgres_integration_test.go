//go:build integration
// +build integration

package repository

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/stocklens/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// setupPostgresIntegrationDB 初始化 PostgreSQL 集成测试数据库。
func setupPostgresIntegrationDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := strings.TrimSpace(os.Getenv("TEST_POSTGRES_DSN"))
	if dsn == "" {
		t.Skip("skip postgres integration test: TEST_POSTGRES_DSN is empty")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open postgres failed: %v", err)
	}

	cleanupModels := []interface{}{
		&models.SellThrough{},
		&models.SellIn{},
		&models.Product{},
	}
	_ = db.Migrator().DropTable(cleanupModels...)

	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("migrate postgres models failed: %v", err)
	}

	t.Cleanup(func() {
		_ = db.Migrator().DropTable(cleanupModels...)
		sqlDB, err := db.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}

func TestPostgresProductSearchIsCaseInsensitive(t *testing.T) {
	db := setupPostgresIntegrationDB(t)
	repo := NewProductRepository(db)
	createTestProduct(t, repo, "PG-100", "Cordless Drill", "Makita", "Power Tools")
	createTestProduct(t, repo, "PG-200", "Hand Saw", "Stanley", "Hand Tools")

	products, err := repo.Search(context.Background(), "DRILL")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(products) != 1 || products[0].ProductCode != "PG-100" {
		t.Fatalf("unexpected search result: %+v", products)
	}

	products, err = repo.Search(context.Background(), "100%")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(products) != 0 {
		t.Fatalf("wildcard should be escaped, got %+v", products)
	}
}

func TestPostgresMoneyAndDateRoundTrip(t *testing.T) {
	db := setupPostgresIntegrationDB(t)
	products := NewProductRepository(db)
	sellIns := NewSellInRepository(db)
	analytics := NewAnalyticsRepository(db)

	p := createTestProduct(t, products, "PG-300", "Drill", "Acme", "Tools")
	createTestSellIn(t, sellIns, p.ID, 4, "2024-05-31")

	rows, err := sellIns.List(context.Background(), TransactionFilter{ProductID: p.ID})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(rows) != 1 || rows[0].TransactionDate.String() != "2024-05-31" || rows[0].TotalCost.String() != "4.00" {
		t.Fatalf("unexpected rows: %+v", rows)
	}

	months, err := analytics.ListMonthPartitions(context.Background())
	if err != nil {
		t.Fatalf("list months failed: %v", err)
	}
	if len(months) != 1 || months[0] != "2024-05" {
		t.Fatalf("unexpected months: %v", months)
	}
}
