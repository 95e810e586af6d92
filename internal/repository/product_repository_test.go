package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stocklens/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupRepositoryTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:repository_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	return db
}

func createTestProduct(t *testing.T, repo *GormProductRepository, code, name, brand, category string) *models.Product {
	t.Helper()
	product := &models.Product{
		DistributorName:     "Acme Distribution",
		BrandName:           brand,
		ProductCode:         code,
		ProductName:         name,
		CategoryName:        category,
		ProductAvailability: "In Stock",
		Status:              "Active",
		Online:              true,
		PackSize:            1,
		Trade:               models.NewMoneyFromFloat(10),
		RRP:                 models.NewMoneyFromFloat(12),
	}
	if err := repo.Create(context.Background(), product); err != nil {
		t.Fatalf("create product %s failed: %v", code, err)
	}
	return product
}

func TestProductRepositoryCRUD(t *testing.T) {
	db := setupRepositoryTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	product := createTestProduct(t, repo, "P-100", "Cordless Drill", "Makita", "Power Tools")
	if product.ID == 0 {
		t.Fatalf("expected assigned id")
	}
	if product.CreatedAt.IsZero() || product.UpdatedAt.IsZero() {
		t.Fatalf("expected server assigned timestamps")
	}

	got, err := repo.GetByID(ctx, product.ID)
	if err != nil || got == nil {
		t.Fatalf("get by id failed: %v", err)
	}
	if got.ProductCode != "P-100" {
		t.Fatalf("code want P-100 got %s", got.ProductCode)
	}

	byCode, err := repo.GetByCode(ctx, "P-100")
	if err != nil || byCode == nil || byCode.ID != product.ID {
		t.Fatalf("get by code mismatch: %+v err=%v", byCode, err)
	}

	missing, err := repo.GetByID(ctx, 9999)
	if err != nil {
		t.Fatalf("missing lookup should not error: %v", err)
	}
	if missing != nil {
		t.Fatalf("missing lookup should return nil")
	}

	got.ProductName = "Cordless Drill 18V"
	if err := repo.Update(ctx, got); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	reloaded, _ := repo.GetByID(ctx, product.ID)
	if reloaded.ProductName != "Cordless Drill 18V" {
		t.Fatalf("update not persisted: %s", reloaded.ProductName)
	}

	deleted, err := repo.Delete(ctx, product.ID)
	if err != nil || !deleted {
		t.Fatalf("delete want true got %v err=%v", deleted, err)
	}
	deleted, err = repo.Delete(ctx, product.ID)
	if err != nil || deleted {
		t.Fatalf("second delete want false got %v err=%v", deleted, err)
	}
}

func TestProductRepositoryUniqueCode(t *testing.T) {
	db := setupRepositoryTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	first := createTestProduct(t, repo, "DUP-1", "Hammer", "Stanley", "Hand Tools")
	dup := &models.Product{
		DistributorName: "x", BrandName: "x", ProductCode: "DUP-1", ProductName: "x", CategoryName: "x",
		ProductAvailability: "In Stock", Status: "Active", PackSize: 1,
	}
	if err := repo.Create(ctx, dup); err == nil {
		t.Fatalf("expected unique index violation")
	}

	count, err := repo.CountByCode(ctx, "DUP-1", 0)
	if err != nil || count != 1 {
		t.Fatalf("count want 1 got %d err=%v", count, err)
	}
	count, err = repo.CountByCode(ctx, "DUP-1", first.ID)
	if err != nil || count != 0 {
		t.Fatalf("count excluding self want 0 got %d err=%v", count, err)
	}
}

func TestProductRepositorySearchCaseInsensitive(t *testing.T) {
	db := setupRepositoryTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	createTestProduct(t, repo, "MK-1", "Cordless Drill", "Makita", "Power Tools")
	createTestProduct(t, repo, "ST-1", "Claw Hammer", "Stanley", "Hand Tools")
	createTestProduct(t, repo, "BO-1", "Laser Level", "Bosch", "Measuring")

	cases := []struct {
		query string
		want  []string
	}{
		{query: "drill", want: []string{"MK-1"}},
		{query: "STANLEY", want: []string{"ST-1"}},
		{query: "tools", want: []string{"MK-1", "ST-1"}},
		{query: "bo-", want: []string{"BO-1"}},
		{query: "100%", want: []string{}},
	}
	for _, tc := range cases {
		t.Run(tc.query, func(t *testing.T) {
			products, err := repo.Search(ctx, tc.query)
			if err != nil {
				t.Fatalf("search failed: %v", err)
			}
			if len(products) != len(tc.want) {
				t.Fatalf("search %q want %d rows got %d", tc.query, len(tc.want), len(products))
			}
			for i, code := range tc.want {
				if products[i].ProductCode != code {
					t.Fatalf("search %q row %d want %s got %s", tc.query, i, code, products[i].ProductCode)
				}
			}
		})
	}
}

func TestProductRepositoryListAndReferences(t *testing.T) {
	db := setupRepositoryTestDB(t)
	repo := NewProductRepository(db)
	sellIns := NewSellInRepository(db)
	ctx := context.Background()

	a := createTestProduct(t, repo, "A", "Alpha", "Brand", "Cat")
	b := createTestProduct(t, repo, "B", "Beta", "Brand", "Cat")

	all, err := repo.List(ctx, ProductListFilter{})
	if err != nil || len(all) != 2 {
		t.Fatalf("list want 2 got %d err=%v", len(all), err)
	}
	if all[0].ID != a.ID || all[1].ID != b.ID {
		t.Fatalf("list should be ordered by id")
	}

	total, err := repo.Count(ctx)
	if err != nil || total != 2 {
		t.Fatalf("count want 2 got %d err=%v", total, err)
	}

	refs, err := repo.CountReferences(ctx, a.ID)
	if err != nil || refs != 0 {
		t.Fatalf("references want 0 got %d err=%v", refs, err)
	}
	if err := sellIns.Create(ctx, &models.SellIn{
		ProductID:       a.ID,
		Quantity:        5,
		UnitCost:        models.NewMoneyFromFloat(1),
		TotalCost:       models.NewMoneyFromFloat(5),
		TransactionDate: models.NewDate(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)),
		MonthPartition:  "2024-02",
	}); err != nil {
		t.Fatalf("create sell-in failed: %v", err)
	}
	refs, err = repo.CountReferences(ctx, a.ID)
	if err != nil || refs != 1 {
		t.Fatalf("references want 1 got %d err=%v", refs, err)
	}
}

func TestProductRepositoryListPaging(t *testing.T) {
	db := setupRepositoryTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	var ids []uint
	for i := 0; i < 5; i++ {
		p := createTestProduct(t, repo, fmt.Sprintf("PG-%d", i), "Paged", "Brand", "Cat")
		ids = append(ids, p.ID)
	}

	cases := []struct {
		name   string
		filter ProductListFilter
		want   []uint
	}{
		{name: "first page", filter: ProductListFilter{Page: 1, PageSize: 2}, want: ids[0:2]},
		{name: "last partial page", filter: ProductListFilter{Page: 3, PageSize: 2}, want: ids[4:5]},
		{name: "past the end", filter: ProductListFilter{Page: 4, PageSize: 2}, want: nil},
		{name: "page below one", filter: ProductListFilter{Page: 0, PageSize: 3}, want: ids[0:3]},
		{name: "no page size", filter: ProductListFilter{Page: 2}, want: ids},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := repo.List(ctx, tc.filter)
			if err != nil {
				t.Fatalf("list failed: %v", err)
			}
			if len(got) != len(tc.want) {
				t.Fatalf("want %d rows got %d", len(tc.want), len(got))
			}
			for i, id := range tc.want {
				if got[i].ID != id {
					t.Fatalf("row %d want id %d got %d", i, id, got[i].ID)
				}
			}
		})
	}
}

func TestProductRepositoryTransactionRollback(t *testing.T) {
	db := setupRepositoryTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	err := repo.Transaction(ctx, func(tx *gorm.DB) error {
		txRepo := repo.WithTx(tx)
		if err := txRepo.Create(ctx, &models.Product{
			DistributorName: "d", BrandName: "b", ProductCode: "TX-1", ProductName: "n", CategoryName: "c",
			ProductAvailability: "In Stock", Status: "Active", PackSize: 1,
		}); err != nil {
			return err
		}
		return fmt.Errorf("force rollback")
	})
	if err == nil {
		t.Fatalf("expected forced error")
	}
	got, err := repo.GetByCode(ctx, "TX-1")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if got != nil {
		t.Fatalf("product should have been rolled back")
	}
}
