package models

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestMoneyUnmarshalStringAndNumber(t *testing.T) {
	var payload struct {
		Trade Money  `json:"trade"`
		RRP   Money  `json:"rrp"`
		MWP   *Money `json:"mwp"`
	}
	if err := json.Unmarshal([]byte(`{"trade":"10.005","rrp":12,"mwp":null}`), &payload); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if payload.Trade.String() != "10.01" {
		t.Fatalf("trade want 10.01 got %s", payload.Trade.String())
	}
	if !payload.RRP.Equal(decimal.NewFromInt(12)) {
		t.Fatalf("rrp want 12 got %s", payload.RRP.String())
	}
	if payload.MWP != nil {
		t.Fatalf("mwp should stay nil")
	}

	out, err := json.Marshal(payload.RRP)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(out) != `"12.00"` {
		t.Fatalf("marshal want \"12.00\" got %s", string(out))
	}
}

func TestMoneyRejectsGarbage(t *testing.T) {
	var m Money
	if err := json.Unmarshal([]byte(`"abc"`), &m); err == nil {
		t.Fatalf("expected error for non numeric amount")
	}
}

func TestDateJSONAndMonthPartition(t *testing.T) {
	var d Date
	if err := json.Unmarshal([]byte(`"2024-05-17"`), &d); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if d.MonthPartition() != "2024-05" {
		t.Fatalf("month partition want 2024-05 got %s", d.MonthPartition())
	}
	out, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(out) != `"2024-05-17"` {
		t.Fatalf("marshal want \"2024-05-17\" got %s", string(out))
	}
	if err := json.Unmarshal([]byte(`"17/05/2024"`), &d); err == nil {
		t.Fatalf("expected error for invalid layout")
	}
}

func TestDateScanVariants(t *testing.T) {
	cases := []struct {
		name  string
		input interface{}
		want  string
	}{
		{name: "time", input: time.Date(2024, 1, 2, 15, 4, 5, 0, time.UTC), want: "2024-01-02"},
		{name: "string", input: "2024-03-04", want: "2024-03-04"},
		{name: "string with time", input: "2024-03-04 00:00:00+00:00", want: "2024-03-04"},
		{name: "bytes", input: []byte("2024-06-07"), want: "2024-06-07"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var d Date
			if err := d.Scan(tc.input); err != nil {
				t.Fatalf("scan failed: %v", err)
			}
			if d.String() != tc.want {
				t.Fatalf("date want %s got %s", tc.want, d.String())
			}
		})
	}
}

func TestOpenDBAndAutoMigrateSQLite(t *testing.T) {
	dsn := fmt.Sprintf("file:models_open_db_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := OpenDB(DBOptions{Driver: "sqlite", DSN: dsn})
	if err != nil {
		t.Fatalf("open db failed: %v", err)
	}
	if err := AutoMigrate(db); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}

	product := Product{
		DistributorName:     "Dist",
		BrandName:           "Brand",
		ProductCode:         "P-1",
		ProductName:         "Widget",
		CategoryName:        "Tools",
		ProductAvailability: "In Stock",
		Status:              "Active",
		Online:              true,
		PackSize:            1,
		Trade:               NewMoneyFromFloat(10),
		RRP:                 NewMoneyFromFloat(12.5),
	}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	sellIn := SellIn{
		ProductID:       product.ID,
		Quantity:        3,
		UnitCost:        NewMoneyFromFloat(2),
		TotalCost:       NewMoneyFromFloat(6),
		TransactionDate: NewDate(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)),
		MonthPartition:  "2024-05",
	}
	if err := db.Create(&sellIn).Error; err != nil {
		t.Fatalf("create sell-in failed: %v", err)
	}

	var got SellIn
	if err := db.First(&got, sellIn.ID).Error; err != nil {
		t.Fatalf("load sell-in failed: %v", err)
	}
	if got.TransactionDate.String() != "2024-05-01" {
		t.Fatalf("transaction date want 2024-05-01 got %s", got.TransactionDate.String())
	}
	if got.TotalCost.String() != "6.00" {
		t.Fatalf("total cost want 6.00 got %s", got.TotalCost.String())
	}
}

func TestOpenDBZeroPoolKeepsIdleConnection(t *testing.T) {
	dsn := fmt.Sprintf("file:models_pool_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := OpenDB(DBOptions{Driver: "sqlite", DSN: dsn})
	if err != nil {
		t.Fatalf("open db failed: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db failed: %v", err)
	}
	defer sqlDB.Close()
	if err := db.Exec("SELECT 1").Error; err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if idle := sqlDB.Stats().Idle; idle < 1 {
		t.Fatalf("zero pool config should keep the default idle connection, got %d", idle)
	}

	pooled, err := OpenDB(DBOptions{Driver: "sqlite", DSN: dsn, Pool: DBPoolConfig{MaxOpenConns: 3, MaxIdleConns: 1}})
	if err != nil {
		t.Fatalf("open pooled db failed: %v", err)
	}
	pooledSQL, err := pooled.DB()
	if err != nil {
		t.Fatalf("get pooled sql db failed: %v", err)
	}
	defer pooledSQL.Close()
	if got := pooledSQL.Stats().MaxOpenConnections; got != 3 {
		t.Fatalf("max open conns want 3 got %d", got)
	}
}

func TestOpenDBUnsupportedDriver(t *testing.T) {
	if _, err := OpenDB(DBOptions{Driver: "oracle", DSN: "x"}); err == nil {
		t.Fatalf("expected unsupported driver error")
	}
	if NormalizeDriver("PostgreSQL") != "postgres" {
		t.Fatalf("normalize postgres failed")
	}
}

func TestOpenDBCreatesSQLiteDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "db")
	db, err := OpenDB(DBOptions{Driver: "sqlite", DSN: filepath.Join(dir, "stocklens.db")})
	if err != nil {
		t.Fatalf("open db failed: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db failed: %v", err)
	}
	defer sqlDB.Close()
	if err := AutoMigrate(db); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "stocklens.db")); err != nil {
		t.Fatalf("sqlite file should exist: %v", err)
	}
}
