package service

import (
	"context"
	"errors"
	"testing"
)

func TestSellInCreateDerivesMonthPartition(t *testing.T) {
	svc := newTestServices(t)
	product := mustCreateProduct(t, svc, "SI-1")

	row, err := svc.sellIns.Create(context.Background(), SellInInput{
		ProductID:       product.ID,
		Quantity:        intPtr(10),
		UnitCost:        moneyPtr(5),
		TotalCost:       moneyPtr(50),
		TransactionDate: datePtr(t, "2024-05-17"),
	})
	if err != nil {
		t.Fatalf("create sell-in failed: %v", err)
	}
	if row.ID == 0 || row.MonthPartition != "2024-05" {
		t.Fatalf("unexpected sell-in: %+v", row)
	}
}

func TestSellInCreateValidation(t *testing.T) {
	svc := newTestServices(t)
	product := mustCreateProduct(t, svc, "SI-2")

	base := func() SellInInput {
		return SellInInput{
			ProductID:       product.ID,
			Quantity:        intPtr(1),
			UnitCost:        moneyPtr(1),
			TotalCost:       moneyPtr(1),
			TransactionDate: datePtr(t, "2024-05-17"),
		}
	}
	cases := map[string]func(in *SellInInput){
		"bad month":       func(in *SellInInput) { in.MonthPartition = "2024-5" },
		"missing qty":     func(in *SellInInput) { in.Quantity = nil },
		"negative qty":    func(in *SellInInput) { in.Quantity = intPtr(-1) },
		"missing date":    func(in *SellInInput) { in.TransactionDate = nil },
		"unknown product": func(in *SellInInput) { in.ProductID = 9999 },
	}
	for name, mutate := range cases {
		input := base()
		mutate(&input)
		if _, err := svc.sellIns.Create(context.Background(), input); !errors.Is(err, ErrValidation) {
			t.Fatalf("%s: expected ErrValidation, got %v", name, err)
		}
	}
}

func TestSellThroughListFilters(t *testing.T) {
	svc := newTestServices(t)
	p1 := mustCreateProduct(t, svc, "ST-1")
	p2 := mustCreateProduct(t, svc, "ST-2")
	mustSellThrough(t, svc, p1.ID, 1, 2, "2024-05-01")
	mustSellThrough(t, svc, p1.ID, 2, 4, "2024-06-01")
	mustSellThrough(t, svc, p2.ID, 3, 6, "2024-05-02")

	rows, err := svc.sellThroughs.List(context.Background(), TransactionQuery{ProductID: p1.ID, Month: "2024-05"})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(rows) != 1 || rows[0].Quantity != 1 {
		t.Fatalf("expected one matching row, got %+v", rows)
	}

	rows, err = svc.sellThroughs.List(context.Background(), TransactionQuery{Month: "2024-05"})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows for month, got %d", len(rows))
	}

	if _, err := svc.sellThroughs.List(context.Background(), TransactionQuery{Month: "2024-005"}); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected month validation error, got %v", err)
	}
}
