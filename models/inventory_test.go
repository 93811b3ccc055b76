package models

import (
	"strings"
	"testing"
	"time"
)

func testBatch() Batch {
	expiry := time.Now().AddDate(1, 0, 0)
	purchase := time.Now().AddDate(0, -1, 0)
	return Batch{
		BatchNumber: "B-2026-001",
		BillID:      "BILL-44",
		TotalPrice:  160.00,
		MiscAmount:  10.00,
		Medicines: []BatchMedicine{
			{Name: "Paracetamol 500mg", Quantity: 10, UnitPrice: 10.00, ExpiryDate: expiry, PurchaseDate: purchase, ReorderLevel: 5},
			{Name: "Amoxicillin 250mg", Quantity: 5, UnitPrice: 10.00, ExpiryDate: expiry, PurchaseDate: purchase, ReorderLevel: 2},
		},
	}
}

func TestValidateMedicines_FillsDerivedTotals(t *testing.T) {
	b := testBatch()
	if err := b.ValidateMedicines(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Medicines[0].Total != 100.00 {
		t.Errorf("expected first line total 100.00, got %.2f", b.Medicines[0].Total)
	}
	if b.Medicines[1].Total != 50.00 {
		t.Errorf("expected second line total 50.00, got %.2f", b.Medicines[1].Total)
	}
}

func TestValidateMedicines_Rejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Batch)
	}{
		{"no medicines", func(b *Batch) { b.Medicines = nil }},
		{"missing name", func(b *Batch) { b.Medicines[0].Name = "" }},
		{"zero quantity", func(b *Batch) { b.Medicines[0].Quantity = 0 }},
		{"negative quantity", func(b *Batch) { b.Medicines[0].Quantity = -3 }},
		{"zero price", func(b *Batch) { b.Medicines[1].UnitPrice = 0 }},
		{"missing expiry", func(b *Batch) { b.Medicines[0].ExpiryDate = time.Time{} }},
		{"missing purchase date", func(b *Batch) { b.Medicines[0].PurchaseDate = time.Time{} }},
		{"negative reorder level", func(b *Batch) { b.Medicines[1].ReorderLevel = -1 }},
	}

	for _, tc := range cases {
		b := testBatch()
		tc.mutate(&b)
		if err := b.ValidateMedicines(); err == nil {
			t.Errorf("%s: expected an error", tc.name)
		}
	}
}

func TestValidateTotals(t *testing.T) {
	// two medicines totalling 150.00 plus 10.00 misc against 160.00
	b := testBatch()
	if err := b.ValidateMedicines(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := b.ValidateTotals(); err != nil {
		t.Fatalf("expected matching totals to pass, got %v", err)
	}

	// within tolerance
	b.TotalPrice = 160.009
	if err := b.ValidateTotals(); err != nil {
		t.Errorf("expected a 0.009 drift to pass, got %v", err)
	}

	// out of tolerance, message carries both figures
	b.TotalPrice = 161.00
	err := b.ValidateTotals()
	if err == nil {
		t.Fatal("expected a mismatch error")
	}
	if !strings.Contains(err.Error(), "160.00") || !strings.Contains(err.Error(), "161.00") {
		t.Errorf("expected both computed and supplied figures in %q", err.Error())
	}
}

func TestValidateTotals_RejectsNegativeMiscAmount(t *testing.T) {
	b := testBatch()
	if err := b.ValidateMedicines(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// sums match, but the miscellaneous amount is negative
	b.MiscAmount = -10.00
	b.TotalPrice = 140.00
	if err := b.ValidateTotals(); err == nil {
		t.Error("expected a negative miscellaneous amount to be rejected")
	}
}

func TestSummarize(t *testing.T) {
	now := time.Now()
	b := testBatch()
	if err := b.ValidateMedicines(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s := b.Summarize(now)
	if s.MedicineCount != 2 || s.LowStockCount != 0 || s.ExpiredCount != 0 {
		t.Errorf("unexpected summary %+v", s)
	}
	if s.Status != StockStatusInStock {
		t.Errorf("expected status %s, got %s", StockStatusInStock, s.Status)
	}

	b.Medicines[0].Quantity = b.Medicines[0].ReorderLevel
	s = b.Summarize(now)
	if s.LowStockCount != 1 || s.Status != StockStatusLow {
		t.Errorf("expected a low stock summary, got %+v", s)
	}

	b.Medicines[1].ExpiryDate = now.AddDate(0, 0, -1)
	s = b.Summarize(now)
	if s.ExpiredCount != 1 || s.Status != StockStatusExpired {
		t.Errorf("expected an expired summary, got %+v", s)
	}
}

func TestStockSummaryDeriveStatus(t *testing.T) {
	now := time.Now()

	s := StockSummary{TotalQuantity: 40, MinReorderLevel: 10, EarliestExpiry: now.AddDate(1, 0, 0)}
	s.DeriveStatus(now)
	if s.Status != StockStatusInStock {
		t.Errorf("expected %s, got %s", StockStatusInStock, s.Status)
	}

	s = StockSummary{TotalQuantity: 10, MinReorderLevel: 10, EarliestExpiry: now.AddDate(1, 0, 0)}
	s.DeriveStatus(now)
	if s.Status != StockStatusLow {
		t.Errorf("expected %s, got %s", StockStatusLow, s.Status)
	}

	s = StockSummary{TotalQuantity: 40, MinReorderLevel: 10, EarliestExpiry: now.AddDate(0, 0, -1)}
	s.DeriveStatus(now)
	if s.Status != StockStatusExpired {
		t.Errorf("expected %s, got %s", StockStatusExpired, s.Status)
	}
}
