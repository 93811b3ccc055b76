package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"gorm.io/gorm"
)

// TotalsTolerance is how far the supplied batch price may drift from the
// computed sum of line totals plus the miscellaneous amount.
const TotalsTolerance = 0.01

// URLList stores attachment URLs as a JSON column.
type URLList []string

// Value implements the driver.Valuer interface
func (u URLList) Value() (driver.Value, error) {
	jsonData, err := json.Marshal(u)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface
func (u *URLList) Scan(value interface{}) error {
	if value == nil {
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("failed to unmarshal URLList: unsupported type %T", value)
	}

	return json.Unmarshal(data, u)
}

type Batch struct {
	gorm.Model
	BatchNumber string          `json:"batch_number" gorm:"uniqueIndex"`
	BillID      string          `json:"bill_id" gorm:"index"`
	Medicines   []BatchMedicine `json:"medicines" gorm:"foreignKey:BatchID;constraint:OnDelete:CASCADE"`
	TotalPrice  float64         `json:"total_price"`
	MiscAmount  float64         `json:"misc_amount"`
	Attachments URLList         `json:"attachments,omitempty" gorm:"type:jsonb"`
	CreatedByID uint            `json:"created_by_id"`
	CreatedBy   User            `json:"created_by,omitempty" gorm:"foreignKey:CreatedByID"`
}

type BatchMedicine struct {
	gorm.Model
	BatchID      uint      `json:"batch_id" gorm:"index"`
	Name         string    `json:"name" gorm:"index"`
	Quantity     int       `json:"quantity"`
	UnitPrice    float64   `json:"unit_price"`
	ExpiryDate   time.Time `json:"expiry_date"`
	PurchaseDate time.Time `json:"purchase_date"`
	ReorderLevel int       `json:"reorder_level"`
	Total        float64   `json:"total"`
}

// IsExpired reports whether the medicine's expiry date has passed.
func (m *BatchMedicine) IsExpired(now time.Time) bool {
	return m.ExpiryDate.Before(now)
}

// IsLowStock reports whether the quantity has fallen to the reorder level.
func (m *BatchMedicine) IsLowStock() bool {
	return m.Quantity <= m.ReorderLevel
}

// ValidateMedicines checks every line item and fills in the derived totals.
func (b *Batch) ValidateMedicines() error {
	if len(b.Medicines) == 0 {
		return fmt.Errorf("a batch must contain at least one medicine")
	}
	for i := range b.Medicines {
		m := &b.Medicines[i]
		if m.Name == "" {
			return fmt.Errorf("medicine %d: name is required", i+1)
		}
		if m.Quantity <= 0 {
			return fmt.Errorf("medicine %q: quantity must be positive", m.Name)
		}
		if m.UnitPrice <= 0 {
			return fmt.Errorf("medicine %q: unit price must be positive", m.Name)
		}
		if m.ExpiryDate.IsZero() {
			return fmt.Errorf("medicine %q: expiry date is required", m.Name)
		}
		if m.PurchaseDate.IsZero() {
			return fmt.Errorf("medicine %q: purchase date is required", m.Name)
		}
		if m.ReorderLevel < 0 {
			return fmt.Errorf("medicine %q: reorder level cannot be negative", m.Name)
		}
		m.Total = float64(m.Quantity) * m.UnitPrice
	}
	return nil
}

// ComputedTotal sums the line totals plus the miscellaneous amount.
func (b *Batch) ComputedTotal() float64 {
	sum := b.MiscAmount
	for i := range b.Medicines {
		sum += b.Medicines[i].Total
	}
	return sum
}

// ValidateTotals cross-checks the supplied overall price against the computed
// sum within TotalsTolerance.
func (b *Batch) ValidateTotals() error {
	if b.MiscAmount < 0 {
		return fmt.Errorf("miscellaneous amount cannot be negative")
	}
	computed := b.ComputedTotal()
	if math.Abs(computed-b.TotalPrice) > TotalsTolerance {
		return fmt.Errorf("total price mismatch: computed %.2f but supplied %.2f", computed, b.TotalPrice)
	}
	return nil
}

// BatchSummary is the computed per-batch stock overview attached to listings.
type BatchSummary struct {
	MedicineCount int    `json:"medicine_count"`
	LowStockCount int    `json:"low_stock_count"`
	ExpiredCount  int    `json:"expired_count"`
	Status        string `json:"status"`
}

// Summarize derives the batch summary against now.
func (b *Batch) Summarize(now time.Time) BatchSummary {
	s := BatchSummary{MedicineCount: len(b.Medicines)}
	for i := range b.Medicines {
		m := &b.Medicines[i]
		if m.IsExpired(now) {
			s.ExpiredCount++
		}
		if m.IsLowStock() {
			s.LowStockCount++
		}
	}
	switch {
	case s.ExpiredCount > 0:
		s.Status = StockStatusExpired
	case s.LowStockCount > 0:
		s.Status = StockStatusLow
	default:
		s.Status = StockStatusInStock
	}
	return s
}

const (
	StockStatusInStock = "in_stock"
	StockStatusLow     = "low_stock"
	StockStatusExpired = "expired"
)

// StockSummary is one row of the per-medicine aggregation across batches.
type StockSummary struct {
	Name            string    `json:"name"`
	TotalQuantity   int       `json:"total_quantity"`
	TotalValue      float64   `json:"total_value"`
	AvgUnitPrice    float64   `json:"avg_unit_price"`
	MinReorderLevel int       `json:"min_reorder_level"`
	EarliestExpiry  time.Time `json:"earliest_expiry"`
	Status          string    `json:"status"`
}

// DeriveStatus fills in the row status from the aggregated figures.
func (s *StockSummary) DeriveStatus(now time.Time) {
	switch {
	case s.EarliestExpiry.Before(now):
		s.Status = StockStatusExpired
	case s.TotalQuantity <= s.MinReorderLevel:
		s.Status = StockStatusLow
	default:
		s.Status = StockStatusInStock
	}
}
