package controllers

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/clinichq/clinic-app/db"
	"github.com/clinichq/clinic-app/middleware"
	"github.com/clinichq/clinic-app/models"
	"github.com/clinichq/clinic-app/utils"
)

type medicineInput struct {
	Name         string  `json:"name"`
	Quantity     int     `json:"quantity"`
	UnitPrice    float64 `json:"unit_price"`
	ExpiryDate   string  `json:"expiry_date"`
	PurchaseDate string  `json:"purchase_date"`
	ReorderLevel int     `json:"reorder_level"`
}

type batchInput struct {
	BatchNumber string          `json:"batch_number"`
	BillID      string          `json:"bill_id"`
	Medicines   []medicineInput `json:"medicines"`
	TotalPrice  float64         `json:"total_price"`
	MiscAmount  float64         `json:"misc_amount"`
	Attachments []string        `json:"attachments"`
}

// buildMedicines parses the line items, leaving field checks to the model.
func buildMedicines(inputs []medicineInput) ([]models.BatchMedicine, error) {
	medicines := make([]models.BatchMedicine, 0, len(inputs))
	for _, in := range inputs {
		m := models.BatchMedicine{
			Name:         in.Name,
			Quantity:     in.Quantity,
			UnitPrice:    in.UnitPrice,
			ReorderLevel: in.ReorderLevel,
		}
		if in.ExpiryDate != "" {
			expiry, err := time.Parse(dateLayout, in.ExpiryDate)
			if err != nil {
				return nil, fiber.NewError(fiber.StatusBadRequest, "Expiry date must be in YYYY-MM-DD format")
			}
			m.ExpiryDate = expiry
		}
		if in.PurchaseDate != "" {
			purchase, err := time.Parse(dateLayout, in.PurchaseDate)
			if err != nil {
				return nil, fiber.NewError(fiber.StatusBadRequest, "Purchase date must be in YYYY-MM-DD format")
			}
			m.PurchaseDate = purchase
		}
		medicines = append(medicines, m)
	}
	return medicines, nil
}

// CreateBatch validates and stores a new stock batch.
func CreateBatch(c *fiber.Ctx) error {
	input := new(batchInput)
	if err := c.BodyParser(input); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "Cannot parse JSON")
	}

	if input.BatchNumber == "" || input.BillID == "" {
		return utils.Fail(c, fiber.StatusBadRequest, "Batch number and bill ID are required")
	}

	medicines, err := buildMedicines(input.Medicines)
	if err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, err.Error())
	}

	user, err := middleware.CurrentUser(c)
	if err != nil {
		return utils.Fail(c, fiber.StatusUnauthorized, "Authentication required")
	}

	batch := models.Batch{
		BatchNumber: input.BatchNumber,
		BillID:      input.BillID,
		Medicines:   medicines,
		TotalPrice:  input.TotalPrice,
		MiscAmount:  input.MiscAmount,
		Attachments: input.Attachments,
		CreatedByID: user.ID,
	}

	if err := batch.ValidateMedicines(); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, err.Error())
	}
	if err := batch.ValidateTotals(); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, err.Error())
	}

	// Lookup-then-insert; the unique index on batch_number is what actually
	// closes the race between concurrent submissions.
	var existing models.Batch
	if db.DB.Where("batch_number = ?", batch.BatchNumber).First(&existing).RowsAffected > 0 {
		return utils.Fail(c, fiber.StatusBadRequest, "A batch with this batch number already exists")
	}

	if err := db.DB.Create(&batch).Error; err != nil {
		return utils.FailDB(c, err)
	}

	return utils.Success(c, fiber.StatusCreated, "Batch created successfully", fiber.Map{
		"batch":   batch,
		"summary": batch.Summarize(time.Now()),
	})
}

func parsePagination(c *fiber.Ctx) (page, limit, offset int) {
	page = c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	limit = c.QueryInt("limit", 10)
	if limit < 1 || limit > 100 {
		limit = 10
	}
	return page, limit, (page - 1) * limit
}

var batchSortColumns = map[string]string{
	"batch_number": "batch_number",
	"total_price":  "total_price",
	"created_at":   "created_at",
}

// GetAllBatches lists batches with pagination, substring search across batch
// number, bill ID and medicine names, sorting and per-batch summaries.
func GetAllBatches(c *fiber.Ctx) error {
	page, limit, offset := parsePagination(c)

	query := func() *gorm.DB {
		q := db.DB.Model(&models.Batch{})
		if search := c.Query("search"); search != "" {
			like := "%" + strings.ToLower(search) + "%"
			q = q.Where(
				"LOWER(batch_number) LIKE ? OR LOWER(bill_id) LIKE ? OR EXISTS ("+
					"SELECT 1 FROM batch_medicines bm WHERE bm.batch_id = batches.id"+
					" AND bm.deleted_at IS NULL AND LOWER(bm.name) LIKE ?)",
				like, like, like,
			)
		}
		return q
	}

	var total int64
	if err := query().Count(&total).Error; err != nil {
		return utils.FailDB(c, err)
	}

	sortBy := "created_at"
	if col, ok := batchSortColumns[c.Query("sort_by")]; ok {
		sortBy = col
	}
	order := "desc"
	if c.Query("order") == "asc" {
		order = "asc"
	}

	var batches []models.Batch
	if err := query().Preload("Medicines").
		Order(sortBy + " " + order).
		Offset(offset).Limit(limit).
		Find(&batches).Error; err != nil {
		return utils.FailDB(c, err)
	}

	now := time.Now()
	type batchItem struct {
		models.Batch
		Summary models.BatchSummary `json:"summary"`
	}
	items := make([]batchItem, 0, len(batches))
	needsAttention := 0
	for _, b := range batches {
		summary := b.Summarize(now)
		if summary.Status != models.StockStatusInStock {
			needsAttention++
		}
		items = append(items, batchItem{Batch: b, Summary: summary})
	}

	totalPages := (total + int64(limit) - 1) / int64(limit)
	return utils.Success(c, fiber.StatusOK, "Batches fetched successfully", fiber.Map{
		"data": fiber.Map{
			"items": items,
			"pagination": fiber.Map{
				"page":        page,
				"limit":       limit,
				"total":       total,
				"total_pages": totalPages,
			},
			"summary": fiber.Map{
				"needs_attention": needsAttention,
			},
		},
	})
}

// GetBatch fetches one batch with its lines and summary.
func GetBatch(c *fiber.Ctx) error {
	var batch models.Batch
	if db.DB.Preload("Medicines").First(&batch, "id = ?", c.Params("id")).RowsAffected == 0 {
		return utils.Fail(c, fiber.StatusNotFound, "Batch not found")
	}
	return utils.Success(c, fiber.StatusOK, "Batch fetched successfully", fiber.Map{
		"batch":   batch,
		"summary": batch.Summarize(time.Now()),
	})
}

// UpdateBatch merges the supplied fields over the stored batch and re-runs
// the line and totals validation against the merged result.
func UpdateBatch(c *fiber.Ctx) error {
	var batch models.Batch
	if db.DB.Preload("Medicines").First(&batch, "id = ?", c.Params("id")).RowsAffected == 0 {
		return utils.Fail(c, fiber.StatusNotFound, "Batch not found")
	}

	type updateInput struct {
		BatchNumber *string          `json:"batch_number"`
		BillID      *string          `json:"bill_id"`
		Medicines   *[]medicineInput `json:"medicines"`
		TotalPrice  *float64         `json:"total_price"`
		MiscAmount  *float64         `json:"misc_amount"`
		Attachments *[]string        `json:"attachments"`
	}

	input := new(updateInput)
	if err := c.BodyParser(input); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "Cannot parse JSON")
	}

	if input.BatchNumber != nil && *input.BatchNumber != batch.BatchNumber {
		var other models.Batch
		if db.DB.Where("batch_number = ? AND id <> ?", *input.BatchNumber, batch.ID).First(&other).RowsAffected > 0 {
			return utils.Fail(c, fiber.StatusBadRequest, "A batch with this batch number already exists")
		}
		batch.BatchNumber = *input.BatchNumber
	}
	if input.BillID != nil {
		batch.BillID = *input.BillID
	}
	if input.TotalPrice != nil {
		batch.TotalPrice = *input.TotalPrice
	}
	if input.MiscAmount != nil {
		batch.MiscAmount = *input.MiscAmount
	}
	if input.Attachments != nil {
		batch.Attachments = *input.Attachments
	}

	replaceLines := input.Medicines != nil
	if replaceLines {
		medicines, err := buildMedicines(*input.Medicines)
		if err != nil {
			return utils.Fail(c, fiber.StatusBadRequest, err.Error())
		}
		batch.Medicines = medicines
	}

	if err := batch.ValidateMedicines(); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, err.Error())
	}
	if err := batch.ValidateTotals(); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, err.Error())
	}

	if replaceLines {
		if err := db.DB.Where("batch_id = ?", batch.ID).Delete(&models.BatchMedicine{}).Error; err != nil {
			return utils.FailDB(c, err)
		}
		for i := range batch.Medicines {
			batch.Medicines[i].ID = 0
			batch.Medicines[i].BatchID = batch.ID
		}
	}

	if err := db.DB.Save(&batch).Error; err != nil {
		return utils.FailDB(c, err)
	}

	return utils.Success(c, fiber.StatusOK, "Batch updated successfully", fiber.Map{
		"batch":   batch,
		"summary": batch.Summarize(time.Now()),
	})
}

// DeleteBatch removes a batch and its lines.
func DeleteBatch(c *fiber.Ctx) error {
	var batch models.Batch
	if db.DB.First(&batch, "id = ?", c.Params("id")).RowsAffected == 0 {
		return utils.Fail(c, fiber.StatusNotFound, "Batch not found")
	}

	if err := db.DB.Where("batch_id = ?", batch.ID).Delete(&models.BatchMedicine{}).Error; err != nil {
		return utils.FailDB(c, err)
	}
	if err := db.DB.Delete(&batch).Error; err != nil {
		return utils.FailDB(c, err)
	}

	return utils.Success(c, fiber.StatusOK, "Batch deleted successfully", nil)
}

// GetStockSummary flattens every batch's lines and groups them by medicine
// name, paginating after grouping.
func GetStockSummary(c *fiber.Ctx) error {
	page, limit, offset := parsePagination(c)

	lines := func() *gorm.DB {
		q := db.DB.Table("batch_medicines").Where("deleted_at IS NULL")
		if search := c.Query("search"); search != "" {
			q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(search)+"%")
		}
		return q
	}

	var total int64
	if err := lines().Distinct("name").Count(&total).Error; err != nil {
		return utils.FailDB(c, err)
	}

	var rows []models.StockSummary
	err := lines().
		Select("name, " +
			"SUM(quantity) AS total_quantity, " +
			"SUM(total) AS total_value, " +
			"AVG(unit_price) AS avg_unit_price, " +
			"MIN(reorder_level) AS min_reorder_level, " +
			"MIN(expiry_date) AS earliest_expiry").
		Group("name").
		Order("name").
		Offset(offset).Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return utils.FailDB(c, err)
	}

	now := time.Now()
	lowStock, expired := 0, 0
	for i := range rows {
		rows[i].DeriveStatus(now)
		switch rows[i].Status {
		case models.StockStatusLow:
			lowStock++
		case models.StockStatusExpired:
			expired++
		}
	}

	totalPages := (total + int64(limit) - 1) / int64(limit)
	return utils.Success(c, fiber.StatusOK, "Stock summary fetched successfully", fiber.Map{
		"data": fiber.Map{
			"items": rows,
			"pagination": fiber.Map{
				"page":        page,
				"limit":       limit,
				"total":       total,
				"total_pages": totalPages,
			},
			"summary": fiber.Map{
				"low_stock": lowStock,
				"expired":   expired,
			},
		},
	})
}
