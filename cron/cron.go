package cron

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/clinichq/clinic-app/db"
	"github.com/clinichq/clinic-app/models"
	"github.com/clinichq/clinic-app/utils"
)

// StartCronJobs initializes and starts the scheduler for stock alerts
func StartCronJobs() {
	fmt.Println("Starting cron job scheduler...")
	c := cron.New()
	// Daily morning digest of expired, expiring and low stock medicines
	_, err := c.AddFunc("0 8 * * *", sendStockAlerts)
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}
	c.Start()
	log.Println("Cron job scheduler started for stock alerts")
}

// sendStockAlerts aggregates the stock and mails inventory pharmacists when
// anything needs attention.
func sendStockAlerts() {
	var rows []models.StockSummary
	err := db.DB.Table("batch_medicines").
		Where("deleted_at IS NULL").
		Select("name, " +
			"SUM(quantity) AS total_quantity, " +
			"SUM(total) AS total_value, " +
			"AVG(unit_price) AS avg_unit_price, " +
			"MIN(reorder_level) AS min_reorder_level, " +
			"MIN(expiry_date) AS earliest_expiry").
		Group("name").
		Order("name").
		Scan(&rows).Error
	if err != nil {
		log.Printf("Error aggregating stock for alerts: %v", err)
		return
	}

	now := time.Now()
	soon := now.AddDate(0, 0, 30)
	var expired, expiring, lowStock []models.StockSummary
	for i := range rows {
		rows[i].DeriveStatus(now)
		switch {
		case rows[i].Status == models.StockStatusExpired:
			expired = append(expired, rows[i])
		case rows[i].EarliestExpiry.Before(soon):
			expiring = append(expiring, rows[i])
		}
		if rows[i].Status == models.StockStatusLow {
			lowStock = append(lowStock, rows[i])
		}
	}

	if len(expired) == 0 && len(expiring) == 0 && len(lowStock) == 0 {
		return
	}

	var pharmacists []models.User
	err = db.DB.Joins("JOIN staff_profiles ON staff_profiles.user_id = users.id").
		Where("users.role = ? AND staff_profiles.is_active = ?", models.RolePharmacistInventory, true).
		Find(&pharmacists).Error
	if err != nil {
		log.Printf("Error fetching inventory pharmacists for alerts: %v", err)
		return
	}

	body := buildAlertBody(expired, expiring, lowStock)
	for _, pharmacist := range pharmacists {
		if err := utils.SendEmail(pharmacist.Email, "Daily stock alert", body); err != nil {
			log.Printf("Failed to send stock alert to %s: %v", pharmacist.Email, err)
			continue
		}
		log.Printf("Sent stock alert to %s", pharmacist.Email)
	}
}

func buildAlertBody(expired, expiring, lowStock []models.StockSummary) string {
	var b strings.Builder
	b.WriteString("<p>Dear Pharmacist,</p>")
	b.WriteString("<p>The following medicines need attention:</p>")

	section := func(title string, rows []models.StockSummary) {
		if len(rows) == 0 {
			return
		}
		fmt.Fprintf(&b, "<p><strong>%s</strong></p><ul>", title)
		for _, r := range rows {
			fmt.Fprintf(&b, "<li>%s (quantity %d, earliest expiry %s)</li>",
				r.Name, r.TotalQuantity, r.EarliestExpiry.Format("2006-01-02"))
		}
		b.WriteString("</ul>")
	}

	section("Expired", expired)
	section("Expiring within 30 days", expiring)
	section("Low stock", lowStock)

	b.WriteString("<p>Best regards,</p><p>Clinic Inventory</p>")
	return b.String()
}
