package controllers

import (
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/smartlink-edu/campus-payments/models"
	"github.com/smartlink-edu/campus-payments/utils"
)

// ExportPaymentsExcel downloads the payment ledger as an Excel workbook for
// the finance office
// GET /v1/reports/payments
func (h *RelayHandler) ExportPaymentsExcel(c *gin.Context) {
	utils.LogInfo("ExportPaymentsExcel called")

	payments, err := h.store.ListPayments()
	if err != nil {
		utils.LogError("Failed to fetch payments for export: %v", err)
		utils.InternalServerError(c, "Failed to fetch payments", nil)
		return
	}
	utils.LogDebug("Retrieved %d payments for Excel export", len(payments))

	// Summary across the ledger
	var summary struct {
		TotalCollected float64
		CompletedCount int
		PendingCount   int
		FailedCount    int
	}
	for _, payment := range payments {
		switch payment.Status {
		case models.PaymentStatusCompleted:
			summary.CompletedCount++
			summary.TotalCollected += payment.Amount
		case models.PaymentStatusPending:
			summary.PendingCount++
		case models.PaymentStatusFailed:
			summary.FailedCount++
		}
	}
	summary.TotalCollected = math.Round(summary.TotalCollected*100) / 100

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Payments")
	if err != nil {
		utils.LogError("Failed to create Excel sheet: %v", err)
		utils.InternalServerError(c, "Failed to create Excel sheet", nil)
		return
	}

	// Institute details
	row := sheet.AddRow()
	row.AddCell().SetString("SMART LINK INSTITUTE - Fee Payments")
	row = sheet.AddRow()
	row.AddCell().SetString("College Road, Knowledge City")
	row = sheet.AddRow()
	row.AddCell().SetString("Generated: " + time.Now().Format("2006-01-02 15:04:05"))
	sheet.AddRow() // spacing

	headers := []string{"Payment ID", "Student", "Description", "Amount", "Currency", "Status", "Razorpay Order ID", "Razorpay Payment ID", "Created"}
	headerRow := sheet.AddRow()
	for _, header := range headers {
		headerRow.AddCell().SetString(header)
	}

	for _, payment := range payments {
		row := sheet.AddRow()
		row.AddCell().SetString(payment.ID)
		row.AddCell().SetString(payment.StudentName)
		row.AddCell().SetString(payment.Description)
		row.AddCell().SetFloat(payment.Amount)
		row.AddCell().SetString(payment.Currency)
		row.AddCell().SetString(payment.Status)
		row.AddCell().SetString(payment.RazorpayOrderID)
		row.AddCell().SetString(payment.RazorpayPaymentID)
		row.AddCell().SetString(payment.CreatedAt.Format("2006-01-02 15:04:05"))
	}

	sheet.AddRow() // spacing
	summaryRow := sheet.AddRow()
	summaryRow.AddCell().SetString("Total Collected")
	summaryRow.AddCell().SetFloat(summary.TotalCollected)
	summaryRow = sheet.AddRow()
	summaryRow.AddCell().SetString("Completed")
	summaryRow.AddCell().SetInt(summary.CompletedCount)
	summaryRow = sheet.AddRow()
	summaryRow.AddCell().SetString("Pending")
	summaryRow.AddCell().SetInt(summary.PendingCount)
	summaryRow = sheet.AddRow()
	summaryRow.AddCell().SetString("Failed")
	summaryRow.AddCell().SetInt(summary.FailedCount)

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=payments-%s.xlsx", time.Now().Format("2006-01-02")))
	c.Status(http.StatusOK)
	if err := file.Write(c.Writer); err != nil {
		utils.LogError("Failed to write Excel export: %v", err)
	}
	utils.LogInfo("Excel export generated with %d payment rows", len(payments))
}
