package controllers

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"

	"github.com/smartlink-edu/campus-payments/models"
	"github.com/smartlink-edu/campus-payments/store"
	"github.com/smartlink-edu/campus-payments/utils"
)

// DownloadReceipt generates and returns a PDF receipt for a completed payment
// GET /v1/payments/:id/receipt
func (h *RelayHandler) DownloadReceipt(c *gin.Context) {
	utils.LogInfo("Starting receipt download process")

	paymentID := c.Param("id")
	payment, err := h.store.PaymentByID(paymentID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.LogError("Payment not found for receipt download: %s", paymentID)
			utils.NotFound(c, "Payment not found")
			return
		}
		utils.LogError("Failed to load payment %s for receipt: %v", paymentID, err)
		utils.InternalServerError(c, "Failed to load payment", nil)
		return
	}

	if payment.Status != models.PaymentStatusCompleted {
		utils.LogError("Receipt requested for %s payment %s", payment.Status, payment.ID)
		utils.BadRequest(c, "Receipts are only available for completed payments", nil)
		return
	}
	utils.LogInfo("Generating receipt for payment %s", payment.ID)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	// Institute header
	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(100, 10, "Smart Link Institute")
	pdf.SetFont("Arial", "", 12)
	pdf.Ln(8)
	pdf.Cell(100, 8, "College Road, Knowledge City")
	pdf.Ln(8)
	pdf.Cell(100, 8, "Email: accounts@smartlink.edu | Phone: +91-98765-43210")
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(100, 10, "FEE PAYMENT RECEIPT")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(60, 8, "Receipt No: "+payment.ID)
	pdf.Ln(8)
	pdf.Cell(60, 8, "Date: "+payment.UpdatedAt.Format("2006-01-02 15:04:05"))
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 13)
	pdf.Cell(100, 8, "Received From:")
	pdf.Ln(7)
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(100, 8, payment.StudentName)
	pdf.Ln(10)

	// Payment details table
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(100, 8, "Description", "1", 0, "C", false, 0, "")
	pdf.CellFormat(50, 8, "Amount", "1", 0, "C", false, 0, "")
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 12)
	pdf.CellFormat(100, 8, payment.Description, "1", 0, "L", false, 0, "")
	pdf.CellFormat(50, 8, fmt.Sprintf("%s %.2f", payment.Currency, payment.Amount), "1", 0, "R", false, 0, "")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 11)
	pdf.Cell(100, 7, "Razorpay Order ID: "+payment.RazorpayOrderID)
	pdf.Ln(6)
	pdf.Cell(100, 7, "Razorpay Payment ID: "+payment.RazorpayPaymentID)
	pdf.Ln(6)
	pdf.Cell(100, 7, "Payment Status: "+payment.Status)

	pdf.Ln(12)
	pdf.SetFont("Arial", "I", 12)
	pdf.Cell(0, 10, "This is a system generated receipt and does not require a signature.")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		utils.LogError("Failed to render receipt PDF for payment %s: %v", payment.ID, err)
		utils.InternalServerError(c, "Failed to generate receipt", nil)
		return
	}
	utils.LogInfo("PDF receipt generated successfully for payment %s", payment.ID)

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=receipt-%s.pdf", payment.ID))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
