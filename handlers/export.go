package handlers

import (
	"bytes"
	"log"
	"net/http"

	"finance-api/middleware"
	"finance-api/services"

	"github.com/gin-gonic/gin"
)

type ExportHandler struct {
	Ledger Ledger
}

func NewExportHandler(ledger Ledger) *ExportHandler {
	return &ExportHandler{Ledger: ledger}
}

// CSV streams the user's incomes and expenses as a CSV attachment.
func (h *ExportHandler) CSV(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	rows, err := h.Ledger.ExportRows(ctx, middleware.GetUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export data"})
		return
	}

	var buf bytes.Buffer
	if err := services.WriteCSV(&buf, rows); err != nil {
		log.Printf("CSV export failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export data"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename=finances_export.csv`)
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}

// Excel streams the same rows as an xlsx attachment.
func (h *ExportHandler) Excel(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	rows, err := h.Ledger.ExportRows(ctx, middleware.GetUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export data"})
		return
	}

	buf, err := services.WriteExcel(rows)
	if err != nil {
		log.Printf("Excel export failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export data"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename=finances_export.xlsx`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
