package services

import (
	"bytes"
	"testing"
	"time"

	"finance-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func exportFixture() []models.ExportRow {
	return []models.ExportRow{
		{Type: "Income", Date: models.NewDate(2024, time.May, 1), Category: "Salary", Amount: 2500},
		{Type: "Income", Date: models.NewDate(2024, time.June, 1), Category: "Salary", Amount: 2500},
		{Type: "Expense", Date: models.NewDate(2024, time.June, 3), Category: "Food", Amount: 42.5, Comment: "groceries"},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, exportFixture()))

	want := "Type,Date,Category,Amount,Comment\n" +
		"Income,2024-05-01,Salary,2500,\n" +
		"Income,2024-06-01,Salary,2500,\n" +
		"Expense,2024-06-03,Food,42.5,groceries\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))
	assert.Equal(t, "Type,Date,Category,Amount,Comment\n", buf.String())
}

func TestWriteExcel(t *testing.T) {
	buf, err := WriteExcel(exportFixture())
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Finances")
	require.NoError(t, err)
	require.Len(t, rows, 4)

	assert.Equal(t, []string{"Type", "Date", "Category", "Amount", "Comment"}, rows[0])
	assert.Equal(t, "Income", rows[1][0])
	assert.Equal(t, "2024-05-01", rows[1][1])
	assert.Equal(t, "Expense", rows[3][0])
	assert.Equal(t, "groceries", rows[3][4])
}
