package export

import (
	"bytes"
	"testing"

	"github.com/sellora/storefront-manager/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestBuildReportXLSX(t *testing.T) {
	report := &entity.AnalyticsReport{
		OrderStats: entity.OrderStats{
			TotalOrders:  3,
			TotalRevenue: 249.99,
		},
		RevenueByDay: []entity.TimeSeriesPoint{
			{Date: "2024-05-14", Orders: 1, Revenue: 100},
			{Date: "2024-05-15", Orders: 2, Revenue: 149.99},
		},
		TopProducts: []entity.TopProduct{
			{ProductID: "p1", ProductTitle: "Jacket", TotalQuantity: 2, TotalRevenue: 249.99},
		},
		TopCustomers: []entity.TopCustomer{
			{CustomerID: "c1", CustomerEmail: "ann@example.com", CustomerName: "Ann Lee", TotalOrders: 3, TotalSpent: 249.99},
		},
		RevenueByRegion: []entity.RegionRevenue{
			{Region: "Europe", Revenue: 249.99},
		},
		OrdersByStatus: []entity.StatusCount{
			{Status: "shipped", Count: 2},
			{Status: "waiting", Count: 1},
		},
		SalesByCurrency: []entity.CurrencyTotal{
			{Currency: "EUR", Total: 249.99},
		},
	}
	report.OrdersByDay = report.RevenueByDay

	raw, err := BuildReportXLSX(report)
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	f, err := excelize.OpenReader(bytes.NewReader(raw))
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t,
		[]string{"summary", "daily", "top products", "top customers", "breakdowns"},
		f.GetSheetList(),
	)

	title, err := f.GetCellValue("summary", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Store Analytics", title)

	totalOrders, err := f.GetCellValue("summary", "B3")
	require.NoError(t, err)
	assert.Equal(t, "3", totalOrders)

	firstDay, err := f.GetCellValue("daily", "A2")
	require.NoError(t, err)
	assert.Equal(t, "2024-05-14", firstDay)

	productTitle, err := f.GetCellValue("top products", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Jacket", productTitle)

	customerEmail, err := f.GetCellValue("top customers", "B2")
	require.NoError(t, err)
	assert.Equal(t, "ann@example.com", customerEmail)

	region, err := f.GetCellValue("breakdowns", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Europe", region)
}

func TestBuildReportXLSXEmptyReport(t *testing.T) {
	raw, err := BuildReportXLSX(&entity.AnalyticsReport{})
	require.NoError(t, err)
	assert.NotEmpty(t, raw)
}
