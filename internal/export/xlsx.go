package export

import (
	"bytes"
	"fmt"

	"github.com/sellora/storefront-manager/internal/entity"
	"github.com/xuri/excelize/v2"
)

// BuildReportXLSX renders an analytics report as an XLSX workbook with a
// summary sheet, the 30-day series and the ranking breakdowns.
func BuildReportXLSX(report *entity.AnalyticsReport) ([]byte, error) {
	f := excelize.NewFile()
	summarySheet := "summary"
	dailySheet := "daily"
	productsSheet := "top products"
	customersSheet := "top customers"
	breakdownSheet := "breakdowns"
	f.SetSheetName("Sheet1", summarySheet)
	for _, sheet := range []string{dailySheet, productsSheet, customersSheet, breakdownSheet} {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, fmt.Errorf("new sheet %s: %w", sheet, err)
		}
	}

	_ = f.SetCellValue(summarySheet, "A1", "Store Analytics")

	summary := []struct {
		label string
		value any
	}{
		{"Total Orders", report.OrderStats.TotalOrders},
		{"Total Revenue", report.OrderStats.TotalRevenue},
		{"Average Order Value", report.OrderStats.AverageOrderValue},
		{"Orders Today", report.OrderStats.OrdersToday},
		{"Orders This Week", report.OrderStats.OrdersThisWeek},
		{"Orders This Month", report.OrderStats.OrdersThisMonth},
		{"Revenue Today", report.OrderStats.RevenueToday},
		{"Revenue This Week", report.OrderStats.RevenueThisWeek},
		{"Revenue This Month", report.OrderStats.RevenueThisMonth},
		{"Pending Orders", report.OrderStats.PendingOrders},
		{"Completed Orders", report.OrderStats.CompletedOrders},
		{"Canceled Orders", report.OrderStats.CanceledOrders},
		{"Total Customers", report.CustomerStats.TotalCustomers},
		{"New Customers Today", report.CustomerStats.NewCustomersToday},
		{"New Customers This Week", report.CustomerStats.NewCustomersThisWeek},
		{"New Customers This Month", report.CustomerStats.NewCustomersThisMonth},
		{"Returning Customers", report.CustomerStats.ReturningCustomers},
		{"Average Orders Per Customer", report.CustomerStats.AverageOrdersPerCustomer},
		{"Total Products", report.ProductStats.TotalProducts},
		{"Published Products", report.ProductStats.PublishedProducts},
		{"Draft Products", report.ProductStats.DraftProducts},
		{"Out Of Stock Products", report.ProductStats.OutOfStockProducts},
		{"Low Stock Products", report.ProductStats.LowStockProducts},
	}
	for i, row := range summary {
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("A%d", i+3), row.label)
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("B%d", i+3), row.value)
	}

	_ = f.SetCellValue(dailySheet, "A1", "Date")
	_ = f.SetCellValue(dailySheet, "B1", "Orders")
	_ = f.SetCellValue(dailySheet, "C1", "Revenue")
	for i, point := range report.RevenueByDay {
		row := i + 2
		_ = f.SetCellValue(dailySheet, fmt.Sprintf("A%d", row), point.Date)
		_ = f.SetCellValue(dailySheet, fmt.Sprintf("B%d", row), point.Orders)
		_ = f.SetCellValue(dailySheet, fmt.Sprintf("C%d", row), point.Revenue)
	}

	_ = f.SetCellValue(productsSheet, "A1", "Product")
	_ = f.SetCellValue(productsSheet, "B1", "Quantity")
	_ = f.SetCellValue(productsSheet, "C1", "Revenue")
	for i, product := range report.TopProducts {
		row := i + 2
		_ = f.SetCellValue(productsSheet, fmt.Sprintf("A%d", row), product.ProductTitle)
		_ = f.SetCellValue(productsSheet, fmt.Sprintf("B%d", row), product.TotalQuantity)
		_ = f.SetCellValue(productsSheet, fmt.Sprintf("C%d", row), product.TotalRevenue)
	}

	_ = f.SetCellValue(customersSheet, "A1", "Customer")
	_ = f.SetCellValue(customersSheet, "B1", "Email")
	_ = f.SetCellValue(customersSheet, "C1", "Orders")
	_ = f.SetCellValue(customersSheet, "D1", "Spent")
	for i, customer := range report.TopCustomers {
		row := i + 2
		_ = f.SetCellValue(customersSheet, fmt.Sprintf("A%d", row), customer.CustomerName)
		_ = f.SetCellValue(customersSheet, fmt.Sprintf("B%d", row), customer.CustomerEmail)
		_ = f.SetCellValue(customersSheet, fmt.Sprintf("C%d", row), customer.TotalOrders)
		_ = f.SetCellValue(customersSheet, fmt.Sprintf("D%d", row), customer.TotalSpent)
	}

	_ = f.SetCellValue(breakdownSheet, "A1", "Region")
	_ = f.SetCellValue(breakdownSheet, "B1", "Revenue")
	row := 2
	for _, region := range report.RevenueByRegion {
		_ = f.SetCellValue(breakdownSheet, fmt.Sprintf("A%d", row), region.Region)
		_ = f.SetCellValue(breakdownSheet, fmt.Sprintf("B%d", row), region.Revenue)
		row++
	}

	row += 2
	_ = f.SetCellValue(breakdownSheet, fmt.Sprintf("A%d", row), "Status")
	_ = f.SetCellValue(breakdownSheet, fmt.Sprintf("B%d", row), "Orders")
	row++
	for _, status := range report.OrdersByStatus {
		_ = f.SetCellValue(breakdownSheet, fmt.Sprintf("A%d", row), status.Status)
		_ = f.SetCellValue(breakdownSheet, fmt.Sprintf("B%d", row), status.Count)
		row++
	}

	row += 2
	_ = f.SetCellValue(breakdownSheet, fmt.Sprintf("A%d", row), "Currency")
	_ = f.SetCellValue(breakdownSheet, fmt.Sprintf("B%d", row), "Total")
	row++
	for _, currency := range report.SalesByCurrency {
		_ = f.SetCellValue(breakdownSheet, fmt.Sprintf("A%d", row), currency.Currency)
		_ = f.SetCellValue(breakdownSheet, fmt.Sprintf("B%d", row), currency.Total)
		row++
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
