package service

import (
	"context"
	"fmt"

	"github.com/stocklens/internal/models"

	"github.com/xuri/excelize/v2"
)

const (
	analyticsSheetName = "Product Analytics"
	overallSheetName   = "Overall"
)

var analyticsExportHeaders = []interface{}{
	"Product ID",
	"Product Code",
	"Product Name",
	"Brand",
	"Sell-In Qty",
	"Sell-Through Qty",
	"Turnover Rate (%)",
	"Total Revenue",
	"Current Stock",
}

// ExportProductAnalytics 按查询条件导出商品分析与汇总为 XLSX
func (s *AnalyticsService) ExportProductAnalytics(ctx context.Context, query AnalyticsQuery) ([]byte, error) {
	rows, err := s.ProductAnalytics(ctx, query)
	if err != nil {
		return nil, err
	}
	overall, err := s.OverallAnalytics(ctx, query.Month)
	if err != nil {
		return nil, err
	}
	return WriteAnalyticsWorkbook(rows, *overall)
}

// WriteAnalyticsWorkbook 生成分析工作簿
func WriteAnalyticsWorkbook(rows []models.ProductAnalytics, overall models.OverallAnalytics) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", analyticsSheetName); err != nil {
		return nil, err
	}
	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}

	if err := f.SetSheetRow(analyticsSheetName, "A1", &analyticsExportHeaders); err != nil {
		return nil, err
	}
	lastColumn, err := excelize.ColumnNumberToName(len(analyticsExportHeaders))
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(analyticsSheetName, "A1", lastColumn+"1", headerStyle); err != nil {
		return nil, err
	}
	for i, row := range rows {
		cell := fmt.Sprintf("A%d", i+2)
		values := []interface{}{
			row.ProductID,
			row.ProductCode,
			row.ProductName,
			row.BrandName,
			row.SellInQuantity,
			row.SellThroughQuantity,
			row.TurnoverRate,
			row.TotalRevenue,
			row.CurrentStock,
		}
		if err := f.SetSheetRow(analyticsSheetName, cell, &values); err != nil {
			return nil, err
		}
	}

	if _, err := f.NewSheet(overallSheetName); err != nil {
		return nil, err
	}
	summary := [][]interface{}{
		{"Metric", "Value"},
		{"Total Sell-In", overall.TotalSellIn},
		{"Total Sell-Through", overall.TotalSellThrough},
		{"Average Turnover Rate (%)", overall.AverageTurnoverRate},
		{"Total Revenue", overall.TotalRevenue},
	}
	for i := range summary {
		if err := f.SetSheetRow(overallSheetName, fmt.Sprintf("A%d", i+1), &summary[i]); err != nil {
			return nil, err
		}
	}
	if err := f.SetCellStyle(overallSheetName, "A1", "B1", headerStyle); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
