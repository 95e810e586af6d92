package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/stocklens/internal/constants"
	"github.com/stocklens/internal/models"

	"github.com/xuri/excelize/v2"
)

// ProductTemplateHeaders 批量导入模板列
var ProductTemplateHeaders = []string{
	"distributor_name",
	"brand_name",
	"product_code",
	"product_secondary_code",
	"product_name",
	"description",
	"summary",
	"shipping_class",
	"category_name",
	"product_availability",
	"status",
	"online",
	"superceded_by",
	"ean",
	"pack_size",
	"mwp",
	"trade",
	"go",
	"rrp",
	"core_group",
	"tax_exmt",
	"hyperlink",
	"web_title",
	"features_and_benefits_codes",
	"badges_codes",
	"stock_unmanaged",
}

var productTemplateExample = []string{
	"Acme Distribution", "Acme", "ACME-001", "", "Acme Widget", "", "", "", "Widgets",
	"In Stock", "Active", "true", "", "", "1", "", "10.00", "", "12.00", "", "false", "", "", "", "", "false",
}

// ProductImportService 解析 CSV/XLSX 上传文件并交给批量协调器
type ProductImportService struct {
	bulk           *BulkService
	maxUploadBytes int64
}

// NewProductImportService 创建导入服务
func NewProductImportService(bulk *BulkService, maxUploadBytes int64) *ProductImportService {
	if maxUploadBytes <= 0 {
		maxUploadBytes = constants.BulkDefaultMaxUploadBytes
	}
	return &ProductImportService{bulk: bulk, maxUploadBytes: maxUploadBytes}
}

// MaxUploadBytes 上传文件大小上限
func (s *ProductImportService) MaxUploadBytes() int64 {
	return s.maxUploadBytes
}

// Import 读取上传文件并批量创建商品
func (s *ProductImportService) Import(ctx context.Context, filename string, r io.Reader) (*BulkResult, error) {
	data, err := io.ReadAll(io.LimitReader(r, s.maxUploadBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%w: read upload: %v", ErrBadRequest, err)
	}
	if int64(len(data)) > s.maxUploadBytes {
		return nil, fmt.Errorf("%w: file exceeds %d bytes", ErrBadRequest, s.maxUploadBytes)
	}
	items, err := ParseProductFile(filename, data)
	if err != nil {
		return nil, err
	}
	return s.bulk.BulkCreateItems(ctx, items)
}

// Template 生成 CSV 导入模板（表头 + 一行示例）
func (s *ProductImportService) Template() ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(ProductTemplateHeaders); err != nil {
		return nil, err
	}
	if err := w.Write(productTemplateExample); err != nil {
		return nil, err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ParseProductFile 根据扩展名或文件头识别 CSV/XLSX 并解析为批量条目
func ParseProductFile(filename string, data []byte) ([]BulkItem, error) {
	var (
		rows [][]string
		err  error
	)
	switch detectImportFormat(filename, data) {
	case "xlsx":
		rows, err = readXLSXRows(data)
	case "csv":
		rows, err = readCSVRows(data)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFile, filepath.Ext(filename))
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadRequest, err)
	}
	return ParseProductRows(rows)
}

// ParseProductRows 将带表头的二维表转换为批量条目，第一行必须是表头
func ParseProductRows(rows [][]string) ([]BulkItem, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: file is empty", ErrBadRequest)
	}
	columns := make(map[string]int, len(rows[0]))
	for i, header := range rows[0] {
		name := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(header, "\ufeff")))
		if name != "" {
			columns[name] = i
		}
	}
	if _, ok := columns["product_code"]; !ok {
		return nil, fmt.Errorf("%w: missing product_code column", ErrBadRequest)
	}

	items := make([]BulkItem, 0, len(rows)-1)
	for i, record := range rows[1:] {
		if isBlankRecord(record) {
			continue
		}
		row := rowReader{columns: columns, record: record}
		item := BulkItem{Row: i + 2, ProductCode: row.text("product_code")}
		item.Input, item.Err = row.productInput()
		items = append(items, item)
	}
	return items, nil
}

func detectImportFormat(filename string, data []byte) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx":
		return "xlsx"
	case ".csv", ".txt":
		return "csv"
	}
	if bytes.HasPrefix(data, []byte("PK")) {
		return "xlsx"
	}
	if filepath.Ext(filename) == "" {
		return "csv"
	}
	return ""
}

func readCSVRows(data []byte) ([][]string, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	return reader.ReadAll()
}

func readXLSXRows(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	return f.GetRows(sheets[0])
}

func isBlankRecord(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

type rowReader struct {
	columns map[string]int
	record  []string
}

func (r rowReader) text(column string) string {
	idx, ok := r.columns[column]
	if !ok || idx >= len(r.record) {
		return ""
	}
	return strings.TrimSpace(r.record[idx])
}

func (r rowReader) optionalText(column string) *string {
	v := r.text(column)
	if v == "" {
		return nil
	}
	return &v
}

func (r rowReader) optionalBool(column string) *bool {
	v := r.text(column)
	if v == "" {
		return nil
	}
	b := strings.EqualFold(v, "true") || v == "1"
	return &b
}

func (r rowReader) optionalInt(column string) (*int, error) {
	v := r.text(column)
	if v == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil, newValidationError(column, "invalid integer %q", v)
	}
	return &n, nil
}

func (r rowReader) optionalMoney(column string) (*models.Money, error) {
	v := r.text(column)
	if v == "" {
		return nil, nil
	}
	amount, err := models.ParseMoney(v)
	if err != nil {
		return nil, newValidationError(column, "invalid amount %q", v)
	}
	return &amount, nil
}

func (r rowReader) productInput() (ProductInput, error) {
	in := ProductInput{
		DistributorName:          r.text("distributor_name"),
		BrandName:                r.text("brand_name"),
		ProductCode:              r.text("product_code"),
		ProductSecondaryCode:     r.optionalText("product_secondary_code"),
		ProductName:              r.text("product_name"),
		Description:              r.optionalText("description"),
		Summary:                  r.optionalText("summary"),
		ShippingClass:            r.optionalText("shipping_class"),
		CategoryName:             r.text("category_name"),
		ProductAvailability:      r.optionalText("product_availability"),
		Status:                   r.optionalText("status"),
		Online:                   r.optionalBool("online"),
		SupercededBy:             r.optionalText("superceded_by"),
		EAN:                      r.optionalText("ean"),
		CoreGroup:                r.optionalText("core_group"),
		TaxExmt:                  r.optionalBool("tax_exmt"),
		Hyperlink:                r.optionalText("hyperlink"),
		WebTitle:                 r.optionalText("web_title"),
		FeaturesAndBenefitsCodes: r.optionalText("features_and_benefits_codes"),
		BadgesCodes:              r.optionalText("badges_codes"),
		StockUnmanaged:           r.optionalBool("stock_unmanaged"),
	}
	var err error
	if in.PackSize, err = r.optionalInt("pack_size"); err != nil {
		return in, err
	}
	if in.MWP, err = r.optionalMoney("mwp"); err != nil {
		return in, err
	}
	if in.Trade, err = r.optionalMoney("trade"); err != nil {
		return in, err
	}
	if in.Go, err = r.optionalMoney("go"); err != nil {
		return in, err
	}
	if in.RRP, err = r.optionalMoney("rrp"); err != nil {
		return in, err
	}
	return in, nil
}
