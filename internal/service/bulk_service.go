package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/stocklens/internal/constants"
	"github.com/stocklens/internal/logger"
	"github.com/stocklens/internal/models"
	"github.com/stocklens/internal/repository"
)

// BulkItem 批量创建中的单个条目；Err 不为空表示解析阶段已失败
type BulkItem struct {
	Row         int
	ProductCode string
	Input       ProductInput
	Err         error
}

// BulkFailure 失败条目明细
type BulkFailure struct {
	Row         int    `json:"row"`
	ProductCode string `json:"product_code"`
	Error       string `json:"error"`
}

// BulkResult 批量创建汇总
type BulkResult struct {
	Success     int              `json:"success"`
	Errors      int              `json:"errors"`
	Created     []models.Product `json:"created"`
	Failed      []string         `json:"failed"`
	Skipped     []string         `json:"skipped"`
	FailedItems []BulkFailure    `json:"failed_items"`
}

// BulkService 批量导入协调器：逐条独立创建，重复编码跳过
type BulkService struct {
	products    *ProductService
	productRepo repository.ProductRepository
	maxItems    int
}

// NewBulkService 创建批量导入服务
func NewBulkService(products *ProductService, productRepo repository.ProductRepository, maxItems int) *BulkService {
	if maxItems <= 0 {
		maxItems = constants.BulkDefaultMaxItems
	}
	return &BulkService{products: products, productRepo: productRepo, maxItems: maxItems}
}

// MaxItems 单批允许的最大条目数
func (s *BulkService) MaxItems() int {
	return s.maxItems
}

// BulkCreate 解析 JSON 数组中的每个条目并批量创建，单条解析失败不影响其它条目
func (s *BulkService) BulkCreate(ctx context.Context, raw []json.RawMessage) (*BulkResult, error) {
	items := make([]BulkItem, 0, len(raw))
	for i, payload := range raw {
		item := BulkItem{Row: i + 1}
		if err := json.Unmarshal(payload, &item.Input); err != nil {
			item.ProductCode = peekProductCode(payload)
			item.Err = newValidationError("", "invalid product payload: %v", err)
		} else {
			item.ProductCode = strings.TrimSpace(item.Input.ProductCode)
		}
		items = append(items, item)
	}
	return s.BulkCreateItems(ctx, items)
}

// BulkCreateItems 按输入顺序逐条创建；超出单批上限的条目不处理，直接记为失败
func (s *BulkService) BulkCreateItems(ctx context.Context, items []BulkItem) (*BulkResult, error) {
	var overflow []BulkItem
	if len(items) > s.maxItems {
		items, overflow = items[:s.maxItems], items[s.maxItems:]
	}
	result := &BulkResult{
		Created:     make([]models.Product, 0),
		Failed:      make([]string, 0),
		Skipped:     make([]string, 0),
		FailedItems: make([]BulkFailure, 0),
	}
	seen := make(map[string]struct{}, len(items))

	for i := range items {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		item := &items[i]
		code := strings.TrimSpace(item.ProductCode)
		if item.Err != nil {
			result.fail(item.Row, code, item.Err)
			continue
		}
		if err := item.Input.Validate(); err != nil {
			result.fail(item.Row, code, err)
			continue
		}
		code = item.Input.ProductCode

		if _, ok := seen[code]; ok {
			result.Skipped = append(result.Skipped, code)
			continue
		}

		// 只有确认编码已落库后才记入 seen，失败的编码允许后续同编码条目重试
		existing, err := s.productRepo.GetByCode(ctx, code)
		if err != nil {
			result.fail(item.Row, code, err)
			continue
		}
		if existing != nil {
			seen[code] = struct{}{}
			result.Skipped = append(result.Skipped, code)
			continue
		}

		product, err := s.products.Create(ctx, item.Input)
		if err != nil {
			if errors.Is(err, ErrProductCodeExists) {
				seen[code] = struct{}{}
				result.Skipped = append(result.Skipped, code)
				continue
			}
			result.fail(item.Row, code, err)
			continue
		}
		seen[code] = struct{}{}
		result.Created = append(result.Created, *product)
		result.Success++
	}

	if len(overflow) > 0 {
		logger.Warnw("bulk_batch_truncated",
			"max_items", s.maxItems,
			"rejected", len(overflow),
		)
		for _, item := range overflow {
			result.record(item.Row, strings.TrimSpace(item.ProductCode), ErrBulkTooLarge.Error())
		}
	}
	return result, nil
}

func (r *BulkResult) fail(row int, code string, err error) {
	logger.Warnw("bulk_item_failed",
		"row", row,
		"product_code", code,
		"error", err,
	)
	message := err.Error()
	if !errors.Is(err, ErrValidation) {
		message = "failed to create product"
	}
	r.record(row, code, message)
}

func (r *BulkResult) record(row int, code, message string) {
	r.Errors++
	r.Failed = append(r.Failed, code)
	r.FailedItems = append(r.FailedItems, BulkFailure{Row: row, ProductCode: code, Error: message})
}

// peekProductCode 尽量从无法完整解析的条目中取出商品编码，便于回报失败项
func peekProductCode(payload json.RawMessage) string {
	var head struct {
		ProductCode interface{} `json:"product_code"`
	}
	if err := json.Unmarshal(payload, &head); err != nil {
		return ""
	}
	if code, ok := head.ProductCode.(string); ok {
		return strings.TrimSpace(code)
	}
	return ""
}
