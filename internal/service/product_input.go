package service

import (
	"strings"

	"github.com/stocklens/internal/constants"
	"github.com/stocklens/internal/models"
)

// ProductInput 创建商品输入
type ProductInput struct {
	DistributorName          string        `json:"distributor_name" validate:"required"`
	BrandName                string        `json:"brand_name" validate:"required"`
	ProductCode              string        `json:"product_code" validate:"required"`
	ProductSecondaryCode     *string       `json:"product_secondary_code"`
	ProductName              string        `json:"product_name" validate:"required"`
	Description              *string       `json:"description"`
	Summary                  *string       `json:"summary"`
	ShippingClass            *string       `json:"shipping_class"`
	CategoryName             string        `json:"category_name" validate:"required"`
	ProductAvailability      *string       `json:"product_availability"`
	Status                   *string       `json:"status"`
	Online                   *bool         `json:"online"`
	SupercededBy             *string       `json:"superceded_by"`
	EAN                      *string       `json:"ean"`
	PackSize                 *int          `json:"pack_size" validate:"omitempty,min=1"`
	MWP                      *models.Money `json:"mwp"`
	Trade                    *models.Money `json:"trade" validate:"required"`
	Go                       *models.Money `json:"go"`
	RRP                      *models.Money `json:"rrp" validate:"required"`
	CoreGroup                *string       `json:"core_group"`
	TaxExmt                  *bool         `json:"tax_exmt"`
	Hyperlink                *string       `json:"hyperlink"`
	WebTitle                 *string       `json:"web_title"`
	FeaturesAndBenefitsCodes *string       `json:"features_and_benefits_codes"`
	BadgesCodes              *string       `json:"badges_codes"`
	StockUnmanaged           *bool         `json:"stock_unmanaged"`
}

// Validate 校验必填项与价格
func (in *ProductInput) Validate() error {
	in.ProductCode = strings.TrimSpace(in.ProductCode)
	if err := validateStruct(in); err != nil {
		return err
	}
	if err := requireNonNegative("trade", in.Trade); err != nil {
		return err
	}
	if err := requireNonNegative("rrp", in.RRP); err != nil {
		return err
	}
	if err := requireNonNegative("mwp", in.MWP); err != nil {
		return err
	}
	return requireNonNegative("go", in.Go)
}

// ToModel 转换为模型并补齐默认值
func (in *ProductInput) ToModel() *models.Product {
	product := &models.Product{
		DistributorName:          in.DistributorName,
		BrandName:                in.BrandName,
		ProductCode:              in.ProductCode,
		ProductSecondaryCode:     in.ProductSecondaryCode,
		ProductName:              in.ProductName,
		Description:              in.Description,
		Summary:                  in.Summary,
		ShippingClass:            in.ShippingClass,
		CategoryName:             in.CategoryName,
		ProductAvailability:      constants.ProductAvailabilityInStock,
		Status:                   constants.ProductStatusActive,
		Online:                   true,
		SupercededBy:             in.SupercededBy,
		EAN:                      in.EAN,
		PackSize:                 constants.ProductDefaultPackSize,
		MWP:                      in.MWP,
		Go:                       in.Go,
		CoreGroup:                in.CoreGroup,
		Hyperlink:                in.Hyperlink,
		WebTitle:                 in.WebTitle,
		FeaturesAndBenefitsCodes: in.FeaturesAndBenefitsCodes,
		BadgesCodes:              in.BadgesCodes,
	}
	if in.Trade != nil {
		product.Trade = *in.Trade
	}
	if in.RRP != nil {
		product.RRP = *in.RRP
	}
	if in.ProductAvailability != nil {
		product.ProductAvailability = *in.ProductAvailability
	}
	if in.Status != nil {
		product.Status = *in.Status
	}
	if in.Online != nil {
		product.Online = *in.Online
	}
	if in.PackSize != nil {
		product.PackSize = *in.PackSize
	}
	if in.TaxExmt != nil {
		product.TaxExmt = *in.TaxExmt
	}
	if in.StockUnmanaged != nil {
		product.StockUnmanaged = *in.StockUnmanaged
	}
	return product
}

// ProductPatch 商品部分更新，只应用请求中出现的字段
type ProductPatch struct {
	DistributorName          Optional[string]       `json:"distributor_name"`
	BrandName                Optional[string]       `json:"brand_name"`
	ProductCode              Optional[string]       `json:"product_code"`
	ProductSecondaryCode     Optional[string]       `json:"product_secondary_code"`
	ProductName              Optional[string]       `json:"product_name"`
	Description              Optional[string]       `json:"description"`
	Summary                  Optional[string]       `json:"summary"`
	ShippingClass            Optional[string]       `json:"shipping_class"`
	CategoryName             Optional[string]       `json:"category_name"`
	ProductAvailability      Optional[string]       `json:"product_availability"`
	Status                   Optional[string]       `json:"status"`
	Online                   Optional[bool]         `json:"online"`
	SupercededBy             Optional[string]       `json:"superceded_by"`
	EAN                      Optional[string]       `json:"ean"`
	PackSize                 Optional[int]          `json:"pack_size"`
	MWP                      Optional[models.Money] `json:"mwp"`
	Trade                    Optional[models.Money] `json:"trade"`
	Go                       Optional[models.Money] `json:"go"`
	RRP                      Optional[models.Money] `json:"rrp"`
	CoreGroup                Optional[string]       `json:"core_group"`
	TaxExmt                  Optional[bool]         `json:"tax_exmt"`
	Hyperlink                Optional[string]       `json:"hyperlink"`
	WebTitle                 Optional[string]       `json:"web_title"`
	FeaturesAndBenefitsCodes Optional[string]       `json:"features_and_benefits_codes"`
	BadgesCodes              Optional[string]       `json:"badges_codes"`
	StockUnmanaged           Optional[bool]         `json:"stock_unmanaged"`
}

// Apply 逐字段应用补丁，非空字段不允许置为 null
func (p *ProductPatch) Apply(product *models.Product) error {
	if err := applyRequiredString("distributor_name", p.DistributorName, &product.DistributorName); err != nil {
		return err
	}
	if err := applyRequiredString("brand_name", p.BrandName, &product.BrandName); err != nil {
		return err
	}
	if err := applyRequiredString("product_code", p.ProductCode, &product.ProductCode); err != nil {
		return err
	}
	if err := applyRequiredString("product_name", p.ProductName, &product.ProductName); err != nil {
		return err
	}
	if err := applyRequiredString("category_name", p.CategoryName, &product.CategoryName); err != nil {
		return err
	}
	if err := applyRequiredString("product_availability", p.ProductAvailability, &product.ProductAvailability); err != nil {
		return err
	}
	if err := applyRequiredString("status", p.Status, &product.Status); err != nil {
		return err
	}
	if err := applyRequired("online", p.Online, &product.Online); err != nil {
		return err
	}
	if err := applyRequired("tax_exmt", p.TaxExmt, &product.TaxExmt); err != nil {
		return err
	}
	if err := applyRequired("stock_unmanaged", p.StockUnmanaged, &product.StockUnmanaged); err != nil {
		return err
	}
	if p.PackSize.Set {
		if p.PackSize.Value == nil || *p.PackSize.Value < 1 {
			return newValidationError("pack_size", "must be at least 1")
		}
		product.PackSize = *p.PackSize.Value
	}
	if err := applyRequiredMoney("trade", p.Trade, &product.Trade); err != nil {
		return err
	}
	if err := applyRequiredMoney("rrp", p.RRP, &product.RRP); err != nil {
		return err
	}
	if err := applyNullableMoney("mwp", p.MWP, &product.MWP); err != nil {
		return err
	}
	if err := applyNullableMoney("go", p.Go, &product.Go); err != nil {
		return err
	}

	applyNullable(p.ProductSecondaryCode, &product.ProductSecondaryCode)
	applyNullable(p.Description, &product.Description)
	applyNullable(p.Summary, &product.Summary)
	applyNullable(p.ShippingClass, &product.ShippingClass)
	applyNullable(p.SupercededBy, &product.SupercededBy)
	applyNullable(p.EAN, &product.EAN)
	applyNullable(p.CoreGroup, &product.CoreGroup)
	applyNullable(p.Hyperlink, &product.Hyperlink)
	applyNullable(p.WebTitle, &product.WebTitle)
	applyNullable(p.FeaturesAndBenefitsCodes, &product.FeaturesAndBenefitsCodes)
	applyNullable(p.BadgesCodes, &product.BadgesCodes)
	return nil
}

func applyRequired[T any](field string, value Optional[T], target *T) error {
	if !value.Set {
		return nil
	}
	if value.Value == nil {
		return newValidationError(field, "must not be null")
	}
	*target = *value.Value
	return nil
}

func applyRequiredString(field string, value Optional[string], target *string) error {
	if !value.Set {
		return nil
	}
	if value.Value == nil || strings.TrimSpace(*value.Value) == "" {
		return newValidationError(field, "must not be empty")
	}
	*target = strings.TrimSpace(*value.Value)
	return nil
}

func applyRequiredMoney(field string, value Optional[models.Money], target *models.Money) error {
	if err := requireNonNegative(field, value.Value); err != nil {
		return err
	}
	return applyRequired(field, value, target)
}

func applyNullableMoney(field string, value Optional[models.Money], target **models.Money) error {
	if err := requireNonNegative(field, value.Value); err != nil {
		return err
	}
	applyNullable(value, target)
	return nil
}

func applyNullable[T any](value Optional[T], target **T) {
	if !value.Set {
		return
	}
	*target = value.Value
}

func requireNonNegative(field string, amount *models.Money) error {
	if amount != nil && amount.IsNegative() {
		return newValidationError(field, "must not be negative")
	}
	return nil
}
