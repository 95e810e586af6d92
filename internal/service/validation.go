package service

import (
	"errors"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/stocklens/internal/constants"

	"github.com/go-playground/validator/v10"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func payloadValidator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return field.Name
			}
			return name
		})
		_ = v.RegisterValidation("month_partition", func(fl validator.FieldLevel) bool {
			return IsMonthPartition(fl.Field().String())
		})
		validate = v
	})
	return validate
}

// validateStruct 校验并转换为 ValidationError（只返回第一个字段错误）
func validateStruct(payload interface{}) error {
	err := payloadValidator().Struct(payload)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return &ValidationError{Message: err.Error()}
	}
	fe := fieldErrs[0]
	return &ValidationError{Field: fe.Field(), Message: describeFieldError(fe)}
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field required"
	case "min":
		return "must be at least " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	case "len":
		return "must be exactly " + fe.Param() + " characters"
	case "month_partition":
		return "must be a YYYY-MM month (exactly 7 characters)"
	default:
		return "failed " + fe.Tag() + " validation"
	}
}

// IsMonthPartition 判断是否为合法的 YYYY-MM 月份分区
func IsMonthPartition(value string) bool {
	if len(value) != constants.MonthPartitionLength {
		return false
	}
	_, err := time.Parse(constants.MonthPartitionLayout, value)
	return err == nil
}

// ValidateMonthFilter 校验查询参数中的月份过滤条件，空串表示不过滤
func ValidateMonthFilter(month string) (string, error) {
	month = strings.TrimSpace(month)
	if month == "" {
		return "", nil
	}
	if len(month) != constants.MonthPartitionLength {
		return "", newValidationError("month", "must be exactly %d characters", constants.MonthPartitionLength)
	}
	return month, nil
}
