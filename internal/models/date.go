package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/stocklens/internal/constants"
)

// Date 交易日期（仅日期部分，JSON 格式 YYYY-MM-DD）
type Date struct {
	time.Time
}

// NewDate 截断为 UTC 日期
func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// ParseDate 解析 YYYY-MM-DD，兼容带时间部分的 RFC3339
func ParseDate(raw string) (Date, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Date{}, fmt.Errorf("empty date")
	}
	if t, err := time.Parse(constants.TransactionDateLayout, raw); err == nil {
		return NewDate(t), nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q", raw)
	}
	return NewDate(t), nil
}

// MonthPartition 返回日期对应的 YYYY-MM
func (d Date) MonthPartition() string {
	return d.Time.Format(constants.MonthPartitionLayout)
}

// String 返回 YYYY-MM-DD
func (d Date) String() string {
	return d.Time.Format(constants.TransactionDateLayout)
}

// MarshalJSON 输出 YYYY-MM-DD
func (d Date) MarshalJSON() ([]byte, error) {
	if d.Time.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

// UnmarshalJSON 解析 YYYY-MM-DD
func (d *Date) UnmarshalJSON(b []byte) error {
	if len(b) == 0 || string(b) == "null" {
		d.Time = time.Time{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value 用于数据库写入
func (d Date) Value() (driver.Value, error) {
	if d.Time.IsZero() {
		return nil, nil
	}
	return d.String(), nil
}

// Scan 用于数据库读取
func (d *Date) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		d.Time = time.Time{}
		return nil
	case time.Time:
		*d = NewDate(v)
		return nil
	case string:
		return d.scanText(v)
	case []byte:
		return d.scanText(string(v))
	default:
		return fmt.Errorf("unsupported date value %T", value)
	}
}

func (d *Date) scanText(raw string) error {
	raw = strings.TrimSpace(raw)
	if len(raw) >= len(constants.TransactionDateLayout) {
		raw = raw[:len(constants.TransactionDateLayout)]
	}
	t, err := time.Parse(constants.TransactionDateLayout, raw)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", raw, err)
	}
	*d = NewDate(t)
	return nil
}
