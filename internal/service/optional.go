package service

import (
	"bytes"
	"encoding/json"
)

// Optional 区分 JSON 中“未提供”与“显式 null”的字段
type Optional[T any] struct {
	Set   bool
	Value *T
}

// UnmarshalJSON 出现即视为已提供，null 表示清空
func (o *Optional[T]) UnmarshalJSON(b []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		o.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	o.Value = &v
	return nil
}

// Some 构造已提供的值
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: &v}
}
