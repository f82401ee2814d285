package util

import (
	"time"
)

// PtrStr 用于将 string 转换为 *string
func PtrStr(s string) *string {
	return &s
}

// PtrInt64 用于将 int64 转换为 *int64
func PtrInt64(i int64) *int64 {
	return &i
}

// ToMillis 时间转毫秒时间戳
func ToMillis(t time.Time) int64 {
	return t.UnixMilli()
}

// ToMillisPtr 可空时间转毫秒时间戳
func ToMillisPtr(t *time.Time) *int64 {
	if t == nil {
		return nil
	}
	ms := t.UnixMilli()
	return &ms
}

// FromMillisPtr 毫秒时间戳转可空时间
func FromMillisPtr(ms *int64) *time.Time {
	if ms == nil {
		return nil
	}
	t := time.UnixMilli(*ms)
	return &t
}
