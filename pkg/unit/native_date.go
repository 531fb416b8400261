package unit

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// 可解析的日期字符串格式，按顺序尝试
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006-01",
	"2006",
	"Jan 2 2006",
	"Jan 2 2006 15:04:05",
	time.RFC1123,
}

// NativeDate 以 time.Time 为时间值、以毫秒为数值刻度的时间单位
// 数值运算走秒+纳秒分解，跨越数百年的差值也不会溢出 time.Duration
type NativeDate struct {
	Location *time.Location
	Now      func() time.Time // 默认值来源，为nil时使用 time.Now
}

// NewNativeDate 创建UTC日期单位
func NewNativeDate() *NativeDate {
	return &NativeDate{Location: time.UTC}
}

func (d *NativeDate) location() *time.Location {
	if d.Location == nil {
		return time.UTC
	}
	return d.Location
}

// ParseFromObject 接受 time.Time、日期字符串与纪元毫秒数
func (d *NativeDate) ParseFromObject(raw any) (time.Time, error) {
	switch v := raw.(type) {
	case time.Time:
		return v, nil
	case *time.Time:
		if v == nil {
			return time.Time{}, fmt.Errorf("日期为空")
		}
		return *v, nil
	case int:
		return time.UnixMilli(int64(v)).In(d.location()), nil
	case int64:
		return time.UnixMilli(v).In(d.location()), nil
	case float64:
		return d.Change(time.UnixMilli(0).In(d.location()), v), nil
	case string:
		return d.parseString(v)
	default:
		return time.Time{}, fmt.Errorf("不支持的日期类型 %T", raw)
	}
}

func (d *NativeDate) parseString(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, d.location()); err == nil {
			return t, nil
		}
	}
	// 最后尝试纪元毫秒
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.UnixMilli(ms).In(d.location()), nil
	}
	return time.Time{}, fmt.Errorf("无法解析日期 %q", s)
}

func (d *NativeDate) MakeDefaultValue() time.Time {
	if d.Now != nil {
		return d.Now()
	}
	return time.Now().In(d.location())
}

func (d *NativeDate) CloneValue(v time.Time) time.Time {
	return v
}

// Compare 返回 a - b 的毫秒数
func (d *NativeDate) Compare(a, b time.Time) float64 {
	seconds := float64(a.Unix() - b.Unix())
	nanos := float64(a.Nanosecond() - b.Nanosecond())
	return seconds*msPerSecond + nanos/float64(time.Millisecond)
}

// Change 返回 v 前进 delta 毫秒后的时间
func (d *NativeDate) Change(v time.Time, delta float64) time.Time {
	if math.IsNaN(delta) || math.IsInf(delta, 0) {
		return v
	}
	seconds := math.Floor(delta / msPerSecond)
	nanos := math.Round((delta - seconds*msPerSecond) * float64(time.Millisecond))
	return time.Unix(v.Unix()+int64(seconds), int64(v.Nanosecond())+int64(nanos)).In(v.Location())
}

func (d *NativeDate) Earlier(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}

func (d *NativeDate) Later(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

// Format 返回默认格式的日期标签
func (d *NativeDate) Format(v time.Time) string {
	return v.Format("2006-01-02 15:04:05")
}

// Label 按缩放单位的粒度选择日期标签格式
func (d *NativeDate) Label(v time.Time, unitID int) string {
	switch {
	case unitID <= Second:
		return v.Format("15:04:05")
	case unitID <= Hour:
		return v.Format("15:04")
	case unitID <= Week:
		return v.Format("Jan 02")
	case unitID == Month:
		return v.Format("Jan 2006")
	default:
		return v.Format("2006")
	}
}
