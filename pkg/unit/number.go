package unit

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Number 纯数值时间单位，时间值即 float64
type Number struct {
	// Precision 标签格式化保留的小数位数
	Precision int
}

// NewNumber 创建数值单位
func NewNumber() *Number {
	return &Number{Precision: 0}
}

// ParseFromObject 接受各种数值类型与数字字符串
func (n *Number) ParseFromObject(raw any) (float64, error) {
	switch v := raw.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case uint64:
		return float64(v), nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, fmt.Errorf("无法解析数值 %q: %w", v, err)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("不支持的数值类型 %T", raw)
	}
}

func (n *Number) MakeDefaultValue() float64 {
	return 0
}

func (n *Number) CloneValue(v float64) float64 {
	return v
}

func (n *Number) Compare(a, b float64) float64 {
	return a - b
}

func (n *Number) Change(v float64, delta float64) float64 {
	return v + delta
}

func (n *Number) Earlier(a, b float64) float64 {
	return math.Min(a, b)
}

func (n *Number) Later(a, b float64) float64 {
	return math.Max(a, b)
}

// Format 按精度格式化数值标签
func (n *Number) Format(v float64) string {
	return strconv.FormatFloat(v, 'f', n.Precision, 64)
}

// Label 数值单位的标签与粒度无关
func (n *Number) Label(v float64, unitID int) string {
	return n.Format(v)
}
