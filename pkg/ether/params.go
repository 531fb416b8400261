// Package ether 构造参数定义
package ether

import (
	"fmt"
)

// Kind ether实现类型
type Kind string

const (
	KindLinear  Kind = "linear"   // 均匀比例
	KindHotZone Kind = "hot-zone" // 分段均匀比例
)

// ZoneParams 调用方声明的热区
type ZoneParams struct {
	Start   any     // 热区起点，由Unit解析
	End     any     // 热区终点（不含）
	Magnify float64 // 相对背景比例的放大倍数
}

// Params ether的静态构造参数
type Params struct {
	Kind              Kind
	Interval          float64 // 一个时间间隔在单位数值域中的长度
	PixelsPerInterval float64 // 每个时间间隔的像素数

	// 初始位置指令，nil 表示未设置；按 StartsOn、EndsOn、CentersOn 的顺序取第一个
	StartsOn  any
	EndsOn    any
	CentersOn any

	Zones []ZoneParams // 仅热区ether使用
	Theme string       // 仅热区ether保存，不参与计算

	// UnitLengths 单位标识符到单位长度的映射，缩放时查找
	UnitLengths map[int]float64
}

// Option 参数选项函数类型
type Option func(*Params)

// WithKind 设置ether类型
func WithKind(kind Kind) Option {
	return func(p *Params) {
		p.Kind = kind
	}
}

// WithInterval 设置时间间隔与像素密度
func WithInterval(interval, pixelsPerInterval float64) Option {
	return func(p *Params) {
		p.Interval = interval
		p.PixelsPerInterval = pixelsPerInterval
	}
}

// WithStartsOn 参考时间位于视口左边缘
func WithStartsOn(raw any) Option {
	return func(p *Params) {
		p.StartsOn = raw
	}
}

// WithEndsOn 参考时间位于视口右边缘
func WithEndsOn(raw any) Option {
	return func(p *Params) {
		p.EndsOn = raw
	}
}

// WithCentersOn 参考时间位于视口中心
func WithCentersOn(raw any) Option {
	return func(p *Params) {
		p.CentersOn = raw
	}
}

// WithZone 追加一个热区，同时把类型切换为热区ether
func WithZone(start, end any, magnify float64) Option {
	return func(p *Params) {
		p.Kind = KindHotZone
		p.Zones = append(p.Zones, ZoneParams{Start: start, End: end, Magnify: magnify})
	}
}

// WithTheme 设置主题名
func WithTheme(theme string) Option {
	return func(p *Params) {
		p.Theme = theme
	}
}

// WithUnitLengths 设置单位长度表
func WithUnitLengths(lengths map[int]float64) Option {
	return func(p *Params) {
		p.UnitLengths = lengths
	}
}

// NewParams 使用选项模式创建参数，默认为线性ether、interval=1、pixelsPerInterval=1
func NewParams(opts ...Option) *Params {
	params := &Params{
		Kind:              KindLinear,
		Interval:          1,
		PixelsPerInterval: 1,
	}

	for _, opt := range opts {
		opt(params)
	}

	return params
}

// initialPosition 按位置指令解析初始参考时间，并返回之后需要平移的像素数
func initialPosition[T any](p *Params, unit Unit[T], pixelLength float64) (T, float64, error) {
	var zero T

	switch {
	case p.StartsOn != nil:
		start, err := unit.ParseFromObject(p.StartsOn)
		if err != nil {
			return zero, 0, fmt.Errorf("解析startsOn失败: %w", err)
		}
		return start, 0, nil

	case p.EndsOn != nil:
		end, err := unit.ParseFromObject(p.EndsOn)
		if err != nil {
			return zero, 0, fmt.Errorf("解析endsOn失败: %w", err)
		}
		return end, -pixelLength, nil

	case p.CentersOn != nil:
		center, err := unit.ParseFromObject(p.CentersOn)
		if err != nil {
			return zero, 0, fmt.Errorf("解析centersOn失败: %w", err)
		}
		return center, -pixelLength / 2, nil

	default:
		return unit.MakeDefaultValue(), -pixelLength / 2, nil
	}
}
