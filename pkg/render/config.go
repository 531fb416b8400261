// Package render 配置定义
package render

import (
	"errors"
	"image/color"
)

// Config PNG渲染配置
type Config struct {
	BandHeight  int     // 每个band的像素高度
	TickSpacing float64 // 刻度间隔（像素）
	Concurrency int     // 同时渲染的band数

	Background     color.Color
	Foreground     color.Color // 坐标轴与标签
	Magnified      color.Color // 放大区着色，带透明度
	Compressed     color.Color // 压缩区着色，带透明度
	TitleColor     color.Color
	SeparatorColor color.Color
}

// 标题、热区、坐标轴与标签至少需要的高度
const minBandHeight = 48

// DefaultConfig 返回默认配置
func DefaultConfig() *Config {
	return &Config{
		BandHeight:     64,
		TickSpacing:    100,
		Concurrency:    4,
		Background:     color.RGBA{R: 0xfa, G: 0xfa, B: 0xfa, A: 0xff},
		Foreground:     color.RGBA{R: 0x30, G: 0x30, B: 0x30, A: 0xff},
		Magnified:      color.NRGBA{R: 0xf0, G: 0x80, B: 0x20, A: 0x70},
		Compressed:     color.NRGBA{R: 0x30, G: 0x70, B: 0xd0, A: 0x70},
		TitleColor:     color.RGBA{R: 0x10, G: 0x60, B: 0x10, A: 0xff},
		SeparatorColor: color.RGBA{R: 0xd0, G: 0xd0, B: 0xd0, A: 0xff},
	}
}

// Validate 验证配置的合理性
func (c *Config) Validate() error {
	if c.BandHeight < minBandHeight {
		return errors.New("band高度不能小于48像素")
	}

	if c.TickSpacing <= 0 {
		return errors.New("刻度间隔必须大于0")
	}

	if c.Concurrency <= 0 {
		return errors.New("并发数必须大于0")
	}

	if c.Background == nil || c.Foreground == nil || c.Magnified == nil ||
		c.Compressed == nil || c.TitleColor == nil || c.SeparatorColor == nil {
		return errors.New("颜色配置不完整")
	}

	return nil
}

// Option 渲染配置选项函数类型
type Option func(*Config)

// WithBandHeight 设置每个band的像素高度
func WithBandHeight(height int) Option {
	return func(c *Config) {
		c.BandHeight = height
	}
}

// WithTickSpacing 设置刻度间隔
func WithTickSpacing(spacing float64) Option {
	return func(c *Config) {
		c.TickSpacing = spacing
	}
}

// WithConcurrency 设置同时渲染的band数
func WithConcurrency(n int) Option {
	return func(c *Config) {
		c.Concurrency = n
	}
}

// NewConfigWithOptions 使用选项模式创建渲染配置
func NewConfigWithOptions(opts ...Option) *Config {
	config := DefaultConfig()
	for _, opt := range opts {
		opt(config)
	}
	return config
}
