// Package tui 选项模式支持
package tui

import (
	"time"
)

// Option TUI配置选项函数类型
type Option func(*Config)

// WithRefreshInterval 设置UI刷新间隔
func WithRefreshInterval(interval time.Duration) Option {
	return func(c *Config) {
		c.RefreshInterval = interval
	}
}

// WithPixelsPerCell 设置每个字符列对应的band像素数
func WithPixelsPerCell(pixels float64) Option {
	return func(c *Config) {
		c.PixelsPerCell = pixels
	}
}

// WithScrollStep 设置每次平移的字符列数
func WithScrollStep(cells int) Option {
	return func(c *Config) {
		c.ScrollStep = cells
	}
}

// WithTickSpacing 设置刻度间隔
func WithTickSpacing(cells int) Option {
	return func(c *Config) {
		c.TickSpacing = cells
	}
}

// WithChartSize 设置标尺宽度范围
func WithChartSize(minWidth, maxWidth int) Option {
	return func(c *Config) {
		c.MinChartWidth = minWidth
		c.MaxChartSize = maxWidth
	}
}

// WithNavigationLimit 设置导航频率控制
func WithNavigationLimit(threshold int, rest time.Duration) Option {
	return func(c *Config) {
		c.NavigationThreshold = threshold
		c.NavigationRest = rest
	}
}

// NewConfigWithOptions 使用选项模式创建TUI配置
func NewConfigWithOptions(opts ...Option) *Config {
	config := DefaultConfig()

	// 应用所有选项
	for _, opt := range opts {
		opt(config)
	}

	return config
}
