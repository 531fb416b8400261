// Package tui 配置定义
package tui

import (
	"errors"
	"time"
)

// Config TUI组件的配置结构
type Config struct {
	RefreshInterval     time.Duration // UI刷新间隔
	PixelsPerCell       float64       // 每个字符列对应的band像素数
	ScrollStep          int           // 每次平移的字符列数
	TickSpacing         int           // 刻度间隔（字符列）
	MinChartWidth       int           // 最小标尺宽度
	MaxChartSize        int           // 最大标尺宽度（防止极端值）
	NavigationThreshold int           // 连续导航多少次后休息
	NavigationRest      time.Duration // 导航休息时长
}

// DefaultConfig 返回默认配置
func DefaultConfig() *Config {
	return &Config{
		RefreshInterval:     200 * time.Millisecond, // 默认200ms刷新
		PixelsPerCell:       8,                      // 与终端字符宽度大致相当
		ScrollStep:          8,                      // 每次平移8列
		TickSpacing:         12,                     // 每12列一个刻度
		MinChartWidth:       20,                     // 最小标尺宽度
		MaxChartSize:        1000,                   // 最大标尺宽度
		NavigationThreshold: 5,                      // 5次事件后休息
		NavigationRest:      100 * time.Millisecond, // 休息100ms
	}
}

// ScrollPixels 每次平移对应的band像素数
func (c *Config) ScrollPixels() float64 {
	return float64(c.ScrollStep) * c.PixelsPerCell
}

// Validate 验证配置的合理性
func (c *Config) Validate() error {
	if c.RefreshInterval <= 0 {
		return errors.New("UI刷新间隔必须大于0")
	}

	if c.RefreshInterval < 10*time.Millisecond {
		return errors.New("UI刷新间隔不能小于10ms")
	}

	if c.PixelsPerCell <= 0 {
		return errors.New("每列像素数必须大于0")
	}

	if c.ScrollStep <= 0 {
		return errors.New("平移步长必须大于0")
	}

	if c.TickSpacing < 2 {
		return errors.New("刻度间隔不能小于2列")
	}

	if c.MinChartWidth <= 0 {
		return errors.New("最小标尺宽度必须大于0")
	}

	if c.MaxChartSize < c.MinChartWidth {
		return errors.New("最大标尺宽度不能小于最小标尺宽度")
	}

	if c.NavigationThreshold <= 0 {
		return errors.New("导航事件阈值必须大于0")
	}

	if c.NavigationRest < 0 {
		return errors.New("导航休息时长不能为负数")
	}

	return nil
}
