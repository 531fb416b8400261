// Package band 选项模式支持
package band

import (
	"time"
)

// settings 构造band时的可选设置
type settings struct {
	precision int
	location  *time.Location
	now       func() time.Time
}

// Option band构造选项函数类型
type Option func(*settings)

// WithPrecision 设置数值band标签的小数位数
func WithPrecision(precision int) Option {
	return func(s *settings) {
		s.precision = precision
	}
}

// WithLocation 设置日期band的时区
func WithLocation(loc *time.Location) Option {
	return func(s *settings) {
		s.location = loc
	}
}

// WithClock 设置日期band的当前时间来源，未指定位置指令时使用
func WithClock(now func() time.Time) Option {
	return func(s *settings) {
		s.now = now
	}
}

func newSettings(opts ...Option) *settings {
	s := &settings{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
