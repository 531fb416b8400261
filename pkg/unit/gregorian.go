// Package unit 提供ether使用的时间单位实现与公历单位长度表
package unit

import (
	"fmt"
	"strings"
)

// 公历时间单位标识符，数值越大粒度越粗
const (
	Millisecond = iota
	Second
	Minute
	Hour
	Day
	Week
	Month
	Year
	Decade
	Century
	Millennium
)

// 单位长度（毫秒）
const (
	msPerSecond = 1000
	msPerMinute = 60 * msPerSecond
	msPerHour   = 60 * msPerMinute
	msPerDay    = 24 * msPerHour
	msPerYear   = 365 * msPerDay
)

// GregorianUnitLengths 单位标识符到毫秒长度的映射，月按31天、年按365天计
var GregorianUnitLengths = map[int]float64{
	Millisecond: 1,
	Second:      msPerSecond,
	Minute:      msPerMinute,
	Hour:        msPerHour,
	Day:         msPerDay,
	Week:        7 * msPerDay,
	Month:       31 * msPerDay,
	Year:        msPerYear,
	Decade:      10 * msPerYear,
	Century:     100 * msPerYear,
	Millennium:  1000 * msPerYear,
}

var unitNames = []string{
	Millisecond: "millisecond",
	Second:      "second",
	Minute:      "minute",
	Hour:        "hour",
	Day:         "day",
	Week:        "week",
	Month:       "month",
	Year:        "year",
	Decade:      "decade",
	Century:     "century",
	Millennium:  "millennium",
}

// ParseUnitName 将配置中的单位名解析为标识符，忽略大小写与复数s
func ParseUnitName(name string) (int, error) {
	key := strings.TrimSuffix(strings.ToLower(strings.TrimSpace(name)), "s")
	for id, n := range unitNames {
		if n == key {
			return id, nil
		}
	}
	return 0, fmt.Errorf("未知的时间单位: %q", name)
}

// UnitName 返回单位标识符对应的名称
func UnitName(id int) string {
	if id < 0 || id >= len(unitNames) {
		return fmt.Sprintf("unit(%d)", id)
	}
	return unitNames[id]
}
