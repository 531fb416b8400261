// Package ether 热区分区的构建
package ether

import (
	"errors"
	"fmt"
	"math"
	"slices"
)

// ErrPartitionExhausted 分段遍历越过了分区首尾，说明分区不变量被破坏
var ErrPartitionExhausted = errors.New("热区分区遍历越界")

// Bound 区间边界：有限时间值或正/负无穷
type Bound[T any] struct {
	Value T
	Inf   int // -1 表示负无穷，+1 表示正无穷，0 表示有限值
}

// Finite 返回有限边界
func Finite[T any](v T) Bound[T] {
	return Bound[T]{Value: v}
}

// NegInf 返回负无穷边界
func NegInf[T any]() Bound[T] {
	return Bound[T]{Inf: -1}
}

// PosInf 返回正无穷边界
func PosInf[T any]() Bound[T] {
	return Bound[T]{Inf: 1}
}

// IsInf 判断是否为无穷边界
func (b Bound[T]) IsInf() bool {
	return b.Inf != 0
}

// Zone 分区中的一段：[Start, End) 内的比例为背景比例乘以 Magnify
type Zone[T any] struct {
	Start   Bound[T]
	End     Bound[T]
	Magnify float64
}

// compareBound 比较时间值与边界，语义同 Unit.Compare(v, b)
// 无穷边界按数学上的无穷大处理
func compareBound[T any](unit Unit[T], v T, b Bound[T]) float64 {
	if b.Inf != 0 {
		return math.Inf(-b.Inf)
	}
	return unit.Compare(v, b.Value)
}

// hotZone 已解析的热区定义
type hotZone[T any] struct {
	start, end T
	magnify    float64
}

// parseZones 解析调用方声明的热区
func parseZones[T any](unit Unit[T], defs []ZoneParams) ([]hotZone[T], error) {
	zones := make([]hotZone[T], 0, len(defs))
	for i, def := range defs {
		start, err := unit.ParseFromObject(def.Start)
		if err != nil {
			return nil, fmt.Errorf("热区%d起点解析失败: %w", i, err)
		}
		end, err := unit.ParseFromObject(def.End)
		if err != nil {
			return nil, fmt.Errorf("热区%d终点解析失败: %w", i, err)
		}
		zones = append(zones, hotZone[T]{start: start, end: end, magnify: def.Magnify})
	}
	return zones, nil
}

// buildPartition 从单一背景区开始，按声明顺序把每个热区叠加到分区上
// 对每个热区自左向右扫描：跳过完全在起点之前的区段，必要时在起点与终点处切分，
// 被覆盖区段的放大倍数按乘法累积；终点不晚于起点的热区被循环条件直接跳过
func buildPartition[T any](unit Unit[T], hotZones []hotZone[T]) []Zone[T] {
	zones := []Zone[T]{{Start: NegInf[T](), End: PosInf[T](), Magnify: 1}}

	for _, hz := range hotZones {
		zoneStart := hz.start
		zoneEnd := hz.end

		for j := 0; j < len(zones) && unit.Compare(zoneEnd, zoneStart) > 0; j++ {
			if compareBound(unit, zoneStart, zones[j].End) >= 0 {
				continue
			}

			if compareBound(unit, zoneStart, zones[j].Start) > 0 {
				// 切出 [区段起点, 热区起点)，保留原倍数
				zones = slices.Insert(zones, j, Zone[T]{
					Start:   zones[j].Start,
					End:     Finite(zoneStart),
					Magnify: zones[j].Magnify,
				})
				j++
				zones[j].Start = Finite(zoneStart)
			}

			if compareBound(unit, zoneEnd, zones[j].End) < 0 {
				// 热区在本区段内结束：切出 [热区起点, 热区终点)
				zones = slices.Insert(zones, j, Zone[T]{
					Start:   Finite(zoneStart),
					End:     Finite(zoneEnd),
					Magnify: hz.magnify * zones[j].Magnify,
				})
				j++
				zones[j].Start = Finite(zoneEnd)
				zoneStart = zoneEnd
			} else {
				// 本区段被热区完全覆盖，此时区段终点必为有限值
				zones[j].Magnify *= hz.magnify
				zoneStart = zones[j].End.Value
			}
		}
	}

	return zones
}
