// Package ether 热区ether
package ether

import (
	"fmt"
)

// HotZoneEther 分段均匀比例的坐标变换
// 背景区放大倍数为1且无界，调用方声明的热区在其范围内把背景比例乘以各自的倍数
type HotZoneEther[T any] struct {
	params *Params
	scaleState
	theme string

	band     Band
	timeline Timeline[T]
	unit     Unit[T]

	zones []Zone[T] // 初始化后只读
	start T
}

// NewHotZoneEther 创建热区ether，需调用Initialize后使用
func NewHotZoneEther[T any](params *Params) *HotZoneEther[T] {
	return &HotZoneEther[T]{
		params: params,
		scaleState: scaleState{
			interval:          params.Interval,
			pixelsPerInterval: params.PixelsPerInterval,
			unitLengths:       params.UnitLengths,
		},
		theme: params.Theme,
	}
}

// Initialize 构建热区分区，然后按位置指令计算初始参考时间
// 平移经由分段换算完成
func (e *HotZoneEther[T]) Initialize(band Band, timeline Timeline[T]) error {
	e.band = band
	e.timeline = timeline
	e.unit = timeline.Unit()

	hotZones, err := parseZones(e.unit, e.params.Zones)
	if err != nil {
		return err
	}
	e.zones = buildPartition(e.unit, hotZones)

	start, shift, err := initialPosition(e.params, e.unit, timeline.PixelLength())
	if err != nil {
		return err
	}
	e.start = start
	if shift != 0 {
		e.ShiftPixels(shift)
	}
	return nil
}

func (e *HotZoneEther[T]) SetDate(date T) {
	e.start = e.unit.CloneValue(date)
}

func (e *HotZoneEther[T]) ShiftPixels(pixels float64) {
	e.start = e.pixelOffsetToDate(pixels, e.start)
}

func (e *HotZoneEther[T]) DateToPixelOffset(date T) float64 {
	return e.dateDiffToPixelOffset(e.start, date)
}

func (e *HotZoneEther[T]) PixelOffsetToDate(pixels float64) T {
	return e.pixelOffsetToDate(pixels, e.start)
}

func (e *HotZoneEther[T]) Zoom(zoomIn bool) int {
	return e.zoom(e.band, zoomIn)
}

// Date 返回当前参考时间
func (e *HotZoneEther[T]) Date() T {
	return e.start
}

// Theme 返回构造时传入的主题名
func (e *HotZoneEther[T]) Theme() string {
	return e.theme
}

// Zones 返回分区的副本
func (e *HotZoneEther[T]) Zones() []Zone[T] {
	zones := make([]Zone[T], len(e.zones))
	copy(zones, e.zones)
	return zones
}

// zoneAt 按索引取区段，越界时立即panic
func (e *HotZoneEther[T]) zoneAt(z int) Zone[T] {
	if z < 0 || z >= len(e.zones) {
		panic(fmt.Errorf("%w: 索引%d，共%d段", ErrPartitionExhausted, z, len(e.zones)))
	}
	return e.zones[z]
}

// firstZoneEndingAfter 自前向后找到第一个终点晚于 t 的区段
func (e *HotZoneEther[T]) firstZoneEndingAfter(t T) int {
	z := 0
	for z < len(e.zones) {
		if compareBound(e.unit, t, e.zones[z].End) < 0 {
			break
		}
		z++
	}
	return z
}

// lastZoneStartingBefore 自后向前找到第一个起点早于 t 的区段
func (e *HotZoneEther[T]) lastZoneStartingBefore(t T) int {
	z := len(e.zones) - 1
	for z >= 0 {
		if compareBound(e.unit, t, e.zones[z].Start) > 0 {
			break
		}
		z--
	}
	return z
}

// earlierThan 返回 t 与边界中较早者，正无穷边界不裁剪
func (e *HotZoneEther[T]) earlierThan(t T, b Bound[T]) T {
	if b.IsInf() {
		return t
	}
	return e.unit.Earlier(t, b.Value)
}

// laterThan 返回 t 与边界中较晚者，负无穷边界不裁剪
func (e *HotZoneEther[T]) laterThan(t T, b Bound[T]) T {
	if b.IsInf() {
		return t
	}
	return e.unit.Later(t, b.Value)
}

// dateDiffToPixelOffset 逐段积分从 fromDate 到 toDate 的像素距离
func (e *HotZoneEther[T]) dateDiffToPixelOffset(fromDate, toDate T) float64 {
	scale := e.scale()
	fromTime := fromDate
	toTime := toDate

	pixels := 0.0
	if e.unit.Compare(fromTime, toTime) < 0 {
		z := e.firstZoneEndingAfter(fromTime)

		for e.unit.Compare(fromTime, toTime) < 0 {
			zone := e.zoneAt(z)
			toTime2 := e.earlierThan(toTime, zone.End)

			pixels += e.unit.Compare(toTime2, fromTime) / (scale / zone.Magnify)

			fromTime = toTime2
			z++
		}
	} else {
		z := e.lastZoneStartingBefore(fromTime)

		for e.unit.Compare(fromTime, toTime) > 0 {
			zone := e.zoneAt(z)
			toTime2 := e.laterThan(toTime, zone.Start)

			pixels += e.unit.Compare(toTime2, fromTime) / (scale / zone.Magnify)

			fromTime = toTime2
			z--
		}
	}
	return pixels
}

// pixelOffsetToDate 逐段消耗像素，求出距 fromDate pixels 像素处的时间
// 正像素向后扫描并以区段终点为界，负像素向前扫描并以区段起点为界
func (e *HotZoneEther[T]) pixelOffsetToDate(pixels float64, fromDate T) T {
	scale := e.scale()
	time := fromDate

	if pixels > 0 {
		z := e.firstZoneEndingAfter(time)

		for pixels > 0 {
			zone := e.zoneAt(z)
			scale2 := scale / zone.Magnify

			if zone.End.IsInf() {
				time = e.unit.Change(time, pixels*scale2)
				pixels = 0
			} else {
				pixels2 := e.unit.Compare(zone.End.Value, time) / scale2
				if pixels2 > pixels {
					time = e.unit.Change(time, pixels*scale2)
					pixels = 0
				} else {
					time = zone.End.Value
					pixels -= pixels2
				}
			}
			z++
		}
	} else {
		z := e.lastZoneStartingBefore(time)

		pixels = -pixels
		for pixels > 0 {
			zone := e.zoneAt(z)
			scale2 := scale / zone.Magnify

			if zone.Start.IsInf() {
				time = e.unit.Change(time, -pixels*scale2)
				pixels = 0
			} else {
				pixels2 := e.unit.Compare(time, zone.Start.Value) / scale2
				if pixels2 > pixels {
					time = e.unit.Change(time, -pixels*scale2)
					pixels = 0
				} else {
					time = zone.Start.Value
					pixels -= pixels2
				}
			}
			z--
		}
	}
	return time
}
