// Package band 实现承载ether的宿主band
// band持有缩放步进表、缩放索引、视口像素长度与时间单位，以能力接口的形式提供给ether
package band

import (
	"fmt"
	"math"

	"github.com/Kevin-Rudy/goether/pkg/ether"
)

// Labeler 把时间值格式化为文本
type Labeler[T any] interface {
	// Label 按缩放粒度生成刻度标签
	Label(v T, unitID int) string
	// Format 完整精度的文本
	Format(v T) string
}

// Tick 刻度：视口内的像素位置与标签
type Tick struct {
	X     float64
	Label string
}

// Span 热区映射到视口后的像素区间
type Span struct {
	X0, X1  float64
	Magnify float64
}

// ZoneRow 分区中的一段，边界已格式化，无穷边界为 "-inf" 或 "+inf"
type ZoneRow struct {
	Start, End string
	Magnify    float64
}

// Track 与时间值类型无关的band视图，供界面与渲染层使用
type Track interface {
	Name() string
	Theme() string
	PixelLength() float64
	SetPixelLength(pixels float64)
	Scroll(pixels float64)
	ZoomAt(zoomIn bool, x float64) int
	Ticks(spacing float64) []Tick
	ZoneSpans() []Span
	Partition() []ZoneRow
	Describe() string

	// PixelOf 解析时间文本并返回其视口像素位置
	PixelOf(raw string) (float64, error)
	// DateAt 返回视口像素位置对应时间的完整文本
	DateAt(x float64) string
}

// zonedEther 能够报告分区的ether
type zonedEther[T any] interface {
	Zones() []ether.Zone[T]
}

// Band 宿主band，实现 ether.Band 与 ether.Timeline
type Band[T any] struct {
	name    string
	theme   string
	unit    ether.Unit[T]
	labeler Labeler[T]
	ether   ether.Ether[T]

	pixelLength float64
	zoomSteps   []ether.ZoomStep
	zoomIndex   int
	labelUnit   int // 没有缩放步进时使用的标签粒度
}

// Definition band的构造参数
type Definition struct {
	Name        string
	Params      *ether.Params
	ZoomSteps   []ether.ZoomStep
	ZoomIndex   int
	PixelLength float64
	LabelUnit   int
}

// New 创建band并初始化其ether
func New[T any](def Definition, unit ether.Unit[T], labeler Labeler[T]) (*Band[T], error) {
	if def.Params == nil {
		return nil, fmt.Errorf("band %q 缺少ether参数", def.Name)
	}

	b := &Band[T]{
		name:        def.Name,
		theme:       def.Params.Theme,
		unit:        unit,
		labeler:     labeler,
		pixelLength: def.PixelLength,
		zoomSteps:   def.ZoomSteps,
		zoomIndex:   def.ZoomIndex,
		labelUnit:   def.LabelUnit,
	}

	b.ether = ether.New[T](def.Params)
	if err := b.ether.Initialize(b, b); err != nil {
		return nil, fmt.Errorf("band %q 初始化失败: %w", def.Name, err)
	}

	return b, nil
}

// ZoomSteps 实现 ether.Band
func (b *Band[T]) ZoomSteps() []ether.ZoomStep {
	return b.zoomSteps
}

// ZoomIndex 实现 ether.Band
func (b *Band[T]) ZoomIndex() int {
	return b.zoomIndex
}

// SetZoomIndex 实现 ether.Band
func (b *Band[T]) SetZoomIndex(index int) {
	b.zoomIndex = index
}

// Unit 实现 ether.Timeline
func (b *Band[T]) Unit() ether.Unit[T] {
	return b.unit
}

// PixelLength 实现 ether.Timeline
func (b *Band[T]) PixelLength() float64 {
	return b.pixelLength
}

// SetPixelLength 调整视口宽度，保持视口中心的时间不变
func (b *Band[T]) SetPixelLength(pixels float64) {
	if pixels == b.pixelLength {
		return
	}
	center := b.ether.PixelOffsetToDate(b.pixelLength / 2)
	b.pixelLength = pixels
	b.Center(center)
}

func (b *Band[T]) Name() string {
	return b.name
}

func (b *Band[T]) Theme() string {
	return b.theme
}

// Ether 返回band承载的ether
func (b *Band[T]) Ether() ether.Ether[T] {
	return b.ether
}

// Scroll 平移视口，正值向右看（参考时间变晚）
func (b *Band[T]) Scroll(pixels float64) {
	b.ether.ShiftPixels(pixels)
}

// Center 使 date 位于视口中心
func (b *Band[T]) Center(date T) {
	b.ether.SetDate(date)
	b.ether.ShiftPixels(-b.pixelLength / 2)
}

// ZoomAt 以视口内 x 处的时间为锚点缩放，缩放后该时间仍位于 x
func (b *Band[T]) ZoomAt(zoomIn bool, x float64) int {
	if len(b.zoomSteps) == 0 {
		return 0
	}

	anchor := b.ether.PixelOffsetToDate(x)
	netChange := b.ether.Zoom(zoomIn)

	b.ether.SetDate(anchor)
	b.ether.ShiftPixels(-x)

	return netChange
}

// ZoomIn 以视口中心为锚点放大
func (b *Band[T]) ZoomIn() int {
	return b.ZoomAt(true, b.pixelLength/2)
}

// ZoomOut 以视口中心为锚点缩小
func (b *Band[T]) ZoomOut() int {
	return b.ZoomAt(false, b.pixelLength/2)
}

// VisibleRange 返回视口左右边缘对应的时间
func (b *Band[T]) VisibleRange() (start, end T) {
	return b.ether.PixelOffsetToDate(0), b.ether.PixelOffsetToDate(b.pixelLength)
}

// DateToX 返回时间在视口中的像素位置
func (b *Band[T]) DateToX(date T) float64 {
	return b.ether.DateToPixelOffset(date)
}

// XToDate 返回视口像素位置对应的时间
func (b *Band[T]) XToDate(x float64) T {
	return b.ether.PixelOffsetToDate(x)
}

// LabelUnit 返回当前缩放步进的时间单位，用于选择标签粒度
func (b *Band[T]) LabelUnit() int {
	if b.zoomIndex >= 0 && b.zoomIndex < len(b.zoomSteps) {
		return b.zoomSteps[b.zoomIndex].Unit
	}
	return b.labelUnit
}

// Ticks 在视口内每隔 spacing 像素生成一个刻度
func (b *Band[T]) Ticks(spacing float64) []Tick {
	if spacing <= 0 || b.pixelLength <= 0 {
		return nil
	}

	labelUnit := b.LabelUnit()
	count := int(math.Floor(b.pixelLength/spacing)) + 1
	ticks := make([]Tick, 0, count)
	for i := 0; i < count; i++ {
		x := float64(i) * spacing
		ticks = append(ticks, Tick{
			X:     x,
			Label: b.labeler.Label(b.ether.PixelOffsetToDate(x), labelUnit),
		})
	}
	return ticks
}

// ZoneSpans 返回与视口相交的热区像素区间，背景区（倍数为1）不返回
func (b *Band[T]) ZoneSpans() []Span {
	zoned, ok := b.ether.(zonedEther[T])
	if !ok {
		return nil
	}

	var spans []Span
	for _, zone := range zoned.Zones() {
		if zone.Magnify == 1 {
			continue
		}

		x0 := math.Inf(-1)
		if !zone.Start.IsInf() {
			x0 = b.ether.DateToPixelOffset(zone.Start.Value)
		}
		x1 := math.Inf(1)
		if !zone.End.IsInf() {
			x1 = b.ether.DateToPixelOffset(zone.End.Value)
		}

		x0 = math.Max(x0, 0)
		x1 = math.Min(x1, b.pixelLength)
		if x1 <= x0 {
			continue
		}
		spans = append(spans, Span{X0: x0, X1: x1, Magnify: zone.Magnify})
	}
	return spans
}

// Partition 返回热区ether的完整分区，线性ether返回单个无界区段
func (b *Band[T]) Partition() []ZoneRow {
	zoned, ok := b.ether.(zonedEther[T])
	if !ok {
		return []ZoneRow{{Start: "-inf", End: "+inf", Magnify: 1}}
	}

	zones := zoned.Zones()
	rows := make([]ZoneRow, 0, len(zones))
	for _, zone := range zones {
		rows = append(rows, ZoneRow{
			Start:   b.formatBound(zone.Start),
			End:     b.formatBound(zone.End),
			Magnify: zone.Magnify,
		})
	}
	return rows
}

func (b *Band[T]) formatBound(bound ether.Bound[T]) string {
	switch {
	case bound.Inf < 0:
		return "-inf"
	case bound.Inf > 0:
		return "+inf"
	default:
		return b.labeler.Format(bound.Value)
	}
}

// PixelOf 解析时间文本并返回其视口像素位置
func (b *Band[T]) PixelOf(raw string) (float64, error) {
	date, err := b.unit.ParseFromObject(raw)
	if err != nil {
		return 0, err
	}
	return b.ether.DateToPixelOffset(date), nil
}

// DateAt 返回视口像素位置对应时间的完整文本
func (b *Band[T]) DateAt(x float64) string {
	return b.labeler.Format(b.ether.PixelOffsetToDate(x))
}

// Describe 返回band当前状态的简短描述
func (b *Band[T]) Describe() string {
	start, end := b.VisibleRange()
	unitID := b.LabelUnit()
	zoom := "-"
	if len(b.zoomSteps) > 0 {
		zoom = fmt.Sprintf("%d/%d", b.zoomIndex+1, len(b.zoomSteps))
	}
	return fmt.Sprintf("%s  [%s .. %s]  缩放 %s",
		b.name, b.labeler.Label(start, unitID), b.labeler.Label(end, unitID), zoom)
}
