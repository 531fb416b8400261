// Package ether 线性ether
package ether

// LinearEther 均匀比例的坐标变换：一个间隔长度与一个像素密度适用于整条时间轴
type LinearEther[T any] struct {
	params *Params
	scaleState

	band     Band
	timeline Timeline[T]
	unit     Unit[T]

	start T // 位于像素偏移0处的参考时间
}

// NewLinearEther 创建线性ether，需调用Initialize后使用
func NewLinearEther[T any](params *Params) *LinearEther[T] {
	return &LinearEther[T]{
		params: params,
		scaleState: scaleState{
			interval:          params.Interval,
			pixelsPerInterval: params.PixelsPerInterval,
			unitLengths:       params.UnitLengths,
		},
	}
}

// Initialize 绑定时间单位并按位置指令计算初始参考时间
func (e *LinearEther[T]) Initialize(band Band, timeline Timeline[T]) error {
	e.band = band
	e.timeline = timeline
	e.unit = timeline.Unit()

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

func (e *LinearEther[T]) SetDate(date T) {
	e.start = e.unit.CloneValue(date)
}

func (e *LinearEther[T]) ShiftPixels(pixels float64) {
	numeric := e.interval * pixels / e.pixelsPerInterval
	e.start = e.unit.Change(e.start, numeric)
}

func (e *LinearEther[T]) DateToPixelOffset(date T) float64 {
	numeric := e.unit.Compare(date, e.start)
	return e.pixelsPerInterval * numeric / e.interval
}

func (e *LinearEther[T]) PixelOffsetToDate(pixels float64) T {
	numeric := pixels * e.interval / e.pixelsPerInterval
	return e.unit.Change(e.start, numeric)
}

func (e *LinearEther[T]) Zoom(zoomIn bool) int {
	return e.zoom(e.band, zoomIn)
}

// Date 返回当前参考时间
func (e *LinearEther[T]) Date() T {
	return e.start
}
