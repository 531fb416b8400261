// Package ether 定义时间轴上 时间<->像素 坐标变换的核心接口
// 线性变换与热区变换两种实现共享同一套契约，由宿主band在构造时按配置选择
package ether

// Unit 时间单位能力接口，由宿主timeline提供
// T 为时间值类型（如 time.Time 或 float64），核心只通过此接口操作时间值
type Unit[T any] interface {
	// ParseFromObject 将配置中的原始值解析为时间值
	ParseFromObject(raw any) (T, error)

	// MakeDefaultValue 返回默认时间值（通常为"现在"）
	MakeDefaultValue() T

	// CloneValue 返回时间值的副本
	CloneValue(v T) T

	// Compare 返回 a - b 的带符号数值差
	Compare(a, b T) float64

	// Change 返回 v 前进 delta 后的时间值
	Change(v T, delta float64) T

	// Earlier 返回两者中较早者
	Earlier(a, b T) T

	// Later 返回两者中较晚者
	Later(a, b T) T
}

// ZoomStep 宿主缩放步进表中的一项
type ZoomStep struct {
	Unit              int     // 时间单位标识符，在单位长度表中查找
	PixelsPerInterval float64 // 每个时间间隔占用的像素数
}

// Band 宿主band能力接口
// 缩放索引由宿主持有，ether通过访问器读写而不是直接引用宿主内部字段
type Band interface {
	ZoomSteps() []ZoomStep
	ZoomIndex() int
	SetZoomIndex(index int)
}

// Timeline 宿主timeline能力接口
type Timeline[T any] interface {
	Unit() Unit[T]
	PixelLength() float64
}

// Ether 时间<->像素坐标变换引擎
type Ether[T any] interface {
	// Initialize 绑定宿主并计算初始参考时间
	Initialize(band Band, timeline Timeline[T]) error

	// SetDate 将参考时间设置为 date 的副本
	SetDate(date T)

	// ShiftPixels 按像素平移参考时间
	ShiftPixels(pixels float64)

	// DateToPixelOffset 返回 date 相对参考时间的像素偏移
	DateToPixelOffset(date T) float64

	// PixelOffsetToDate 返回距参考时间 pixels 像素处的时间
	PixelOffsetToDate(pixels float64) T

	// Zoom 切换到相邻的缩放步进，返回单位粒度的变化量
	Zoom(zoomIn bool) int
}

// New 根据参数中的Kind创建对应的ether实现
func New[T any](params *Params) Ether[T] {
	if params.Kind == KindHotZone {
		return NewHotZoneEther[T](params)
	}
	return NewLinearEther[T](params)
}
