// Package ether 两种ether共用的缩放步进逻辑
package ether

// scaleState 两种ether共有的可变比例状态
type scaleState struct {
	interval          float64
	pixelsPerInterval float64
	unitLengths       map[int]float64
}

// scale 背景比例：每像素对应的单位数值
func (s *scaleState) scale() float64 {
	return s.interval / s.pixelsPerInterval
}

// zoom 在宿主的缩放步进表中移动一格
// 放大时索引减一，缩小时索引加一，两端钳制；返回新旧步进单位的差值
func (s *scaleState) zoom(band Band, zoomIn bool) int {
	steps := band.ZoomSteps()
	if len(steps) == 0 {
		return 0
	}

	currentIndex := band.ZoomIndex()
	newIndex := currentIndex

	if zoomIn && currentIndex > 0 {
		newIndex = currentIndex - 1
	}
	if !zoomIn && currentIndex < len(steps)-1 {
		newIndex = currentIndex + 1
	}

	band.SetZoomIndex(newIndex)

	step := steps[newIndex]
	// 单位长度表中缺少该单位时保留当前间隔
	if length, ok := s.unitLengths[step.Unit]; ok {
		s.interval = length
	}
	s.pixelsPerInterval = step.PixelsPerInterval

	return step.Unit - steps[currentIndex].Unit
}
