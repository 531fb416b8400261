// Package tui 标尺坐标换算模块
package tui

import (
	"math"

	"github.com/Kevin-Rudy/goether/pkg/band"
)

// pixelToCell 将band像素位置转换为字符列
func (t *TUI) pixelToCell(x float64) int {
	return int(math.Floor(x / t.tuiConfig.PixelsPerCell))
}

// tickCells 返回落在标尺内的刻度及其字符列
func (t *TUI) tickCells(track band.Track, width int) ([]band.Tick, []int) {
	spacing := float64(t.tuiConfig.TickSpacing) * t.tuiConfig.PixelsPerCell
	ticks := track.Ticks(spacing)

	kept := ticks[:0]
	cells := make([]int, 0, len(ticks))
	for _, tick := range ticks {
		cell := t.pixelToCell(tick.X)
		if cell < 0 || cell >= width {
			continue
		}
		kept = append(kept, tick)
		cells = append(cells, cell)
	}
	return kept, cells
}

// spanSubCells 将热区像素区间转换为半列分辨率的区间 [from, to)
func (t *TUI) spanSubCells(span band.Span, width int) (from, to int) {
	half := t.tuiConfig.PixelsPerCell / 2
	from = int(math.Floor(span.X0 / half))
	to = int(math.Ceil(span.X1 / half))

	if from < 0 {
		from = 0
	}
	if to > width*2 {
		to = width * 2
	}
	return from, to
}
