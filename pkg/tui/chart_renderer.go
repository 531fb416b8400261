// Package tui 标尺渲染模块
package tui

import (
	"fmt"
	"strings"

	"github.com/Kevin-Rudy/goether/pkg/band"
	"github.com/rivo/tview"
)

// brailleCell 定义盲文字符的cell结构
type brailleCell struct {
	char  int
	color string
}

// 盲文点阵的左右两列 (2x4 grid)
const (
	brailleLeftColumn  = 0b01000111 // (y:0..3, x:0)
	brailleRightColumn = 0b10111000 // (y:0..3, x:1)
)

// validateChartSize 验证标尺尺寸是否合理
func (t *TUI) validateChartSize(width int) string {
	if width < t.tuiConfig.MinChartWidth {
		return "终端尺寸过小"
	}
	if width > t.tuiConfig.MaxChartSize {
		return "终端尺寸过大"
	}
	return ""
}

// renderTrack 渲染一个band的标尺：标题、热区、坐标轴、标签
func (t *TUI) renderTrack(track band.Track, width int, active bool) string {
	if sizeErr := t.validateChartSize(width); sizeErr != "" {
		return sizeErr
	}

	ticks, cells := t.tickCells(track, width)

	lines := []string{
		t.renderTitle(track, active),
		t.renderZones(track, width),
		t.renderAxis(cells, width),
		t.renderLabels(ticks, cells, width),
	}

	return strings.Join(lines, "\n")
}

// renderTitle 渲染band标题行，当前band带标记
func (t *TUI) renderTitle(track band.Track, active bool) string {
	marker, color := "  ", "[gray]"
	if active {
		marker, color = "▶ ", "[yellow]"
	}
	return fmt.Sprintf("%s%s%s[white]", color, marker, tview.Escape(track.Describe()))
}

// renderZones 在盲文画布上绘制热区，半列分辨率
func (t *TUI) renderZones(track band.Track, width int) string {
	canvas := make([]brailleCell, width)

	for _, span := range track.ZoneSpans() {
		color := getZoneColor(track.Theme(), span.Magnify)
		from, to := t.spanSubCells(span, width)
		for sub := from; sub < to; sub++ {
			cell := &canvas[sub/2]
			if sub%2 == 0 {
				cell.char |= brailleLeftColumn
			} else {
				cell.char |= brailleRightColumn
			}
			cell.color = color
		}
	}

	var line strings.Builder
	for _, cell := range canvas {
		if cell.char == 0 {
			line.WriteByte(' ')
			continue
		}
		line.WriteString(cell.color)
		line.WriteRune(rune(0x2800 + cell.char))
		line.WriteString("[white]")
	}
	return line.String()
}

// renderAxis 渲染坐标轴，刻度位置用┬标记
func (t *TUI) renderAxis(cells []int, width int) string {
	axis := []rune(strings.Repeat("─", width))
	for _, cell := range cells {
		axis[cell] = '┬'
	}
	return "[gray]" + string(axis) + "[white]"
}

// renderLabels 在刻度下方放置标签，重叠或越界的标签被跳过
func (t *TUI) renderLabels(ticks []band.Tick, cells []int, width int) string {
	line := []rune(strings.Repeat(" ", width))
	nextFree := 0
	for i, tick := range ticks {
		label := []rune(tick.Label)
		start := cells[i]
		if start < nextFree || start+len(label) > width {
			continue
		}
		copy(line[start:], label)
		nextFree = start + len(label) + 1
	}
	return tview.Escape(string(line))
}
