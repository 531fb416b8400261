// Package tui 布局管理模块
package tui

import (
	"fmt"

	"github.com/rivo/tview"
)

// 每个band占用的行数：标题、热区、坐标轴、标签
const trackRowHeight = 4

// setupUI 设置用户界面布局
func (t *TUI) setupUI() {
	// 创建主垂直布局
	t.flex = tview.NewFlex()
	t.flex.SetDirection(tview.FlexRow)

	t.status = tview.NewTextView()
	t.status.SetDynamicColors(true)
	t.status.SetTextAlign(tview.AlignCenter)
	t.status.SetText("[green]GoEther 已启动[white]")
	t.flex.AddItem(t.status, 1, 0, false)

	t.rows = make([]*tview.TextView, 0, len(t.tracks))
	for range t.tracks {
		row := tview.NewTextView()
		row.SetWrap(false)
		row.SetWordWrap(false)
		row.SetDynamicColors(true)
		t.flex.AddItem(row, trackRowHeight, 0, false)
		t.rows = append(t.rows, row)
	}

	if len(t.tracks) == 0 {
		waitingInfo := tview.NewTextView()
		waitingInfo.SetText("[yellow]没有可显示的band[white]")
		waitingInfo.SetDynamicColors(true)
		waitingInfo.SetTextAlign(tview.AlignCenter)
		t.flex.AddItem(waitingInfo, 1, 0, false)
	}

	help := tview.NewTextView()
	help.SetDynamicColors(true)
	help.SetText("[gray]←/→ 平移  +/- 缩放  Tab 切换band  q 退出[white]")

	// 空白区域占据剩余空间，帮助信息固定在底部
	t.flex.AddItem(tview.NewBox(), 0, 1, false)
	t.flex.AddItem(help, 1, 0, false)

	t.app.SetRoot(t.flex, true)
}

// updateRows 根据当前宽度重新渲染所有band
func (t *TUI) updateRows() {
	if t.testMode || len(t.rows) == 0 {
		return
	}

	// 获取标尺视图的实际可绘制宽度
	_, _, width, _ := t.rows[0].GetInnerRect()

	t.stateMu.Lock()
	defer t.stateMu.Unlock()

	if width > 0 {
		t.resize(width)
	}

	for i, track := range t.tracks {
		t.rows[i].SetText(t.renderTrack(track, t.width, i == t.active))
	}
	t.status.SetText(t.statusLine())
}

// resize 调整所有band的视口宽度
func (t *TUI) resize(width int) {
	if width == t.width {
		return
	}
	t.width = width
	for _, track := range t.tracks {
		track.SetPixelLength(float64(width) * t.tuiConfig.PixelsPerCell)
	}
}

// statusLine 状态栏文本
func (t *TUI) statusLine() string {
	if len(t.tracks) == 0 {
		return "[green]GoEther[white]"
	}
	track := t.tracks[t.active]
	return fmt.Sprintf("[green]GoEther[white]  band %d/%d: %s%s[white]",
		t.active+1, len(t.tracks), t.getTrackColor(t.active), tview.Escape(track.Name()))
}

// safeUIUpdate 安全地执行UI更新操作
func (t *TUI) safeUIUpdate(updateFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			// 如果应用已经停止，忽略panic
		}
	}()
	t.app.QueueUpdateDraw(updateFunc)
}
