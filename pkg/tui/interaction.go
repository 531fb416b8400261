// Package tui 交互控制模块
package tui

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// navigationThrottle 导航事件频率控制
// 连续处理 threshold 次事件后休息 rest 时长，期间的事件被忽略
type navigationThrottle struct {
	counter   int           // 事件计数器
	threshold int           // 多少次事件后休息
	rest      time.Duration // 休息时长
	resting   bool          // 是否在休息状态
	lastEvent time.Time     // 最后一次事件时间
	now       func() time.Time
}

func newNavigationThrottle(threshold int, rest time.Duration) *navigationThrottle {
	return &navigationThrottle{
		threshold: threshold,
		rest:      rest,
		now:       time.Now,
	}
}

// allow 判断是否应该处理导航事件
func (n *navigationThrottle) allow() bool {
	// 如果正在休息中，检查是否休息够了
	if n.resting {
		if n.now().Sub(n.lastEvent) >= n.rest {
			// 休息够了，重置状态
			n.resting = false
			n.counter = 0
			return true
		}
		// 还在休息，忽略事件
		return false
	}

	return true
}

// record 记录导航事件
func (n *navigationThrottle) record() {
	n.counter++
	n.lastEvent = n.now()

	// 检查是否达到阈值
	if n.counter >= n.threshold {
		n.resting = true
	}
}

// setupKeyBindings 设置键盘绑定
func (t *TUI) setupKeyBindings() {
	t.app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyCtrlC:
			t.Stop()
			return nil
		case tcell.KeyRune:
			switch event.Rune() {
			case 'q', 'Q':
				t.Stop()
				return nil
			case '+', '=':
				t.zoom(true)
				return nil
			case '-', '_':
				t.zoom(false)
				return nil
			case 'h':
				t.navigate(-1)
				return nil
			case 'l':
				t.navigate(1)
				return nil
			}
		case tcell.KeyLeft:
			t.navigate(-1)
			return nil
		case tcell.KeyRight:
			t.navigate(1)
			return nil
		case tcell.KeyTab, tcell.KeyDown:
			t.switchTrack(1)
			return nil
		case tcell.KeyBacktab, tcell.KeyUp:
			t.switchTrack(-1)
			return nil
		}
		return event
	})
}

// navigate 带频率控制的平移
func (t *TUI) navigate(direction int) {
	if !t.throttle.allow() {
		return
	}
	t.scroll(direction)
	t.throttle.record()
}

// scroll 平移当前band，direction 为正时向更晚的时间移动
func (t *TUI) scroll(direction int) {
	t.stateMu.Lock()
	if len(t.tracks) > 0 {
		t.tracks[t.active].Scroll(float64(direction) * t.tuiConfig.ScrollPixels())
	}
	t.stateMu.Unlock()

	t.refresh()
}

// zoom 以标尺中心为锚点缩放当前band
func (t *TUI) zoom(zoomIn bool) int {
	t.stateMu.Lock()
	netChange := 0
	if len(t.tracks) > 0 {
		track := t.tracks[t.active]
		netChange = track.ZoomAt(zoomIn, track.PixelLength()/2)
	}
	t.stateMu.Unlock()

	t.refresh()
	return netChange
}

// switchTrack 切换当前band，两端循环
func (t *TUI) switchTrack(delta int) {
	t.stateMu.Lock()
	if n := len(t.tracks); n > 0 {
		t.active = ((t.active+delta)%n + n) % n
	}
	t.stateMu.Unlock()

	t.refresh()
}

// refresh 状态改变后立即重绘；输入回调已在UI线程中执行
func (t *TUI) refresh() {
	if !t.testMode {
		t.updateRows()
	}
}
