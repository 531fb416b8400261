// Package tui 提供交互式的时间轴终端界面
// 每个band显示为一条标尺，支持平移、缩放与切换band
package tui

import (
	"sync"
	"time"

	"github.com/Kevin-Rudy/goether/pkg/band"
	"github.com/rivo/tview"
)

// TUI 主界面结构
type TUI struct {
	app    *tview.Application
	flex   *tview.Flex
	status *tview.TextView
	rows   []*tview.TextView

	// 配置信息
	tuiConfig *Config

	// band数据
	tracks  []band.Track
	stateMu sync.Mutex

	// 界面状态
	active   int // 当前操作的band
	width    int // 标尺宽度（字符列）
	throttle *navigationThrottle

	// 控制
	stopChan chan struct{}
	doneChan chan struct{}
	stopOnce sync.Once

	// 测试模式标志
	testMode bool
}

// NewTUI 创建新的TUI实例
func NewTUI(tracks []band.Track, tuiConfig *Config) *TUI {
	tui := newTUI(tracks, tuiConfig)
	tui.app = tview.NewApplication()

	tui.setupUI()
	tui.setupKeyBindings()

	return tui
}

// NewTUIForTest 创建用于测试的TUI实例（不初始化图形组件）
func NewTUIForTest(tracks []band.Track, tuiConfig *Config) *TUI {
	tui := newTUI(tracks, tuiConfig)
	tui.app = tview.NewApplication() // 创建一个应用实例，但不会运行
	tui.testMode = true
	return tui
}

func newTUI(tracks []band.Track, tuiConfig *Config) *TUI {
	tui := &TUI{
		tuiConfig: tuiConfig,
		tracks:    tracks,
		throttle:  newNavigationThrottle(tuiConfig.NavigationThreshold, tuiConfig.NavigationRest),
		stopChan:  make(chan struct{}),
		doneChan:  make(chan struct{}),
	}

	// 初始宽度沿用band构造时的视口宽度
	if len(tracks) > 0 {
		tui.width = int(tracks[0].PixelLength() / tuiConfig.PixelsPerCell)
	}

	return tui
}

// Run 启动TUI界面
func (t *TUI) Run() error {
	// 启动刷新goroutine
	go t.refreshLoop()

	// 运行应用
	err := t.app.Run()

	// 应用退出后确保刷新goroutine结束
	t.signalStop()
	<-t.doneChan

	return err
}

// Stop 停止TUI界面
func (t *TUI) Stop() {
	t.signalStop()
	t.app.Stop()
}

func (t *TUI) signalStop() {
	t.stopOnce.Do(func() {
		close(t.stopChan)
	})
}

// refreshLoop 定时刷新标尺，处理终端尺寸变化
func (t *TUI) refreshLoop() {
	defer close(t.doneChan)

	uiTicker := time.NewTicker(t.tuiConfig.RefreshInterval)
	defer uiTicker.Stop()

	// 初始UI刷新
	t.handleUIRefresh()

	for {
		select {
		case <-uiTicker.C:
			t.handleUIRefresh()

		case <-t.stopChan:
			return
		}
	}
}

// handleUIRefresh 处理UI刷新
func (t *TUI) handleUIRefresh() {
	if !t.testMode && t.app != nil {
		t.safeUIUpdate(t.updateRows)
	}
}
