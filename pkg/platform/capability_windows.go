//go:build windows

package platform

import (
	"errors"
	"os"

	"golang.org/x/sys/windows"
)

// windowsCapability Windows平台能力实现
type windowsCapability struct{}

// terminalWidth 读取控制台可见窗口的宽度
func (w *windowsCapability) terminalWidth() (int, error) {
	var info windows.ConsoleScreenBufferInfo
	if err := windows.GetConsoleScreenBufferInfo(windows.Handle(os.Stdout.Fd()), &info); err != nil {
		return 0, err
	}
	width := int(info.Window.Right-info.Window.Left) + 1
	if width <= 0 {
		return 0, errors.New("控制台宽度无效")
	}
	return width, nil
}

func (w *windowsCapability) implementation() string {
	return "Windows Console API"
}

// getPlatformCapability 获取Windows平台的能力实现
func getPlatformCapability() platformCapability {
	return &windowsCapability{}
}
