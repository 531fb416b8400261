//go:build linux || darwin || freebsd || netbsd || openbsd

package platform

import (
	"errors"
	"os"

	"golang.org/x/sys/unix"
)

// unixCapability Unix平台能力实现
type unixCapability struct{}

// terminalWidth 通过ioctl读取终端窗口尺寸
func (u *unixCapability) terminalWidth() (int, error) {
	ws, err := unix.IoctlGetWinsize(int(os.Stdout.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return 0, err
	}
	if ws.Col == 0 {
		return 0, errors.New("终端宽度为0")
	}
	return int(ws.Col), nil
}

func (u *unixCapability) implementation() string {
	return "TIOCGWINSZ ioctl"
}

// getPlatformCapability 获取Unix平台的能力实现
func getPlatformCapability() platformCapability {
	return &unixCapability{}
}
