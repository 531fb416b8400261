//go:build !linux && !darwin && !freebsd && !netbsd && !openbsd && !windows

package platform

import (
	"errors"
)

// genericCapability 不支持终端检测的平台
type genericCapability struct{}

func (g *genericCapability) terminalWidth() (int, error) {
	return 0, errors.New("当前平台不支持终端尺寸检测")
}

func (g *genericCapability) implementation() string {
	return "不支持"
}

// getPlatformCapability 获取通用平台的能力实现
func getPlatformCapability() platformCapability {
	return &genericCapability{}
}
