package platform

import (
	"fmt"
	"runtime"
)

// DefaultTerminalColumns 无法检测终端时使用的列数
const DefaultTerminalColumns = 80

// TerminalColumns 返回终端列数，检测失败时返回 DefaultTerminalColumns
func TerminalColumns() int {
	width, err := getPlatformCapability().terminalWidth()
	if err != nil || width <= 0 {
		return DefaultTerminalColumns
	}
	return width
}

// IsTerminal 标准输出是否连接到终端
func IsTerminal() bool {
	_, err := getPlatformCapability().terminalWidth()
	return err == nil
}

// GetSystemInfo 获取完整的系统信息
// 返回操作系统名称、终端状态和检测方式
func GetSystemInfo() (osName, terminalStatus, implementationType string) {
	// 获取操作系统名称
	switch runtime.GOOS {
	case "windows":
		osName = "Windows"
	case "linux":
		osName = "Linux"
	case "darwin":
		osName = "macOS"
	default:
		osName = runtime.GOOS
	}

	platform := getPlatformCapability()
	implementationType = platform.implementation()

	if width, err := platform.terminalWidth(); err == nil {
		terminalStatus = fmt.Sprintf("终端 (%d 列)", width)
	} else {
		terminalStatus = fmt.Sprintf("非终端 (默认 %d 列)", DefaultTerminalColumns)
	}

	return
}

// GetOSName 获取操作系统名称
func GetOSName() string {
	osName, _, _ := GetSystemInfo()
	return osName
}

// GetTerminalStatus 获取终端状态描述
func GetTerminalStatus() string {
	_, terminalStatus, _ := GetSystemInfo()
	return terminalStatus
}

// GetImplementationType 获取终端检测方式描述
func GetImplementationType() string {
	_, _, implementationType := GetSystemInfo()
	return implementationType
}
