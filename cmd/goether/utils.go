package main

import (
	"fmt"

	"github.com/Kevin-Rudy/goether/pkg/platform"
)

// 程序信息常量
const (
	AppName    = "goether"
	AppVersion = "0.1.0"
	AppDesc    = "支持热区放大的时间轴坐标换算与终端查看工具"
)

// showSystemInfo 显示系统环境信息
func showSystemInfo() {
	fmt.Println("\n系统信息:")
	fmt.Printf("  操作系统: %s\n", platform.GetOSName())
	fmt.Printf("  终端状态: %s\n", platform.GetTerminalStatus())
	fmt.Printf("  检测方式: %s\n", platform.GetImplementationType())
}

// printUsageInstructions 显示TUI操作说明
func printUsageInstructions() {
	fmt.Println("操作说明:")
	fmt.Println("  ←/→ 或 h/l  - 平移当前band")
	fmt.Println("  +/-          - 以中心为锚点缩放")
	fmt.Println("  Tab/↑/↓      - 切换当前band")
	fmt.Println("  q 或 Ctrl+C  - 退出程序")
	fmt.Println("========================================")
}
