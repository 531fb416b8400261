// Package platform - 平台能力接口定义
// 定义了跨平台的终端尺寸检测接口
package platform

// platformCapability 定义平台能力接口
// 每个平台实现此接口来提供终端检测功能
type platformCapability interface {
	// terminalWidth 返回标准输出所连终端的字符列数
	// Unix: TIOCGWINSZ ioctl
	// Windows: 控制台屏幕缓冲区信息
	terminalWidth() (int, error)

	// implementation 返回检测方式的描述
	implementation() string
}
