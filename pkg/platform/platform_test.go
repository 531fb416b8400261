package platform

import (
	"testing"
)

// TestTerminalColumns 测试终端列数检测
func TestTerminalColumns(t *testing.T) {
	columns := TerminalColumns()
	if columns <= 0 {
		t.Errorf("Expected positive column count, got %d", columns)
	}

	// 测试环境通常没有终端，此时应回退到默认值
	if !IsTerminal() && columns != DefaultTerminalColumns {
		t.Errorf("Expected default %d columns without a terminal, got %d", DefaultTerminalColumns, columns)
	}
}

// TestGetSystemInfo 测试系统信息
func TestGetSystemInfo(t *testing.T) {
	osName, status, impl := GetSystemInfo()

	if osName == "" || status == "" || impl == "" {
		t.Errorf("Expected non-empty system info, got %q %q %q", osName, status, impl)
	}

	if GetOSName() != osName {
		t.Errorf("Expected GetOSName %q, got %q", osName, GetOSName())
	}
	if GetImplementationType() != impl {
		t.Errorf("Expected GetImplementationType %q, got %q", impl, GetImplementationType())
	}

	t.Logf("Terminal status: %s", GetTerminalStatus())
}
