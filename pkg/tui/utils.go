// Package tui 工具函数和辅助类型
package tui

// 主题调色板：放大区与压缩区的颜色
var zonePalettes = map[string][2]string{
	"":        {"[orange]", "[blue]"},
	"classic": {"[red]", "[green]"},
	"dark":    {"[darkcyan]", "[darkmagenta]"},
	"mono":    {"[white]", "[gray]"},
}

// getZoneColor 根据主题与放大倍数选择热区颜色
func getZoneColor(theme string, magnify float64) string {
	palette, ok := zonePalettes[theme]
	if !ok {
		palette = zonePalettes[""]
	}
	if magnify > 1 {
		return palette[0]
	}
	return palette[1]
}

// getTrackColor 根据band序号获取对应的颜色
func (t *TUI) getTrackColor(index int) string {
	colorSequence := []string{
		"[green]", "[yellow]", "[blue]", "[magenta]", "[cyan]", "[red]",
		"[orange]", "[purple]", "[lime]", "[pink]",
	}
	if index < 0 {
		return "[white]"
	}
	return colorSequence[index%len(colorSequence)]
}
