package main

import (
	"fmt"
	"time"

	"github.com/Kevin-Rudy/goether/pkg/band"
	"github.com/Kevin-Rudy/goether/pkg/platform"
	"github.com/Kevin-Rudy/goether/pkg/render"
	"github.com/Kevin-Rudy/goether/pkg/tui"
	"github.com/urfave/cli/v2"
)

// AppConfig 应用层配置聚合
type AppConfig struct {
	Bands        *band.Config
	TUIConfig    *tui.Config
	RenderConfig *render.Config
	BandOptions  []band.Option
	Width        float64 // 视口宽度（像素）
	ConfigPath   string
}

// buildConfigFromCLI 从命令行参数构建配置
func buildConfigFromCLI(c *cli.Context) (*AppConfig, error) {
	// band配置：文件优先，否则使用默认配置
	bands := band.DefaultConfig()
	path := c.String("config")
	if path != "" {
		loaded, err := band.LoadConfig(path)
		if err != nil {
			return nil, fmt.Errorf("读取配置文件失败: %w", err)
		}
		bands = loaded
	}

	// 构建 TUI 配置
	tuiConfig := tui.DefaultConfig()
	if c.IsSet("refresh-rate") {
		tuiConfig.RefreshInterval = c.Duration("refresh-rate")
	}
	if c.IsSet("pixels-per-cell") {
		tuiConfig.PixelsPerCell = c.Float64("pixels-per-cell")
	}
	if c.IsSet("scroll-step") {
		tuiConfig.ScrollStep = c.Int("scroll-step")
	}
	if c.IsSet("tick-spacing") {
		tuiConfig.TickSpacing = c.Int("tick-spacing")
	}

	// 构建渲染配置
	renderConfig := render.DefaultConfig()
	if c.IsSet("band-height") {
		renderConfig.BandHeight = c.Int("band-height")
	}
	if c.IsSet("tick-pixels") {
		renderConfig.TickSpacing = c.Float64("tick-pixels")
	}
	if c.IsSet("concurrency") {
		renderConfig.Concurrency = c.Int("concurrency")
	}

	// band构造选项
	location, err := loadLocation(c.String("tz"))
	if err != nil {
		return nil, err
	}
	bandOptions := []band.Option{
		band.WithLocation(location),
		band.WithPrecision(c.Int("precision")),
	}

	// 视口宽度：未指定时按终端列数换算
	width := c.Float64("width")
	if width <= 0 {
		width = float64(platform.TerminalColumns()) * tuiConfig.PixelsPerCell
	}

	return &AppConfig{
		Bands:        bands,
		TUIConfig:    tuiConfig,
		RenderConfig: renderConfig,
		BandOptions:  bandOptions,
		Width:        width,
		ConfigPath:   path,
	}, nil
}

// loadLocation 解析时区名称，空字符串视为UTC
func loadLocation(name string) (*time.Location, error) {
	if name == "" {
		return time.UTC, nil
	}
	location, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("未知的时区 %q: %w", name, err)
	}
	return location, nil
}

// validateConfig 验证配置的合理性
func validateConfig(config *AppConfig) error {
	// 验证 band 配置
	if err := config.Bands.Validate(); err != nil {
		return fmt.Errorf("band配置错误: %w", err)
	}

	// 验证 TUI 配置
	if err := config.TUIConfig.Validate(); err != nil {
		return fmt.Errorf("tui配置错误: %w", err)
	}

	// 验证渲染配置
	if err := config.RenderConfig.Validate(); err != nil {
		return fmt.Errorf("渲染配置错误: %w", err)
	}

	if config.Width <= 0 {
		return fmt.Errorf("视口宽度必须大于0")
	}

	return nil
}

// buildTracks 加载并验证配置后创建所有band
func buildTracks(c *cli.Context) (*AppConfig, []band.Track, error) {
	appConfig, err := buildConfigFromCLI(c)
	if err != nil {
		return nil, nil, err
	}

	if err := validateConfig(appConfig); err != nil {
		return nil, nil, fmt.Errorf("配置验证失败: %w", err)
	}

	tracks, err := appConfig.Bands.Build(appConfig.Width, appConfig.BandOptions...)
	if err != nil {
		return nil, nil, fmt.Errorf("创建band失败: %w", err)
	}

	return appConfig, tracks, nil
}

// selectTracks 按名称选择band，名称为空时返回全部
func selectTracks(tracks []band.Track, name string) ([]band.Track, error) {
	if name == "" {
		return tracks, nil
	}
	for _, track := range tracks {
		if track.Name() == name {
			return []band.Track{track}, nil
		}
	}
	return nil, fmt.Errorf("找不到band: %s", name)
}
