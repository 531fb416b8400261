package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/Kevin-Rudy/goether/pkg/band"
	"github.com/Kevin-Rudy/goether/pkg/render"
	"github.com/Kevin-Rudy/goether/pkg/tui"
	"github.com/urfave/cli/v2"
)

// runView 交互界面，默认命令
func runView(c *cli.Context) error {
	fmt.Printf("正在启动 %s v%s...\n", AppName, AppVersion)

	appConfig, tracks, err := buildTracks(c)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	// 显示运行配置
	printRunningConfig(appConfig, tracks)

	// 显示系统环境信息
	showSystemInfo()

	fmt.Println("\n正在启动TUI界面...")

	// 显示使用说明
	printUsageInstructions()

	// 启动TUI界面 - 这会阻塞直到用户退出
	tuiInstance := tui.NewTUI(tracks, appConfig.TUIConfig)
	if err := tuiInstance.Run(); err != nil {
		return cli.Exit(fmt.Sprintf("TUI运行出错: %v", err), 1)
	}

	fmt.Println("\n程序已退出")
	return nil
}

// runConvert 在时间与像素之间换算
func runConvert(c *cli.Context) error {
	if !c.IsSet("date") && !c.IsSet("pixel") {
		return cli.Exit("错误: 必须指定 --date 或 --pixel", 1)
	}

	_, tracks, err := buildTracks(c)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	track := tracks[0]
	if name := c.String("band"); name != "" {
		selected, err := selectTracks(tracks, name)
		if err != nil {
			return cli.Exit(err.Error(), 1)
		}
		track = selected[0]
	}

	if c.IsSet("date") {
		date := c.String("date")
		x, err := track.PixelOf(date)
		if err != nil {
			return cli.Exit(fmt.Sprintf("无法解析时间: %v", err), 1)
		}
		fmt.Printf("%s: %s -> %.2f px\n", track.Name(), date, x)
	}

	if c.IsSet("pixel") {
		x := c.Float64("pixel")
		fmt.Printf("%s: %.2f px -> %s\n", track.Name(), x, track.DateAt(x))
	}

	return nil
}

// runZones 打印band的热区分区
func runZones(c *cli.Context) error {
	_, tracks, err := buildTracks(c)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	selected, err := selectTracks(tracks, c.String("band"))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	for _, track := range selected {
		printPartition(track)
	}
	return nil
}

// runRender 把band渲染为PNG
func runRender(c *cli.Context) error {
	appConfig, tracks, err := buildTracks(c)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	out := c.String("out")
	renderer := render.New(appConfig.RenderConfig)
	if err := renderer.WritePNG(c.Context, tracks, out); err != nil {
		return cli.Exit(fmt.Sprintf("渲染失败: %v", err), 1)
	}

	fmt.Printf("已写入 %s (%d 个band, 宽 %.0f 像素)\n", out, len(tracks), appConfig.Width)
	return nil
}

// runInit 写出默认配置文件，不覆盖已有文件
func runInit(c *cli.Context) error {
	out := c.String("out")
	if _, err := os.Stat(out); err == nil {
		return cli.Exit(fmt.Sprintf("错误: 文件已存在: %s", out), 1)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return cli.Exit(fmt.Sprintf("无法访问 %s: %v", out, err), 1)
	}

	if err := band.WriteConfig(band.DefaultConfig(), out); err != nil {
		return cli.Exit(fmt.Sprintf("写入配置失败: %v", err), 1)
	}

	fmt.Printf("已写入默认配置 %s\n", out)
	return nil
}

// printRunningConfig 打印运行配置信息
func printRunningConfig(config *AppConfig, tracks []band.Track) {
	source := config.ConfigPath
	if source == "" {
		source = "内置默认配置"
	}
	fmt.Printf("配置来源: %s\n", source)
	fmt.Printf("视口宽度: %.0f 像素\n", config.Width)
	fmt.Printf("刷新间隔: %v\n", config.TUIConfig.RefreshInterval)
	fmt.Printf("band数量: %d\n", len(tracks))
}

// printPartition 打印一个band的分区表
func printPartition(track band.Track) {
	fmt.Printf("%s:\n", track.Name())
	for _, row := range track.Partition() {
		fmt.Printf("  [%-20s, %-20s)  x%g\n", row.Start, row.End, row.Magnify)
	}
}
