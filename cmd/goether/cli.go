package main

import (
	"fmt"
	"time"

	"github.com/Kevin-Rudy/goether/pkg/platform"
	"github.com/urfave/cli/v2"
)

// createCliApp 创建CLI应用实例
func createCliApp() *cli.App {
	app := &cli.App{
		Name:    AppName,
		Version: AppVersion,
		Usage:   AppDesc,
		Flags:   createCliFlags(),
		Action:  runView,
	}

	app.Commands = createCommands()

	return app
}

// createCliFlags 创建全局参数定义
func createCliFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "band配置文件 (YAML)，未指定时使用内置的日/年两条band",
		},
		&cli.Float64Flag{
			Name:    "width",
			Aliases: []string{"w"},
			Value:   0, // 0表示按终端宽度自动计算
			Usage:   "视口宽度 (像素)，0表示按终端宽度计算",
		},
		&cli.StringFlag{
			Name:  "tz",
			Value: "UTC",
			Usage: "日期band使用的时区 (例如: Asia/Shanghai, Local)",
		},
		&cli.IntFlag{
			Name:  "precision",
			Value: 0,
			Usage: "数值band标签的小数位数",
		},
	}
}

// createCommands 创建子命令
func createCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:   "view",
			Usage:  "交互式查看band (默认命令)",
			Flags:  createViewFlags(),
			Action: runView,
		},
		{
			Name:  "convert",
			Usage: "在时间与像素之间换算",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "band",
					Aliases: []string{"b"},
					Usage:   "band名称，默认第一个band",
				},
				&cli.StringFlag{
					Name:    "date",
					Aliases: []string{"d"},
					Usage:   "换算为像素的时间",
				},
				&cli.Float64Flag{
					Name:    "pixel",
					Aliases: []string{"p"},
					Usage:   "换算为时间的像素位置",
				},
			},
			Action: runConvert,
		},
		{
			Name:  "zones",
			Usage: "显示band的热区分区",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "band",
					Aliases: []string{"b"},
					Usage:   "band名称，默认全部",
				},
			},
			Action: runZones,
		},
		{
			Name:  "render",
			Usage: "把band标尺渲染为PNG图片",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "out",
					Aliases:  []string{"o"},
					Usage:    "输出文件路径",
					Required: true,
				},
				&cli.IntFlag{
					Name:  "band-height",
					Value: 64,
					Usage: "每个band的像素高度",
				},
				&cli.Float64Flag{
					Name:  "tick-pixels",
					Value: 100,
					Usage: "刻度间隔 (像素)",
				},
				&cli.IntFlag{
					Name:  "concurrency",
					Value: 4,
					Usage: "同时渲染的band数",
				},
			},
			Action: runRender,
		},
		{
			Name:  "init",
			Usage: "写出默认band配置文件",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "out",
					Aliases: []string{"o"},
					Value:   "bands.yaml",
					Usage:   "输出文件路径",
				},
			},
			Action: runInit,
		},
		{
			Name:    "version",
			Aliases: []string{"v"},
			Usage:   "显示详细版本信息",
			Action: func(c *cli.Context) error {
				fmt.Printf("%s v%s\n", AppName, AppVersion)
				fmt.Printf("描述: %s\n", AppDesc)
				fmt.Printf("系统: %s\n", platform.GetOSName())
				fmt.Printf("终端: %s\n", platform.GetTerminalStatus())
				return nil
			},
		},
	}
}

// createViewFlags 交互界面参数
func createViewFlags() []cli.Flag {
	return []cli.Flag{
		&cli.DurationFlag{
			Name:    "refresh-rate",
			Aliases: []string{"r"},
			Value:   200 * time.Millisecond,
			Usage:   "UI刷新频率 (例如: 100ms, 500ms)",
		},
		&cli.Float64Flag{
			Name:  "pixels-per-cell",
			Value: 8,
			Usage: "每个字符列对应的像素数",
		},
		&cli.IntFlag{
			Name:  "scroll-step",
			Value: 8,
			Usage: "每次平移的字符列数",
		},
		&cli.IntFlag{
			Name:  "tick-spacing",
			Value: 12,
			Usage: "刻度间隔 (字符列)",
		},
	}
}
