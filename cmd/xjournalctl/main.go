// xjournalctl 是 xjournal 日志系统的命令行工具。
//
// 用法:
//
//	xjournalctl [全局选项] <命令> [命令参数]
//
// 全局选项:
//
//	-c, --config   配置文件路径 (默认: xjournal.yaml)
//	-s, --sink     读取所用 sink 的序号 (默认: 0)
//	    --json     以 JSON 输出查询结果
//
// 命令:
//
//	log <level> <message...>   写入一条日志（扇出到全部 sink）
//	list                       列出日志，可用 --start/--end 限定时间
//	search <text>              按子串查找（区分大小写）
//	regex <pattern>            按正则查找（忽略大小写）
//	group [--utc] level|month  按级别或月份分组（--utc 按 UTC 划分月份）
//	help                       显示帮助信息
//
// 时间参数接受 ISO-8601 形式，例如 2024-03-01、2024-03-01T08:00:00Z。
// 区间为 (start, end]：start 不含，end 包含。
//
// 退出码:
//
//	0: 成功
//	1: 运行失败（配置无法加载、sink 无法打开等）
//	2: 参数错误（未知级别、非法时间、缺少参数、未知命令等）
//
// 示例:
//
//	xjournalctl log WARNING "disk almost full"
//	xjournalctl list --start 2024-03-01 --end 2024-04-01
//	xjournalctl -s 1 search timeout
//	xjournalctl --json group month
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/xjournal/pkg/journal/xsetup"
)

// 版本信息（可通过 -ldflags 注入）。
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// createApp 创建 CLI 应用。
func createApp(stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "xjournalctl",
		Usage:     "xjournal 日志写入与查询",
		Version:   fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime),
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "配置文件路径（YAML 或 JSON）",
				Value:   xsetup.DefaultConfigFile,
			},
			&cli.IntFlag{
				Name:    "sink",
				Aliases: []string{"s"},
				Usage:   "读取所用 sink 的序号",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "以 JSON 输出查询结果",
			},
		},
		Commands:       createCommands(),
		DefaultCommand: "help",
		OnUsageError:   onUsageError,
		// 禁止 urfave/cli 直接调用 os.Exit，由 run() 统一映射退出码。
		ExitErrHandler: func(_ context.Context, cmd *cli.Command, err error) {
			if _, ok := err.(cli.ExitCoder); ok {
				fmt.Fprintln(cmd.Root().ErrWriter, err)
			}
		},
	}
}

// run 执行命令并返回退出码。
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	app := createApp(stdout, stderr)
	if err := app.Run(ctx, args); err != nil {
		var usageErr *usageError
		if errors.As(err, &usageErr) {
			fmt.Fprintf(stderr, "参数错误: %v\n", usageErr)
			return 2
		}
		// 未知命令等框架错误已由 ExitErrHandler 输出
		if isCLIUsageError(err) {
			return 2
		}
		fmt.Fprintf(stderr, "错误: %v\n", err)
		return 1
	}
	return 0
}

// usageError 参数错误，对应退出码 2。
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

func usageErrorf(format string, args ...any) error {
	return &usageError{msg: fmt.Sprintf(format, args...)}
}

// onUsageError 将 flag 解析失败统一转换为 usageError。
func onUsageError(_ context.Context, _ *cli.Command, err error, _ bool) error {
	return &usageError{msg: err.Error()}
}

// isCLIUsageError 判断是否为框架产生的参数错误（如未知命令的 help 退出码）。
func isCLIUsageError(err error) bool {
	var ec cli.ExitCoder
	return errors.As(err, &ec) && ec.ExitCode() != 0
}
