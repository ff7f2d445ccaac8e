package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/xjournal/pkg/journal/xentry"
	"github.com/omeyang/xjournal/pkg/journal/xreader"
	"github.com/omeyang/xjournal/pkg/journal/xsetup"
	"github.com/omeyang/xjournal/pkg/journal/xsink"
	"github.com/omeyang/xjournal/pkg/util/xjson"
)

// 分组维度。
const (
	groupLevel = "level"
	groupMonth = "month"
)

// 创建所有子命令。
func createCommands() []*cli.Command {
	return []*cli.Command{
		createLogCommand(),
		createListCommand(),
		createSearchCommand(),
		createRegexCommand(),
		createGroupCommand(),
	}
}

// windowFlags 查询命令共用的时间区间参数。
func windowFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "start",
			Usage: "起始时间（不含），ISO-8601",
		},
		&cli.StringFlag{
			Name:  "end",
			Usage: "结束时间（包含），ISO-8601",
		},
	}
}

// createLogCommand 创建 log 子命令。
func createLogCommand() *cli.Command {
	return &cli.Command{
		Name:         "log",
		Usage:        "写入一条日志",
		ArgsUsage:    "<level> <message...>",
		OnUsageError: onUsageError,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			args := cmd.Args().Slice()
			if len(args) < 2 {
				return usageErrorf("log 需要 <level> 与 <message>")
			}
			level, err := xentry.ParseLevel(args[0])
			if err != nil {
				return usageErrorf("%v (可选: %s)", err, levelNames())
			}
			message := strings.Join(args[1:], " ")
			return withJournal(ctx, cmd, func(j *xsetup.Journal) error {
				j.Logger.Log(ctx, level, message)
				return nil
			})
		},
	}
}

// createListCommand 创建 list 子命令。
func createListCommand() *cli.Command {
	return &cli.Command{
		Name:         "list",
		Aliases:      []string{"ls"},
		Usage:        "列出日志",
		Flags:        windowFlags(),
		OnUsageError: onUsageError,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			w, err := parseWindow(cmd)
			if err != nil {
				return err
			}
			return withReader(ctx, cmd, func(r *xreader.Reader) error {
				return printEntries(cmd, r.FilterByDate(ctx, w))
			})
		},
	}
}

// createSearchCommand 创建 search 子命令。
func createSearchCommand() *cli.Command {
	return &cli.Command{
		Name:         "search",
		Usage:        "按子串查找（区分大小写）",
		ArgsUsage:    "<text>",
		Flags:        windowFlags(),
		OnUsageError: onUsageError,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.NArg() != 1 {
				return usageErrorf("search 需要且只需要一个 <text>")
			}
			text := cmd.Args().First()
			w, err := parseWindow(cmd)
			if err != nil {
				return err
			}
			return withReader(ctx, cmd, func(r *xreader.Reader) error {
				return printEntries(cmd, r.FindByText(ctx, text, w))
			})
		},
	}
}

// createRegexCommand 创建 regex 子命令。
func createRegexCommand() *cli.Command {
	return &cli.Command{
		Name:         "regex",
		Usage:        "按正则查找（忽略大小写）",
		ArgsUsage:    "<pattern>",
		Flags:        windowFlags(),
		OnUsageError: onUsageError,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.NArg() != 1 {
				return usageErrorf("regex 需要且只需要一个 <pattern>")
			}
			pattern := cmd.Args().First()
			// 先校验 pattern，避免非法输入被当作"无结果"
			if _, err := xreader.MatchRegex(nil, pattern); err != nil {
				return usageErrorf("%v", err)
			}
			w, err := parseWindow(cmd)
			if err != nil {
				return err
			}
			return withReader(ctx, cmd, func(r *xreader.Reader) error {
				return printEntries(cmd, r.FindByRegex(ctx, pattern, w))
			})
		},
	}
}

// createGroupCommand 创建 group 子命令。
func createGroupCommand() *cli.Command {
	return &cli.Command{
		Name:         "group",
		Usage:        "按级别或月份分组",
		ArgsUsage:    "level|month",
		Flags: append(windowFlags(), &cli.BoolFlag{
			Name:  "utc",
			Usage: "按 UTC 划分月份（默认使用记录自身的时区）",
		}),
		OnUsageError: onUsageError,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			by := cmd.Args().First()
			if cmd.NArg() != 1 || (by != groupLevel && by != groupMonth) {
				return usageErrorf("group 需要 %s 或 %s", groupLevel, groupMonth)
			}
			w, err := parseWindow(cmd)
			if err != nil {
				return err
			}
			return withReader(ctx, cmd, func(r *xreader.Reader) error {
				if by == groupLevel {
					groups := r.GroupByLevel(ctx, w)
					keys := xreader.LevelKeys(groups)
					names := make([]string, len(keys))
					byName := make(map[string][]xentry.Entry, len(keys))
					for i, k := range keys {
						names[i] = string(k)
						byName[string(k)] = groups[k]
					}
					return printGroups(cmd, names, byName)
				}
				var loc *time.Location
				if cmd.Bool("utc") {
					loc = time.UTC
				}
				groups := r.GroupByMonthIn(ctx, w, loc)
				return printGroups(cmd, xreader.SortedKeys(groups), groups)
			})
		},
	}
}

// withJournal 加载配置并组装 Journal，fn 返回后释放资源。
func withJournal(ctx context.Context, cmd *cli.Command, fn func(*xsetup.Journal) error) (err error) {
	cfg, err := xsetup.Load(cmd.String("config"))
	if err != nil {
		return err
	}
	j, err := xsetup.Build(ctx, cfg, xsetup.WithDiagnosticsOutput(cmd.Root().ErrWriter))
	if err != nil {
		return err
	}
	defer func() {
		// 信号取消后仍需释放客户端
		err = errors.Join(err, j.Close(context.WithoutCancel(ctx)))
	}()
	return fn(j)
}

// withReader 选取 --sink 指定的 Reader。
func withReader(ctx context.Context, cmd *cli.Command, fn func(*xreader.Reader) error) error {
	return withJournal(ctx, cmd, func(j *xsetup.Journal) error {
		r, err := j.Reader(int(cmd.Int("sink")))
		if err != nil {
			return &usageError{msg: err.Error()}
		}
		return fn(r)
	})
}

// parseWindow 解析 --start/--end，未给出的一侧不设界。
func parseWindow(cmd *cli.Command) (xreader.Window, error) {
	var w xreader.Window
	var err error
	if w.Start, err = parseTimeFlag(cmd, "start"); err != nil {
		return w, err
	}
	if w.End, err = parseTimeFlag(cmd, "end"); err != nil {
		return w, err
	}
	return w, nil
}

func parseTimeFlag(cmd *cli.Command, name string) (time.Time, error) {
	v := cmd.String(name)
	if v == "" {
		return time.Time{}, nil
	}
	t, err := xentry.ParseTime(v)
	if err != nil {
		return time.Time{}, usageErrorf("--%s: %v", name, err)
	}
	return t, nil
}

// printEntries 每行输出一条记录，--json 时输出数组。
func printEntries(cmd *cli.Command, entries []xentry.Entry) error {
	out := cmd.Root().Writer
	if cmd.Bool("json") {
		return printJSON(out, portables(entries))
	}
	for _, e := range entries {
		if _, err := fmt.Fprintln(out, xsink.FormatLine(e)); err != nil {
			return err
		}
	}
	return nil
}

// printGroups 按 keys 顺序输出分组，--json 时输出对象。
func printGroups(cmd *cli.Command, keys []string, groups map[string][]xentry.Entry) error {
	out := cmd.Root().Writer
	if cmd.Bool("json") {
		m := make(map[string][]xentry.Portable, len(groups))
		for k, v := range groups {
			m[k] = portables(v)
		}
		return printJSON(out, m)
	}
	for _, k := range keys {
		if _, err := fmt.Fprintf(out, "%s (%d)\n", k, len(groups[k])); err != nil {
			return err
		}
		for _, e := range groups[k] {
			if _, err := fmt.Fprintln(out, "  "+xsink.FormatLine(e)); err != nil {
				return err
			}
		}
	}
	return nil
}

func printJSON(out io.Writer, v any) error {
	s, err := xjson.PrettyE(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, s)
	return err
}

func portables(entries []xentry.Entry) []xentry.Portable {
	out := make([]xentry.Portable, len(entries))
	for i, e := range entries {
		out[i] = e.ToPortable()
	}
	return out
}

func levelNames() string {
	levels := xentry.Levels()
	names := make([]string, len(levels))
	for i, l := range levels {
		names[i] = string(l)
	}
	return strings.Join(names, ", ")
}
