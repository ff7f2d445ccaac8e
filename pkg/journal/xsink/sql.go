package xsink

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"strconv"
	"time"

	_ "github.com/lib/pq"  // postgres 驱动
	_ "modernc.org/sqlite" // sqlite 驱动

	"github.com/omeyang/xjournal/pkg/journal/xentry"
)

// sqlTimeLayout UTC、定长 9 位小数秒，使文本字典序与时间顺序一致
const sqlTimeLayout = "2006-01-02T15:04:05.000000000Z"

// tableNamePattern 表名只能是普通标识符（标识符无法参数化）
var tableNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]{0,62}$`)

const sqliteSchema = `CREATE TABLE IF NOT EXISTS %s (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	timestamp TEXT NOT NULL,
	level TEXT NOT NULL,
	message TEXT NOT NULL
)`

const postgresSchema = `CREATE TABLE IF NOT EXISTS %s (
	id BIGSERIAL PRIMARY KEY,
	timestamp TEXT NOT NULL,
	level TEXT NOT NULL,
	message TEXT NOT NULL
)`

// dialect 驱动差异
type dialect struct {
	driver      string
	createTable string
	placeholder func(n int) string
}

var dialects = map[string]dialect{
	"sqlite": {
		driver:      "sqlite",
		createTable: sqliteSchema,
		placeholder: func(int) string { return "?" },
	},
	"postgres": {
		driver:      "postgres",
		createTable: postgresSchema,
		placeholder: func(n int) string { return "$" + strconv.Itoa(n) },
	},
}

// Drivers 返回支持的 SQL 驱动名
func Drivers() []string {
	return []string{"postgres", "sqlite"}
}

var _ Sink = (*SQLSink)(nil)

// SQLSink 以关系表保存记录
type SQLSink struct {
	dialect    dialect
	dsn        string
	table      string
	insertStmt string
	selectStmt string
	opts       *sinkOptions
}

// NewSQL 创建 SQL sink 并确保表存在
//
// driver 为 "sqlite" 或 "postgres"，dsn 为对应驱动的连接串（sqlite 为文件路径）。
func NewSQL(ctx context.Context, driver, dsn string, opts ...Option) (*SQLSink, error) {
	d, ok := dialects[driver]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, driver)
	}
	o := applyOptions(opts)
	if !tableNamePattern.MatchString(o.table) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTable, o.table)
	}

	insert := fmt.Sprintf("INSERT INTO %s (timestamp, level, message) VALUES (%s, %s, %s)",
		o.table, d.placeholder(1), d.placeholder(2), d.placeholder(3))
	query := fmt.Sprintf("SELECT timestamp, level, message FROM %s ORDER BY timestamp ASC, id ASC", o.table)

	s := &SQLSink{
		dialect:    d,
		dsn:        dsn,
		table:      o.table,
		insertStmt: insert,
		selectStmt: query,
		opts:       o,
	}

	err := s.withDB(ctx, "sql init", func(db *sql.DB) error {
		_, err := db.ExecContext(ctx, fmt.Sprintf(d.createTable, o.table))
		return err
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

// String 返回诊断名称（不含 dsn，避免泄露凭据）
func (s *SQLSink) String() string {
	return "sql:" + s.dialect.driver + "/" + s.table
}

// Table 返回表名
func (s *SQLSink) Table() string {
	return s.table
}

// withDB 在单次调用内打开并关闭连接
func (s *SQLSink) withDB(ctx context.Context, op string, fn func(db *sql.DB) error) error {
	db, err := sql.Open(s.dialect.driver, s.dsn)
	if err != nil {
		return unavailable(op, err)
	}
	defer db.Close() //nolint:errcheck // 连接在调用结束时释放

	if err := db.PingContext(ctx); err != nil {
		return unavailable(op, err)
	}
	if err := fn(db); err != nil {
		return unavailable(op, err)
	}
	return nil
}

// Persist 以参数化语句插入一行
func (s *SQLSink) Persist(ctx context.Context, e xentry.Entry) error {
	return s.withDB(ctx, "sql insert", func(db *sql.DB) error {
		_, err := db.ExecContext(ctx, s.insertStmt,
			sqlTime(e.Time()), string(e.Level()), e.Message())
		return err
	})
}

// RetrieveAll 按时间戳升序返回记录，时间戳无法解析的行被跳过
func (s *SQLSink) RetrieveAll(ctx context.Context) ([]xentry.Entry, error) {
	entries := []xentry.Entry{}
	err := s.withDB(ctx, "sql select", func(db *sql.DB) error {
		rows, err := db.QueryContext(ctx, s.selectStmt)
		if err != nil {
			return err
		}
		defer rows.Close() //nolint:errcheck // rows.Err 已检查

		for rows.Next() {
			var ts, level, message string
			if err := rows.Scan(&ts, &level, &message); err != nil {
				return err
			}
			t, err := xentry.ParseTime(ts)
			if err != nil {
				s.opts.reportDecode(ctx, s, err)
				continue
			}
			entries = append(entries, xentry.New(t, xentry.Level(level), message))
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// sqlTime 返回 SQL 中存储的时间戳文本
func sqlTime(t time.Time) string {
	return t.UTC().Format(sqlTimeLayout)
}
