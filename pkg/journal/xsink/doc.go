// Package xsink 定义存储后端（Sink）契约及其实现。
//
// # 契约
//
//	type Sink interface {
//	    Persist(ctx context.Context, e xentry.Entry) error
//	    RetrieveAll(ctx context.Context) ([]xentry.Entry, error)
//	}
//
//   - Persist 追加一条记录。失败包装 [ErrSinkUnavailable]（存储不可达/I/O）或 [ErrEncode]。
//   - RetrieveAll 按后端自然顺序返回全部记录：文件、Redis、Mongo 为写入顺序；
//     SQL 没有固有行序，显式按时间戳升序（同时间戳再按 id）。
//     存储整体不可读时返回 (nil, err)，err 包装 [ErrSinkUnavailable]。
//   - 单条记录无法解码时只跳过该条，通过 [WithOnDecodeError] 回调上报
//     （默认写入 xlog 诊断日志），其余记录照常返回。
//   - 构造函数负责初始化存储（空 JSON 数组、CSV 表头、空文本文件、建表），
//     构造成功后立即调用 RetrieveAll 返回空结果而不是错误。
//
// # 实现
//
//   - [NewJSON]: 整个文件是一个 {date, level, message} 对象数组；每次写入读取整个数组、
//     追加、通过临时文件 + rename 整体替换
//   - [NewCSV]: 首行表头 date,level,message，之后每行一条记录（RFC 4180）
//   - [NewText]: 每行 "timestamp level message"，message 为第二个空格之后的全部内容；
//     消息中的换行写入时替换为空格
//   - [NewSQL]: 表 (id, timestamp, level, message)，仅使用参数化语句；
//     支持 sqlite（modernc.org/sqlite）与 postgres（lib/pq）
//   - [NewRedis]: 每条记录是 Redis list 中的一个 JSON 对象
//   - [NewMongo]: 每条记录是集合中的一个文档，按 _id 升序读取
//
// 时间戳精度：所有实现都保留纳秒。SQL 以 UTC 存储，读回的时间位于 UTC 时区；
// 文件、Redis、Mongo 保留写入时的时区偏移。同一条记录在不同 sink 上按月分组时，
// 月末附近可能落入不同月份，需要一致结果时使用 xreader.GroupByMonthIn 固定时区。
//
// # 资源与并发
//
// 文件与 SQL 实现在每次调用内打开并关闭文件/连接，不跨调用持有资源。
// Redis 与 Mongo 实现使用调用方持有的客户端，由调用方负责关闭。
// 不保证跨进程并发写入安全；文件实现仅用互斥锁避免同一进程内的交错写入。
package xsink
