package xmetrics

import "context"

// Outcome 表示一次写入的结果。
type Outcome string

const (
	// OutcomeOK 表示写入成功。
	OutcomeOK Outcome = "ok"
	// OutcomeError 表示写入失败。
	OutcomeError Outcome = "error"
)

// OutcomeOf 根据错误推导结果。
func OutcomeOf(err error) Outcome {
	if err != nil {
		return OutcomeError
	}
	return OutcomeOK
}

// Recorder 定义日志扇出的计数接口。
type Recorder interface {
	// RecordPersist 记录一次 sink 写入及其结果。
	RecordPersist(ctx context.Context, sink string, err error)

	// RecordDropped 记录一条因级别过低被丢弃的记录。
	RecordDropped(ctx context.Context, level string)
}

// NoopRecorder 是空实现。
type NoopRecorder struct{}

// RecordPersist 空实现。
func (NoopRecorder) RecordPersist(context.Context, string, error) {}

// RecordDropped 空实现。
func (NoopRecorder) RecordDropped(context.Context, string) {}

// OrNoop 返回 r；r 为 nil 时返回 NoopRecorder。
func OrNoop(r Recorder) Recorder {
	if r == nil {
		return NoopRecorder{}
	}
	return r
}
