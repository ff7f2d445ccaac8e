// Package xreader 在单个 sink 之上提供查询与聚合。
//
// 每个查询都重新调用一次 RetrieveAll，不缓存结果；随后依次应用纯函数阶段：
// 时间窗口过滤（FilterByDate）、文本或正则匹配（MatchText / MatchRegex）、
// 按级别或月份分组（GroupByLevel / GroupByMonth）。纯函数阶段可独立组合使用。
//
// 时间窗口为左开右闭 (Start, End]，连续窗口首尾相接时既不重叠也无遗漏。
// Window 的零值字段表示该侧不设界。
//
// 读取失败或正则无效时返回空结果并输出诊断日志，从不把错误抛给调用方。
package xreader
