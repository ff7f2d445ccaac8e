package xsink

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/omeyang/xjournal/pkg/journal/xentry"
)

// collectionOperations Mongo sink 用到的集合操作，*mongo.Collection 实现此接口
type collectionOperations interface {
	InsertOne(ctx context.Context, document any, opts ...options.Lister[options.InsertOneOptions]) (*mongo.InsertOneResult, error)
	Find(ctx context.Context, filter any, opts ...options.Lister[options.FindOptions]) (*mongo.Cursor, error)
	Name() string
}

var _ Sink = (*MongoSink)(nil)

// MongoSink 以 MongoDB 集合保存记录，每条记录一个文档
type MongoSink struct {
	coll collectionOperations
	opts *sinkOptions
}

// NewMongo 创建 Mongo sink
//
// 集合所属客户端由调用方持有并负责断开。集合在首次插入时由服务端创建，无需初始化。
func NewMongo(coll *mongo.Collection, opts ...Option) (*MongoSink, error) {
	if coll == nil {
		return nil, ErrNilClient
	}
	return newMongo(coll, opts...), nil
}

func newMongo(coll collectionOperations, opts ...Option) *MongoSink {
	return &MongoSink{coll: coll, opts: applyOptions(opts)}
}

// String 返回诊断名称
func (s *MongoSink) String() string {
	return "mongo:" + s.coll.Name()
}

// Persist 插入一个文档，字段与可移植形式相同
func (s *MongoSink) Persist(ctx context.Context, e xentry.Entry) error {
	if _, err := s.coll.InsertOne(ctx, e.ToPortable()); err != nil {
		return unavailable("mongo insert", err)
	}
	return nil
}

// RetrieveAll 按 _id 升序（即插入顺序）返回记录，无法解码的文档被跳过
func (s *MongoSink) RetrieveAll(ctx context.Context) ([]xentry.Entry, error) {
	cursor, err := s.coll.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, unavailable("mongo find", err)
	}
	defer cursor.Close(ctx) //nolint:errcheck // cursor.Err 已检查

	entries := []xentry.Entry{}
	for i := 0; cursor.Next(ctx); i++ {
		var p xentry.Portable
		if err := cursor.Decode(&p); err != nil {
			s.opts.reportDecode(ctx, s, fmt.Errorf("%w: document %d: %w", xentry.ErrMalformedEntry, i, err))
			continue
		}
		e, err := p.Entry()
		if err != nil {
			s.opts.reportDecode(ctx, s, fmt.Errorf("document %d: %w", i, err))
			continue
		}
		entries = append(entries, e)
	}
	if err := cursor.Err(); err != nil {
		return nil, unavailable("mongo cursor", err)
	}
	return entries, nil
}
