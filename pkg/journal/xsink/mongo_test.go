package xsink

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/omeyang/xjournal/pkg/journal/xentry"
)

// fakeCollection 内存集合，Find 按插入顺序返回
type fakeCollection struct {
	name      string
	docs      []any
	insertErr error
	findErr   error
}

func (f *fakeCollection) InsertOne(_ context.Context, document any, _ ...options.Lister[options.InsertOneOptions]) (*mongo.InsertOneResult, error) {
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	f.docs = append(f.docs, document)
	return &mongo.InsertOneResult{InsertedID: bson.NewObjectID()}, nil
}

func (f *fakeCollection) Find(_ context.Context, _ any, _ ...options.Lister[options.FindOptions]) (*mongo.Cursor, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return mongo.NewCursorFromDocuments(f.docs, nil, nil)
}

func (f *fakeCollection) Name() string { return f.name }

func TestNewMongo_NilCollection(t *testing.T) {
	_, err := NewMongo(nil)
	assert.ErrorIs(t, err, ErrNilClient)
}

func TestMongo_DocumentShape(t *testing.T) {
	coll := &fakeCollection{name: "logs"}
	s := newMongo(coll)
	assert.Equal(t, "mongo:logs", s.String())

	require.NoError(t, s.Persist(context.Background(), sampleEntry()))
	require.Len(t, coll.docs, 1)

	raw, err := bson.Marshal(coll.docs[0])
	require.NoError(t, err)
	var doc bson.M
	require.NoError(t, bson.Unmarshal(raw, &doc))
	assert.Equal(t, bson.M{
		"date":    "2025-06-25T18:30:00Z",
		"level":   "WARNING",
		"message": "disk almost full",
	}, doc)
}

func TestMongo_SkipsBadDocuments(t *testing.T) {
	coll := &fakeCollection{name: "logs", docs: []any{
		bson.D{{Key: "date", Value: int32(5)}, {Key: "level", Value: "INFO"}, {Key: "message", Value: "wrong type"}},
		bson.D{{Key: "level", Value: "INFO"}, {Key: "message", Value: "no date"}},
		bson.D{{Key: "date", Value: "2022-11-01T12:00:00"}, {Key: "level", Value: "INFO"}, {Key: "message", Value: "ok"}},
	}}

	var errs []error
	s := newMongo(coll, collectDecodeErrors(&errs))

	got, err := s.RetrieveAll(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "ok", got[0].Message())
	require.Len(t, errs, 2)
	assert.ErrorIs(t, errs[0], xentry.ErrMalformedEntry)
	assert.ErrorIs(t, errs[1], xentry.ErrMissingField)
}

func TestMongo_Failures(t *testing.T) {
	boom := errors.New("server selection timeout")
	s := newMongo(&fakeCollection{name: "logs", insertErr: boom, findErr: boom})

	err := s.Persist(context.Background(), sampleEntry())
	assert.ErrorIs(t, err, ErrSinkUnavailable)
	assert.ErrorIs(t, err, boom)

	_, err = s.RetrieveAll(context.Background())
	assert.ErrorIs(t, err, ErrSinkUnavailable)
}
