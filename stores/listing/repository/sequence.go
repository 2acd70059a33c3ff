package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	bCtx "github.com/meterex/goapi/base/ctx"
	"github.com/meterex/goapi/base/log"
	"github.com/meterex/goapi/domain"
	"github.com/meterex/goapi/domain/listing"
	"github.com/meterex/goapi/service/query"
)

type sequenceDoc struct {
	Name  string `bson:"name"`
	Value uint64 `bson:"value"`
}

type sequenceRepoImpl struct {
	q query.Mongo
}

func NewSequenceRepo(q query.Mongo) listing.SequenceRepo {
	return &sequenceRepoImpl{q}
}

// Next returns 1 on first use of a name and counts up without gaps
// from there. The increment must run inside the caller's transaction
// when the allocated id has to stay in step with other writes.
func (im *sequenceRepoImpl) Next(ctx bCtx.Ctx, name string) (uint64, error) {
	res := sequenceDoc{}
	if err := im.q.Increment(ctx, domain.TableSequences, bson.M{"name": name}, &res, "value", uint64(1)); err != nil {
		ctx.WithFields(log.Fields{
			"err":  err,
			"name": name,
		}).Error("failed to q.Increment")
		return 0, err
	}
	return res.Value, nil
}

func (im *sequenceRepoImpl) Current(ctx bCtx.Ctx, name string) (uint64, error) {
	res := sequenceDoc{}
	if err := im.q.FindOne(ctx, domain.TableSequences, bson.M{"name": name}, &res); err == query.ErrNotFound {
		return 0, nil
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":  err,
			"name": name,
		}).Error("failed to q.FindOne")
		return 0, err
	}
	return res.Value, nil
}
