package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	bCtx "github.com/meterex/goapi/base/ctx"
	"github.com/meterex/goapi/base/log"
	"github.com/meterex/goapi/domain"
	"github.com/meterex/goapi/domain/listing"
	"github.com/meterex/goapi/service/query"
)

type saleRepoImpl struct {
	q query.Mongo
}

func NewSaleRepo(q query.Mongo) listing.SaleRepo {
	return &saleRepoImpl{q}
}

func (im *saleRepoImpl) Create(ctx bCtx.Ctx, sale *listing.Sale) error {
	if err := im.q.Insert(ctx, domain.TableSales, sale); err == query.ErrDuplicateKey {
		return domain.ErrConflict
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":  err,
			"sale": sale,
		}).Error("failed to q.Insert")
		return err
	}
	return nil
}

func (im *saleRepoImpl) FindOne(ctx bCtx.Ctx, id uint64) (*listing.Sale, error) {
	res := &listing.Sale{}
	if err := im.q.FindOne(ctx, domain.TableSales, bson.M{"id": id}, res); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to q.FindOne")
		return nil, err
	}
	return res, nil
}

func (im *saleRepoImpl) Count(ctx bCtx.Ctx) (int, error) {
	cnt, err := im.q.Count(ctx, domain.TableSales, bson.M{})
	if err != nil {
		ctx.WithField("err", err).Error("failed to q.Count")
		return 0, err
	}
	return cnt, nil
}
