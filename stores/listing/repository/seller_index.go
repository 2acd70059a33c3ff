package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	bCtx "github.com/meterex/goapi/base/ctx"
	"github.com/meterex/goapi/base/log"
	"github.com/meterex/goapi/domain"
	"github.com/meterex/goapi/domain/listing"
	"github.com/meterex/goapi/service/query"
)

// sellerIndexDoc keeps listing id back-references in insertion order,
// one document per seller
type sellerIndexDoc struct {
	Seller     domain.Address `bson:"seller"`
	ListingIds []uint64       `bson:"listingIds"`
}

type sellerIndexRepoImpl struct {
	q query.Mongo
}

func NewSellerIndexRepo(q query.Mongo) listing.SellerIndexRepo {
	return &sellerIndexRepoImpl{q}
}

func (im *sellerIndexRepoImpl) Append(ctx bCtx.Ctx, seller domain.Address, listingId uint64) error {
	res := sellerIndexDoc{}
	selector := bson.M{"seller": seller.ToLower()}
	if err := im.q.Push(ctx, domain.TableSellerIndexes, selector, &res, "listingIds", listingId); err != nil {
		ctx.WithFields(log.Fields{
			"err":       err,
			"seller":    seller,
			"listingId": listingId,
		}).Error("failed to q.Push")
		return err
	}
	return nil
}

func (im *sellerIndexRepoImpl) Remove(ctx bCtx.Ctx, seller domain.Address, listingId uint64) error {
	res := sellerIndexDoc{}
	selector := bson.M{"seller": seller.ToLower()}
	// exact-match pull, sibling ids of the same seller are untouched
	if err := im.q.Pull(ctx, domain.TableSellerIndexes, selector, &res, "listingIds", listingId); err != nil {
		ctx.WithFields(log.Fields{
			"err":       err,
			"seller":    seller,
			"listingId": listingId,
		}).Error("failed to q.Pull")
		return err
	}
	return nil
}

func (im *sellerIndexRepoImpl) ListingIds(ctx bCtx.Ctx, seller domain.Address) ([]uint64, error) {
	res := sellerIndexDoc{}
	selector := bson.M{"seller": seller.ToLower()}
	if err := im.q.FindOne(ctx, domain.TableSellerIndexes, selector, &res); err == query.ErrNotFound {
		return []uint64{}, nil
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":    err,
			"seller": seller,
		}).Error("failed to q.FindOne")
		return nil, err
	}
	return res.ListingIds, nil
}

func (im *sellerIndexRepoImpl) Count(ctx bCtx.Ctx, seller domain.Address) (int, error) {
	ids, err := im.ListingIds(ctx, seller)
	if err != nil {
		return 0, err
	}
	return len(ids), nil
}
