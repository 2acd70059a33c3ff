package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	bCtx "github.com/meterex/goapi/base/ctx"
	"github.com/meterex/goapi/base/log"
	"github.com/meterex/goapi/domain"
	"github.com/meterex/goapi/domain/listing"
	"github.com/meterex/goapi/service/query"
)

type listingRepoImpl struct {
	q query.Mongo
}

func NewListingRepo(q query.Mongo) listing.Repo {
	return &listingRepoImpl{q}
}

func (im *listingRepoImpl) makeQuery(opts ...listing.FindAllOptionsFunc) (bson.M, error) {
	options, err := listing.GetFindAllOptions(opts...)
	if err != nil {
		return nil, err
	}
	query := bson.M{}

	if options.Ids != nil {
		query["id"] = bson.M{"$in": *options.Ids}
	}

	if options.Seller != nil {
		query["seller"] = *options.Seller
	}

	if options.Active != nil {
		query["active"] = *options.Active
	}

	return query, nil
}

func (im *listingRepoImpl) FindOne(ctx bCtx.Ctx, id uint64) (*listing.Listing, error) {
	res := &listing.Listing{}
	if err := im.q.FindOne(ctx, domain.TableListings, bson.M{"id": id}, res); err == query.ErrNotFound {
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

func (im *listingRepoImpl) FindAll(ctx bCtx.Ctx, opts ...listing.FindAllOptionsFunc) ([]*listing.Listing, error) {
	query, err := im.makeQuery(opts...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("im.makeQuery")
		return nil, err
	}

	options, err := listing.GetFindAllOptions(opts...)
	if err != nil {
		return nil, err
	}

	var (
		offset int    = 0
		limit  int    = 0
		sort   string = "_id"
	)
	if options.Offset != nil {
		offset = int(*options.Offset)
	}
	if options.Limit != nil {
		limit = int(*options.Limit)
	}
	if options.Sort != nil {
		sort = *options.Sort
	}

	res := []*listing.Listing{}
	if err := im.q.Search(ctx, domain.TableListings, offset, limit, sort, query, &res); err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"query": query,
		}).Error("failed to q.Search")
		return nil, err
	}

	return res, nil
}

func (im *listingRepoImpl) Create(ctx bCtx.Ctx, l *listing.Listing) error {
	l.LowerCase()
	if err := im.q.Insert(ctx, domain.TableListings, l); err == query.ErrDuplicateKey {
		return domain.ErrConflict
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"listing": l,
		}).Error("failed to q.Insert")
		return err
	}
	return nil
}

func (im *listingRepoImpl) Deactivate(ctx bCtx.Ctx, id uint64) error {
	// matching on active keeps this a compare-and-set: of n concurrent
	// settlements only one observes active=true
	selector := bson.M{"id": id, "active": true}
	if err := im.q.Patch(ctx, domain.TableListings, selector, bson.M{"active": false}); err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to q.Patch")
		return err
	}
	return nil
}
