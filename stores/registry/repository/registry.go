package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	bCtx "github.com/meterex/goapi/base/ctx"
	"github.com/meterex/goapi/base/log"
	"github.com/meterex/goapi/domain"
	"github.com/meterex/goapi/domain/registry"
	"github.com/meterex/goapi/service/query"
)

type registryRepoImpl struct {
	q query.Mongo
}

func NewRegistryRepo(q query.Mongo) registry.Repo {
	return &registryRepoImpl{q}
}

func (im *registryRepoImpl) FindOne(ctx bCtx.Ctx, address domain.Address) (*registry.CreditContract, error) {
	res := &registry.CreditContract{}
	selector := bson.M{"address": address.ToLower()}
	if err := im.q.FindOne(ctx, domain.TableCreditContracts, selector, res); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"address": address,
		}).Error("failed to q.FindOne")
		return nil, err
	}
	return res, nil
}

func (im *registryRepoImpl) Upsert(ctx bCtx.Ctx, contract *registry.CreditContract) error {
	contract.Address = contract.Address.ToLower()
	selector := bson.M{"address": contract.Address}
	if err := im.q.Upsert(ctx, domain.TableCreditContracts, selector, contract); err != nil {
		ctx.WithFields(log.Fields{
			"err":      err,
			"contract": contract,
		}).Error("failed to q.Upsert")
		return err
	}
	return nil
}
