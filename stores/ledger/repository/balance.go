package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	bCtx "github.com/meterex/goapi/base/ctx"
	"github.com/meterex/goapi/base/log"
	"github.com/meterex/goapi/domain"
	"github.com/meterex/goapi/domain/ledger"
	"github.com/meterex/goapi/service/query"
)

type balanceRepoImpl struct {
	q query.Mongo
}

func NewBalanceRepo(q query.Mongo) ledger.Repo {
	return &balanceRepoImpl{q}
}

func (im *balanceRepoImpl) FindOne(ctx bCtx.Ctx, token, owner domain.Address) (*ledger.Balance, error) {
	res := &ledger.Balance{}
	selector := bson.M{"token": token.ToLower(), "owner": owner.ToLower()}
	if err := im.q.FindOne(ctx, domain.TableBalances, selector, res); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"token": token,
			"owner": owner,
		}).Error("failed to q.FindOne")
		return nil, err
	}
	return res, nil
}

// Debit guards the subtraction in the selector: the update only
// matches while the balance covers the amount, so a concurrent spender
// cannot drive it negative.
func (im *balanceRepoImpl) Debit(ctx bCtx.Ctx, token, owner domain.Address, amount uint64) error {
	selector := bson.M{
		"token":  token.ToLower(),
		"owner":  owner.ToLower(),
		"amount": bson.M{"$gte": amount},
	}
	updater := bson.M{"$inc": bson.M{"amount": -int64(amount)}}
	if err := im.q.CustomPatch(ctx, domain.TableBalances, selector, updater, false); err == query.ErrNotFound {
		return domain.ErrInsufficientBalance
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":    err,
			"token":  token,
			"owner":  owner,
			"amount": amount,
		}).Error("failed to q.CustomPatch")
		return err
	}
	return nil
}

func (im *balanceRepoImpl) Credit(ctx bCtx.Ctx, token, owner domain.Address, amount uint64) error {
	selector := bson.M{"token": token.ToLower(), "owner": owner.ToLower()}
	updater := bson.M{"$inc": bson.M{"amount": int64(amount)}}
	if err := im.q.CustomPatch(ctx, domain.TableBalances, selector, updater, true); err != nil {
		ctx.WithFields(log.Fields{
			"err":    err,
			"token":  token,
			"owner":  owner,
			"amount": amount,
		}).Error("failed to q.CustomPatch")
		return err
	}
	return nil
}
