package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	bCtx "github.com/meterex/goapi/base/ctx"
	"github.com/meterex/goapi/base/database/mongoclient"
	"github.com/meterex/goapi/base/log"
	"github.com/meterex/goapi/domain"
	"github.com/meterex/goapi/domain/marketplace"
	"github.com/meterex/goapi/service/query"
)

type settingsRepoImpl struct {
	q query.Mongo
}

func NewSettingsRepo(q query.Mongo) marketplace.Repo {
	return &settingsRepoImpl{q}
}

// Get falls back to default settings when the document was never
// written, so a fresh deployment starts unpaused.
func (im *settingsRepoImpl) Get(ctx bCtx.Ctx) (*marketplace.Settings, error) {
	res := &marketplace.Settings{}
	selector := bson.M{"key": marketplace.SettingsKey}
	if err := im.q.FindOne(ctx, domain.TableMarketplaceSettings, selector, res); err == query.ErrNotFound {
		return &marketplace.Settings{Key: marketplace.SettingsKey}, nil
	} else if err != nil {
		ctx.WithField("err", err).Error("failed to q.FindOne")
		return nil, err
	}
	return res, nil
}

func (im *settingsRepoImpl) Patch(ctx bCtx.Ctx, patchable marketplace.SettingsPatchable) error {
	update, err := mongoclient.MakeBsonM(patchable)
	if err != nil {
		ctx.WithField("err", err).Error("MakeBsonM failed")
		return err
	}

	selector := bson.M{"key": marketplace.SettingsKey}
	updater := bson.M{"$set": update}
	if err := im.q.CustomPatch(ctx, domain.TableMarketplaceSettings, selector, updater, true); err != nil {
		ctx.WithFields(log.Fields{
			"err":       err,
			"patchable": patchable,
		}).Error("failed to q.CustomPatch")
		return err
	}
	return nil
}
