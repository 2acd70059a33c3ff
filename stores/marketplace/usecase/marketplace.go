package usecase

import (
	"github.com/meterex/goapi/base/ctx"
	"github.com/meterex/goapi/base/log"
	"github.com/meterex/goapi/base/ptr"
	"github.com/meterex/goapi/domain"
	"github.com/meterex/goapi/domain/audit"
	"github.com/meterex/goapi/domain/marketplace"
)

type MarketplaceUseCaseCfg struct {
	SettingsRepo marketplace.Repo
	AuditEmitter audit.Emitter
}

type impl struct {
	settingsRepo marketplace.Repo
	auditEmitter audit.Emitter
}

func New(cfg *MarketplaceUseCaseCfg) marketplace.UseCase {
	return &impl{
		settingsRepo: cfg.SettingsRepo,
		auditEmitter: cfg.AuditEmitter,
	}
}

func (im *impl) GetStatus(ctx ctx.Ctx) (*marketplace.Settings, error) {
	return im.settingsRepo.Get(ctx)
}

func (im *impl) SetPaused(ctx ctx.Ctx, actor domain.Address, paused bool) error {
	err := im.settingsRepo.Patch(ctx, marketplace.SettingsPatchable{
		Paused: ptr.Bool(paused),
	})
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":    err,
			"paused": paused,
		}).Error("failed to settingsRepo.Patch")
		return err
	}

	kind := audit.KindMarketplacePaused
	if !paused {
		kind = audit.KindMarketplaceUnpaused
	}
	im.auditEmitter.Emit(ctx, kind, actor, nil)

	return nil
}

func (im *impl) SetFeeCollector(ctx ctx.Ctx, actor domain.Address, collector domain.Address) error {
	if collector.IsEmpty() {
		return domain.ErrInvalidAddress
	}

	collector = collector.ToLower()
	err := im.settingsRepo.Patch(ctx, marketplace.SettingsPatchable{
		FeeCollector: &collector,
	})
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":       err,
			"collector": collector,
		}).Error("failed to settingsRepo.Patch")
		return err
	}

	im.auditEmitter.Emit(ctx, audit.KindFeeCollectorChanged, actor, map[string]interface{}{
		"feeCollector": collector,
	})

	return nil
}
