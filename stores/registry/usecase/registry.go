package usecase

import (
	"time"

	"github.com/meterex/goapi/base/ctx"
	"github.com/meterex/goapi/base/log"
	"github.com/meterex/goapi/domain"
	"github.com/meterex/goapi/domain/audit"
	"github.com/meterex/goapi/domain/registry"
)

type RegistryUseCaseCfg struct {
	RegistryRepo registry.Repo
	AuditEmitter audit.Emitter
}

type impl struct {
	registryRepo registry.Repo
	auditEmitter audit.Emitter
}

func New(cfg *RegistryUseCaseCfg) registry.UseCase {
	return &impl{
		registryRepo: cfg.RegistryRepo,
		auditEmitter: cfg.AuditEmitter,
	}
}

func (im *impl) Authorize(ctx ctx.Ctx, actor, address domain.Address) error {
	return im.setAuthorized(ctx, actor, address, true)
}

// Revoke only stops new listings; existing listings of the contract
// keep trading.
func (im *impl) Revoke(ctx ctx.Ctx, actor, address domain.Address) error {
	return im.setAuthorized(ctx, actor, address, false)
}

func (im *impl) setAuthorized(ctx ctx.Ctx, actor, address domain.Address, authorized bool) error {
	if address.IsEmpty() {
		return domain.ErrInvalidAddress
	}

	err := im.registryRepo.Upsert(ctx, &registry.CreditContract{
		Address:    address.ToLower(),
		Authorized: authorized,
		UpdatedAt:  time.Now(),
	})
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"address": address,
		}).Error("failed to registryRepo.Upsert")
		return err
	}

	kind := audit.KindContractAuthorized
	if !authorized {
		kind = audit.KindContractRevoked
	}
	im.auditEmitter.Emit(ctx, kind, actor, map[string]interface{}{
		"creditContract": address.ToLower(),
	})

	return nil
}

// IsAuthorized treats unknown contracts as unauthorized.
func (im *impl) IsAuthorized(ctx ctx.Ctx, address domain.Address) (bool, error) {
	contract, err := im.registryRepo.FindOne(ctx, address)
	if err == domain.ErrNotFound {
		return false, nil
	} else if err != nil {
		return false, err
	}
	return contract.Authorized, nil
}
