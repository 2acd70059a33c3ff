package usecase

import (
	"github.com/meterex/goapi/base/ctx"
	"github.com/meterex/goapi/base/log"
	"github.com/meterex/goapi/domain"
	"github.com/meterex/goapi/domain/audit"
	"github.com/meterex/goapi/domain/ledger"
)

type LedgerUseCaseCfg struct {
	BalanceRepo  ledger.Repo
	AuditEmitter audit.Emitter
}

type impl struct {
	balanceRepo  ledger.Repo
	auditEmitter audit.Emitter
}

func New(cfg *LedgerUseCaseCfg) ledger.UseCase {
	return &impl{
		balanceRepo:  cfg.BalanceRepo,
		auditEmitter: cfg.AuditEmitter,
	}
}

// Transfer debits before crediting so an uncovered transfer fails
// before any write lands on the receiver. Atomicity across the two
// writes comes from the caller's storage transaction.
func (im *impl) Transfer(ctx ctx.Ctx, token, from, to domain.Address, amount uint64) error {
	if from.Equals(to) {
		return domain.ErrTransferFailed
	}
	if amount == 0 {
		return nil
	}

	if err := im.balanceRepo.Debit(ctx, token, from, amount); err != nil {
		if err != domain.ErrInsufficientBalance {
			ctx.WithFields(log.Fields{
				"err":   err,
				"token": token,
				"from":  from,
			}).Error("failed to balanceRepo.Debit")
		}
		return err
	}

	if err := im.balanceRepo.Credit(ctx, token, to, amount); err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"token": token,
			"to":    to,
		}).Error("failed to balanceRepo.Credit")
		return err
	}

	return nil
}

// Deposit seeds a balance from outside the marketplace, owner-gated at
// the delivery layer.
func (im *impl) Deposit(ctx ctx.Ctx, actor domain.Address, token, owner domain.Address, amount uint64) error {
	if amount == 0 {
		return domain.ErrInvalidAmount
	}

	if err := im.balanceRepo.Credit(ctx, token, owner, amount); err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"token": token,
			"owner": owner,
		}).Error("failed to balanceRepo.Credit")
		return err
	}

	im.auditEmitter.Emit(ctx, audit.KindDeposit, actor, map[string]interface{}{
		"token":  token.ToLower(),
		"owner":  owner.ToLower(),
		"amount": amount,
	})

	return nil
}

func (im *impl) GetBalance(ctx ctx.Ctx, token, owner domain.Address) (uint64, error) {
	b, err := im.balanceRepo.FindOne(ctx, token, owner)
	if err == domain.ErrNotFound {
		return 0, nil
	} else if err != nil {
		return 0, err
	}
	return b.Amount, nil
}
