package ledger

import (
	"github.com/meterex/goapi/base/ctx"
	"github.com/meterex/goapi/domain"
)

// Balance is the amount of one token held by one account. Token is the
// payment token address for currency balances or a credit contract
// address for credit balances.
type Balance struct {
	Token  domain.Address `json:"token" bson:"token"`
	Owner  domain.Address `json:"owner" bson:"owner"`
	Amount uint64         `json:"amount" bson:"amount"`
}

type Repo interface {
	FindOne(ctx ctx.Ctx, token, owner domain.Address) (*Balance, error)

	// Debit subtracts amount from the owner balance and fails with
	// domain.ErrInsufficientBalance when the balance cannot cover it
	Debit(ctx ctx.Ctx, token, owner domain.Address, amount uint64) error

	// Credit adds amount to the owner balance, creating it if absent
	Credit(ctx ctx.Ctx, token, owner domain.Address, amount uint64) error
}

// UseCase is the value-transfer rail consumed by the settlement
// executor. Transfer is not atomic on its own; settlement wraps its
// calls in one storage transaction.
type UseCase interface {
	Transfer(ctx ctx.Ctx, token, from, to domain.Address, amount uint64) error
	Deposit(ctx ctx.Ctx, actor domain.Address, token, owner domain.Address, amount uint64) error
	GetBalance(ctx ctx.Ctx, token, owner domain.Address) (uint64, error)
}
