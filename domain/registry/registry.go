package registry

import (
	"time"

	"github.com/meterex/goapi/base/ctx"
	"github.com/meterex/goapi/domain"
)

// CreditContract is an asset-contract reference with its trading
// authorization flag. Unknown references read as unauthorized.
type CreditContract struct {
	Address    domain.Address `json:"address" bson:"address"`
	Authorized bool           `json:"authorized" bson:"authorized"`
	UpdatedAt  time.Time      `json:"updatedAt" bson:"updatedAt"`
}

type Repo interface {
	FindOne(ctx ctx.Ctx, address domain.Address) (*CreditContract, error)
	Upsert(ctx ctx.Ctx, contract *CreditContract) error
}

type UseCase interface {
	// Authorize and Revoke are owner-gated at the delivery layer; actor
	// is the authenticated caller, recorded in the audit trail
	Authorize(ctx ctx.Ctx, actor domain.Address, address domain.Address) error
	Revoke(ctx ctx.Ctx, actor domain.Address, address domain.Address) error
	IsAuthorized(ctx ctx.Ctx, address domain.Address) (bool, error)
}
